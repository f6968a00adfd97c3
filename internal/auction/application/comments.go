package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PostCommentDTO struct {
	ListingID uuid.UUID
	Content   string
}

// PostCommentUseCase adds a comment to an existing listing, open or closed
type PostCommentUseCase struct {
	listingRepo domain.ListingRepository
	commentRepo domain.CommentRepository
}

func NewPostCommentUseCase(listingRepo domain.ListingRepository, commentRepo domain.CommentRepository) *PostCommentUseCase {
	return &PostCommentUseCase{
		listingRepo: listingRepo,
		commentRepo: commentRepo,
	}
}

func (uc *PostCommentUseCase) Execute(ctx context.Context, caller domain.Caller, cmd PostCommentDTO) (*domain.Comment, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if _, err := uc.listingRepo.GetByID(ctx, cmd.ListingID); err != nil {
		return nil, fmt.Errorf("post comment use case: %w", err)
	}

	comment, err := domain.NewComment(uuid.New(), cmd.ListingID, caller.UserID, cmd.Content, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("post comment use case: %w", err)
	}
	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		log.Error("PostCommentUseCase: Failed to save comment",
			zap.String("listingID", cmd.ListingID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("post comment use case: %w", err)
	}
	return comment, nil
}

// ListCommentsUseCase returns a listing's comments, oldest first
type ListCommentsUseCase struct {
	listingRepo domain.ListingRepository
	commentRepo domain.CommentRepository
}

func NewListCommentsUseCase(listingRepo domain.ListingRepository, commentRepo domain.CommentRepository) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		listingRepo: listingRepo,
		commentRepo: commentRepo,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, listingID uuid.UUID) ([]*domain.Comment, error) {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("list comments use case: %w", err)
	}
	comments, err := uc.commentRepo.GetByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list comments use case: %w", err)
	}
	return comments, nil
}
