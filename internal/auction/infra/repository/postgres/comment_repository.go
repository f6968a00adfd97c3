package postgres

import (
	"context"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentRepository implements domain.CommentRepository interface
type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	query := `
        INSERT INTO comments (id, listing_id, author_id, content, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.ListingID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
	)
	return err
}

func (r *CommentRepository) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*domain.Comment, error) {
	query := `
        SELECT id, listing_id, author_id, content, created_at
        FROM comments
        WHERE listing_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.ListingID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}
