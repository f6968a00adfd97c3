package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CloseAuctionResultDTO is the outcome of closing an auction
type CloseAuctionResultDTO struct {
	ListingID  uuid.UUID
	WinnerID   *uuid.UUID
	FinalPrice decimal.Decimal
}

// CloseAuctionUseCase ends an auction and records its winner
type CloseAuctionUseCase struct {
	ledger domain.Ledger
}

func NewCloseAuctionUseCase(ledger domain.Ledger) *CloseAuctionUseCase {
	return &CloseAuctionUseCase{ledger: ledger}
}

func (uc *CloseAuctionUseCase) Execute(ctx context.Context, caller domain.Caller, listingID uuid.UUID) (*CloseAuctionResultDTO, error) {
	log.Info("Executing CloseAuctionUseCase",
		zap.String("listingID", listingID.String()),
		zap.String("callerID", caller.UserID.String()),
	)
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	var result *CloseAuctionResultDTO
	err := uc.ledger.InTx(ctx, func(ctx context.Context, tx domain.LedgerTx) error {
		listing, err := tx.GetListingForUpdate(ctx, listingID)
		if err != nil {
			return err
		}

		highest, err := tx.HighestBid(ctx, listing.ID)
		if err != nil {
			return err
		}

		if err := listing.Close(caller, highest); err != nil {
			return err
		}
		if err := tx.SaveClosing(ctx, listing); err != nil {
			log.Error("CloseAuctionUseCase: Failed to save closed listing",
				zap.String("listingID", listingID.String()),
				zap.Error(err),
			)
			return err
		}

		result = &CloseAuctionResultDTO{
			ListingID:  listing.ID,
			WinnerID:   listing.WinnerID,
			FinalPrice: domain.CurrentPrice(listing, highest),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("close auction use case: listing %s: %w", listingID, err)
	}
	return result, nil
}
