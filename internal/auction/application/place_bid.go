package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// PlaceBidDTO is DTO input for PlaceBid useCase, contains the necesary data to make a bid
type PlaceBidDTO struct {
	ListingID uuid.UUID
	Amount    decimal.Decimal
}

// PlaceBidUseCase is useCase to make a bid on a listing, orchestrate bussines logic and persistence
type PlaceBidUseCase struct {
	ledger    domain.Ledger
	precision int32
}

// NewPlaceBidUseCase creates a new instace of PlaceBidUseCase struct, it receives dependency through injection.
// precision is the number of fractional digits allowed in an amount
func NewPlaceBidUseCase(ledger domain.Ledger, precision int32) *PlaceBidUseCase {
	return &PlaceBidUseCase{
		ledger:    ledger,
		precision: precision,
	}
}

func (uc *PlaceBidUseCase) Execute(ctx context.Context, caller domain.Caller, cmd PlaceBidDTO) (*domain.Bid, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	log.Info("Executing PlaceBidUseCase",
		zap.String("listingID", cmd.ListingID.String()),
		zap.String("bidderID", caller.UserID.String()),
		domain.AmountField("amount", cmd.Amount),
	)

	var newBid *domain.Bid
	// read current price and insert the bid while holding the listing lock, so two
	// bidders can never both pass the check against the same stale price
	err := uc.ledger.InTx(ctx, func(ctx context.Context, tx domain.LedgerTx) error {
		listing, err := tx.GetListingForUpdate(ctx, cmd.ListingID)
		if err != nil {
			if !errors.Is(err, domain.ErrListingNotFound) {
				log.Error("PlaceBidUseCase: Failed to lock listing",
					zap.String("listingID", cmd.ListingID.String()),
					zap.Error(err),
				)
			}
			return err
		}

		highest, err := tx.HighestBid(ctx, listing.ID)
		if err != nil {
			log.Error("PlaceBidUseCase: Failed to read highest bid",
				zap.String("listingID", cmd.ListingID.String()),
				zap.Error(err),
			)
			return err
		}

		bid, err := listing.AcceptBid(caller.UserID, cmd.Amount, domain.CurrentPrice(listing, highest), uc.precision, time.Now().UTC())
		if err != nil {
			return err
		}

		if err := tx.SaveBid(ctx, bid); err != nil {
			log.Error("PlaceBidUseCase: Failed to save new bid",
				zap.String("listingID", cmd.ListingID.String()),
				zap.String("bidID", bid.ID.String()),
				zap.Error(err),
			)
			return err
		}
		newBid = bid
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("place bid use case: bid failed for listing %s: %w", cmd.ListingID, err)
	}

	log.Info("Bid placed successfully",
		zap.String("listingID", cmd.ListingID.String()),
		zap.String("bidID", newBid.ID.String()),
		zap.String("bidderID", newBid.BidderID.String()),
		zap.String("amount", newBid.Amount.String()),
	)
	return newBid, nil
}
