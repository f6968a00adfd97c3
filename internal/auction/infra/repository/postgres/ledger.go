package postgres

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// Ledger implements domain.Ledger on top of a pgx transaction. Listing rows
// are locked with SELECT ... FOR UPDATE, so bids and closings on the same
// listing run one after another.
type Ledger struct {
	pool *pgxpool.Pool
}

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

func (l *Ledger) InTx(ctx context.Context, fn func(ctx context.Context, tx domain.LedgerTx) error) (err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		log.Error("Ledger: Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("ledger: failed to begin transaction: %w", err)
	}

	//config defer() to handles commit/rollback
	defer func() {
		if r := recover(); r != nil {
			log.Error("Ledger: Recovered from panic during transaction", zap.Any("panic", r))
			_ = tx.Rollback(ctx) // Rollback for panic case
			panic(r)
		}
		//if 'err' is not nil the failing step already logged, here only the rollback
		if err != nil {
			log.Debug("Ledger: Rolling back transaction", zap.Error(err))
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error("Ledger: Rollback failed", zap.Error(rbErr))
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			log.Error("Ledger: Failed to commit transaction", zap.Error(commitErr))
			// Assign the commitError to 'err' variable to be returned by InTx
			err = fmt.Errorf("ledger: failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(ctx, &ledgerTx{tx: tx})
	return err
}

type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) GetListingForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return getListing(ctx, t.tx, id, true)
}

func (t *ledgerTx) HighestBid(ctx context.Context, listingID uuid.UUID) (*domain.Bid, error) {
	return highestBid(ctx, t.tx, listingID)
}

func (t *ledgerTx) SaveBid(ctx context.Context, bid *domain.Bid) error {
	return saveBid(ctx, t.tx, bid)
}

// SaveClosing persists the closing outcome, the only listing fields a ledger may change.
func (t *ledgerTx) SaveClosing(ctx context.Context, listing *domain.Listing) error {
	query := `UPDATE listings SET active = $2, winner_id = $3 WHERE id = $1`
	tag, err := t.tx.Exec(ctx, query, listing.ID, listing.Active, listing.WinnerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}
