package memory

import (
	"context"
	"sync"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
)

type memTx struct {
	store    *Store
	held     map[uuid.UUID]*sync.Mutex
	bids     []*domain.Bid
	closings map[uuid.UUID]*domain.Listing
}

// InTx implements domain.Ledger. Writes made through the tx become visible
// only if fn returns nil.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx domain.LedgerTx) error) error {
	tx := &memTx{
		store:    s,
		held:     make(map[uuid.UUID]*sync.Mutex),
		closings: make(map[uuid.UUID]*domain.Listing),
	}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (tx *memTx) release() {
	for _, m := range tx.held {
		m.Unlock()
	}
}

func (tx *memTx) commit() {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range tx.bids {
		s.bids[b.ListingID] = append(s.bids[b.ListingID], b)
	}
	for id, l := range tx.closings {
		s.listings[id] = l
	}
}

func (tx *memTx) GetListingForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if _, ok := tx.held[id]; !ok {
		if _, err := tx.store.GetByID(ctx, id); err != nil {
			return nil, err
		}
		m := tx.store.listingLock(id)
		m.Lock()
		tx.held[id] = m
	}

	if l, ok := tx.closings[id]; ok {
		return copyListing(l), nil
	}
	return tx.store.GetByID(ctx, id)
}

func (tx *memTx) HighestBid(ctx context.Context, listingID uuid.UUID) (*domain.Bid, error) {
	bids, err := tx.store.GetBidsByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	for _, b := range tx.bids {
		if b.ListingID == listingID {
			c := *b
			bids = append(bids, &c)
		}
	}
	return domain.WinningBid(bids), nil
}

func (tx *memTx) SaveBid(ctx context.Context, bid *domain.Bid) error {
	c := *bid
	tx.bids = append(tx.bids, &c)
	return nil
}

func (tx *memTx) SaveClosing(ctx context.Context, listing *domain.Listing) error {
	if _, ok := tx.held[listing.ID]; !ok {
		return domain.ErrListingNotFound
	}
	tx.closings[listing.ID] = copyListing(listing)
	return nil
}
