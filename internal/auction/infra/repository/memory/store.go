package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
)

// Store is a concurrency-safe in-memory implementation of every auction
// repository and of domain.Ledger. Ledger transactions serialize on a
// per-listing mutex and stage their writes until commit.
type Store struct {
	mu             sync.RWMutex
	listings       map[uuid.UUID]*domain.Listing
	bids           map[uuid.UUID][]*domain.Bid                // key: listingID
	comments       map[uuid.UUID][]*domain.Comment            // key: listingID
	watchlist      map[uuid.UUID]map[uuid.UUID]time.Time      // key: userID -> listingID -> added at
	categories     map[int64]*domain.Category
	nextCategoryID int64

	locksMu      sync.Mutex
	listingLocks map[uuid.UUID]*sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		listings:     make(map[uuid.UUID]*domain.Listing),
		bids:         make(map[uuid.UUID][]*domain.Bid),
		comments:     make(map[uuid.UUID][]*domain.Comment),
		watchlist:    make(map[uuid.UUID]map[uuid.UUID]time.Time),
		categories:   make(map[int64]*domain.Category),
		listingLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func copyListing(l *domain.Listing) *domain.Listing {
	c := *l
	if l.WinnerID != nil {
		w := *l.WinnerID
		c.WinnerID = &w
	}
	return &c
}

func (s *Store) listingLock(id uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	m, ok := s.listingLocks[id]
	if !ok {
		m = &sync.Mutex{}
		s.listingLocks[id] = m
	}
	return m
}

// summary must be called with s.mu held.
func (s *Store) summary(l *domain.Listing) *domain.ListingSummary {
	bids := s.bids[l.ID]
	return &domain.ListingSummary{
		Listing:      *copyListing(l),
		CurrentPrice: domain.CurrentPrice(l, domain.WinningBid(bids)),
		BidCount:     len(bids),
	}
}

// Listings

func (s *Store) Create(ctx context.Context, listing *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings[listing.ID] = copyListing(listing)
	return nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return copyListing(l), nil
}

func (s *Store) GetSummary(ctx context.Context, id uuid.UUID) (*domain.ListingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return s.summary(l), nil
}

func (s *Store) ListActive(ctx context.Context, categoryID *int64) ([]*domain.ListingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ListingSummary, 0)
	for _, l := range s.listings {
		if !l.Active {
			continue
		}
		if categoryID != nil && (l.CategoryID == nil || *l.CategoryID != *categoryID) {
			continue
		}
		out = append(out, s.summary(l))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Bids

func (s *Store) GetBidsByListingID(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := s.bids[listingID]
	out := make([]*domain.Bid, 0, len(bids))
	for _, b := range bids {
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

// Comments

func (s *Store) Save(ctx context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[comment.ListingID]; !ok {
		return domain.ErrListingNotFound
	}
	c := *comment
	s.comments[comment.ListingID] = append(s.comments[comment.ListingID], &c)
	return nil
}

func (s *Store) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := s.comments[listingID]
	out := make([]*domain.Comment, 0, len(comments))
	for _, c := range comments {
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

// Watchlist

func (s *Store) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listingID]; !ok {
		return domain.ErrListingNotFound
	}
	watched, ok := s.watchlist[userID]
	if !ok {
		watched = make(map[uuid.UUID]time.Time)
		s.watchlist[userID] = watched
	}
	if _, exists := watched[listingID]; !exists {
		watched[listingID] = time.Now().UTC()
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.watchlist[userID], listingID)
	return nil
}

func (s *Store) Contains(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.watchlist[userID][listingID]
	return ok, nil
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ListingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type entry struct {
		summary *domain.ListingSummary
		addedAt time.Time
	}
	entries := make([]entry, 0, len(s.watchlist[userID]))
	for listingID, addedAt := range s.watchlist[userID] {
		l, ok := s.listings[listingID]
		if !ok {
			continue
		}
		entries = append(entries, entry{summary: s.summary(l), addedAt: addedAt})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].addedAt.After(entries[j].addedAt)
	})

	out := make([]*domain.ListingSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.summary)
	}
	return out, nil
}

// Categories

func (s *Store) List(ctx context.Context) ([]*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.categories[id]
	return ok, nil
}

func (s *Store) EnsureExists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return false, nil
		}
	}
	s.nextCategoryID++
	s.categories[s.nextCategoryID] = &domain.Category{ID: s.nextCategoryID, Name: name}
	return true, nil
}
