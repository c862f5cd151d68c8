package test

import (
	"context"
	"sync"
	"time"

	"bidding-engine/internal/model"

	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory stand-in for the postgres repositories with
// the same error mapping and the same atomicity contract: everything
// inside WithTransaction commits or rolls back as a unit. It lets the
// concurrency properties run without a database.
//
// Repository methods taking a pgx.Tx are only ever called inside
// WithTransaction and rely on its lock; the rest lock for themselves.
type memStore struct {
	mu       sync.Mutex
	accounts map[int64]*model.Account
	entries  []*model.LedgerEntry
	refs     map[string]*model.LedgerEntry
	auctions map[string]*model.Auction
	bids     map[string]*model.Bid
	seq      int64
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[int64]*model.Account),
		refs:     make(map[string]*model.LedgerEntry),
		auctions: make(map[string]*model.Auction),
		bids:     make(map[string]*model.Bid),
	}
}

type memSnapshot struct {
	accounts map[int64]*model.Account
	entries  []*model.LedgerEntry
	refs     map[string]*model.LedgerEntry
	auctions map[string]*model.Auction
	bids     map[string]*model.Bid
	seq      int64
}

func (s *memStore) snapshot() *memSnapshot {
	snap := &memSnapshot{
		accounts: make(map[int64]*model.Account, len(s.accounts)),
		entries:  append([]*model.LedgerEntry(nil), s.entries...),
		refs:     make(map[string]*model.LedgerEntry, len(s.refs)),
		auctions: make(map[string]*model.Auction, len(s.auctions)),
		bids:     make(map[string]*model.Bid, len(s.bids)),
		seq:      s.seq,
	}
	for k, v := range s.accounts {
		c := *v
		snap.accounts[k] = &c
	}
	for k, v := range s.refs {
		snap.refs[k] = v
	}
	for k, v := range s.auctions {
		c := *v
		snap.auctions[k] = &c
	}
	for k, v := range s.bids {
		c := *v
		snap.bids[k] = &c
	}
	return snap
}

func (s *memStore) restore(snap *memSnapshot) {
	s.accounts = snap.accounts
	s.entries = snap.entries
	s.refs = snap.refs
	s.auctions = snap.auctions
	s.bids = snap.bids
	s.seq = snap.seq
}

// WithTransaction serializes transactions behind one lock and rolls the
// whole store back when fn fails, mirroring a database transaction.
func (s *memStore) WithTransaction(_ context.Context, fn func(pgx.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(nil); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) seedAuction(a *model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *a
	s.auctions[a.ID] = &c
}

func (s *memStore) seedBid(b *model.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *b
	s.bids[b.ID] = &c
}

type memAccountRepo struct{ s *memStore }

func (r *memAccountRepo) CreateIfAbsent(_ context.Context, userID int64, _ pgx.Tx) error {
	if _, ok := r.s.accounts[userID]; !ok {
		r.s.accounts[userID] = &model.Account{UserID: userID, CreatedAt: time.Now()}
	}
	return nil
}

func (r *memAccountRepo) GetForUpdate(_ context.Context, userID int64, _ pgx.Tx) (*model.Account, error) {
	acct, ok := r.s.accounts[userID]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	c := *acct
	return &c, nil
}

func (r *memAccountRepo) Get(_ context.Context, userID int64) (*model.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	acct, ok := r.s.accounts[userID]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	c := *acct
	return &c, nil
}

func (r *memAccountRepo) UpdateBalances(_ context.Context, userID int64, available, escrow int64, _ pgx.Tx) error {
	if available < 0 || escrow < 0 {
		return model.ErrInsufficientFunds
	}
	acct, ok := r.s.accounts[userID]
	if !ok {
		return model.ErrAccountNotFound
	}
	acct.Available = available
	acct.Escrow = escrow
	acct.UpdatedAt = time.Now()
	return nil
}

func (r *memAccountRepo) SetBlocked(_ context.Context, userID int64, blocked bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	acct, ok := r.s.accounts[userID]
	if !ok {
		return model.ErrAccountNotFound
	}
	acct.IsBlocked = blocked
	return nil
}

func (r *memAccountRepo) SetUnpaidObligation(_ context.Context, userID int64, _ pgx.Tx) error {
	acct, ok := r.s.accounts[userID]
	if !ok {
		return model.ErrAccountNotFound
	}
	acct.HasUnpaidObligation = true
	return nil
}

func (r *memAccountRepo) SetNeedsReconciliation(_ context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	acct, ok := r.s.accounts[userID]
	if !ok {
		return model.ErrAccountNotFound
	}
	acct.NeedsReconciliation = true
	return nil
}

type memLedgerRepo struct{ s *memStore }

func (r *memLedgerRepo) Insert(_ context.Context, entry *model.LedgerEntry, _ pgx.Tx) error {
	if entry.Reference != "" {
		if _, ok := r.s.refs[entry.Reference]; ok {
			return model.ErrDuplicateEntry
		}
	}
	r.s.seq++
	c := *entry
	c.ID = r.s.seq
	c.CreatedAt = time.Now()
	r.s.entries = append(r.s.entries, &c)
	if c.Reference != "" {
		r.s.refs[c.Reference] = &c
	}
	return nil
}

func (r *memLedgerRepo) GetByReference(_ context.Context, reference string) (*model.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entry, ok := r.s.refs[reference]
	if !ok {
		return nil, model.ErrEntryNotFound
	}
	c := *entry
	return &c, nil
}

func (r *memLedgerRepo) ListByUser(_ context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.LedgerEntry
	for i := len(r.s.entries) - 1; i >= 0; i-- {
		if r.s.entries[i].UserID != userID {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		if len(out) == limit {
			break
		}
		c := *r.s.entries[i]
		out = append(out, &c)
	}
	return out, nil
}

type memAuctionRepo struct{ s *memStore }

func (r *memAuctionRepo) Insert(_ context.Context, a *model.Auction) error {
	r.s.seedAuction(a)
	return nil
}

func (r *memAuctionRepo) Get(_ context.Context, id string) (*model.Auction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.auctions[id]
	if !ok {
		return nil, model.ErrAuctionNotFound
	}
	c := *a
	return &c, nil
}

func (r *memAuctionRepo) UpdatePointer(_ context.Context, auction *model.Auction, expectedVersion int, _ pgx.Tx) (bool, error) {
	a, ok := r.s.auctions[auction.ID]
	if !ok {
		return false, model.ErrAuctionNotFound
	}
	if a.Version != expectedVersion {
		return false, nil
	}
	a.CurrentBid = auction.CurrentBid
	a.HighestBidderID = auction.HighestBidderID
	a.TotalBids = auction.TotalBids
	a.ExtensionsUsed = auction.ExtensionsUsed
	a.EndTime = auction.EndTime
	a.Status = auction.Status
	a.Version++
	a.UpdatedAt = time.Now()
	return true, nil
}

func (r *memAuctionRepo) UpdateStatus(_ context.Context, id string, from []model.AuctionStatus, to model.AuctionStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.auctions[id]
	if !ok {
		return false, model.ErrAuctionNotFound
	}
	for _, f := range from {
		if a.Status == f {
			a.Status = to
			a.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (r *memAuctionRepo) CancelIfNoBids(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.auctions[id]
	if !ok {
		return false, model.ErrAuctionNotFound
	}
	if a.TotalBids > 0 || a.Status.IsTerminal() || a.Status == model.AuctionEnded {
		return false, nil
	}
	a.Status = model.AuctionCancelled
	return true, nil
}

func (r *memAuctionRepo) ActivateDue(_ context.Context, now time.Time, limit int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, a := range r.s.auctions {
		if int(n) == limit {
			break
		}
		if a.Status == model.AuctionScheduled && !now.Before(a.StartTime) {
			a.Status = model.AuctionLive
			n++
		}
	}
	return n, nil
}

func (r *memAuctionRepo) ListExpired(_ context.Context, now time.Time, limit int) ([]*model.Auction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Auction
	for _, a := range r.s.auctions {
		if len(out) == limit {
			break
		}
		switch a.Status {
		case model.AuctionLive, model.AuctionEndingSoon, model.AuctionEnded:
			if !now.Before(a.EndTime) {
				c := *a
				out = append(out, &c)
			}
		}
	}
	return out, nil
}

type memBidRepo struct{ s *memStore }

func (r *memBidRepo) Insert(_ context.Context, bid *model.Bid, _ pgx.Tx) error {
	for _, b := range r.s.bids {
		if b.AuctionID == bid.AuctionID && b.Status == model.BidActive {
			// partial unique index on (auction_id) WHERE status = 'active'
			return model.ErrOptimisticConflict
		}
	}
	c := *bid
	r.s.bids[bid.ID] = &c
	return nil
}

func (r *memBidRepo) GetActive(_ context.Context, auctionID string) (*model.Bid, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bids {
		if b.AuctionID == auctionID && b.Status == model.BidActive {
			c := *b
			return &c, nil
		}
	}
	return nil, model.ErrBidNotFound
}

func (r *memBidRepo) UpdateStatus(_ context.Context, bidID string, from, to model.BidStatus, _ pgx.Tx) (bool, error) {
	b, ok := r.s.bids[bidID]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r *memBidRepo) FinalizeOutbid(_ context.Context, auctionID string, to model.BidStatus, _ pgx.Tx) (int64, error) {
	var n int64
	for _, b := range r.s.bids {
		if b.AuctionID == auctionID && b.Status == model.BidOutbid {
			b.Status = to
			n++
		}
	}
	return n, nil
}
