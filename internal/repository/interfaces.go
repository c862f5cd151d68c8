package repository

import (
	"context"
	"time"

	"bidding-engine/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management.
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccountRepository owns the accounts table. Balance mutations must run
// inside a transaction holding the account row lock.
type AccountRepository interface {
	// CreateIfAbsent provisions an account with zero balances (lazy
	// creation on first funding event). No-op if the row exists.
	CreateIfAbsent(ctx context.Context, userID int64, tx pgx.Tx) error

	// GetForUpdate retrieves an account with a row-level lock (must be in transaction)
	GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error)

	// Get retrieves an account without locking (read-only views)
	Get(ctx context.Context, userID int64) (*model.Account, error)

	// UpdateBalances writes both balances; CHECK constraints map to
	// model.ErrInsufficientFunds
	UpdateBalances(ctx context.Context, userID int64, available, escrow int64, tx pgx.Tx) error

	// SetBlocked flips the block flag outside any ledger transaction
	// (fraud monitor path)
	SetBlocked(ctx context.Context, userID int64, blocked bool) error

	// SetUnpaidObligation marks the winner's purchase obligation inside
	// the capture transaction
	SetUnpaidObligation(ctx context.Context, userID int64, tx pgx.Tx) error

	// SetNeedsReconciliation flags an account for manual review; never
	// cleared by background code
	SetNeedsReconciliation(ctx context.Context, userID int64) error
}

// LedgerRepository owns the append-only ledger_entries table.
type LedgerRepository interface {
	// Insert appends an entry; a duplicate reference maps to
	// model.ErrDuplicateEntry
	Insert(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error

	// GetByReference retrieves the entry committed under an idempotency reference
	GetByReference(ctx context.Context, reference string) (*model.LedgerEntry, error)

	// ListByUser retrieves paginated entries for a user, newest first
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error)
}

// AuctionRepository owns the auctions table. The version column is the
// optimistic-concurrency token for pointer swaps.
type AuctionRepository interface {
	Insert(ctx context.Context, auction *model.Auction) error

	Get(ctx context.Context, id string) (*model.Auction, error)

	// UpdatePointer writes the highest-bid pointer (current_bid,
	// highest_bidder_id, total_bids, extensions_used, end_time, status)
	// iff version still equals expectedVersion. Returns false on conflict.
	UpdatePointer(ctx context.Context, auction *model.Auction, expectedVersion int, tx pgx.Tx) (bool, error)

	// UpdateStatus transitions status iff the current status is in from.
	// Returns false if the guard did not match.
	UpdateStatus(ctx context.Context, id string, from []model.AuctionStatus, to model.AuctionStatus) (bool, error)

	// CancelIfNoBids transitions an open auction to cancelled iff no
	// bid was ever admitted. Returns false when a bid or another
	// transition got there first.
	CancelIfNoBids(ctx context.Context, id string) (bool, error)

	// ActivateDue flips scheduled auctions whose start time has passed to live
	ActivateDue(ctx context.Context, now time.Time, limit int) (int64, error)

	// ListExpired retrieves open auctions whose end time has passed
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*model.Auction, error)
}

// BidRepository owns the bids table. A partial unique index enforces at
// most one active bid per auction.
type BidRepository interface {
	Insert(ctx context.Context, bid *model.Bid, tx pgx.Tx) error

	// GetActive retrieves the single active bid for an auction;
	// model.ErrBidNotFound when there is none
	GetActive(ctx context.Context, auctionID string) (*model.Bid, error)

	// UpdateStatus transitions a bid iff its current status is from
	UpdateStatus(ctx context.Context, bidID string, from, to model.BidStatus, tx pgx.Tx) (bool, error)

	// FinalizeOutbid moves every outbid bid of an auction to a terminal
	// status (lost or cancelled) at settlement
	FinalizeOutbid(ctx context.Context, auctionID string, to model.BidStatus, tx pgx.Tx) (int64, error)
}
