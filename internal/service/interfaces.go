package service

import (
	"context"

	"bidding-engine/internal/fraud"
	"bidding-engine/internal/model"
)

// LedgerService is the only path through which balances change. Each
// operation is one store transaction over a single account row plus the
// appended ledger entry; cross-account effects are composed by callers.
type LedgerService interface {
	// Hold moves amount from available to escrow for a pending bid
	Hold(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error)

	// Release moves amount from escrow back to available after a bid is superseded
	Release(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error)

	// Refund moves amount from escrow back to available when an auction is cancelled
	Refund(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error)

	// Capture removes amount from escrow permanently and records the
	// winner's purchase obligation
	Capture(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error)

	// Adjust changes available by delta; admin tooling only
	Adjust(ctx context.Context, userID, delta int64, actorID, note string) (string, error)

	// Deposit credits available from an external payment capture,
	// provisioning the account on first funding
	Deposit(ctx context.Context, userID, amount int64, sourceRef string) (string, error)

	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)

	ListEntries(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error)

	// FlagForReconciliation marks an account for manual review after a
	// compensation path exhausted its retries
	FlagForReconciliation(ctx context.Context, userID int64, note string) error
}

// BiddingService admits bids, serialized per auction.
type BiddingService interface {
	PlaceBid(ctx context.Context, auctionID string, userID, amount int64) (*model.BidResult, error)
}

// AuctionService owns listing lifecycle operations outside the bid path.
type AuctionService interface {
	Create(ctx context.Context, req *model.CreateAuctionRequest) (*model.Auction, error)
	Get(ctx context.Context, id string) (*model.Auction, error)
	Cancel(ctx context.Context, id, actorID string) error
}

// SettlementService resolves ended auctions. Both operations are
// idempotent and safe under at-least-once invocation.
type SettlementService interface {
	Settle(ctx context.Context, auctionID string) (*model.SettlementResult, error)
	SettleCancelled(ctx context.Context, auctionID, actorID string) (*model.SettlementResult, error)
}

// FraudPublisher receives post-commit activity events; implementations
// must never block the caller.
type FraudPublisher interface {
	Publish(ev fraud.Event)
}
