package model

import "time"

// Account holds a user's virtual-currency balances in minor units.
// Available + Escrow only changes through a recorded LedgerEntry.
type Account struct {
	UserID              int64     `json:"user_id"`
	Available           int64     `json:"available"`
	Escrow              int64     `json:"escrow"`
	IsBlocked           bool      `json:"is_blocked"`
	HasUnpaidObligation bool      `json:"has_unpaid_obligation"`
	NeedsReconciliation bool      `json:"needs_reconciliation"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LedgerEntry is an immutable, append-only record of one balance
// mutation. Replaying a user's entries in order reconstructs the
// account balances exactly.
type LedgerEntry struct {
	ID        int64     `json:"id"`
	EntryID   string    `json:"entry_id"`
	UserID    int64     `json:"user_id"`
	Type      EntryType `json:"type"`
	Amount    int64     `json:"amount"`
	AuctionID *string   `json:"auction_id,omitempty"`
	BidID     *string   `json:"bid_id,omitempty"`
	// Reference is an idempotency key: retried holds, releases,
	// captures and replayed deposit webhooks collapse onto the
	// first committed entry.
	Reference    string    `json:"reference,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedBy    string    `json:"created_by"`
	BalanceAfter int64     `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}

// Auction is the state-machine document. Version is the optimistic
// concurrency token for the highest-bid pointer swap.
type Auction struct {
	ID              string        `json:"id"`
	ProductID       string        `json:"product_id"`
	SellerID        int64         `json:"seller_id"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	Status          AuctionStatus `json:"status"`
	StartingBid     int64         `json:"starting_bid"`
	MinIncrement    int64         `json:"min_increment"`
	CurrentBid      int64         `json:"current_bid"`
	HighestBidderID *int64        `json:"highest_bidder_id,omitempty"`
	TotalBids       int           `json:"total_bids"`
	ExtensionsUsed  int           `json:"extensions_used"`
	MaxExtensions   int           `json:"max_extensions"`
	Version         int           `json:"version"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// MinNextBid is the lowest amount the next admissible bid may carry.
func (a *Auction) MinNextBid() int64 {
	if a.TotalBids == 0 {
		return a.StartingBid
	}
	return a.CurrentBid + a.MinIncrement
}

// Bid is one admission attempt that was accepted. At most one bid per
// auction is active at any time.
type Bid struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	UserID    int64     `json:"user_id"`
	Amount    int64     `json:"amount"`
	Status    BidStatus `json:"status"`
	PlacedAt  time.Time `json:"placed_at"`
}

// SettlementResult reports the outcome of settling one auction.
type SettlementResult struct {
	AuctionID       string        `json:"auction_id"`
	Status          AuctionStatus `json:"status"`
	WinnerID        *int64        `json:"winner_id,omitempty"`
	WinningAmount   int64         `json:"winning_amount"`
	AlreadySettled  bool          `json:"already_settled"`
	CaptureEntryID  string        `json:"capture_entry_id,omitempty"`
	LosingBidsFinal int64         `json:"losing_bids_finalized"`
}
