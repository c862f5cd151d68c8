package model

// EntryType classifies a ledger entry. Every balance mutation appends
// exactly one entry of one of these types.
type EntryType string

const (
	EntryDeposit         EntryType = "deposit"
	EntryEscrowHold      EntryType = "escrow_hold"
	EntryEscrowRelease   EntryType = "escrow_release"
	EntryEscrowCapture   EntryType = "escrow_capture"
	EntryRefund          EntryType = "refund"
	EntryAdminAdjustment EntryType = "admin_adjustment"
)

func (t EntryType) String() string {
	return string(t)
}

// AuctionStatus is the lifecycle state of an auction. Transitions are
// monotonic: an auction never re-enters an earlier state.
type AuctionStatus string

const (
	AuctionScheduled  AuctionStatus = "scheduled"
	AuctionLive       AuctionStatus = "live"
	AuctionEndingSoon AuctionStatus = "ending_soon"
	AuctionEnded      AuctionStatus = "ended"
	AuctionSettled    AuctionStatus = "settled"
	AuctionCancelled  AuctionStatus = "cancelled"
)

func (s AuctionStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s AuctionStatus) IsTerminal() bool {
	return s == AuctionSettled || s == AuctionCancelled
}

// BiddingOpen reports whether the auction accepts bids in this state.
func (s AuctionStatus) BiddingOpen() bool {
	return s == AuctionLive || s == AuctionEndingSoon
}

type BidStatus string

const (
	BidActive    BidStatus = "active"
	BidOutbid    BidStatus = "outbid"
	BidWon       BidStatus = "won"
	BidLost      BidStatus = "lost"
	BidCancelled BidStatus = "cancelled"
)

func (s BidStatus) String() string {
	return string(s)
}
