package model

import "time"

type PlaceBidRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0" example:"42"`
	Amount int64 `json:"amount" binding:"required,gt=0" example:"12500"`
}

// BidResult is returned to the storefront after a successful admission.
type BidResult struct {
	BidID      string    `json:"bid_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	AuctionID  string    `json:"auction_id"`
	CurrentBid int64     `json:"current_bid" example:"12500"`
	TotalBids  int       `json:"total_bids" example:"7"`
	EndTime    time.Time `json:"end_time"`
	Extended   bool      `json:"extended"`
}

type CreateAuctionRequest struct {
	ProductID     string    `json:"product_id" binding:"required"`
	SellerID      int64     `json:"seller_id" binding:"required,gt=0"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	StartingBid   int64     `json:"starting_bid" binding:"required,gt=0"`
	MinIncrement  int64     `json:"min_increment" binding:"required,gt=0"`
	MaxExtensions *int      `json:"max_extensions,omitempty"`
}

type CancelAuctionRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

type BalanceResponse struct {
	UserID    int64 `json:"user_id" example:"42"`
	Available int64 `json:"available" example:"100000"`
	Escrow    int64 `json:"escrow" example:"12500"`
	IsBlocked bool  `json:"is_blocked" example:"false"`
}

// DepositRequest carries a payment-gateway amount. Gateways report in
// major units ("10.50"), the ledger stores minor units; the handler
// converts.
type DepositRequest struct {
	Amount    string `json:"amount" binding:"required" example:"10.50"`
	SourceRef string `json:"source_ref" binding:"required" example:"pay_2qX9f1"`
}

type AdjustBalanceRequest struct {
	Delta   int64  `json:"delta" binding:"required" example:"-500"`
	ActorID string `json:"actor_id" binding:"required" example:"admin:7"`
	Note    string `json:"note" binding:"required" example:"chargeback corr."`
}

type EntryResponse struct {
	EntryID string `json:"entry_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status  string `json:"status" example:"recorded"`
}

type EntryListResponse struct {
	Entries []*LedgerEntry `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"bid too low"`
	Code    string `json:"code,omitempty" example:"BID_TOO_LOW"`
	Details string `json:"details,omitempty"`
}
