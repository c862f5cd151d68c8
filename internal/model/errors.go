package model

import "errors"

// User errors: surfaced to the caller as 4xx, never retried automatically.
var (
	ErrBidTooLow         = errors.New("bid too low")
	ErrAuctionNotLive    = errors.New("auction is not accepting bids")
	ErrSelfBid           = errors.New("seller cannot bid on own auction")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountBlocked    = errors.New("account is blocked")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrBidNotFound       = errors.New("bid not found")
	ErrEntryNotFound     = errors.New("ledger entry not found")
	ErrAuctionHasBids    = errors.New("auction already has bids")
	ErrAuctionNotEnded   = errors.New("auction has not ended")
)

// Contention errors: retryable; the coordinator retries internally a
// bounded number of times before surfacing ErrBusy.
var (
	ErrBusy               = errors.New("auction is busy, retry")
	ErrOptimisticConflict = errors.New("auction version conflict")
)

// Ledger integrity errors: a programmer error upstream, never a
// user-facing validation failure.
var (
	ErrEscrowUnderflow = errors.New("escrow balance lower than requested amount")
	ErrDuplicateEntry  = errors.New("duplicate ledger entry reference")
	ErrReconciliation  = errors.New("account flagged for reconciliation")
)
