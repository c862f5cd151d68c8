package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bidding-engine/internal/config"
	"bidding-engine/internal/fraud"
	"bidding-engine/internal/locker"
	"bidding-engine/internal/metrics"
	"bidding-engine/internal/model"
	"bidding-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// BiddingServiceImpl is the admission coordinator. Attempts for one
// auction are serialized through an in-process keyed lock; the auction
// row's version column backstops the serialization across processes.
// The two-sided ledger effect is a saga of single-account transactions
// with explicit compensation, never one multi-account transaction.
type BiddingServiceImpl struct {
	ledger      LedgerService
	auctionRepo repository.AuctionRepository
	bidRepo     repository.BidRepository
	dbManager   repository.DBManager
	locks       *locker.KeyedLocker
	fraud       FraudPublisher
	metrics     *metrics.Collector
	cfg         config.AuctionConfig
	logger      zerolog.Logger
	now         func() time.Time
}

func NewBiddingService(
	ledger LedgerService,
	auctionRepo repository.AuctionRepository,
	bidRepo repository.BidRepository,
	dbManager repository.DBManager,
	locks *locker.KeyedLocker,
	fraudPublisher FraudPublisher,
	collector *metrics.Collector,
	cfg config.AuctionConfig,
	logger zerolog.Logger,
) *BiddingServiceImpl {
	return &BiddingServiceImpl{
		ledger:      ledger,
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
		dbManager:   dbManager,
		locks:       locks,
		fraud:       fraudPublisher,
		metrics:     collector,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *BiddingServiceImpl) PlaceBid(ctx context.Context, auctionID string, userID, amount int64) (*model.BidResult, error) {
	if amount <= 0 {
		s.metrics.BidRejected("invalid_amount")
		return nil, fmt.Errorf("%w: bid amount must be positive", model.ErrInvalidAmount)
	}

	start := time.Now()
	release, err := s.locks.Acquire(ctx, auctionID, s.cfg.LockTimeout)
	if err != nil {
		s.metrics.BidRejected("busy")
		return nil, fmt.Errorf("%w: could not acquire admission slot: %v", model.ErrBusy, err)
	}
	defer release()

	var result *model.BidResult
	for attempt := 0; ; attempt++ {
		result, err = s.admit(ctx, auctionID, userID, amount)
		if !errors.Is(err, model.ErrOptimisticConflict) || attempt >= s.cfg.AdmissionRetries {
			break
		}
		s.logger.Debug().
			Str("auction_id", auctionID).
			Int("attempt", attempt+1).
			Msg("auction version conflict, retrying admission")
	}

	if errors.Is(err, model.ErrOptimisticConflict) {
		s.metrics.BidRejected("conflict")
		return nil, fmt.Errorf("%w: admission retries exhausted", model.ErrBusy)
	}
	if err != nil {
		s.metrics.BidRejected(rejectionReason(err))
		return nil, err
	}

	s.metrics.BidAdmitted(time.Since(start), result.Extended)
	if s.fraud != nil {
		s.fraud.Publish(fraud.Event{Type: fraud.EventBidAdmitted, UserID: userID, Amount: amount})
	}

	s.logger.Info().
		Str("auction_id", auctionID).
		Str("bid_id", result.BidID).
		Int64("user_id", userID).
		Int64("amount", amount).
		Int("total_bids", result.TotalBids).
		Bool("extended", result.Extended).
		Msg("bid admitted")
	return result, nil
}

// admit performs one serialized admission attempt:
//
//  1. snapshot auction and validate the bid against it
//  2. escrow the new bidder's funds (own store transaction)
//  3. release the previous highest bidder's escrow (own store transaction)
//  4. swap the highest-bid pointer, consult the anti-snipe policy, and
//     rewrite the bid rows (one store transaction guarded by version)
//
// Any failure after step 2 triggers compensation in reverse order.
func (s *BiddingServiceImpl) admit(ctx context.Context, auctionID string, userID, amount int64) (*model.BidResult, error) {
	now := s.now()

	auction, err := s.auctionRepo.Get(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	if err := validateBid(auction, userID, amount, now, s.cfg.AntiSnipeWindow); err != nil {
		return nil, err
	}

	var prev *model.Bid
	if auction.TotalBids > 0 {
		prev, err = s.bidRepo.GetActive(ctx, auctionID)
		if err != nil && !errors.Is(err, model.ErrBidNotFound) {
			return nil, fmt.Errorf("get active bid: %w", err)
		}
	}

	bidID := uuid.New().String()
	if _, err := s.ledger.Hold(ctx, userID, amount, auctionID, bidID, "hold:"+bidID); err != nil {
		return nil, err
	}

	prevReleased := false
	if prev != nil {
		if err := s.retryLedgerOp(ctx, func() error {
			_, relErr := s.ledger.Release(ctx, prev.UserID, prev.Amount, auctionID, prev.ID, "release:"+prev.ID)
			return relErr
		}); err != nil {
			s.compensate(ctx, auctionID, userID, amount, bidID, nil, false)
			return nil, fmt.Errorf("%w: release of previous bid failed: %v", model.ErrBusy, err)
		}
		prevReleased = true
	}

	updated := *auction
	updated.CurrentBid = amount
	updated.HighestBidderID = &userID
	updated.TotalBids++
	var extended bool
	if newEnd, ok := ShouldExtend(auction, now, s.cfg.AntiSnipeWindow); ok {
		updated.EndTime = newEnd
		updated.ExtensionsUsed++
		extended = true
	}
	updated.Status = effectiveStatus(&updated, now, s.cfg.AntiSnipeWindow)

	newBid := &model.Bid{
		ID:        bidID,
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		Status:    model.BidActive,
		PlacedAt:  now,
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		ok, err := s.auctionRepo.UpdatePointer(ctx, &updated, auction.Version, tx)
		if err != nil {
			return fmt.Errorf("update auction pointer: %w", err)
		}
		if !ok {
			return model.ErrOptimisticConflict
		}

		if prev != nil {
			if _, err := s.bidRepo.UpdateStatus(ctx, prev.ID, model.BidActive, model.BidOutbid, tx); err != nil {
				return fmt.Errorf("mark previous bid outbid: %w", err)
			}
		}
		return s.bidRepo.Insert(ctx, newBid, tx)
	})
	if err != nil {
		s.compensate(ctx, auctionID, userID, amount, bidID, prev, prevReleased)
		return nil, err
	}

	return &model.BidResult{
		BidID:      bidID,
		AuctionID:  auctionID,
		CurrentBid: updated.CurrentBid,
		TotalBids:  updated.TotalBids,
		EndTime:    updated.EndTime,
		Extended:   extended,
	}, nil
}

// validateBid applies the admission rules against a snapshot.
func validateBid(a *model.Auction, userID, amount int64, now time.Time, snipeWindow time.Duration) error {
	if st := effectiveStatus(a, now, snipeWindow); !st.BiddingOpen() {
		return fmt.Errorf("%w: status is %s", model.ErrAuctionNotLive, st)
	}
	if userID == a.SellerID {
		return model.ErrSelfBid
	}
	if min := a.MinNextBid(); amount < min {
		return fmt.Errorf("%w: current bid %d, minimum next bid %d", model.ErrBidTooLow, a.CurrentBid, min)
	}
	return nil
}

// compensate unwinds an aborted admission in reverse order: restore the
// previous bidder's escrow if it was released, then return the new
// bidder's hold. Funds that cannot be restored are flagged for manual
// reconciliation, never guessed at.
func (s *BiddingServiceImpl) compensate(ctx context.Context, auctionID string, userID, amount int64, bidID string, prev *model.Bid, prevReleased bool) {
	if prevReleased && prev != nil {
		if err := s.retryLedgerOp(ctx, func() error {
			_, holdErr := s.ledger.Hold(ctx, prev.UserID, prev.Amount, auctionID, prev.ID, "rehold:"+prev.ID+":"+bidID)
			return holdErr
		}); err != nil {
			s.logger.Error().Err(err).
				Str("auction_id", auctionID).
				Int64("user_id", prev.UserID).
				Msg("compensation failed to restore previous bidder escrow")
			if flagErr := s.ledger.FlagForReconciliation(ctx, prev.UserID,
				fmt.Sprintf("escrow restore failed for auction %s bid %s", auctionID, prev.ID)); flagErr != nil {
				s.logger.Error().Err(flagErr).Int64("user_id", prev.UserID).Msg("failed to flag account")
			}
		}
	}

	if err := s.retryLedgerOp(ctx, func() error {
		_, relErr := s.ledger.Release(ctx, userID, amount, auctionID, bidID, "comp-release:"+bidID)
		return relErr
	}); err != nil {
		s.logger.Error().Err(err).
			Str("auction_id", auctionID).
			Int64("user_id", userID).
			Msg("compensation failed to release new bidder hold")
		if flagErr := s.ledger.FlagForReconciliation(ctx, userID,
			fmt.Sprintf("hold release failed for auction %s bid %s", auctionID, bidID)); flagErr != nil {
			s.logger.Error().Err(flagErr).Int64("user_id", userID).Msg("failed to flag account")
		}
	}
}

func (s *BiddingServiceImpl) retryLedgerOp(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt <= s.cfg.CompensationRetries; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		// user-level and integrity failures do not heal with retries
		if errors.Is(err, model.ErrInsufficientFunds) ||
			errors.Is(err, model.ErrEscrowUnderflow) ||
			errors.Is(err, model.ErrAccountBlocked) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, model.ErrBidTooLow):
		return "bid_too_low"
	case errors.Is(err, model.ErrAuctionNotLive):
		return "auction_not_live"
	case errors.Is(err, model.ErrSelfBid):
		return "self_bid"
	case errors.Is(err, model.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, model.ErrAccountBlocked):
		return "account_blocked"
	case errors.Is(err, model.ErrAuctionNotFound):
		return "auction_not_found"
	case errors.Is(err, model.ErrBusy):
		return "busy"
	default:
		return "internal"
	}
}
