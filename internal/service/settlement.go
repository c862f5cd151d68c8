package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bidding-engine/internal/config"
	"bidding-engine/internal/locker"
	"bidding-engine/internal/metrics"
	"bidding-engine/internal/model"
	"bidding-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SettlementServiceImpl resolves ended auctions. Settlement is keyed by
// auction id and idempotent: the capture entry's reference collapses
// retried captures, and the ended→settled transition is a conditional
// claim, so at-least-once scheduler delivery is safe.
type SettlementServiceImpl struct {
	ledger      LedgerService
	auctionRepo repository.AuctionRepository
	bidRepo     repository.BidRepository
	dbManager   repository.DBManager
	locks       *locker.KeyedLocker
	metrics     *metrics.Collector
	cfg         config.AuctionConfig
	logger      zerolog.Logger
	now         func() time.Time
}

func NewSettlementService(
	ledger LedgerService,
	auctionRepo repository.AuctionRepository,
	bidRepo repository.BidRepository,
	dbManager repository.DBManager,
	locks *locker.KeyedLocker,
	collector *metrics.Collector,
	cfg config.AuctionConfig,
	logger zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		ledger:      ledger,
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
		dbManager:   dbManager,
		locks:       locks,
		metrics:     collector,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SettlementServiceImpl) Settle(ctx context.Context, auctionID string) (*model.SettlementResult, error) {
	release, err := s.locks.Acquire(ctx, auctionID, s.cfg.LockTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: could not acquire settlement slot: %v", model.ErrBusy, err)
	}
	defer release()

	auction, err := s.auctionRepo.Get(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	switch auction.Status {
	case model.AuctionSettled, model.AuctionCancelled:
		s.metrics.Settlement("duplicate")
		return &model.SettlementResult{
			AuctionID:      auctionID,
			Status:         auction.Status,
			WinnerID:       auction.HighestBidderID,
			WinningAmount:  auction.CurrentBid,
			AlreadySettled: true,
		}, nil
	}

	if s.now().Before(auction.EndTime) {
		return nil, fmt.Errorf("%w: ends at %s", model.ErrAuctionNotEnded, auction.EndTime.UTC().Format(time.RFC3339))
	}

	if auction.Status != model.AuctionEnded {
		if _, err := s.auctionRepo.UpdateStatus(ctx, auctionID,
			[]model.AuctionStatus{model.AuctionScheduled, model.AuctionLive, model.AuctionEndingSoon},
			model.AuctionEnded); err != nil {
			return nil, fmt.Errorf("mark auction ended: %w", err)
		}
	}

	if auction.HighestBidderID == nil {
		if _, err := s.auctionRepo.UpdateStatus(ctx, auctionID,
			[]model.AuctionStatus{model.AuctionEnded}, model.AuctionSettled); err != nil {
			return nil, fmt.Errorf("settle no-bid auction: %w", err)
		}
		s.metrics.Settlement("no_bids")
		s.logger.Info().Str("auction_id", auctionID).Msg("auction settled without bids")
		return &model.SettlementResult{AuctionID: auctionID, Status: model.AuctionSettled}, nil
	}

	activeBid, err := s.bidRepo.GetActive(ctx, auctionID)
	if err != nil {
		if errors.Is(err, model.ErrBidNotFound) {
			// pointer names a winner but no active bid exists: upstream logic bug
			s.metrics.Settlement("integrity_error")
			s.logger.Error().Str("auction_id", auctionID).Msg("ledger integrity violation: highest bidder set without an active bid")
		}
		return nil, fmt.Errorf("get active bid: %w", err)
	}

	winnerID := *auction.HighestBidderID
	captureEntryID, err := s.ledger.Capture(ctx, winnerID, auction.CurrentBid, auctionID, activeBid.ID, "capture:"+auctionID)
	if err != nil {
		// auction stays ended; safe to retry indefinitely
		s.metrics.Settlement("capture_failed")
		return nil, fmt.Errorf("capture winner escrow: %w", err)
	}

	var lost int64
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.bidRepo.UpdateStatus(ctx, activeBid.ID, model.BidActive, model.BidWon, tx); err != nil {
			return fmt.Errorf("mark winning bid: %w", err)
		}
		n, err := s.bidRepo.FinalizeOutbid(ctx, auctionID, model.BidLost, tx)
		if err != nil {
			return fmt.Errorf("finalize losing bids: %w", err)
		}
		lost = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.auctionRepo.UpdateStatus(ctx, auctionID,
		[]model.AuctionStatus{model.AuctionEnded}, model.AuctionSettled); err != nil {
		return nil, fmt.Errorf("mark auction settled: %w", err)
	}

	s.metrics.Settlement("settled")
	s.logger.Info().
		Str("auction_id", auctionID).
		Int64("winner_id", winnerID).
		Int64("amount", auction.CurrentBid).
		Int64("losing_bids", lost).
		Msg("auction settled")

	return &model.SettlementResult{
		AuctionID:       auctionID,
		Status:          model.AuctionSettled,
		WinnerID:        auction.HighestBidderID,
		WinningAmount:   auction.CurrentBid,
		CaptureEntryID:  captureEntryID,
		LosingBidsFinal: lost,
	}, nil
}

// SettleCancelled tears down an auction that had bids: the active hold
// is refunded in full and every bid finalizes as cancelled.
func (s *SettlementServiceImpl) SettleCancelled(ctx context.Context, auctionID, actorID string) (*model.SettlementResult, error) {
	release, err := s.locks.Acquire(ctx, auctionID, s.cfg.LockTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: could not acquire settlement slot: %v", model.ErrBusy, err)
	}
	defer release()

	auction, err := s.auctionRepo.Get(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	if auction.Status.IsTerminal() {
		s.metrics.Settlement("duplicate")
		return &model.SettlementResult{
			AuctionID:      auctionID,
			Status:         auction.Status,
			AlreadySettled: true,
		}, nil
	}

	if auction.HighestBidderID != nil {
		activeBid, err := s.bidRepo.GetActive(ctx, auctionID)
		if err != nil {
			return nil, fmt.Errorf("get active bid: %w", err)
		}

		if _, err := s.ledger.Refund(ctx, activeBid.UserID, activeBid.Amount, auctionID, activeBid.ID, "refund:"+activeBid.ID); err != nil {
			return nil, fmt.Errorf("refund active bid: %w", err)
		}

		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			if _, err := s.bidRepo.UpdateStatus(ctx, activeBid.ID, model.BidActive, model.BidCancelled, tx); err != nil {
				return fmt.Errorf("cancel active bid: %w", err)
			}
			if _, err := s.bidRepo.FinalizeOutbid(ctx, auctionID, model.BidCancelled, tx); err != nil {
				return fmt.Errorf("cancel outbid bids: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.auctionRepo.UpdateStatus(ctx, auctionID,
		[]model.AuctionStatus{model.AuctionScheduled, model.AuctionLive, model.AuctionEndingSoon, model.AuctionEnded},
		model.AuctionCancelled); err != nil {
		return nil, fmt.Errorf("mark auction cancelled: %w", err)
	}

	s.metrics.Settlement("cancelled")
	s.logger.Info().
		Str("auction_id", auctionID).
		Str("actor_id", actorID).
		Msg("auction cancelled with full refund")

	return &model.SettlementResult{AuctionID: auctionID, Status: model.AuctionCancelled}, nil
}
