package service

import (
	"context"
	"fmt"
	"time"

	"bidding-engine/internal/model"
	"bidding-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// effectiveStatus derives the wall-clock state of an open auction. The
// persisted status may lag the clock between worker sweeps; validation
// always uses the derived value, and transitions stay monotonic because
// terminal and ended statuses are returned as stored.
func effectiveStatus(a *model.Auction, now time.Time, snipeWindow time.Duration) model.AuctionStatus {
	switch a.Status {
	case model.AuctionEnded, model.AuctionSettled, model.AuctionCancelled:
		return a.Status
	}

	if now.Before(a.StartTime) {
		return model.AuctionScheduled
	}
	if !now.Before(a.EndTime) {
		return model.AuctionEnded
	}
	if !now.Before(a.EndTime.Add(-snipeWindow)) {
		return model.AuctionEndingSoon
	}
	return model.AuctionLive
}

type AuctionServiceImpl struct {
	auctionRepo          repository.AuctionRepository
	settlement           SettlementService
	snipeWindow          time.Duration
	defaultMaxExtensions int
	logger               zerolog.Logger
	now                  func() time.Time
}

func NewAuctionService(
	auctionRepo repository.AuctionRepository,
	settlement SettlementService,
	snipeWindow time.Duration,
	defaultMaxExtensions int,
	logger zerolog.Logger,
) *AuctionServiceImpl {
	return &AuctionServiceImpl{
		auctionRepo:          auctionRepo,
		settlement:           settlement,
		snipeWindow:          snipeWindow,
		defaultMaxExtensions: defaultMaxExtensions,
		logger:               logger,
		now:                  time.Now,
	}
}

func (s *AuctionServiceImpl) Create(ctx context.Context, req *model.CreateAuctionRequest) (*model.Auction, error) {
	if req.StartingBid <= 0 || req.MinIncrement <= 0 {
		return nil, fmt.Errorf("%w: starting bid and increment must be positive", model.ErrInvalidAmount)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", model.ErrInvalidAmount)
	}

	now := s.now()
	status := model.AuctionScheduled
	if !now.Before(req.StartTime) {
		status = model.AuctionLive
	}

	maxExtensions := s.defaultMaxExtensions
	if req.MaxExtensions != nil && *req.MaxExtensions >= 0 {
		maxExtensions = *req.MaxExtensions
	}

	auction := &model.Auction{
		ID:            uuid.New().String(),
		ProductID:     req.ProductID,
		SellerID:      req.SellerID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        status,
		StartingBid:   req.StartingBid,
		MinIncrement:  req.MinIncrement,
		CurrentBid:    req.StartingBid,
		MaxExtensions: maxExtensions,
		Version:       1,
	}

	if err := s.auctionRepo.Insert(ctx, auction); err != nil {
		return nil, fmt.Errorf("insert auction: %w", err)
	}

	s.logger.Info().
		Str("auction_id", auction.ID).
		Int64("seller_id", auction.SellerID).
		Time("end_time", auction.EndTime).
		Msg("auction created")
	return auction, nil
}

// Get returns the auction with its wall-clock effective status, so
// balance displays do not depend on worker sweep latency.
func (s *AuctionServiceImpl) Get(ctx context.Context, id string) (*model.Auction, error) {
	auction, err := s.auctionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	auction.Status = effectiveStatus(auction, s.now(), s.snipeWindow)
	return auction, nil
}

// Cancel terminates an auction. With no bids admitted this is a direct
// transition; once money is escrowed it must flow through settlement so
// the active hold is refunded.
func (s *AuctionServiceImpl) Cancel(ctx context.Context, id, actorID string) error {
	auction, err := s.auctionRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if auction.Status.IsTerminal() {
		return nil
	}

	if auction.TotalBids > 0 {
		if _, err := s.settlement.SettleCancelled(ctx, id, actorID); err != nil {
			return fmt.Errorf("cancel via settlement: %w", err)
		}
		return nil
	}

	ok, err := s.auctionRepo.CancelIfNoBids(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel auction: %w", err)
	}
	if !ok {
		// a bid or transition won the race; retry through the full path
		return model.ErrOptimisticConflict
	}

	s.logger.Info().
		Str("auction_id", id).
		Str("actor_id", actorID).
		Msg("auction cancelled before first bid")
	return nil
}
