package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"bidding-engine/internal/config"
	"bidding-engine/internal/model"
	"bidding-engine/internal/repository"
	"bidding-engine/internal/service"

	"github.com/rs/zerolog"
)

// LifecycleSweeper drives the time-based auction transitions: it
// activates scheduled auctions whose start time passed and settles
// auctions whose end time passed. Firing twice over the same auction is
// harmless because settlement is idempotent.
type LifecycleSweeper struct {
	auctionRepo repository.AuctionRepository
	settlement  service.SettlementService
	cfg         config.WorkerConfig
	logger      zerolog.Logger
	stopChan    chan struct{}
	wg          *sync.WaitGroup
}

func NewLifecycleSweeper(
	auctionRepo repository.AuctionRepository,
	settlement service.SettlementService,
	cfg config.WorkerConfig,
	logger zerolog.Logger,
) *LifecycleSweeper {
	return &LifecycleSweeper{
		auctionRepo: auctionRepo,
		settlement:  settlement,
		cfg:         cfg,
		logger:      logger,
		stopChan:    make(chan struct{}),
		wg:          &sync.WaitGroup{},
	}
}

func (w *LifecycleSweeper) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.cfg.SweepInterval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.cfg.SweepInterval).Msg("Lifecycle sweeper started")

		for {
			select {
			case <-ticker.C:
				w.sweep(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Lifecycle sweeper stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Lifecycle sweeper stopping (context done)")
				return
			}
		}
	}()
}

func (w *LifecycleSweeper) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

func (w *LifecycleSweeper) sweep(ctx context.Context) {
	now := time.Now()

	activated, err := w.auctionRepo.ActivateDue(ctx, now, w.cfg.SweepBatchSize)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to activate due auctions")
	} else if activated > 0 {
		w.logger.Info().Int64("activated", activated).Msg("auctions went live")
	}

	expired, err := w.auctionRepo.ListExpired(ctx, now, w.cfg.SweepBatchSize)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to list expired auctions")
		return
	}

	var settled int
	for _, auction := range expired {
		// stop quickly on shutdown
		select {
		case <-ctx.Done():
			return
		default:
		}

		result, err := w.settlement.Settle(ctx, auction.ID)
		if err != nil {
			// busy means a live admission holds the slot; next tick retries
			if errors.Is(err, model.ErrBusy) || errors.Is(err, model.ErrAuctionNotEnded) {
				w.logger.Debug().Err(err).Str("auction_id", auction.ID).Msg("settlement deferred")
				continue
			}
			w.logger.Error().Err(err).Str("auction_id", auction.ID).Msg("failed to settle auction")
			continue
		}
		if !result.AlreadySettled {
			settled++
		}
	}

	if settled > 0 {
		w.logger.Info().Int("settled", settled).Msg("expired auctions settled")
	}
}
