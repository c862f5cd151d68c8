// Package fraud watches bid and deposit activity per user and blocks
// accounts whose velocity crosses configured thresholds. It is advisory
// and eventually consistent: events arrive over a buffered channel after
// the ledger has committed, and nothing here ever delays bid admission.
package fraud

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bidding-engine/internal/config"
	"bidding-engine/internal/metrics"

	"github.com/rs/zerolog"
)

type EventType string

const (
	EventBidAdmitted EventType = "bid_admitted"
	EventDepositMade EventType = "deposit_made"
)

type Event struct {
	Type   EventType
	UserID int64
	Amount int64
	At     time.Time
}

// AccountBlocker is the single ledger-safe mutation the monitor performs.
type AccountBlocker interface {
	SetBlocked(ctx context.Context, userID int64, blocked bool) error
}

type Monitor struct {
	cfg      config.FraudConfig
	store    CounterStore
	accounts AccountBlocker
	metrics  *metrics.Collector
	logger   zerolog.Logger

	events chan Event
	wg     sync.WaitGroup
}

func NewMonitor(cfg config.FraudConfig, store CounterStore, accounts AccountBlocker, collector *metrics.Collector, logger zerolog.Logger) *Monitor {
	return &Monitor{
		cfg:      cfg,
		store:    store,
		accounts: accounts,
		metrics:  collector,
		logger:   logger,
		events:   make(chan Event, cfg.EventBuffer),
	}
}

// Publish hands an event to the monitor without blocking the caller.
// A full buffer drops the event: detection is best-effort.
func (m *Monitor) Publish(ev Event) {
	if !m.cfg.Enabled {
		return
	}
	select {
	case m.events <- ev:
	default:
		m.metrics.FraudEventDropped()
	}
}

func (m *Monitor) Start(ctx context.Context) {
	if !m.cfg.Enabled {
		m.logger.Info().Msg("Fraud monitor disabled")
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.logger.Info().
			Int64("bid_rate_limit", m.cfg.BidRateLimit).
			Int64("deposit_volume_limit", m.cfg.DepositVolumeLimit).
			Msg("Fraud monitor started")

		for {
			select {
			case ev := <-m.events:
				m.observe(ctx, ev)
			case <-ctx.Done():
				m.logger.Info().Msg("Fraud monitor stopping")
				return
			}
		}
	}()
}

func (m *Monitor) Stop() {
	m.wg.Wait()
}

func (m *Monitor) observe(ctx context.Context, ev Event) {
	var (
		key    string
		delta  int64
		window time.Duration
		limit  int64
	)

	switch ev.Type {
	case EventBidAdmitted:
		key = fmt.Sprintf("fraud:bids:%d", ev.UserID)
		delta = 1
		window = m.cfg.BidRateWindow
		limit = m.cfg.BidRateLimit
	case EventDepositMade:
		key = fmt.Sprintf("fraud:deposits:%d", ev.UserID)
		delta = ev.Amount
		window = m.cfg.DepositVolumeWindow
		limit = m.cfg.DepositVolumeLimit
	default:
		return
	}

	count, err := m.store.IncrBy(ctx, key, delta, window)
	if err != nil {
		// fail open: counter store outage must not affect detection-adjacent paths
		m.logger.Warn().Err(err).Str("key", key).Msg("fraud counter unavailable")
		return
	}

	if count <= limit {
		return
	}

	if err := m.accounts.SetBlocked(ctx, ev.UserID, true); err != nil {
		m.logger.Error().Err(err).Int64("user_id", ev.UserID).Msg("failed to block flagged account")
		return
	}

	m.metrics.FraudBlock()
	m.logger.Warn().
		Int64("user_id", ev.UserID).
		Str("event", string(ev.Type)).
		Int64("window_total", count).
		Int64("limit", limit).
		Msg("account blocked pending review")
}
