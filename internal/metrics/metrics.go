package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates the bidding engine's operational metrics.
type Collector struct {
	registry          *prometheus.Registry
	bidsAdmitted      prometheus.Counter
	bidsRejected      *prometheus.CounterVec
	admissionDuration prometheus.Histogram
	ledgerEntries     *prometheus.CounterVec
	settlements       *prometheus.CounterVec
	extensionsGranted prometheus.Counter
	fraudBlocks       prometheus.Counter
	fraudDropped      prometheus.Counter
	reconciliations   prometheus.Counter
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		bidsAdmitted: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "bids_admitted_total",
			Help: "Total number of admitted bids",
		}),
		bidsRejected: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bids_rejected_total",
			Help: "Total number of rejected bids by reason",
		}, []string{"reason"}),
		admissionDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "bid_admission_duration_seconds",
			Help:    "Time spent inside the bid admission critical section",
			Buckets: prometheus.DefBuckets,
		}),
		ledgerEntries: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_entries_total",
			Help: "Total number of appended ledger entries by type",
		}, []string{"type"}),
		settlements: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "settlements_total",
			Help: "Total number of settlement attempts by outcome",
		}, []string{"outcome"}),
		extensionsGranted: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "anti_snipe_extensions_total",
			Help: "Total number of granted anti-snipe extensions",
		}),
		fraudBlocks: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "fraud_blocks_total",
			Help: "Total number of accounts blocked by the fraud monitor",
		}),
		fraudDropped: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "fraud_events_dropped_total",
			Help: "Total number of fraud events dropped due to a full buffer",
		}),
		reconciliations: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "reconciliation_incidents_total",
			Help: "Total number of accounts flagged for manual reconciliation",
		}),
	}
}

func (c *Collector) BidAdmitted(duration time.Duration, extended bool) {
	c.bidsAdmitted.Inc()
	c.admissionDuration.Observe(duration.Seconds())
	if extended {
		c.extensionsGranted.Inc()
	}
}

func (c *Collector) BidRejected(reason string) {
	c.bidsRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) LedgerEntry(entryType string) {
	c.ledgerEntries.WithLabelValues(entryType).Inc()
}

func (c *Collector) Settlement(outcome string) {
	c.settlements.WithLabelValues(outcome).Inc()
}

func (c *Collector) FraudBlock() {
	c.fraudBlocks.Inc()
}

func (c *Collector) FraudEventDropped() {
	c.fraudDropped.Inc()
}

func (c *Collector) ReconciliationIncident() {
	c.reconciliations.Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
