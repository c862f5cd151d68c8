package service

import (
	"time"

	"bidding-engine/internal/model"
)

// ShouldExtend decides whether a bid placed at placedAt pushes the
// auction's end time forward. Pure and deterministic, so it is safe to
// call inside the admission critical section: a late bid extends the
// end by one window unless the auction has exhausted its extensions.
func ShouldExtend(a *model.Auction, placedAt time.Time, window time.Duration) (time.Time, bool) {
	if window <= 0 {
		return time.Time{}, false
	}
	if a.ExtensionsUsed >= a.MaxExtensions {
		return time.Time{}, false
	}
	if !placedAt.Before(a.EndTime) {
		return time.Time{}, false
	}
	if placedAt.Before(a.EndTime.Add(-window)) {
		return time.Time{}, false
	}
	return a.EndTime.Add(window), true
}
