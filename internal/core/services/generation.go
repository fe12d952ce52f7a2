package services

import (
	"sync"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
)

type generationKey struct {
	userID string
	view   portssvc.DashboardView
}

// GenerationTracker remembers the newest request generation seen for each
// user and dashboard view, so a slow read can tell it has been overtaken.
type GenerationTracker struct {
	mu     sync.Mutex
	latest map[generationKey]uint64
}

func NewGenerationTracker() *GenerationTracker {
	return &GenerationTracker{latest: make(map[generationKey]uint64)}
}

// Observe records gen and reports whether it is still the newest.
// Generation 0 is never tracked and never stale.
func (t *GenerationTracker) Observe(userID string, view portssvc.DashboardView, gen uint64) bool {
	if gen == 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	k := generationKey{userID, view}
	if gen < t.latest[k] {
		return false
	}
	t.latest[k] = gen
	return true
}

// IsCurrent reports whether no newer generation than gen has been observed.
func (t *GenerationTracker) IsCurrent(userID string, view portssvc.DashboardView, gen uint64) bool {
	if gen == 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[generationKey{userID, view}] <= gen
}
