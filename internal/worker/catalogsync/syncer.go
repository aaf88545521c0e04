package catalogsync

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/domain/resource"
)

type catalogLister interface {
	ListAll(ctx context.Context) ([]*resource.Resource, error)
}

type indexRebuilder interface {
	Rebuild(resources []*resource.Resource)
}

// Syncer keeps the local search index in step with the catalog. It rebuilds
// on every tick and whenever another instance signals a change.
type Syncer struct {
	catalog  catalogLister
	index    indexRebuilder
	changes  <-chan struct{}
	interval time.Duration
	logger   *slog.Logger
}

// New builds a Syncer. A nil changes channel or a non-positive interval
// disables that trigger.
func New(
	catalog catalogLister,
	index indexRebuilder,
	changes <-chan struct{},
	interval time.Duration,
	logger *slog.Logger,
) *Syncer {
	return &Syncer{
		catalog:  catalog,
		index:    index,
		changes:  changes,
		interval: interval,
		logger:   logger,
	}
}

func (s *Syncer) Start(ctx context.Context) {
	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	s.logger.Info("catalog sync started", "interval", s.interval)

	changes := s.changes
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("catalog sync stopped")
			return
		case <-tick:
			s.refresh(ctx, "tick")
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			s.refresh(ctx, "peer")
		}
	}
}

// Refresh rebuilds the index once. On failure the previous index is kept.
func (s *Syncer) Refresh(ctx context.Context) (int, error) {
	resources, err := s.catalog.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	s.index.Rebuild(resources)
	return len(resources), nil
}

func (s *Syncer) refresh(ctx context.Context, trigger string) {
	n, err := s.Refresh(ctx)
	if err != nil {
		s.logger.Error("failed to refresh search index", "trigger", trigger, "error", err)
		return
	}
	s.logger.Debug("search index refreshed", "trigger", trigger, "resources", n)
}
