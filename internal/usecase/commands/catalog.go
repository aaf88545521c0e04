package commands

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/resource"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commands

type IndexRebuilder interface {
	Rebuild(resources []*resource.Resource)
}

type CatalogCommands interface {
	// Reindex rebuilds the local search index from the catalog and tells
	// the other instances to do the same. It returns the number of resources indexed.
	Reindex(ctx context.Context) (int, error)
}

type catalogCommandsImpl struct {
	catalog  shared.ResourceCatalog
	index    IndexRebuilder
	notifier shared.CatalogNotifier
	logger   *slog.Logger
}

func NewCatalogCommands(
	catalog shared.ResourceCatalog,
	index IndexRebuilder,
	notifier shared.CatalogNotifier,
	logger *slog.Logger,
) CatalogCommands {
	return &catalogCommandsImpl{
		catalog:  catalog,
		index:    index,
		notifier: notifier,
		logger:   logger,
	}
}

func (c *catalogCommandsImpl) Reindex(ctx context.Context) (int, error) {
	resources, err := c.catalog.ListAll(ctx)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrCatalogUnavailable)
	}
	c.index.Rebuild(resources)

	if err := c.notifier.NotifyChanged(ctx); err != nil {
		// the local index is already current; peers catch up on their refresh tick
		c.logger.Warn("failed to broadcast catalog change", "error", err)
	}

	c.logger.Info("search index rebuilt", "resources", len(resources))
	return len(resources), nil
}
