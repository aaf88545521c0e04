package components

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/catalogevents"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/search"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
	"court-booking/internal/worker/catalogsync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// InstanceID tells this process's catalog events apart from its peers'.
type InstanceID string

var SearchModule = fx.Module("search",
	fx.Provide(
		search.NewIndex,
		func(i *search.Index) queries.SearchIndex { return i },
		func(i *search.Index) commands.IndexRebuilder { return i },
		func() InstanceID { return InstanceID(uuid.NewString()) },
		NewCatalogNotifier,
		NewCatalogSyncer,
	),
	fx.Invoke(func(*catalogsync.Syncer) {}),
)

func NewCatalogNotifier(client *redis.Client, cfg config.Config, id InstanceID, clk clock.Clock) shared.CatalogNotifier {
	if client == nil {
		return catalogevents.NoopNotifier{}
	}
	return catalogevents.NewRedisNotifier(client, cfg.Redis.CatalogChannel, string(id), clk)
}

func NewCatalogSyncer(
	lc fx.Lifecycle,
	cfg config.Config,
	catalog shared.ResourceCatalog,
	index *search.Index,
	client *redis.Client,
	id InstanceID,
	logger *slog.Logger,
) *catalogsync.Syncer {
	ctx, cancel := context.WithCancel(context.Background())

	var changes <-chan struct{}
	if client != nil {
		changes = catalogevents.NewListener(client, cfg.Redis.CatalogChannel, string(id), logger).Changes(ctx)
	}
	syncer := catalogsync.New(catalog, index, changes, cfg.Search.RefreshInterval, logger)

	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			// serve searches from a full index as soon as the server starts
			if _, err := syncer.Refresh(startCtx); err != nil {
				logger.Error("initial search index build failed", "error", err)
			}
			go func() {
				defer close(done)
				syncer.Start(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return syncer
}
