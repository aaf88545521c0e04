package components

import (
	"court-booking/internal/infra/memstore"
	"court-booking/internal/infra/repository"
	"court-booking/internal/infra/uow"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Catalog    shared.ResourceCatalog
}

func NewPersistence(cfg config.Config, pool *pgxpool.Pool) (Persistence, error) {
	if cfg.Booking.UsesMemoryStore() {
		catalog, err := memstore.LoadCatalog(cfg.Booking.CatalogSeed)
		if err != nil {
			return Persistence{}, err
		}
		return Persistence{UnitOfWork: memstore.NewStore(), Catalog: catalog}, nil
	}

	if pool == nil {
		return Persistence{}, errs.New("postgres store selected but no connection pool is available")
	}
	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool),
		Catalog:    repository.NewResourceRepository(pool),
	}, nil
}
