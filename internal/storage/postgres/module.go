package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/vmesquit/mesapos/internal/config"
	"github.com/vmesquit/mesapos/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.RestaurantRepository { return s.Restaurants() },
		func(s *Storage) repository.WaiterRepository { return s.Waiters() },
		func(s *Storage) repository.TableRepository { return s.Tables() },
		func(s *Storage) repository.MenuRepository { return s.Menu() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.MetricRepository { return s.Metrics() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
