package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/vmesquit/mesapos/internal/app"
	"github.com/vmesquit/mesapos/internal/config"
	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	"github.com/vmesquit/mesapos/internal/storage/postgres"
	"github.com/vmesquit/mesapos/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:       ":0",
		DatabaseURI:      "postgres://stub",
		TokenSecret:      "secret",
		TokenTTL:         time.Hour,
		AuthStrategy:     "jwt",
		WorkerPoolSize:   1,
		MetricsQueueSize: 1,
		ShutdownTimeout:  time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	waiterRepo := &test.WaiterRepositoryStub{Waiters: []model.Waiter{{ID: 7, RestaurantID: 1, PinCode: "1234"}}}
	restaurantRepo := &test.RestaurantRepositoryStub{}
	tableRepo := &test.TableRepositoryStub{}
	menuRepo := &test.MenuRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	metricRepo := &test.MetricRepositoryStub{}

	var facade *app.PosFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.WaiterRepository(waiterRepo)),
			fx.Replace(repository.RestaurantRepository(restaurantRepo)),
			fx.Replace(repository.TableRepository(tableRepo)),
			fx.Replace(repository.MenuRepository(menuRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.MetricRepository(metricRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected pos facade instance")
	}
}
