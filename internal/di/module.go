package di

import (
	"go.uber.org/fx"

	"github.com/vmesquit/mesapos/internal/app"
	"github.com/vmesquit/mesapos/internal/config"
	"github.com/vmesquit/mesapos/internal/events"
	"github.com/vmesquit/mesapos/internal/logger"
	"github.com/vmesquit/mesapos/internal/pkg/auth"
	"github.com/vmesquit/mesapos/internal/server/http/handlers"
	"github.com/vmesquit/mesapos/internal/server/http/router"
	"github.com/vmesquit/mesapos/internal/storage/postgres"
	"github.com/vmesquit/mesapos/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(f *app.PosFacade) handlers.PosFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
