package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vmesquit/mesapos/internal/server/http/handlers"
	"github.com/vmesquit/mesapos/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PosFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	tableHandler := handlers.NewTableHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api/v1")
	api.POST("/waiters/auth", authHandler.AuthenticateWaiter)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/orders", orderHandler.Create)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.GET("/orders", orderHandler.List)
	protected.GET("/orders/compact", orderHandler.ListCompact)
	protected.GET("/orders/history", orderHandler.History)
	protected.GET("/orders/items/history", orderHandler.ItemsHistory)
	protected.GET("/orders/code/:code", orderHandler.ByCode)
	protected.GET("/orders/customer/:customerId", orderHandler.ByCustomer)
	protected.GET("/orders/temporary-customer/:temporaryCustomerId", orderHandler.ByTemporaryCustomer)
	protected.POST("/orders/:id/confirm", orderHandler.Confirm)
	protected.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	protected.GET("/tables", tableHandler.List)
	protected.POST("/tables/:id/release", tableHandler.Release)
	protected.POST("/tables/transfer", tableHandler.Transfer)
	protected.GET("/reports/daily-metrics", reportHandler.DailyMetrics)
	protected.GET("/reports/sales-by-product", reportHandler.SalesByProduct)

	return engine
}
