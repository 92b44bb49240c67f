package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/invoicedash/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			Invoice Dashboard API
//	@version		1.0
//	@description	Invoice and account mutations for the dashboard

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		// zap may not be configured yet when startup fails early
		log.Error().Err(err).Msg("invoice dashboard stopped")
		zap.L().Fatal("invoice dashboard stopped", zap.Error(err))
	}
	zap.L().Info("invoice dashboard shut down cleanly")
}

// run boots the dashboard and blocks until a shutdown signal drains the
// HTTP server, the view cache and the database pool.
func run(ctx context.Context, stop context.CancelFunc) error {
	dashboard := app.New()
	if err := dashboard.Start(ctx); err != nil {
		return err
	}
	zap.L().Info("invoice dashboard is serving")
	return dashboard.Wait(ctx, stop)
}
