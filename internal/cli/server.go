// filepath: internal/cli/server.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"appinfo/internal/api"
	"appinfo/internal/api/handlers"
	"appinfo/internal/config"
	"appinfo/internal/services"

	"github.com/sirupsen/logrus"
)

// runServer listens on the configured address and serves until ctx is done.
func runServer(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return serveOn(ctx, ln, cfg, log)
}

// serveOn serves on ln with graceful shutdown once ctx is done.
func serveOn(ctx context.Context, ln net.Listener, cfg *config.Config, log *logrus.Logger) error {
	// Service Initialization
	infoService := services.NewInfoService(cfg.App)
	h := handlers.NewHandlers(infoService)

	routerCtx, cancelRouter := context.WithCancel(context.Background())
	defer cancelRouter()

	srv := &http.Server{
		Handler:      api.SetupRouter(routerCtx, h, cfg, log),
		ReadTimeout:  cfg.Server.Timeouts.Read,
		WriteTimeout: cfg.Server.Timeouts.Write,
		IdleTimeout:  cfg.Server.Timeouts.Idle,
	}

	info := infoService.GetInfo()
	log.WithFields(logrus.Fields{
		"addr":        ln.Addr().String(),
		"name":        info.Name,
		"version":     info.Version,
		"environment": info.Environment,
		"rate_limit":  cfg.Server.RateLimit.Enabled,
	}).Info("Server starting")

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err == nil {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeouts.Shutdown)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server exiting")
	return nil
}
