package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "checklist_api/docs"
	"checklist_api/internal/config"
	"checklist_api/internal/handlers"
	"checklist_api/internal/logger"
	"checklist_api/internal/repository"
	"checklist_api/internal/repository/db"
	"checklist_api/internal/server"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @title                       Checklist API
// @version                     1.0
// @description                 Users, checklists and checklist items behind bearer-token auth.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token from /login.
func main() {
	log := logger.Get(logger.InfoLevel)

	cfg, err := config.Load("configs")
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log.SetLevel(cfg.LogLevel)
	if log.Level() != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	tokens, err := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalw("failed to init token manager", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	serveErr := runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, serveErr, log)
}

// runHTTPServer serves in the background; the returned channel yields the
// listener error, or closes on a clean stop.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Infow("http server listening", "addr", server.Addr(port))
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			errCh <- err
		}
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a listener failure.
func waitForShutdown(srv *server.Server, serveErr <-chan error, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok && err != nil {
			log.Fatalw("error starting server", "err", err)
		}
		return
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
