package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/studypulse/studypulse-be/internal/aiclient"
	"github.com/studypulse/studypulse-be/internal/config"
	"github.com/studypulse/studypulse-be/internal/database"
	"github.com/studypulse/studypulse-be/internal/handlers"
	"github.com/studypulse/studypulse-be/internal/pkg/logger"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the API gateway",
	RunE:  runAPI,
}

func runAPI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Env)
	defer func() { _ = log.Sync() }()

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatal("db init error", "error", err)
	}

	ai := aiclient.New(cfg.AIBaseURL, 10*time.Second)
	r := handlers.NewRouter(db, ai, log)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		log.Info("api gateway listening", "addr", cfg.Addr, "env", cfg.Env, "ai", cfg.AIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	return waitForShutdown(srv, log)
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains the server.
func waitForShutdown(srv *http.Server, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
