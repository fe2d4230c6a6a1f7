package commands

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/studypulse/studypulse-be/internal/config"
	"github.com/studypulse/studypulse-be/internal/insights"
	"github.com/studypulse/studypulse-be/internal/pkg/logger"
	"github.com/studypulse/studypulse-be/internal/pkg/middleware"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Run the session insight service",
	RunE:  runInsights,
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Env)
	defer func() { _ = log.Sync() }()

	mux := insights.NewMux(log)

	// chain: request ID -> recovery -> rate limit -> CORS -> mux
	handler := middleware.RequestID(
		middleware.Recovery(log)(
			middleware.RateLimit(middleware.CORS(mux), middleware.RemoteKey)))

	srv := &http.Server{Addr: cfg.InsightsAddr, Handler: handler}
	go func() {
		log.Info("insight service listening", "addr", cfg.InsightsAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	return waitForShutdown(srv, log)
}
