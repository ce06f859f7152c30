package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quangtran88/vnscreener/internal/api"
	"github.com/quangtran88/vnscreener/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API and WebSocket server.

Endpoints:
  GET  /health                 - Health check
  GET  /api/screener/quant     - Run a screening pass
  GET  /api/tickers            - Candidate universe
  GET  /api/history/{ticker}   - Daily price history
  WS   /ws                     - Live quote stream

Example:
  go run ./cmd/screener api
  go run ./cmd/screener api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== vnscreener API Server ===")

	deps, err := buildStack()
	if err != nil {
		return err
	}
	log := deps.log

	if apiPort != "" {
		deps.cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port": deps.cfg.Port,
		"env":  deps.cfg.Env,
	}).Info("Initializing API server")

	screenerHandler := handlers.NewScreenerHandler(deps.orchestrator, log)
	marketHandler := handlers.NewMarketHandler(deps.gateway, log)
	quotes := api.NewQuoteHub(deps.gateway, 15*time.Second, log)

	router := api.NewRouter(screenerHandler, marketHandler, quotes, log)
	server := api.New(deps.cfg, log, router)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go quotes.Run(hubCtx)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", deps.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	hubCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
