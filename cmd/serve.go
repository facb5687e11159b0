// Package cmd — serve command.
// Runs the HTTP event trigger: POST /scrape with {"url": ...} invokes the
// pipeline once and returns the invocation result.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docscrape/config"
	"github.com/gaurav-prasanna/docscrape/logging"
	"github.com/gaurav-prasanna/docscrape/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP scrape trigger",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	ctx := context.Background()

	p, closeStores, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStores()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(p, log),
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server shutdown complete")
	return nil
}
