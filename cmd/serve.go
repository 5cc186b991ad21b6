package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avillaseca/redlab/internal/api"
	"github.com/avillaseca/redlab/internal/content"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content-sync HTTP API",
	Long:  "Exposes the NotebookLM content pipeline over HTTP: cached content updates and ad-hoc notebook queries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		addr, _ := cmd.Flags().GetString("addr")
		script, _ := cmd.Flags().GetString("script")
		if script == "" {
			script = os.Getenv("NOTEBOOKLM_SCRIPT")
		}
		if script == "" {
			return errors.New("no bridge script configured: pass --script or set NOTEBOOKLM_SCRIPT")
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		svc := content.NewService(content.NewScriptRunner(script), logger)
		server := api.NewServer(svc)

		httpServer := &http.Server{
			Addr:              addr,
			Handler:           server.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("content API listening", "addr", addr, "script", script)
			errCh <- httpServer.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve: %w", err)
		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Address to listen on")
	serveCmd.Flags().String("script", "", "Path to the NotebookLM bridge script (overrides NOTEBOOKLM_SCRIPT)")
}
