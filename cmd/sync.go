package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avillaseca/redlab/internal/content"
	"github.com/avillaseca/redlab/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull fresh learning content from the research notebook",
	Long:  "Runs the NotebookLM bridge script once and stores the per-module content updates for the learning modules screen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		script, _ := cmd.Flags().GetString("script")
		if script == "" {
			script = os.Getenv("NOTEBOOKLM_SCRIPT")
		}
		if script == "" {
			return errors.New("no bridge script configured: pass --script or set NOTEBOOKLM_SCRIPT")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		svc := content.NewService(content.NewScriptRunner(script), logger)

		update := svc.Latest(context.Background(), true)
		if !update.Success && update.Warning == "" {
			return fmt.Errorf("content fetch failed: %s", update.Error)
		}
		if update.Warning != "" {
			fmt.Fprintln(os.Stderr, "warning:", update.Warning)
		}

		moduleUpdates := content.ExtractModuleUpdates(update)
		raw, err := json.Marshal(moduleUpdates)
		if err != nil {
			return fmt.Errorf("encode updates: %w", err)
		}
		if err := st.StateRepo().Put(context.Background(), store.KeyContentUpdates, string(raw)); err != nil {
			return fmt.Errorf("store updates: %w", err)
		}

		fmt.Printf("Synced %d module updates (as of %s).\n",
			len(moduleUpdates), content.TimeAgo(update.Timestamp))
		return nil
	},
}

func init() {
	syncCmd.Flags().String("script", "", "Path to the NotebookLM bridge script (overrides NOTEBOOKLM_SCRIPT)")
}
