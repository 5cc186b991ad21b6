package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avillaseca/redlab/internal/app"
	"github.com/avillaseca/redlab/internal/llm"
	"github.com/avillaseca/redlab/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	_ = godotenv.Load()

	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		AttemptRepo: st.AttemptRepo(),
		StateRepo:   st.StateRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The injection lab will be unavailable.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
