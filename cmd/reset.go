package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avillaseca/redlab/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Clears assessment results, the learning path and module completion. With --all, deletes the whole database including lab attempts and LLM events.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		all, _ := cmd.Flags().GetBool("all")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if !yes {
			target := "learner progress"
			if all {
				target = "ALL data including history"
			}
			fmt.Printf("This will erase %s in %s. Continue? [y/N] ", target, dbPath)
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if all {
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove database: %w", err)
			}
			fmt.Println("Database deleted.")
			return nil
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		stateRepo := s.StateRepo()
		for _, key := range []string{
			store.KeyAssessmentResults,
			store.KeyLearningPath,
			store.KeyCompletedModules,
			store.KeyContentUpdates,
		} {
			if err := stateRepo.Delete(ctx, key); err != nil {
				return fmt.Errorf("clear %s: %w", key, err)
			}
		}

		fmt.Println("Learner progress cleared. Lab attempt history kept; use --all to erase it.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	resetCmd.Flags().Bool("all", false, "Delete the whole database file")
}
