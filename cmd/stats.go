package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avillaseca/redlab/internal/levels"
	"github.com/avillaseca/redlab/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lab progress per level",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		attemptRepo := s.AttemptRepo()

		solved, err := attemptRepo.SolvedLevels(ctx)
		if err != nil {
			return fmt.Errorf("query solved levels: %w", err)
		}

		fmt.Printf("%-5s  %-22s  %-8s  %-8s  %s\n", "Level", "Name", "Attempts", "Solved", "Flag")
		fmt.Println(strings.Repeat("─", 76))

		totalAttempts := 0
		for _, level := range levels.Levels {
			attempts, err := attemptRepo.ByLevel(ctx, level.ID)
			if err != nil {
				return fmt.Errorf("query attempts for level %d: %w", level.ID, err)
			}
			totalAttempts += len(attempts)

			mark := "✗"
			flag := "(hidden)"
			if solved[level.ID] {
				mark = "✓"
				flag = level.Flag
			}
			fmt.Printf("%-5d  %-22s  %-8d  %-8s  %s\n",
				level.ID, level.Name, len(attempts), mark, flag)
		}

		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("Levels solved: %d/%d   Total attempts: %d\n",
			len(solved), levels.Count(), totalAttempts)
		return nil
	},
}
