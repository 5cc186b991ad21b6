package store

import (
	"context"
	"database/sql"
	"fmt"
)

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Record(ctx context.Context, a LabAttempt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lab_attempts (session_id, level_id, input, agent_output, solved)
		VALUES (?, ?, ?, ?, ?)`,
		a.SessionID, a.LevelID, a.Input, a.AgentOutput, a.Solved,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ByLevel(ctx context.Context, levelID int) ([]LabAttempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, session_id, level_id, input, agent_output, solved
		FROM lab_attempts
		WHERE level_id = ?
		ORDER BY id ASC`, levelID)
	if err != nil {
		return nil, fmt.Errorf("attempts by level: %w", err)
	}
	defer rows.Close()

	var out []LabAttempt
	for rows.Next() {
		var a LabAttempt
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.SessionID, &a.LevelID, &a.Input, &a.AgentOutput, &a.Solved); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attemptRepo) SolvedLevels(ctx context.Context) (map[int]bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT level_id FROM lab_attempts WHERE solved = 1`)
	if err != nil {
		return nil, fmt.Errorf("solved levels: %w", err)
	}
	defer rows.Close()

	solved := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan level id: %w", err)
		}
		solved[id] = true
	}
	return solved, rows.Err()
}
