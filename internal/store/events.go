package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (
			provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := `
		SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, request_body, response_body
		FROM llm_events`
	var args []any

	if opts.Purpose != "" {
		q += " WHERE purpose = ?"
		args = append(args, opts.Purpose)
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, request_body, response_body
		FROM llm_events WHERE id = ?`, id)

	ev, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageRow, error) {
	return r.usageGroupedBy(ctx, "purpose")
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]UsageRow, error) {
	return r.usageGroupedBy(ctx, "model")
}

func (r *eventRepo) usageGroupedBy(ctx context.Context, column string) ([]UsageRow, error) {
	// column is one of the fixed strings "purpose" or "model", never user input.
	q := fmt.Sprintf(`
		SELECT %s, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM llm_events
		GROUP BY %s
		ORDER BY SUM(input_tokens) + SUM(output_tokens) DESC`, column, column)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []UsageRow
	for rows.Next() {
		var u UsageRow
		if err := rows.Scan(&u.Key, &u.Requests, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMEvent, error) {
	var ev LLMEvent
	err := row.Scan(
		&ev.ID, &ev.CreatedAt, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success,
		&ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan llm event: %w", err)
	}
	return &ev, nil
}
