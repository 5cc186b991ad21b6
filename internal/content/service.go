package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Service coordinates the bridge script and the TTL cache, always
// preferring to serve something over failing hard.
type Service struct {
	runner Runner
	cache  *Cache
	logger *slog.Logger

	now func() time.Time
}

// NewService creates a Service around the given runner.
func NewService(runner Runner, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		runner: runner,
		cache:  NewCache(DefaultTTL),
		logger: logger,
		now:    time.Now,
	}
}

// Latest returns the most recent content update. A fresh cache entry is
// served as-is unless forceRefresh is set. When a fetch fails and an
// older result exists, the stale result is served with a warning instead
// of surfacing the failure.
func (s *Service) Latest(ctx context.Context, forceRefresh bool) ContentUpdate {
	if !forceRefresh {
		if cached, age, ok := s.cache.Get(); ok {
			cached.Cached = true
			cached.CacheAge = int(age.Seconds())
			return cached
		}
	}

	out, err := s.runner.Run(ctx)
	if err != nil {
		s.logger.Warn("content fetch failed", "error", err)
		return s.fallback("Using cached content due to system error", err.Error())
	}

	var update ContentUpdate
	if err := json.Unmarshal(out, &update); err != nil {
		s.logger.Warn("content parse failed", "error", err)
		return s.fallback("Using cached content due to system error", "failed to parse script output: "+err.Error())
	}

	if !update.Success {
		return s.fallback("Using cached content due to fetch error", update.Error)
	}

	update.Cached = false
	s.cache.Put(update)
	return update
}

// Invalidate drops the cached content.
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}

// fallback serves the stale cache entry with a warning, or a bare failure
// when nothing has ever been fetched.
func (s *Service) fallback(warning, errMsg string) ContentUpdate {
	if stale, ok := s.cache.Stale(); ok {
		stale.Cached = true
		stale.Warning = warning
		stale.Error = errMsg
		return stale
	}
	return ContentUpdate{
		Success:   false,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Error:     errMsg,
	}
}

// Query runs an ad-hoc question against the notebook.
func (s *Service) Query(ctx context.Context, query, notebookID string) QueryResult {
	args := []string{"--query", query}
	if notebookID != "" {
		args = append(args, "--notebook", notebookID)
	}

	out, err := s.runner.Run(ctx, args...)
	if err != nil {
		return QueryResult{Success: false, Error: err.Error()}
	}

	var result QueryResult
	if err := json.Unmarshal(out, &result); err != nil {
		return QueryResult{Success: false, Error: "failed to parse response: " + err.Error()}
	}
	return result
}
