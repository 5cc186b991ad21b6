package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// stubRunner returns canned outputs in FIFO order.
type stubRunner struct {
	outputs [][]byte
	errs    []error
	calls   [][]string
}

func (r *stubRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	r.calls = append(r.calls, args)
	if len(r.outputs) == 0 {
		return nil, errors.New("no canned output")
	}
	out, err := r.outputs[0], r.errs[0]
	r.outputs = r.outputs[1:]
	r.errs = r.errs[1:]
	return out, err
}

func (r *stubRunner) add(out string, err error) {
	r.outputs = append(r.outputs, []byte(out))
	r.errs = append(r.errs, err)
}

const goodPayload = `{
	"success": true,
	"timestamp": "2026-08-28T10:00:00Z",
	"updates": {
		"threats": {"summary": "New agent hijacking campaign observed.", "citations": [{"source": "AISec Weekly"}]},
		"research": {"summary": "Paper on context inversion defenses.", "citations": []}
	}
}`

func TestService_FetchAndCache(t *testing.T) {
	runner := &stubRunner{}
	runner.add(goodPayload, nil)
	svc := NewService(runner, nil)

	first := svc.Latest(context.Background(), false)
	if !first.Success || first.Cached {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if first.Updates == nil || first.Updates.Threats == nil {
		t.Fatal("missing threats update")
	}

	// Second call within the TTL hits the cache, no new script run.
	second := svc.Latest(context.Background(), false)
	if !second.Cached {
		t.Fatal("expected cached result")
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 script run, got %d", len(runner.calls))
	}
}

func TestService_ForceRefreshBypassesCache(t *testing.T) {
	runner := &stubRunner{}
	runner.add(goodPayload, nil)
	runner.add(goodPayload, nil)
	svc := NewService(runner, nil)

	svc.Latest(context.Background(), false)
	refreshed := svc.Latest(context.Background(), true)
	if refreshed.Cached {
		t.Fatal("forced refresh must not serve from cache")
	}
	if len(runner.calls) != 2 {
		t.Fatalf("expected 2 script runs, got %d", len(runner.calls))
	}
}

func TestService_FallsBackToStaleCacheOnFetchError(t *testing.T) {
	runner := &stubRunner{}
	runner.add(goodPayload, nil)
	runner.add(`{"success": false, "error": "notebook unavailable"}`, nil)
	svc := NewService(runner, nil)

	svc.Latest(context.Background(), false)
	result := svc.Latest(context.Background(), true)

	if !result.Success || !result.Cached {
		t.Fatalf("expected stale cached content, got %+v", result)
	}
	if !strings.Contains(result.Warning, "fetch error") {
		t.Fatalf("expected fetch error warning, got %q", result.Warning)
	}
	if result.Error != "notebook unavailable" {
		t.Fatalf("expected original error preserved, got %q", result.Error)
	}
}

func TestService_FallsBackToStaleCacheOnRunnerError(t *testing.T) {
	runner := &stubRunner{}
	runner.add(goodPayload, nil)
	runner.add("", errors.New("spawn script: python3 not found"))
	svc := NewService(runner, nil)

	svc.Latest(context.Background(), false)
	result := svc.Latest(context.Background(), true)

	if !result.Success || !result.Cached {
		t.Fatalf("expected stale cached content, got %+v", result)
	}
	if !strings.Contains(result.Warning, "system error") {
		t.Fatalf("expected system error warning, got %q", result.Warning)
	}
}

func TestService_FailureWithoutCacheReportsError(t *testing.T) {
	runner := &stubRunner{}
	runner.add("", errors.New("boom"))
	svc := NewService(runner, nil)

	result := svc.Latest(context.Background(), false)
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error == "" || result.Timestamp == "" {
		t.Fatalf("expected error and timestamp, got %+v", result)
	}
}

func TestService_MalformedOutputTreatedAsSystemError(t *testing.T) {
	runner := &stubRunner{}
	runner.add("this is not json", nil)
	svc := NewService(runner, nil)

	result := svc.Latest(context.Background(), false)
	if result.Success {
		t.Fatal("expected failure on malformed output")
	}
	if !strings.Contains(result.Error, "parse") {
		t.Fatalf("expected parse error, got %q", result.Error)
	}
}

func TestService_QueryPassesArgs(t *testing.T) {
	runner := &stubRunner{}
	runner.add(`{"success": true, "content": ["answer"]}`, nil)
	svc := NewService(runner, nil)

	result := svc.Query(context.Background(), "what changed this week?", "nb-42")
	if !result.Success {
		t.Fatalf("unexpected result: %+v", result)
	}

	args := runner.calls[0]
	want := []string{"--query", "what changed this week?", "--notebook", "nb-42"}
	if len(args) != len(want) {
		t.Fatalf("args %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args %v, want %v", args, want)
		}
	}
}

func TestCache_ExpiryAndStaleAccess(t *testing.T) {
	c := NewCache(time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Put(ContentUpdate{Success: true, Timestamp: "t"})

	if _, age, ok := c.Get(); !ok || age != 0 {
		t.Fatalf("expected fresh entry, ok=%v age=%v", ok, age)
	}

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, _, ok := c.Get(); ok {
		t.Fatal("expected entry expired")
	}
	if _, ok := c.Stale(); !ok {
		t.Fatal("expired entry must stay reachable via Stale")
	}

	c.Invalidate()
	if _, ok := c.Stale(); ok {
		t.Fatal("invalidate must drop the entry")
	}
}
