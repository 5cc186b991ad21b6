package content

import (
	"strings"
	"testing"
	"time"
)

func TestExtractModuleUpdates_MapsCategoriesInOrder(t *testing.T) {
	update := ContentUpdate{
		Success:   true,
		Timestamp: "2026-08-28T10:00:00Z",
		Updates: &Updates{
			Threats:       &CategoryUpdate{Summary: "threats summary"},
			BestPractices: &CategoryUpdate{Summary: "practices summary", Citations: []Citation{{Source: "NIST"}}},
		},
	}

	got := ExtractModuleUpdates(update)
	if len(got) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(got))
	}
	if got[0].ModuleID != "threat-landscape" || got[0].Title != "Threats" {
		t.Fatalf("unexpected first update: %+v", got[0])
	}
	if got[1].ModuleID != "security-best-practices" || got[1].Title != "Best Practices" {
		t.Fatalf("unexpected second update: %+v", got[1])
	}
	if len(got[1].Sources) != 1 || got[1].Sources[0].Source != "NIST" {
		t.Fatalf("citations not carried over: %+v", got[1])
	}
}

func TestExtractModuleUpdates_FailureOrEmptyYieldsNothing(t *testing.T) {
	if got := ExtractModuleUpdates(ContentUpdate{Success: false}); got != nil {
		t.Fatalf("expected nil for failed update, got %v", got)
	}
	if got := ExtractModuleUpdates(ContentUpdate{Success: true}); got != nil {
		t.Fatalf("expected nil for update without payload, got %v", got)
	}
}

func TestFormatSummary_TruncatesLongText(t *testing.T) {
	short := CategoryUpdate{Summary: "short"}
	if FormatSummary(short) != "short" {
		t.Fatal("short summaries must pass through")
	}

	long := CategoryUpdate{Summary: strings.Repeat("a", 400)}
	got := FormatSummary(long)
	if len(got) != summaryMaxLength+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected truncation: len=%d", len(got))
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		ts   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-3 * time.Hour), "3 hours ago"},
		{now.Add(-49 * time.Hour), "2 days ago"},
	}
	for _, tc := range cases {
		if got := TimeAgo(tc.ts.Format(time.RFC3339)); got != tc.want {
			t.Errorf("TimeAgo(%v) = %q, want %q", tc.ts, got, tc.want)
		}
	}

	if got := TimeAgo("garbage"); got != "unknown" {
		t.Errorf("expected unknown for bad timestamp, got %q", got)
	}
}

func TestIsStale(t *testing.T) {
	fresh := time.Now().UTC().Add(-1 * time.Hour).Format(time.RFC3339)
	if IsStale(fresh) {
		t.Fatal("1 hour old content is not stale")
	}
	old := time.Now().UTC().Add(-25 * time.Hour).Format(time.RFC3339)
	if !IsStale(old) {
		t.Fatal("25 hour old content is stale")
	}
	if !IsStale("garbage") {
		t.Fatal("unparseable timestamps count as stale")
	}
}
