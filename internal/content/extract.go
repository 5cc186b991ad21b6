package content

import (
	"fmt"
	"strings"
	"time"
)

// summaryMaxLength caps a summary shown in list views.
const summaryMaxLength = 300

// staleAfter is the age past which content counts as outdated.
const staleAfter = 24 * time.Hour

// categoryModules maps content categories to the virtual module IDs the
// learn section renders them under, in display order.
var categoryModules = []struct {
	category string
	moduleID string
}{
	{"threats", "threat-landscape"},
	{"vulnerabilities", "vulnerability-management"},
	{"best_practices", "security-best-practices"},
	{"research", "research-insights"},
}

// ExtractModuleUpdates converts a content update into per-module updates,
// skipping categories with no summary.
func ExtractModuleUpdates(update ContentUpdate) []ModuleContentUpdate {
	if !update.Success || update.Updates == nil {
		return nil
	}

	byCategory := map[string]*CategoryUpdate{
		"threats":         update.Updates.Threats,
		"vulnerabilities": update.Updates.Vulnerabilities,
		"best_practices":  update.Updates.BestPractices,
		"research":        update.Updates.Research,
	}

	var out []ModuleContentUpdate
	for _, cm := range categoryModules {
		cu := byCategory[cm.category]
		if cu == nil || cu.Summary == "" {
			continue
		}
		out = append(out, ModuleContentUpdate{
			ModuleID:   cm.moduleID,
			Title:      formatCategoryTitle(cm.category),
			NewContent: cu.Summary,
			Sources:    cu.Citations,
			Timestamp:  update.Timestamp,
		})
	}
	return out
}

// FormatSummary truncates a long summary for display.
func FormatSummary(update CategoryUpdate) string {
	if len(update.Summary) <= summaryMaxLength {
		return update.Summary
	}
	return update.Summary[:summaryMaxLength] + "..."
}

// TimeAgo renders a timestamp as a coarse relative duration.
func TimeAgo(timestamp string) string {
	then, err := parseTimestamp(timestamp)
	if err != nil {
		return "unknown"
	}

	seconds := int(time.Since(then).Seconds())
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	default:
		return fmt.Sprintf("%d days ago", seconds/86400)
	}
}

// IsStale reports whether the content is older than 24 hours.
func IsStale(timestamp string) bool {
	then, err := parseTimestamp(timestamp)
	if err != nil {
		return true
	}
	return time.Since(then) > staleAfter
}

func parseTimestamp(ts string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", ts)
}

func formatCategoryTitle(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
