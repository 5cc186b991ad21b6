// Package content manages live learning content pulled from a NotebookLM
// research notebook through a Python bridge script.
package content

// Citation points at a source document backing a content summary.
type Citation struct {
	Source  string `json:"source"`
	URL     string `json:"url,omitempty"`
	Excerpt string `json:"excerpt,omitempty"`
}

// CategoryUpdate is the fresh summary for one content category.
type CategoryUpdate struct {
	Summary   string     `json:"summary"`
	Citations []Citation `json:"citations"`
}

// Updates groups the four fixed content categories.
type Updates struct {
	Threats         *CategoryUpdate `json:"threats,omitempty"`
	Vulnerabilities *CategoryUpdate `json:"vulnerabilities,omitempty"`
	BestPractices   *CategoryUpdate `json:"best_practices,omitempty"`
	Research        *CategoryUpdate `json:"research,omitempty"`
}

// ContentUpdate is the full payload returned by the bridge script, plus
// cache metadata added on the way out.
type ContentUpdate struct {
	Success   bool     `json:"success"`
	Timestamp string   `json:"timestamp"`
	Updates   *Updates `json:"updates,omitempty"`
	Error     string   `json:"error,omitempty"`
	Cached    bool     `json:"cached"`
	CacheAge  int      `json:"cacheAge,omitempty"` // seconds
	Warning   string   `json:"warning,omitempty"`
}

// QueryResult is the payload of an ad-hoc notebook query.
type QueryResult struct {
	Success   bool   `json:"success"`
	Content   []any  `json:"content,omitempty"`
	Citations []any  `json:"citations,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ModuleContentUpdate is a content update mapped onto a learning module.
type ModuleContentUpdate struct {
	ModuleID   string     `json:"moduleId"`
	Title      string     `json:"title"`
	NewContent string     `json:"newContent"`
	Sources    []Citation `json:"sources"`
	Timestamp  string     `json:"timestamp"`
}
