// Package assessment implements the agentic AI security skills assessment:
// a scored questionnaire that places the learner on a proficiency level per
// category and flags skill gaps.
package assessment

// Category is a closed skill-category enumeration. The zero value is not
// a valid category.
type Category string

const (
	CategoryFundamentals    Category = "AI Security Fundamentals"
	CategoryPromptInjection Category = "Prompt Injection & Jailbreaking"
	CategoryModelSafety     Category = "Model Safety & Alignment"
	CategoryThreatModeling  Category = "Threat Modeling for AI"
	CategoryGovernance      Category = "AI Governance & Compliance"
)

// Categories returns the full category set in presentation order.
func Categories() []Category {
	return []Category{
		CategoryFundamentals,
		CategoryPromptInjection,
		CategoryModelSafety,
		CategoryThreatModeling,
		CategoryGovernance,
	}
}

// rank returns the presentation position of a category, or len(Categories())
// for an unknown value.
func (c Category) rank() int {
	for i, known := range Categories() {
		if c == known {
			return i
		}
	}
	return len(Categories())
}

// Level is the proficiency band derived from a category percentage.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Option is a single answer choice with its skill score.
type Option struct {
	Text  string
	Score int // 0-10, where 10 is expert level
}

// Question is one assessment question tied to a category.
type Question struct {
	ID       string
	Category Category
	Text     string
	Options  []Option
}

// Result is the scored outcome for one category.
type Result struct {
	Category      Category `json:"category"`
	Score         int      `json:"score"`
	MaxScore      int      `json:"maxScore"`
	Percentage    float64  `json:"percentage"`
	Level         Level    `json:"level"`
	GapIdentified bool     `json:"gapIdentified"`
}
