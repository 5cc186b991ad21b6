// Package learningpath builds personalized study plans from assessment
// results and holds the learning module catalog.
package learningpath

import "github.com/avillaseca/redlab/internal/assessment"

// Difficulty orders modules within a category.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// rank returns the sort position of a difficulty.
func (d Difficulty) rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 3
	}
}

// Module is a single learning unit in the catalog.
type Module struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      assessment.Category `json:"category"`
	EstimatedTime int                 `json:"estimatedTime"` // minutes
	Difficulty    Difficulty          `json:"difficulty"`
	Prerequisites []string            `json:"prerequisites"`
}

// Modules is the full module catalog, two modules per category.
var Modules = []Module{
	{
		ID:            "ai-sec-101",
		Title:         "AI Security Fundamentals",
		Description:   "Introduction to risks and attack vectors in AI systems",
		Category:      assessment.CategoryFundamentals,
		EstimatedTime: 15,
		Difficulty:    DifficultyBeginner,
		Prerequisites: []string{},
	},
	{
		ID:            "ai-sec-201",
		Title:         "Secure ML Architectures",
		Description:   "Designing ML systems resistant to attacks",
		Category:      assessment.CategoryFundamentals,
		EstimatedTime: 30,
		Difficulty:    DifficultyIntermediate,
		Prerequisites: []string{"ai-sec-101"},
	},
	{
		ID:            "prompt-101",
		Title:         "Introduction to Prompt Injection",
		Description:   "Basic concepts and examples of prompt injection attacks",
		Category:      assessment.CategoryPromptInjection,
		EstimatedTime: 20,
		Difficulty:    DifficultyBeginner,
		Prerequisites: []string{},
	},
	{
		ID:            "prompt-201",
		Title:         "Defenses Against Prompt Injection",
		Description:   "Techniques and best practices to mitigate prompt injection",
		Category:      assessment.CategoryPromptInjection,
		EstimatedTime: 35,
		Difficulty:    DifficultyAdvanced,
		Prerequisites: []string{"prompt-101"},
	},
	{
		ID:            "safety-101",
		Title:         "AI Alignment Concepts",
		Description:   "RLHF, constitutional AI and alignment techniques",
		Category:      assessment.CategoryModelSafety,
		EstimatedTime: 25,
		Difficulty:    DifficultyIntermediate,
		Prerequisites: []string{},
	},
	{
		ID:            "safety-201",
		Title:         "Model Red Teaming",
		Description:   "Methodologies for evaluating adversarial behaviors in LLMs",
		Category:      assessment.CategoryModelSafety,
		EstimatedTime: 40,
		Difficulty:    DifficultyAdvanced,
		Prerequisites: []string{"safety-101"},
	},
	{
		ID:            "threat-101",
		Title:         "Threat Modeling for AI",
		Description:   "Adapting STRIDE and PASTA for AI systems",
		Category:      assessment.CategoryThreatModeling,
		EstimatedTime: 30,
		Difficulty:    DifficultyIntermediate,
		Prerequisites: []string{},
	},
	{
		ID:            "threat-201",
		Title:         "Security of Autonomous AI Agents",
		Description:   "Agent-specific threats and secure architectures for agentic AI",
		Category:      assessment.CategoryThreatModeling,
		EstimatedTime: 45,
		Difficulty:    DifficultyAdvanced,
		Prerequisites: []string{"threat-101"},
	},
	{
		ID:            "gov-101",
		Title:         "Introduction to AI Governance",
		Description:   "Frameworks and regulations (EU AI Act, NIST AI RMF)",
		Category:      assessment.CategoryGovernance,
		EstimatedTime: 20,
		Difficulty:    DifficultyBeginner,
		Prerequisites: []string{},
	},
	{
		ID:            "gov-201",
		Title:         "Implementing AI Compliance",
		Description:   "A complete AI governance and audit program",
		Category:      assessment.CategoryGovernance,
		EstimatedTime: 50,
		Difficulty:    DifficultyAdvanced,
		Prerequisites: []string{"gov-101"},
	},
}

// ModuleByID returns the module with the given ID, or nil if unknown.
func ModuleByID(id string) *Module {
	for i := range Modules {
		if Modules[i].ID == id {
			return &Modules[i]
		}
	}
	return nil
}
