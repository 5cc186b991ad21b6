package learningpath

import (
	"testing"

	"github.com/avillaseca/redlab/internal/assessment"
)

func result(category assessment.Category, level assessment.Level, gap bool) assessment.Result {
	return assessment.Result{Category: category, Level: level, GapIdentified: gap}
}

func ids(path []Module) []string {
	out := make([]string, len(path))
	for i, m := range path {
		out[i] = m.ID
	}
	return out
}

func TestGenerate_NoGapsYieldsEmptyPath(t *testing.T) {
	results := []assessment.Result{
		result(assessment.CategoryFundamentals, assessment.LevelExpert, false),
		result(assessment.CategoryPromptInjection, assessment.LevelAdvanced, false),
	}
	if path := Generate(results); len(path) != 0 {
		t.Fatalf("expected empty path, got %v", ids(path))
	}
}

func TestGenerate_BeginnerGetsFullCategorySortedByDifficulty(t *testing.T) {
	results := []assessment.Result{
		result(assessment.CategoryFundamentals, assessment.LevelBeginner, true),
	}
	path := Generate(results)
	got := ids(path)
	want := []string{"ai-sec-101", "ai-sec-201"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestGenerate_IntermediateSkipsBeginnerModules(t *testing.T) {
	results := []assessment.Result{
		result(assessment.CategoryPromptInjection, assessment.LevelIntermediate, true),
	}
	path := Generate(results)
	for _, m := range path {
		if m.Difficulty == DifficultyBeginner {
			t.Errorf("beginner module %s in intermediate path", m.ID)
		}
	}
	if len(path) != 1 || path[0].ID != "prompt-201" {
		t.Fatalf("unexpected path: %v", ids(path))
	}
}

func TestGenerate_AdvancedGetsOnlyAdvancedModules(t *testing.T) {
	results := []assessment.Result{
		result(assessment.CategoryModelSafety, assessment.LevelAdvanced, true),
	}
	path := Generate(results)
	if len(path) != 1 || path[0].ID != "safety-201" {
		t.Fatalf("unexpected path: %v", ids(path))
	}
}

func TestGenerate_ExpertGapYieldsNothing(t *testing.T) {
	results := []assessment.Result{
		result(assessment.CategoryGovernance, assessment.LevelExpert, true),
	}
	if path := Generate(results); len(path) != 0 {
		t.Fatalf("expected empty path for expert, got %v", ids(path))
	}
}

func TestGenerate_MultipleGapsPreserveResultOrder(t *testing.T) {
	results := []assessment.Result{
		result(assessment.CategoryThreatModeling, assessment.LevelBeginner, true),
		result(assessment.CategoryFundamentals, assessment.LevelAdvanced, true),
	}
	got := ids(Generate(results))
	want := []string{"threat-101", "threat-201", "ai-sec-201"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTotalTime(t *testing.T) {
	path := []Module{*ModuleByID("ai-sec-101"), *ModuleByID("gov-201")}
	if got := TotalTime(path); got != 65 {
		t.Fatalf("total time %d, want 65", got)
	}
}

func TestCatalog_PrerequisitesExist(t *testing.T) {
	for _, m := range Modules {
		for _, pre := range m.Prerequisites {
			if ModuleByID(pre) == nil {
				t.Errorf("module %s has unknown prerequisite %q", m.ID, pre)
			}
		}
	}
}
