package learningpath

import (
	"sort"

	"github.com/avillaseca/redlab/internal/assessment"
)

// Generate builds a study plan from assessment results. Only categories
// with an identified gap contribute modules, and the learner's current
// level decides how deep into the category's catalog the plan reaches.
func Generate(results []assessment.Result) []Module {
	var path []Module

	for _, result := range results {
		if !result.GapIdentified {
			continue
		}

		categoryModules := modulesFor(result.Category)

		switch result.Level {
		case assessment.LevelBeginner:
			// Everything, easiest first.
			sort.SliceStable(categoryModules, func(i, j int) bool {
				return categoryModules[i].Difficulty.rank() < categoryModules[j].Difficulty.rank()
			})
			path = append(path, categoryModules...)
		case assessment.LevelIntermediate:
			for _, m := range categoryModules {
				if m.Difficulty != DifficultyBeginner {
					path = append(path, m)
				}
			}
		case assessment.LevelAdvanced:
			for _, m := range categoryModules {
				if m.Difficulty == DifficultyAdvanced {
					path = append(path, m)
				}
			}
		case assessment.LevelExpert:
			// An expert with a flagged gap still gets no modules; the gap
			// threshold sits below the expert band so this cannot happen
			// with the current scoring, but the case stays explicit.
		}
	}

	return path
}

// TotalTime sums the estimated minutes of a path.
func TotalTime(path []Module) int {
	total := 0
	for _, m := range path {
		total += m.EstimatedTime
	}
	return total
}

func modulesFor(category assessment.Category) []Module {
	var out []Module
	for _, m := range Modules {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}
