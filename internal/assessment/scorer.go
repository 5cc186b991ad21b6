package assessment

// gapThreshold is the percentage below which a category counts as a
// skill gap.
const gapThreshold = 70.0

// CalculateResults scores the questionnaire. answers maps question ID to
// the chosen option's score; unanswered questions score zero. The result
// slice carries exactly one entry per category, in catalog order.
func CalculateResults(answers map[string]int) []Result {
	results := make([]Result, 0, len(Categories()))

	for _, category := range Categories() {
		total := 0
		count := 0
		for _, q := range Questions {
			if q.Category != category {
				continue
			}
			total += answers[q.ID]
			count++
		}

		maxScore := count * 10
		percentage := float64(total) / float64(maxScore) * 100

		results = append(results, Result{
			Category:      category,
			Score:         total,
			MaxScore:      maxScore,
			Percentage:    percentage,
			Level:         levelFor(percentage),
			GapIdentified: percentage < gapThreshold,
		})
	}

	return results
}

// levelFor maps a percentage to a proficiency band. Boundaries are
// inclusive on the lower end: 25 is intermediate, 50 advanced, 75 expert.
func levelFor(percentage float64) Level {
	switch {
	case percentage < 25:
		return LevelBeginner
	case percentage < 50:
		return LevelIntermediate
	case percentage < 75:
		return LevelAdvanced
	default:
		return LevelExpert
	}
}
