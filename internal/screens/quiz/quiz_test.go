package quiz

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/avillaseca/redlab/internal/assessment"
	"github.com/avillaseca/redlab/internal/store"
)

// fakeStateRepo implements store.StateRepo in memory.
type fakeStateRepo struct {
	values map[string]string
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{values: make(map[string]string)}
}

func (f *fakeStateRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStateRepo) Put(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeStateRepo) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestQuiz_AnswerAllQuestionsScoresAndPersists(t *testing.T) {
	repo := newFakeStateRepo()
	q := New(repo)

	for range assessment.Questions {
		if q.done {
			t.Fatal("quiz finished before all questions were answered")
		}
		q.Update(enter())
	}

	if !q.done {
		t.Fatal("quiz not done after answering every question")
	}
	if got, want := len(q.results), len(assessment.Categories()); got != want {
		t.Fatalf("got %d results, want %d", got, want)
	}

	raw, ok := repo.values[store.KeyAssessmentResults]
	if !ok {
		t.Fatal("assessment results not persisted")
	}
	var stored []assessment.Result
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored results not valid JSON: %v", err)
	}
	if len(stored) != len(q.results) {
		t.Fatalf("stored %d results, want %d", len(stored), len(q.results))
	}

	if _, ok := repo.values[store.KeyLearningPath]; !ok {
		t.Fatal("learning path not persisted")
	}
}

func TestQuiz_DigitSelectsAndAnswers(t *testing.T) {
	q := New(newFakeStateRepo())

	question := assessment.Questions[0]
	q.Update(keyPress('2'))

	if q.index != 1 {
		t.Fatalf("index = %d after digit answer, want 1", q.index)
	}
	if got, want := q.answers[question.ID], question.Options[1].Score; got != want {
		t.Errorf("recorded score %d, want option 2's score %d", got, want)
	}
}

func TestQuiz_ArrowsMoveSelection(t *testing.T) {
	q := New(newFakeStateRepo())

	q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if q.selected != 1 {
		t.Fatalf("selected = %d after down, want 1", q.selected)
	}
	q.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	q.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if q.selected != 0 {
		t.Fatalf("selected = %d, want clamped to 0", q.selected)
	}
}

func TestQuiz_TopScoresProduceNoGaps(t *testing.T) {
	repo := newFakeStateRepo()
	q := New(repo)

	// Pick the highest scoring option for every question.
	for !q.done {
		question := assessment.Questions[q.index]
		best := 0
		for i, opt := range question.Options {
			if opt.Score > question.Options[best].Score {
				best = i
			}
		}
		q.selected = best
		q.Update(enter())
	}

	for _, r := range q.results {
		if r.GapIdentified {
			t.Errorf("category %q flagged as gap with top scores", r.Category)
		}
	}
	if len(q.path) != 0 {
		t.Errorf("learning path has %d modules, want none", len(q.path))
	}
}
