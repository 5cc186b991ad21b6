package modules

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/avillaseca/redlab/internal/content"
	"github.com/avillaseca/redlab/internal/learningpath"
	"github.com/avillaseca/redlab/internal/store"
)

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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// moduleIndex returns the catalog position of a module ID.
func moduleIndex(t *testing.T, id string) int {
	t.Helper()
	for i, m := range learningpath.Modules {
		if m.ID == id {
			return i
		}
	}
	t.Fatalf("module %q not in catalog", id)
	return -1
}

func TestModules_CompleteUnlockedModulePersists(t *testing.T) {
	repo := newFakeStateRepo()
	m := New(repo)

	// ai-sec-101 has no prerequisites.
	m.selected = moduleIndex(t, "ai-sec-101")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.detailMode {
		t.Fatal("enter did not open detail view")
	}

	m.Update(keyPress('c'))
	if !m.completed["ai-sec-101"] {
		t.Fatal("module not marked complete")
	}

	raw, ok := repo.values[store.KeyCompletedModules]
	if !ok {
		t.Fatal("completion not persisted")
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		t.Fatalf("stored completion not valid JSON: %v", err)
	}
	if len(ids) != 1 || ids[0] != "ai-sec-101" {
		t.Fatalf("stored ids = %v, want [ai-sec-101]", ids)
	}

	// Toggling again clears it.
	m.Update(keyPress('c'))
	if m.completed["ai-sec-101"] {
		t.Fatal("second toggle did not clear completion")
	}
}

func TestModules_LockedModuleCannotComplete(t *testing.T) {
	m := New(newFakeStateRepo())

	// ai-sec-201 requires ai-sec-101, which is not complete.
	m.selected = moduleIndex(t, "ai-sec-201")
	m.detailMode = true

	m.Update(keyPress('c'))
	if m.completed["ai-sec-201"] {
		t.Fatal("locked module was marked complete")
	}
}

func TestModules_LoadsPersistedStateAndUpdates(t *testing.T) {
	repo := newFakeStateRepo()
	repo.values[store.KeyCompletedModules] = `["prompt-101"]`

	updates := []content.ModuleContentUpdate{
		{ModuleID: "threat-landscape", Title: "Threat Landscape", NewContent: "New APT campaign targets agent tool use."},
	}
	raw, _ := json.Marshal(updates)
	repo.values[store.KeyContentUpdates] = string(raw)

	m := New(repo)

	if !m.completed["prompt-101"] {
		t.Error("persisted completion not loaded")
	}
	if _, ok := m.updates["threat-landscape"]; !ok {
		t.Error("synced content update not loaded")
	}
	if len(m.intel) != 1 {
		t.Errorf("intel has %d entries, want 1", len(m.intel))
	}
}
