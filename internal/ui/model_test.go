package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/nconklindev/hitlisten/internal/config"
	"github.com/nconklindev/hitlisten/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, path string) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Root = t.TempDir()
	return InitialModel(cfg, logging.Discard(), path)
}

func TestInitialState(t *testing.T) {
	tests := []struct {
		name string
		path string
		want state
	}{
		{"file picker without workbook", "", stateFilePicker},
		{"processing with workbook", "survey.xlsx", stateProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.path)
			if m.state != tt.want {
				t.Errorf("state = %v, want %v", m.state, tt.want)
			}
			if tt.path != "" && (m.progressChan == nil || m.resultChan == nil) {
				t.Error("expected channels to be created for a direct start")
			}
		})
	}
}

func TestAnalysisErrorShowsErrorView(t *testing.T) {
	m := newTestModel(t, "survey.xlsx")

	updated, _ := m.Update(analysisCompleteMsg{err: errors.New("expected 6, found 5 sub-tables")})
	got := updated.(Model)

	if got.state != stateError {
		t.Fatalf("state = %v, want stateError", got.state)
	}
	if !strings.Contains(got.View(), "found 5 sub-tables") {
		t.Errorf("error view does not show the cause:\n%s", got.View())
	}
}

func TestSavedMessageSetsStatus(t *testing.T) {
	m := newTestModel(t, "")
	m.state = stateReport

	updated, _ := m.Update(savedMsg{what: "Chart", err: errors.New("disk full")})
	if status := updated.(Model).status; !strings.Contains(status, "Chart failed") {
		t.Errorf("status = %q, want failure message", status)
	}

	updated, _ = m.Update(savedMsg{what: "Export", path: "data/processed/out.xlsx"})
	if status := updated.(Model).status; !strings.Contains(status, "out.xlsx") {
		t.Errorf("status = %q, want saved path", status)
	}
}

func TestQuitFromFilePicker(t *testing.T) {
	m := newTestModel(t, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
