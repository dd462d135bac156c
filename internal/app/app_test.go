package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathadv/mathadv/internal/puzzle"
	"github.com/mathadv/mathadv/internal/recommend"
	"github.com/mathadv/mathadv/internal/session"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	rec, err := recommend.New(recommend.NewMockClassifier(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return Options{
		Engine: &session.Engine{
			Generator:   puzzle.New(puzzle.DefaultConfig()),
			Recommender: rec,
		},
	}
}

func TestNewAppModel_StartsNewSession(t *testing.T) {
	m := newAppModel(testOptions(t))
	if m.router.Depth() != 1 {
		t.Fatalf("expected one screen, got %d", m.router.Depth())
	}
	if m.router.Active().Title() != "Practice" {
		t.Errorf("expected play screen, got %q", m.router.Active().Title())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAppModel_ViewShowsStatus(t *testing.T) {
	var model tea.Model = newAppModel(testOptions(t))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	if !model.(AppModel).View().AltScreen {
		t.Error("expected alt screen")
	}
	content := model.(AppModel).render()
	for _, want := range []string{"mathadv", "Practice", "Easy", "streak 0"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in frame", want)
		}
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	var model tea.Model = newAppModel(testOptions(t))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(model.(AppModel).render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestRun_RequiresEngine(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected error without an engine")
	}
}
