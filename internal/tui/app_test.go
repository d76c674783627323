package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/tui/components"
)

func referenceInput() engine.BudgetInput {
	return engine.BudgetInput{
		GrossAnnual:   2_985_762,
		City:          engine.CityLagos,
		FamilySupport: 40_000,
		HouseUpkeep:   50_000,
		GoalAmount:    250_000,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(a App, w, h int) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(App)
}

func press(a App, msg tea.Msg) (App, tea.Cmd) {
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func TestNewAppStartsWithForm(t *testing.T) {
	a := NewApp(referenceInput())
	if a.form == nil {
		t.Fatal("NewApp should open the input form")
	}
	if a.vals.Gross != "2985762" || a.vals.City != "Lagos" {
		t.Errorf("form not pre-filled: %+v", *a.vals)
	}
	if _, ok := a.Result(); ok {
		t.Error("no result should exist before the form is submitted")
	}
}

func TestResultAppComputesBudget(t *testing.T) {
	a := NewResultApp(referenceInput())
	r, ok := a.Result()
	if !ok {
		t.Fatal("NewResultApp should compute a result")
	}
	if r.MonthsToGoal.Months != 53 {
		t.Errorf("MonthsToGoal = %v, want 53", r.MonthsToGoal)
	}
}

func TestTabNavigation(t *testing.T) {
	a := sized(NewResultApp(referenceInput()), 120, 40)

	a, _ = press(a, keyRunes("t"))
	if a.activeTab != 2 {
		t.Errorf("after 't' activeTab = %d, want 2", a.activeTab)
	}
	a, _ = press(a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != 3 {
		t.Errorf("after right activeTab = %d, want 3", a.activeTab)
	}
	a, _ = press(a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != 0 {
		t.Errorf("right should wrap to 0, got %d", a.activeTab)
	}
	a, _ = press(a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.activeTab != len(components.Tabs)-1 {
		t.Errorf("left should wrap to last tab, got %d", a.activeTab)
	}
}

func TestTabAtX(t *testing.T) {
	a := NewResultApp(referenceInput())

	pos := 0
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if got := a.tabAtX(pos); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d", pos, got, i)
		}
		if got := a.tabAtX(pos + w - 1); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d", pos+w-1, got, i)
		}
		pos += w + 1
	}
	if got := a.tabAtX(pos + 50); got != -1 {
		t.Errorf("tabAtX past the last tab = %d, want -1", got)
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := sized(NewResultApp(referenceInput()), 120, 40)
	x := components.TabVisualWidth(components.Tabs[0], true) + 2

	a, _ = press(a, tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.activeTab != 1 {
		t.Errorf("click at x=%d selected tab %d, want 1", x, a.activeTab)
	}
}

func TestEditReopensPrefilledForm(t *testing.T) {
	a := sized(NewResultApp(referenceInput()), 120, 40)

	a, cmd := press(a, keyRunes("e"))
	if a.form == nil {
		t.Fatal("'e' should reopen the form")
	}
	if cmd == nil {
		t.Error("reopening the form should return its init command")
	}
	if a.vals.Family != "40000" {
		t.Errorf("Family = %q, want pre-filled 40000", a.vals.Family)
	}
	if _, ok := a.Result(); !ok {
		t.Error("editing should keep the previous result")
	}
}

func TestHelpToggle(t *testing.T) {
	a := sized(NewResultApp(referenceInput()), 120, 40)

	a, _ = press(a, keyRunes("?"))
	if !a.showHelp {
		t.Fatal("'?' should open help")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}
	a, _ = press(a, keyRunes("t"))
	if a.showHelp || a.activeTab != 0 {
		t.Error("any key should only close help")
	}
}

func TestQuit(t *testing.T) {
	a := sized(NewResultApp(referenceInput()), 120, 40)
	_, cmd := press(a, keyRunes("q"))
	if cmd == nil {
		t.Fatal("'q' should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("'q' should quit")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := sized(NewResultApp(referenceInput()), 60, 20)
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal should show the too-narrow message")
	}
}

func TestViewEveryTab(t *testing.T) {
	for _, w := range []int{90, 150} {
		a := sized(NewResultApp(referenceInput()), w, 40)
		wants := []string{"Real Spendable", "Total Outgoings", "PAYE Bands", "Savings Goal"}
		for i, want := range wants {
			a.activeTab = i
			view := a.View()
			if !strings.Contains(view, want) {
				t.Errorf("width %d tab %d missing %q", w, i, want)
			}
			if got := len(strings.Split(view, "\n")); got != 40 {
				t.Errorf("width %d tab %d renders %d lines, want 40", w, i, got)
			}
		}
	}
}

func TestGoalTabWithoutGoal(t *testing.T) {
	in := referenceInput()
	in.GoalAmount = 0
	a := sized(NewResultApp(in), 120, 40)
	a.activeTab = 3
	if !strings.Contains(a.View(), "No savings goal set") {
		t.Error("goal tab should explain that no goal is set")
	}
}

func TestProjectionMonths(t *testing.T) {
	tests := []struct {
		toGoal    int
		unbounded bool
		want      int
	}{
		{3, false, 12},
		{18, false, 18},
		{200, false, maxProjectionMonths},
		{0, true, 12},
	}
	for _, tt := range tests {
		if got := projectionMonths(tt.toGoal, tt.unbounded); got != tt.want {
			t.Errorf("projectionMonths(%d, %v) = %d, want %d", tt.toGoal, tt.unbounded, got, tt.want)
		}
	}

	values, labels := savingsProjection(4_723, 3)
	if values[2] != 3*4_723 || labels[0] != "M1" {
		t.Errorf("savingsProjection = %v %v", values, labels)
	}
}
