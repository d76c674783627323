package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTabBarWidth(t *testing.T) {
	for active := range Tabs {
		bar := RenderTabBar(active, 100)
		if got := lipgloss.Width(bar); got != 100 {
			t.Errorf("active=%d: bar width = %d, want 100", active, got)
		}
	}
}

func TestTabWidthsMatchRenderedRow(t *testing.T) {
	want := len(Tabs) - 1 // separators
	for i, tab := range Tabs {
		want += TabVisualWidth(tab, i == 0)
	}
	row := RenderTabBar(0, 0)
	if got := lipgloss.Width(row); got != want {
		t.Fatalf("rendered row = %d columns, sum of tab widths = %d", got, want)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if TabIdxByKey("z") != -1 {
		t.Error("unknown key should return -1")
	}
}
