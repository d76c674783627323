// Package tui provides the interactive Bubble Tea salary calculator.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/tui/components"
	"github.com/theirongolddev/payreal/internal/tui/theme"
)

// App is the root Bubble Tea model. It shows the input form until the user
// submits it, then the tabbed result dashboard.
type App struct {
	input     engine.BudgetInput
	result    engine.BudgetResult
	hasResult bool

	form *huh.Form
	vals *FormValues

	width     int
	height    int
	activeTab int
	showHelp  bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the app with the form pre-filled from in.
func NewApp(in engine.BudgetInput) App {
	a := App{input: in}
	a.openForm()
	return a
}

// NewResultApp creates the app showing the result for in, skipping the form.
func NewResultApp(in engine.BudgetInput) App {
	return App{}.withInput(in)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// Result returns the last computed result, if any.
func (a App) Result() (engine.BudgetResult, bool) {
	return a.result, a.hasResult
}

func (a *App) openForm() {
	a.vals = NewFormValues(a.input)
	a.form = NewInputForm(a.vals, false)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, 80)).WithHeight(a.height)
	}
}

func (a App) withInput(in engine.BudgetInput) App {
	a.input = in
	a.result = engine.ComputeBudget(in)
	a.hasResult = true
	a.form = nil
	a.vals = nil
	slog.Debug("budget computed",
		"city", in.City,
		"gross_annual", in.GrossAnnual,
		"real_spendable", a.result.RealSpendable,
		"months_to_goal", a.result.MonthsToGoal.String())
	return a
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, 80)).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "e":
			a.openForm()
			return a, a.form.Init()
		case "left", "shift+tab", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if idx := components.TabIdxByKey(key); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		in, err := a.vals.Input()
		if err != nil {
			// Field validators already ran; this only trips on a stale form.
			slog.Warn("form input rejected", "err", err)
			a.openForm()
			return a, a.form.Init()
		}
		return a.withInput(in), nil
	case huh.StateAborted:
		if !a.hasResult {
			return a, tea.Quit
		}
		a.form = nil
		a.vals = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  payreal needs at least %d columns.\n",
		a.width, minTerminalWidth)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	header := titleStyle.Render("◈ payreal") + subStyle.Render(" · What does your salary really buy?")
	body := lipgloss.JoinVertical(lipgloss.Left, header, "", a.form.View())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o b t g", "Jump to tab"},
		{"← → / tab", "Previous / Next tab"},
		{"e", "Edit inputs"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w, h, cw := a.width, a.height, a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)

	commute := "commutes"
	if a.input.WalksToWork {
		commute = "walks"
	}
	status := fmt.Sprintf("%s · %s · %s/yr", displayCity(a.input.City), commute, cli.FormatNaira(a.input.GrossAnnual))
	statusBar := components.RenderStatusBar(w, status)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderBreakdownTab(cw)
	case 2:
		content = a.renderTaxTab(cw)
	case 3:
		content = a.renderGoalTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths RenderTabBar uses, with one separator column
// between tabs.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1
	}
	return -1
}

func displayCity(c engine.City) string {
	if c == "" {
		return string(engine.CityOther)
	}
	return string(c)
}

func outlookColor(o engine.Outlook) lipgloss.Color {
	t := theme.Active
	switch o {
	case engine.OutlookDeficit:
		return t.Bad
	case engine.OutlookTight:
		return t.Warn
	default:
		return t.Good
	}
}

func paceColor(p engine.Pace) lipgloss.Color {
	t := theme.Active
	switch p {
	case engine.PaceWithinYear:
		return t.Good
	case engine.PaceWithinTwoYears:
		return t.Info
	default:
		return t.Warn
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with the background
// color so gaps between cards are not left unstyled.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
