// Package tui is the interactive journaling surface: a grid of the 83 session
// bars plus one preset panel per category. It only renders projections of the
// store; every mutation goes through the store's operations.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/barjournal/journal"
	"github.com/rustyeddy/barjournal/presets"
)

type mode int

const (
	modeNormal mode = iota
	modeDetail // collecting the detail for a template label
	modeCustom // collecting free-form entry text
)

// App is the Bubble Tea model.
type App struct {
	store *journal.Store
	sets  *presets.Sets

	tbl   table.Model
	input textinput.Model

	mode         mode
	pendingLabel string

	activeCat int    // index into journal.Categories
	presetSel [4]int // selected preset per category

	status    string
	statusErr bool

	width  int
	height int

	keys  KeyMap
	theme Theme
}

// New builds the TUI around an already-restored store.
func New(store *journal.Store, sets *presets.Sets, themeName string) App {
	theme := ThemeForName(themeName)

	tbl := table.New(
		table.WithColumns(barColumns(96)),
		table.WithFocused(true),
		table.WithHeight(14),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(theme.Accent)
	styles.Selected = styles.Selected.Foreground(theme.Accent).Bold(true)
	tbl.SetStyles(styles)

	input := textinput.New()
	input.CharLimit = 120
	input.Width = 48

	a := App{
		store: store,
		sets:  sets,
		tbl:   tbl,
		input: input,
		keys:  DefaultKeyMap(),
		theme: theme,
	}
	a.refreshRows()
	return a
}

func barColumns(width int) []table.Column {
	bar := 6
	other := (width - bar) / 4
	if other < 12 {
		other = 12
	}
	return []table.Column{
		{Title: "Bar", Width: bar},
		{Title: "Bull", Width: other},
		{Title: "Bear", Width: other},
		{Title: "TR", Width: other},
		{Title: "Bias", Width: other},
	}
}

func (a *App) refreshRows() {
	snap := a.store.Snapshot()
	rows := make([]table.Row, 0, len(journal.BarOrder))
	for _, bk := range journal.BarOrder {
		rec := snap[bk]
		rows = append(rows, table.Row{
			string(bk),
			strings.Join(rec.Bull, " | "),
			strings.Join(rec.Bear, " | "),
			strings.Join(rec.TR, " | "),
			strings.Join(rec.Bias, " | "),
		})
	}
	a.tbl.SetRows(rows)
}

// currentBar is the key of the row the cursor sits on.
func (a *App) currentBar() journal.BarKey {
	idx := a.tbl.Cursor()
	if idx < 0 || idx >= len(journal.BarOrder) {
		idx = 0
	}
	return journal.BarOrder[idx]
}

func (a *App) currentCategory() journal.Category {
	return journal.Categories[a.activeCat]
}

func (a *App) selectedPreset() (string, bool) {
	labels := a.sets.List(a.currentCategory())
	sel := a.presetSel[a.activeCat]
	if sel < 0 || sel >= len(labels) {
		return "", false
	}
	return labels[sel], true
}

func (a *App) say(msg string) {
	a.status = msg
	a.statusErr = false
}

// bell surfaces a validation rejection without interrupting anything.
func (a *App) bell(msg string) {
	a.status = msg
	a.statusErr = true
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tbl.SetColumns(barColumns(msg.Width - 4))
		if h := msg.Height - 14; h > 4 {
			a.tbl.SetHeight(h)
		}
		return a, nil

	case tea.KeyMsg:
		if a.mode != modeNormal {
			return a.updatePrompt(msg)
		}
		return a.updateNormal(msg)
	}
	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := a.keys
	switch {
	case key.Matches(msg, keys.Quit):
		// Push whatever is pending before the process goes away.
		if err := a.store.Flush(); err != nil {
			a.bell(fmt.Sprintf("save failed: %v", err))
		}
		return a, tea.Quit

	case key.Matches(msg, keys.NextCategory):
		a.activeCat = (a.activeCat + 1) % len(journal.Categories)
		return a, nil

	case key.Matches(msg, keys.PrevCategory):
		a.activeCat = (a.activeCat + len(journal.Categories) - 1) % len(journal.Categories)
		return a, nil

	case key.Matches(msg, keys.NextPreset):
		if n := len(a.sets.List(a.currentCategory())); n > 0 {
			a.presetSel[a.activeCat] = (a.presetSel[a.activeCat] + 1) % n
		}
		return a, nil

	case key.Matches(msg, keys.PrevPreset):
		if n := len(a.sets.List(a.currentCategory())); n > 0 {
			a.presetSel[a.activeCat] = (a.presetSel[a.activeCat] + n - 1) % n
		}
		return a, nil

	case key.Matches(msg, keys.Add):
		label, ok := a.selectedPreset()
		if !ok {
			a.bell("no preset selected")
			return a, nil
		}
		if journal.IsTemplated(label) {
			return a.openPrompt(modeDetail, label, "detail for "+journal.TemplateBase(label))
		}
		a.applyResult(a.store.AddEntry(a.currentBar(), a.currentCategory(), label), "added "+label)
		return a, nil

	case key.Matches(msg, keys.Remove):
		label, ok := a.selectedPreset()
		if !ok {
			a.bell("no preset selected")
			return a, nil
		}
		a.applyResult(a.store.RemoveEntry(a.currentBar(), a.currentCategory(), label), "removed "+label)
		return a, nil

	case key.Matches(msg, keys.Custom):
		return a.openPrompt(modeCustom, "", "custom "+string(a.currentCategory())+" entry")

	case key.Matches(msg, keys.Undo):
		a.applyResult(a.store.Undo(), "undone")
		return a, nil

	case key.Matches(msg, keys.ClearCategory):
		if !a.store.ClearCategory(a.currentBar(), a.currentCategory()) {
			a.bell("category already empty")
			return a, nil
		}
		a.refreshRows()
		a.say(fmt.Sprintf("cleared %s on bar %s", a.currentCategory(), a.currentBar()))
		return a, nil

	case key.Matches(msg, keys.ClearBar):
		bar := a.currentBar()
		a.store.ClearBar(bar)
		a.refreshRows()
		a.say(fmt.Sprintf("cleared bar %s", bar))
		return a, nil

	case key.Matches(msg, keys.Save):
		if err := a.store.Flush(); err != nil {
			a.bell(fmt.Sprintf("save failed: %v", err))
		} else {
			a.say("session saved")
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.tbl, cmd = a.tbl.Update(msg)
	return a, cmd
}

func (a App) openPrompt(m mode, label, placeholder string) (tea.Model, tea.Cmd) {
	a.mode = m
	a.pendingLabel = label
	a.input.Placeholder = placeholder
	a.input.SetValue("")
	a.input.Focus()
	return a, textinput.Blink
}

func (a App) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		a.closePrompt()
		a.say("cancelled")
		return a, nil

	case tea.KeyEnter:
		text := strings.TrimSpace(a.input.Value())
		switch a.mode {
		case modeDetail:
			label := a.pendingLabel
			a.closePrompt()
			if text == "" {
				// Empty detail rejects the add, mirroring a cancelled dialog.
				a.say("cancelled")
				return a, nil
			}
			a.applyResult(a.store.AddTemplated(a.currentBar(), a.currentCategory(), label, text), "added "+journal.ExpandTemplate(label, text))

		case modeCustom:
			a.closePrompt()
			if text == "" {
				a.say("cancelled")
				return a, nil
			}
			if journal.IsTemplated(text) {
				// Custom text may itself be a template.
				return a.openPrompt(modeDetail, text, "detail for "+journal.TemplateBase(text))
			}
			a.applyResult(a.store.AddEntry(a.currentBar(), a.currentCategory(), text), "added "+text)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) closePrompt() {
	a.mode = modeNormal
	a.pendingLabel = ""
	a.input.Blur()
	a.input.SetValue("")
}

// applyResult refreshes the grid on success and bells on a rejection.
func (a *App) applyResult(err error, okMsg string) {
	switch {
	case err == nil:
		a.refreshRows()
		a.say(okMsg)
	case errors.Is(err, journal.ErrDuplicate):
		a.bell("already journaled on this bar")
	case errors.Is(err, journal.ErrTemplateExists):
		a.bell("an entry for this template already exists")
	case errors.Is(err, journal.ErrNotFound):
		a.bell("not found on this bar")
	case errors.Is(err, journal.ErrNothingToUndo):
		a.bell("nothing to undo")
	case errors.Is(err, journal.ErrEmptyDetail):
		a.say("cancelled")
	default:
		a.bell(err.Error())
	}
}

func (a App) View() string {
	var b strings.Builder

	title := a.theme.TitleStyle.Render("barjournal") +
		a.theme.StatusStyle.Render(fmt.Sprintf("  bar %s · %s", a.currentBar(), a.currentCategory()))
	b.WriteString(title + "\n\n")

	b.WriteString(a.tbl.View() + "\n\n")
	b.WriteString(a.viewPanels() + "\n")

	if a.mode != modeNormal {
		b.WriteString(a.input.View() + "\n")
	}

	if a.status != "" {
		style := a.theme.StatusStyle
		if a.statusErr {
			style = a.theme.ErrorStyle
		}
		b.WriteString(style.Render(a.status) + "\n")
	}

	b.WriteString(a.theme.HelpStyle.Render(
		"tab: category · ←/→: preset · enter: add · x: remove · c: custom · u: undo · D: clear cat · K: clear bar · s: save · q: quit"))
	return b.String()
}

func (a App) viewPanels() string {
	rec := a.store.Record(a.currentBar())
	panels := make([]string, 0, len(journal.Categories))
	for i, cat := range journal.Categories {
		panels = append(panels, a.viewPanel(i, cat, rec))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (a App) viewPanel(idx int, cat journal.Category, rec *journal.BarRecord) string {
	titleColor := map[journal.Category]lipgloss.Color{
		journal.Bull: a.theme.BullColor,
		journal.Bear: a.theme.BearColor,
		journal.TR:   a.theme.TRColor,
		journal.Bias: a.theme.BiasColor,
	}[cat]

	var b strings.Builder
	b.WriteString(a.theme.PanelTitleStyle.Foreground(titleColor).Render(strings.ToUpper(string(cat))) + "\n")

	labels := a.sets.List(cat)
	for j, label := range labels {
		style := a.theme.LabelStyle
		if a.labelPresent(rec, cat, label) {
			style = a.theme.PresentLabel
		}
		if idx == a.activeCat && j == a.presetSel[idx] {
			style = a.theme.SelectedLabel
		}
		b.WriteString(style.Render(label) + "\n")
	}

	panel := a.theme.PanelStyle
	if idx == a.activeCat {
		panel = a.theme.ActivePanelStyle
	}
	return panel.Render(strings.TrimRight(b.String(), "\n"))
}

// labelPresent reports whether the label is journaled on the record, matching
// template labels against any expansion of their base.
func (a App) labelPresent(rec *journal.BarRecord, cat journal.Category, label string) bool {
	list := rec.List(cat)
	if journal.IsTemplated(label) {
		base := journal.TemplateBase(label)
		for _, text := range list {
			if journal.MatchesTemplate(text, base) {
				return true
			}
		}
		return false
	}
	for _, text := range list {
		if text == label {
			return true
		}
	}
	return false
}
