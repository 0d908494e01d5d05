package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View implements tea.Model. Row offsets for mouse handling are recorded
// as sections are rendered; every list row must stay on a single line
// (truncated to the pane width) or the click mapping drifts.
func (a *App) View() string {
	width := a.width
	if width == 0 {
		width = 80
	}

	if a.showHelp {
		return a.renderHelp(width)
	}

	paneWidth := width - 2
	if paneWidth < 40 {
		paneWidth = 40
	}
	innerWidth := paneWidth - 2 // border + padding

	var b strings.Builder
	y := 0

	// Title
	mode := "☀ light"
	if a.theme.Dark {
		mode = "☾ dark"
	}
	title := a.theme.Title.Render("pipmirror") + "  " + a.theme.Hint.Render(mode)
	b.WriteString(title + "\n")
	y++

	// Input pane
	a.layout.inputTop = y
	y += a.renderPane(&b, FocusInput, paneWidth, a.input.View())

	// Suggestion dropdown: borderless rows, one per suggestion, so each
	// terminal row maps straight to an index.
	if a.dropdownActive() {
		a.layout.suggestionsY = y
		for i, s := range a.suggestions {
			style := a.theme.Suggestion
			prefix := "  "
			if i == a.suggestionCursor {
				style = a.theme.SuggestionSelected
				prefix = "▸ "
			}
			b.WriteString(style.Render(prefix+truncateString(s, innerWidth-4)) + "\n")
			y++
		}
	} else {
		a.layout.suggestionsY = -1
	}

	// Mirrors pane
	a.layout.mirrorsTop = y
	a.layout.mirrorRowsY = y + 2 // top border + subtitle
	y += a.renderPane(&b, FocusMirrors, paneWidth, a.renderMirrorRows(innerWidth))

	// History pane
	a.layout.historyTop = y
	a.layout.historyRowsY = y + 2
	a.renderPane(&b, FocusHistory, paneWidth, a.renderHistoryRows(innerWidth))

	// Status bar
	b.WriteString("\n" + a.renderStatusBar(width))

	return b.String()
}

// renderPane writes one bordered pane and returns how many terminal rows
// it occupied.
func (a *App) renderPane(b *strings.Builder, f Focus, width int, content string) int {
	style := a.theme.Pane
	if a.focus == f {
		style = a.theme.PaneFocused
	}

	box := style.Width(width).Render(content)
	b.WriteString(box + "\n")
	return strings.Count(box, "\n") + 1
}

func (a *App) renderMirrorRows(width int) string {
	var rows []string
	rows = append(rows, a.theme.Subtitle.Render("Mirrors"))

	pkg := a.input.Value()
	for i, m := range a.mirrors {
		cursor := "  "
		style := a.theme.Item
		if i == a.mirrorCursor && a.focus == FocusMirrors {
			cursor = "▸ "
			style = a.theme.ItemSelected
		}

		row := a.theme.MirrorName.Render(m.Name)
		// Command rows are suppressed while the input is empty.
		if cmd := m.Command(pkg); cmd != "" {
			row += "  " + a.theme.Command.Render(truncateString(cmd, width-runewidth.StringWidth(m.Name)-6))
		}
		rows = append(rows, style.Render(cursor+row))
	}

	return strings.Join(rows, "\n")
}

func (a *App) renderHistoryRows(width int) string {
	var rows []string
	rows = append(rows, a.theme.Subtitle.Render("History"))

	entries := a.history.Entries()
	if len(entries) == 0 {
		rows = append(rows, a.theme.Hint.Render("  (no packages yet)"))
	}
	for i, e := range entries {
		cursor := "  "
		style := a.theme.Item
		if i == a.historyCursor && a.focus == FocusHistory {
			cursor = "▸ "
			style = a.theme.ItemSelected
		}
		rows = append(rows, style.Render(cursor+truncateString(e, width-4)))
	}

	return strings.Join(rows, "\n")
}

func (a *App) renderStatusBar(width int) string {
	if a.statusMsg != "" {
		return a.theme.StatusBar.Width(width).Render(
			a.theme.StatusBarSuccess.Render(a.statusMsg))
	}

	if !a.config.UI.ShowHints {
		return ""
	}

	hints := []string{
		"tab: switch pane",
		"enter: select/copy",
		"ctrl+t: theme",
		"?: help",
	}
	return a.theme.StatusBar.Width(width).Render(
		a.theme.Hint.Render(strings.Join(hints, "  •  ")))
}

func (a *App) renderHelp(width int) string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render("Keybindings") + "\n\n")

	for _, item := range a.keymap.HelpItems() {
		key := a.theme.HelpKey.Render(runewidth.FillRight(item[0], 8))
		b.WriteString("  " + key + a.theme.HelpDesc.Render(item[1]) + "\n")
	}

	b.WriteString("\n" + a.theme.Hint.Render("press any key to close"))

	height := a.height
	if height == 0 {
		height = 24
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// truncateString truncates a string to the given width, appending "…" if
// truncated. It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}
