package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// If the help overlay is up, any key goes back
	if a.showHelp {
		a.showHelp = false
		return nil
	}

	switch msg.String() {
	case a.keymap.SwitchPane.Key:
		return a.cycleFocus()
	case a.keymap.ToggleTheme.Key:
		a.toggleTheme()
		return nil
	}

	if a.focus == FocusInput {
		return a.handleInputKeyMsg(msg)
	}

	// Keys shared by the list panes
	switch msg.String() {
	case a.keymap.Quit.Key:
		return tea.Quit
	case a.keymap.Help.Key:
		a.showHelp = true
		return nil
	case a.keymap.FocusInput.Key:
		a.focusInput()
		return nil
	}

	if a.focus == FocusMirrors {
		return a.handleMirrorsKeyMsg(msg)
	}
	return a.handleHistoryKeyMsg(msg)
}

// handleInputKeyMsg drives the suggestion dropdown state machine.
//
// The dropdown is open whenever the current input has matching history
// entries; the cursor starts at -1 (nothing highlighted). Arrow keys are
// consumed only while the dropdown is open and non-empty, so the input
// keeps its native behavior otherwise.
func (a *App) handleInputKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		// Closes unconditionally; the list is merely hidden.
		a.showSuggestions = false
		return nil

	case tea.KeyDown:
		if a.dropdownActive() {
			a.suggestionCursor = (a.suggestionCursor + 1) % len(a.suggestions)
			return nil
		}

	case tea.KeyUp:
		if a.dropdownActive() {
			// Wraps to the last entry from -1 or 0.
			if a.suggestionCursor <= 0 {
				a.suggestionCursor = len(a.suggestions) - 1
			} else {
				a.suggestionCursor--
			}
			return nil
		}

	case tea.KeyEnter:
		if a.dropdownActive() && a.suggestionCursor >= 0 {
			a.commitSuggestion(a.suggestions[a.suggestionCursor])
		}
		return nil
	}

	// Forward to the text input; recompute suggestions only when the
	// text actually changed (cursor movement must not reset the list).
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.refreshSuggestions()
	}
	return cmd
}

func (a *App) dropdownActive() bool {
	return a.showSuggestions && len(a.suggestions) > 0
}

// refreshSuggestions recomputes the dropdown from the current input.
// Called on every text change; the cursor always resets to -1.
func (a *App) refreshSuggestions() {
	a.suggestions = a.history.Suggest(a.input.Value())
	a.suggestionCursor = -1
	a.showSuggestions = len(a.suggestions) > 0
}

// commitSuggestion makes s the input text and closes the dropdown.
func (a *App) commitSuggestion(s string) {
	a.input.SetValue(s)
	a.input.CursorEnd()
	a.suggestions = nil
	a.suggestionCursor = -1
	a.showSuggestions = false
}

// handleMirrorsKeyMsg handles keys in the mirrors pane.
func (a *App) handleMirrorsKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", a.keymap.Up.Key:
		if a.mirrorCursor > 0 {
			a.mirrorCursor--
		}
	case "down", a.keymap.Down.Key:
		if a.mirrorCursor < len(a.mirrors)-1 {
			a.mirrorCursor++
		}
	case a.keymap.Select.Key, a.keymap.Copy.Key:
		return a.handleCopy()
	}
	return nil
}

// handleHistoryKeyMsg handles keys in the history pane.
func (a *App) handleHistoryKeyMsg(msg tea.KeyMsg) tea.Cmd {
	entries := a.history.Entries()

	switch msg.String() {
	case "up", a.keymap.Up.Key:
		if a.historyCursor > 0 {
			a.historyCursor--
		}
	case "down", a.keymap.Down.Key:
		if a.historyCursor < len(entries)-1 {
			a.historyCursor++
		}
	case a.keymap.Select.Key:
		if a.historyCursor < len(entries) {
			a.commitSuggestion(entries[a.historyCursor])
		}
	case a.keymap.Delete.Key:
		if a.historyCursor < len(entries) {
			if err := a.history.Remove(entries[a.historyCursor]); err != nil && debugLog != nil {
				debugLog.Printf("Failed to persist history: %v", err)
			}
			if a.historyCursor >= a.history.Len() && a.historyCursor > 0 {
				a.historyCursor--
			}
		}
	}
	return nil
}

// handleMouseMsg maps clicks onto suggestions and panes using the row
// offsets recorded during the last View.
func (a *App) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if a.showHelp {
		a.showHelp = false
		return nil
	}

	y := msg.Y

	// A click on a suggestion commits it directly, bypassing the cursor.
	// This must work even while the delayed blur close is pending.
	if a.showSuggestions && a.layout.suggestionsY >= 0 {
		idx := y - a.layout.suggestionsY
		if idx >= 0 && idx < len(a.suggestions) {
			a.commitSuggestion(a.suggestions[idx])
			a.focusInput()
			return nil
		}
	}

	switch {
	case y >= a.layout.historyTop:
		idx := y - a.layout.historyRowsY
		if idx >= 0 && idx < a.history.Len() {
			a.historyCursor = idx
		}
		return a.leaveInputFor(FocusHistory)
	case y >= a.layout.mirrorsTop:
		idx := y - a.layout.mirrorRowsY
		if idx >= 0 && idx < len(a.mirrors) {
			a.mirrorCursor = idx
		}
		return a.leaveInputFor(FocusMirrors)
	case y >= a.layout.inputTop:
		if a.focus != FocusInput {
			a.focusInput()
		}
	}
	return nil
}

// leaveInputFor moves focus to a list pane. Coming from the input this
// blurs it and starts the delayed dropdown close.
func (a *App) leaveInputFor(f Focus) tea.Cmd {
	fromInput := a.focus == FocusInput
	a.focus = f
	if fromInput {
		a.input.Blur()
		return a.scheduleBlurClose()
	}
	return nil
}
