package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipmirror/pipmirror-tui/internal/tui/styles"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a, a.handleMouseMsg(msg)

	case copiedMsg:
		return a, a.handleCopied(msg)

	case copyFailedMsg:
		// Silent for the user: no history mutation, no status message.
		if debugLog != nil {
			debugLog.Printf("Failed to copy to clipboard: %v", msg.err)
		}
		return a, nil

	case clearStatusMsg:
		// Timers are not coalesced; the last-scheduled clear wins.
		a.statusMsg = ""
		return a, nil

	case suggestBlurMsg:
		if msg.seq == a.blurSeq && a.focus != FocusInput {
			a.showSuggestions = false
		}
		return a, nil
	}

	// Forward everything else (blink ticks) to the input.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleCopied registers the copied package and surfaces the transient
// confirmation.
func (a *App) handleCopied(msg copiedMsg) tea.Cmd {
	if err := a.history.Add(msg.pkg); err != nil {
		if debugLog != nil {
			debugLog.Printf("Failed to persist history: %v", err)
		}
	}

	a.statusMsg = "Copied: " + msg.command

	cmds := []tea.Cmd{
		tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		}),
	}

	if a.config.UI.Notify {
		notify := a.sendNotice
		pkg := msg.pkg
		cmds = append(cmds, func() tea.Msg {
			if err := notify("pipmirror", "Copied install command for "+pkg); err != nil && debugLog != nil {
				debugLog.Printf("Failed to send notification: %v", err)
			}
			return nil
		})
	}

	return tea.Batch(cmds...)
}

// handleCopy builds the async clipboard write for the selected mirror.
// Refused while the input is empty: there is no command to copy.
func (a *App) handleCopy() tea.Cmd {
	pkg := a.input.Value()
	if pkg == "" || len(a.mirrors) == 0 {
		return nil
	}

	command := a.mirrors[a.mirrorCursor].Command(pkg)
	write := a.writeClipboard

	return func() tea.Msg {
		if err := write(command); err != nil {
			return copyFailedMsg{err}
		}
		return copiedMsg{pkg: pkg, command: command}
	}
}

// toggleTheme flips the persisted dark-mode flag and rebuilds the theme.
func (a *App) toggleTheme() {
	a.theme = styles.New(!a.theme.Dark)
	if err := a.store.Set(darkModeKey, strconv.FormatBool(a.theme.Dark)); err != nil {
		if debugLog != nil {
			debugLog.Printf("Failed to persist theme: %v", err)
		}
	}
}

// cycleFocus moves focus to the next pane. Leaving the input blurs it and
// schedules the delayed dropdown close.
func (a *App) cycleFocus() tea.Cmd {
	switch a.focus {
	case FocusInput:
		a.focus = FocusMirrors
		a.input.Blur()
		return a.scheduleBlurClose()
	case FocusMirrors:
		a.focus = FocusHistory
	default:
		a.focusInput()
	}
	return nil
}

// focusInput returns focus to the package input and invalidates any
// pending delayed close.
func (a *App) focusInput() {
	a.focus = FocusInput
	a.blurSeq++
	a.input.Focus()
}

func (a *App) scheduleBlurClose() tea.Cmd {
	a.blurSeq++
	seq := a.blurSeq
	return tea.Tick(blurCloseDelay, func(time.Time) tea.Msg {
		return suggestBlurMsg{seq: seq}
	})
}
