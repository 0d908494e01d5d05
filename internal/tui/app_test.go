package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipmirror/pipmirror-tui/internal/config"
	"github.com/pipmirror/pipmirror-tui/internal/history"
	"github.com/pipmirror/pipmirror-tui/internal/store"
)

func newTestApp() (*App, *store.MemStore) {
	ms := store.NewMemStore()
	return NewApp(config.DefaultConfig(), ms), ms
}

// sendKey feeds one key press through the app's Update.
func sendKey(a *App, key string) tea.Cmd {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+t":
		msg = tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	_, cmd := a.Update(msg)
	return cmd
}

func typeText(a *App, text string) {
	for _, r := range text {
		sendKey(a, string(r))
	}
}

func TestFreshLoadSeedsHistory(t *testing.T) {
	a, _ := newTestApp()

	want := []string{"pandas", "numpy", "requests", "pillow", "flask"}
	got := a.history.Entries()
	if len(got) != len(want) {
		t.Fatalf("History = %v, want seed %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("History[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTypingOpensSuggestions(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "num")

	if !a.showSuggestions {
		t.Fatal("Suggestions should be open after typing 'num'")
	}
	if len(a.suggestions) != 1 || a.suggestions[0] != "numpy" {
		t.Fatalf("Suggestions = %v, want [numpy]", a.suggestions)
	}
	if a.suggestionCursor != -1 {
		t.Errorf("Cursor = %d after typing, want -1", a.suggestionCursor)
	}
}

func TestSelectSuggestionWithEnter(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "num")
	sendKey(a, "down")
	if a.suggestionCursor != 0 {
		t.Fatalf("Cursor = %d after down, want 0", a.suggestionCursor)
	}

	sendKey(a, "enter")
	if a.input.Value() != "numpy" {
		t.Errorf("Input = %q after Enter, want %q", a.input.Value(), "numpy")
	}
	if a.showSuggestions {
		t.Error("Suggestions should be closed after commit")
	}
}

func TestEnterWithoutHighlightDoesNothing(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "num")
	sendKey(a, "enter")

	if a.input.Value() != "num" {
		t.Errorf("Input = %q, want unchanged %q", a.input.Value(), "num")
	}
}

func TestCircularNavigation(t *testing.T) {
	a, _ := newTestApp()

	// "s" matches pandas, requests and flask
	typeText(a, "s")
	n := len(a.suggestions)
	if n != 3 {
		t.Fatalf("Suggestions = %v, want 3 entries", a.suggestions)
	}

	// Down from -1 lands on 0; N more presses return to 0.
	sendKey(a, "down")
	start := a.suggestionCursor
	for i := 0; i < n; i++ {
		sendKey(a, "down")
	}
	if a.suggestionCursor != start {
		t.Errorf("Cursor = %d after %d downs, want %d", a.suggestionCursor, n, start)
	}

	// Up wraps to the last entry from 0
	a.suggestionCursor = 0
	sendKey(a, "up")
	if a.suggestionCursor != n-1 {
		t.Errorf("Cursor = %d after up from 0, want %d", a.suggestionCursor, n-1)
	}

	// ...and from -1
	a.suggestionCursor = -1
	sendKey(a, "up")
	if a.suggestionCursor != n-1 {
		t.Errorf("Cursor = %d after up from -1, want %d", a.suggestionCursor, n-1)
	}
}

func TestEscClosesSuggestions(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "num")
	sendKey(a, "esc")

	if a.showSuggestions {
		t.Error("Suggestions should be closed after Esc")
	}
	if a.input.Value() != "num" {
		t.Errorf("Esc must not change the input, got %q", a.input.Value())
	}
}

func TestArrowsIgnoredWithoutSuggestions(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "zzz")
	if a.showSuggestions {
		t.Fatal("No suggestions expected for 'zzz'")
	}

	sendKey(a, "down")
	sendKey(a, "up")
	if a.suggestionCursor != -1 {
		t.Errorf("Cursor = %d, want -1 when list is empty", a.suggestionCursor)
	}
}

func TestCursorMovementDoesNotResetSelection(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "num")
	sendKey(a, "down")

	// Left moves the text cursor, not the suggestion cursor
	a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if a.suggestionCursor != 0 {
		t.Errorf("Cursor = %d after left arrow, want 0", a.suggestionCursor)
	}
}

func TestBlurClosesSuggestionsAfterDelay(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "num")
	cmd := sendKey(a, "tab")
	if cmd == nil {
		t.Fatal("Leaving the input should schedule the delayed close")
	}

	// Still open until the delayed message lands
	if !a.showSuggestions {
		t.Fatal("Suggestions should stay open until the blur delay fires")
	}

	a.Update(suggestBlurMsg{seq: a.blurSeq})
	if a.showSuggestions {
		t.Error("Suggestions should be closed after the blur delay")
	}
}

func TestStaleBlurIgnoredAfterRefocus(t *testing.T) {
	a, _ := newTestApp()

	typeText(a, "num")
	sendKey(a, "tab")
	stale := a.blurSeq

	// Refocus before the delayed close lands
	sendKey(a, "tab")
	sendKey(a, "tab")
	if a.focus != FocusInput {
		t.Fatalf("Focus = %v after cycling, want input", a.focus)
	}

	a.Update(suggestBlurMsg{seq: stale})
	if !a.showSuggestions {
		t.Error("Stale blur message must not close the dropdown")
	}
}

func TestMouseClickCommitsSuggestion(t *testing.T) {
	a, _ := newTestApp()
	a.width = 80
	a.height = 24

	typeText(a, "p")
	if len(a.suggestions) < 2 {
		t.Fatalf("Suggestions = %v, want at least 2", a.suggestions)
	}
	a.View() // populate layout offsets

	second := a.suggestions[1]
	a.Update(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		Y:      a.layout.suggestionsY + 1,
	})

	if a.input.Value() != second {
		t.Errorf("Input = %q after click, want %q", a.input.Value(), second)
	}
	if a.showSuggestions {
		t.Error("Suggestions should be closed after click commit")
	}
}

func TestCopyAddsToHistoryAndShowsStatus(t *testing.T) {
	a, ms := newTestApp()

	var copied string
	a.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	typeText(a, "torch")
	sendKey(a, "tab") // mirrors pane
	cmd := sendKey(a, "enter")
	if cmd == nil {
		t.Fatal("Copy should produce a command")
	}

	msg := cmd()
	want := "pip install -i https://mirrors.aliyun.com/pypi/simple torch"
	if copied != want {
		t.Errorf("Clipboard got %q, want %q", copied, want)
	}

	a.Update(msg)
	if a.history.Entries()[0] != "torch" {
		t.Errorf("History head = %q after copy, want torch", a.history.Entries()[0])
	}
	if !strings.Contains(ms.Values[history.StoreKey], "torch") {
		t.Error("History mutation was not persisted")
	}
	if !strings.HasPrefix(a.statusMsg, "Copied: ") {
		t.Errorf("StatusMsg = %q, want copy confirmation", a.statusMsg)
	}

	// The 2s clear resets the message
	a.Update(clearStatusMsg{})
	if a.statusMsg != "" {
		t.Errorf("StatusMsg = %q after clear, want empty", a.statusMsg)
	}
}

func TestCopyFailureIsSilent(t *testing.T) {
	a, _ := newTestApp()
	a.writeClipboard = func(string) error { return errors.New("no display") }

	typeText(a, "torch")
	before := a.history.Len()

	sendKey(a, "tab")
	cmd := sendKey(a, "enter")
	a.Update(cmd())

	if a.history.Len() != before {
		t.Error("Failed copy must not mutate history")
	}
	if a.statusMsg != "" {
		t.Errorf("StatusMsg = %q after failed copy, want empty", a.statusMsg)
	}
}

func TestCopyRefusedWhenInputEmpty(t *testing.T) {
	a, _ := newTestApp()

	sendKey(a, "tab")
	if cmd := sendKey(a, "enter"); cmd != nil {
		t.Error("Copy with empty input should be refused")
	}
}

func TestThemeToggleRoundTrip(t *testing.T) {
	a, ms := newTestApp()

	if a.theme.Dark {
		t.Fatal("Theme should default to light")
	}

	sendKey(a, "ctrl+t")
	if !a.theme.Dark || ms.Values[darkModeKey] != "true" {
		t.Errorf("After toggle: dark=%v persisted=%q", a.theme.Dark, ms.Values[darkModeKey])
	}

	sendKey(a, "ctrl+t")
	if a.theme.Dark || ms.Values[darkModeKey] != "false" {
		t.Errorf("After second toggle: dark=%v persisted=%q", a.theme.Dark, ms.Values[darkModeKey])
	}
}

func TestThemeLoadedBeforeFirstFrame(t *testing.T) {
	ms := store.NewMemStore()
	ms.Values[darkModeKey] = "true"

	a := NewApp(config.DefaultConfig(), ms)
	if !a.theme.Dark {
		t.Error("Persisted dark mode should apply at startup")
	}
}

func TestHistoryPaneDelete(t *testing.T) {
	a, ms := newTestApp()

	sendKey(a, "tab") // mirrors
	sendKey(a, "tab") // history
	if a.focus != FocusHistory {
		t.Fatalf("Focus = %v, want history", a.focus)
	}

	sendKey(a, "down")
	sendKey(a, "d") // delete "numpy"

	for _, e := range a.history.Entries() {
		if e == "numpy" {
			t.Errorf("numpy still present after delete: %v", a.history.Entries())
		}
	}
	if strings.Contains(ms.Values[history.StoreKey], "numpy") {
		t.Error("Delete was not persisted")
	}
}

func TestHistoryPaneSelect(t *testing.T) {
	a, _ := newTestApp()

	sendKey(a, "tab")
	sendKey(a, "tab")
	sendKey(a, "down")
	sendKey(a, "enter")

	if a.input.Value() != "numpy" {
		t.Errorf("Input = %q after history select, want numpy", a.input.Value())
	}
}

func TestMirrorCursorClamped(t *testing.T) {
	a, _ := newTestApp()

	sendKey(a, "tab")
	for i := 0; i < 10; i++ {
		sendKey(a, "down")
	}
	if a.mirrorCursor != len(a.mirrors)-1 {
		t.Errorf("Mirror cursor = %d, want %d", a.mirrorCursor, len(a.mirrors)-1)
	}

	for i := 0; i < 10; i++ {
		sendKey(a, "up")
	}
	if a.mirrorCursor != 0 {
		t.Errorf("Mirror cursor = %d, want 0", a.mirrorCursor)
	}
}
