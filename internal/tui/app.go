// Package tui provides the terminal user interface for pipmirror.
package tui

import (
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/pipmirror/pipmirror-tui/internal/config"
	"github.com/pipmirror/pipmirror-tui/internal/history"
	"github.com/pipmirror/pipmirror-tui/internal/mirror"
	"github.com/pipmirror/pipmirror-tui/internal/store"
	"github.com/pipmirror/pipmirror-tui/internal/tui/styles"
)

// darkModeKey is the store key for the theme flag ("true"/"false").
const darkModeKey = "darkMode"

const (
	// statusClearDelay is how long a copy confirmation stays visible.
	statusClearDelay = 2000 * time.Millisecond

	// blurCloseDelay gives a pending suggestion click time to land
	// before the dropdown closes on focus loss.
	blurCloseDelay = 150 * time.Millisecond
)

// Debug logger
var debugLog *log.Logger

func init() {
	f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		debugLog = log.New(f, "TUI: ", log.Ltime|log.Lshortfile)
	}
}

// Focus represents which pane receives keyboard input.
type Focus int

const (
	FocusInput Focus = iota
	FocusMirrors
	FocusHistory
)

// layout records row offsets computed during View so mouse clicks can be
// mapped back to suggestions and panes.
type layout struct {
	inputTop     int // first line of the input pane box
	suggestionsY int // first suggestion row, -1 when hidden
	mirrorsTop   int // first line of the mirrors pane box
	mirrorRowsY  int // first mirror row inside the box
	historyTop   int // first line of the history pane box
	historyRowsY int // first history row inside the box
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config  *config.Config
	store   store.Store
	history *history.History
	mirrors []mirror.Mirror

	// Focus state
	focus Focus

	// Input state
	input textinput.Model

	// Suggestion state: cursor -1 means nothing highlighted
	suggestions      []string
	showSuggestions  bool
	suggestionCursor int
	blurSeq          int // invalidates pending delayed closes

	// List cursors
	mirrorCursor  int
	historyCursor int

	// UI state
	theme     styles.Theme
	statusMsg string
	showHelp  bool
	width     int
	height    int
	layout    layout

	// Components
	keymap Keymap

	// Injectable capabilities, replaced in tests
	writeClipboard func(string) error
	sendNotice     func(title, message string) error
}

// NewApp creates a new App instance. The persisted theme flag is applied
// here, before the first frame.
func NewApp(cfg *config.Config, st store.Store) *App {
	input := textinput.New()
	input.Placeholder = "Package name..."
	input.CharLimit = 100
	input.Width = 40
	input.Focus()

	dark := false
	if v, ok := st.Get(darkModeKey); ok && v == "true" {
		dark = true
	}

	return &App{
		config:           cfg,
		store:            st,
		history:          history.Load(st),
		mirrors:          cfg.Mirrors(),
		focus:            FocusInput,
		input:            input,
		suggestionCursor: -1,
		layout:           layout{suggestionsY: -1},
		theme:            styles.New(dark),
		keymap:           DefaultKeymap(),
		writeClipboard:   clipboard.WriteAll,
		sendNotice:       func(title, message string) error { return beeep.Notify(title, message, "") },
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Theme returns the active theme.
func (a *App) Theme() styles.Theme {
	return a.theme
}

// Message types
type copiedMsg struct {
	pkg     string
	command string
}
type copyFailedMsg struct{ err error }
type clearStatusMsg struct{}
type suggestBlurMsg struct{ seq int }
