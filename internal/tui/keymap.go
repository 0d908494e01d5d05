package tui

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up         Key
	Down       Key
	SwitchPane Key
	FocusInput Key

	// Actions
	Select Key
	Copy   Key
	Delete Key
	Back   Key

	// Other
	ToggleTheme Key
	Help        Key
	Quit        Key
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:         Key{Key: "k", Help: "up"},
		Down:       Key{Key: "j", Help: "down"},
		SwitchPane: Key{Key: "tab", Help: "switch pane"},
		FocusInput: Key{Key: "/", Help: "focus input"},

		Select: Key{Key: "enter", Help: "select"},
		Copy:   Key{Key: "y", Help: "copy command"},
		Delete: Key{Key: "d", Help: "delete entry"},
		Back:   Key{Key: "esc", Help: "close"},

		ToggleTheme: Key{Key: "ctrl+t", Help: "toggle theme"},
		Help:        Key{Key: "?", Help: "help"},
		Quit:        Key{Key: "q", Help: "quit"},
	}
}

// HelpItems returns key/description pairs for the help overlay.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"tab", "switch pane"},
		{"/", "focus package input"},
		{"↓/↑", "cycle suggestions / move cursor"},
		{"enter", "accept suggestion / copy command / pick history entry"},
		{"y", "copy command (mirrors pane)"},
		{"d", "delete history entry (history pane)"},
		{"esc", "close suggestions"},
		{"ctrl+t", "toggle dark mode"},
		{"q", "quit (outside input)"},
		{"ctrl+c", "quit"},
	}
}
