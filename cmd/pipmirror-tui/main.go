// Package main is the entry point for the pipmirror TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipmirror/pipmirror-tui/internal/config"
	"github.com/pipmirror/pipmirror-tui/internal/store"
	"github.com/pipmirror/pipmirror-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `pipmirror-tui - generate pip install commands for regional mirrors

USAGE:
    pipmirror-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file

CONFIGURATION:
    Config file: ~/.config/pipmirror-tui/config.yaml
    History and theme are kept in ~/.config/pipmirror-tui/storage.yaml

KEYBINDINGS:
    Type a package name in the input; suggestions come from your history.
        ↓/↑         Cycle suggestions
        Enter       Accept highlighted suggestion
        Esc         Close suggestions
        Tab         Switch between input, mirrors and history
        Enter/y     Copy the selected mirror's command (mirrors pane)
        d           Delete a history entry (history pane)
        Ctrl+t      Toggle dark mode
        q           Quit (outside the input)
`

const configTemplate = `# pipmirror-tui configuration
# Location: ~/.config/pipmirror-tui/config.yaml

ui:
  # Show the key hint line in the status bar (default: true)
  show_hints: true

  # Send a desktop notification when a command is copied (default: false)
  notify: false

# Extra mirrors, appended after the built-in list:
# mirrors:
#   - name: "豆瓣镜像站"
#     url: "https://pypi.doubanio.com/simple"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("pipmirror-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp()
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	storePath, err := store.StorePath()
	if err != nil {
		return fmt.Errorf("failed to locate storage: %w", err)
	}

	app := tui.NewApp(cfg, store.Open(storePath))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
