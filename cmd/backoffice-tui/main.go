// Package main is the entry point for the back-office TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/auth"
	"github.com/hy4ri/backoffice-tui/internal/config"
	"github.com/hy4ri/backoffice-tui/internal/logger"
	"github.com/hy4ri/backoffice-tui/internal/session"
	"github.com/hy4ri/backoffice-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `backoffice-tui - Terminal back office for the marketplace admin API

USAGE:
    backoffice-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --set-token TOKEN   Store an access token in the system keyring
    --logout            Remove the stored access token
    --page NAME         Start on a page (users, restaurants, orders,
                        deliveries, auctions, tenders, bills)
    --debug             Write a debug log

CONFIGURATION:
    Config file: ~/.config/backoffice-tui/config.yaml

    Authentication is tried in this order:
    1. auth.api_token in the config file
    2. the stored token (--set-token, or BACKOFFICE_TOKEN)
    3. auth.email with the password in BACKOFFICE_PASSWORD

KEYBINDINGS:
    Pages:
        Tab/Shift+Tab   Next/previous page
        1-7             Jump to page
        r               Refresh

    Table:
        j/k             Move down/up
        h/l             Previous/next page
        /               Filter, f: choose search field
        s/S             Sort by next column / reverse
        Space           Select row, A: select page, Esc: clear
        +/-             More/fewer rows per page
        Enter           Expand card (narrow terminals)

    Actions:
        x               Page action (block, approve, advance, ...)
        d               Delete
        y               Copy IDs
        e               Export CSV

    Other:
        ?               Show help
        q               Quit
`

const configTemplate = `# Back office TUI configuration
# Location: ~/.config/backoffice-tui/config.yaml

api:
  base_url: "http://localhost:8080/api"
  timeout: "30s"

auth:
  # Option 1: a long-lived admin token
  api_token: ""

  # Option 2: log in with email; the password is read from BACKOFFICE_PASSWORD
  # email: "admin@example.com"

ui:
  rows_per_page: 10
  # Below this width tables render as cards
  narrow_breakpoint: 100
  notifications: true
  # start_page: orders
  # export_dir: ~/exports

log:
  enabled: false
  level: info
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
		setToken    string
		logout      bool
		startPage   string
		debug       bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&setToken, "set-token", "", "Store an access token")
	flag.BoolVar(&logout, "logout", false, "Remove the stored access token")
	flag.StringVar(&startPage, "page", "", "Start on the named page")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	switch {
	case showHelp:
		fmt.Print(helpText)
		return nil
	case showVersion:
		fmt.Printf("backoffice-tui version %s\n", version)
		return nil
	case initConfig:
		return createConfigTemplate()
	case setToken != "":
		if err := config.SaveToken(setToken); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		fmt.Println("Token stored.")
		return nil
	case logout:
		if err := config.ClearToken(); err != nil {
			return fmt.Errorf("failed to remove token: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	}

	return runApp(startPage, debug)
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

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Set api.base_url to your back office API")
	fmt.Println("  2. Add an api_token, or run 'backoffice-tui --set-token TOKEN'")
	fmt.Println("  3. Run 'backoffice-tui' to start")

	return nil
}

// runApp starts the main TUI application.
func runApp(startPage string, debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if debug {
		level = logger.ParseLevel("debug")
	}
	closeLog, err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled || debug,
		Dir:     cfg.Log.Dir,
		Level:   level,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer closeLog()
	}

	beeep.AppName = "Back office"

	client := api.NewClient(cfg.API.BaseURL, "")
	client.SetTimeout(cfg.Timeout())

	token, err := auth.GetAccessToken(cfg, client)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	user, err := auth.CurrentUser(client)
	if err != nil {
		// Non-fatal: the pages will report a rejected token themselves.
		logger.Warn("could not fetch current user", "err", err)
	}

	sess := session.New(token, user)
	logger.Info("starting", "version", version, "base_url", cfg.API.BaseURL)

	app := tui.NewApp(client, sess, cfg, startPage)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
