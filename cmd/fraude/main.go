package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"codeberg.org/fraude/realm/internal/api"
	"codeberg.org/fraude/realm/internal/auth"
	"codeberg.org/fraude/realm/internal/config"
	"codeberg.org/fraude/realm/internal/logger"
	"codeberg.org/fraude/realm/internal/tui"
)

func main() {
	if !term.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "fraude needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}
	logger.Setup(cfg.Environment, cfg.LogFile)

	states, err := config.NewStore()
	if err != nil {
		logger.FatalErr(err, "failed to open local state")
	}

	creds := auth.NewStore(states)
	guard := auth.NewGuard(creds)
	client := api.NewClient(cfg.APIEndpoint, creds)

	app := tui.NewApp(client, creds, guard, states)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running fraude: %v\n", err)
		os.Exit(1)
	}
}
