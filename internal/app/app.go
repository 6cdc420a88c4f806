package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modelsweep/modelsweep/internal/bridge"
	"github.com/modelsweep/modelsweep/internal/engine"
	"github.com/modelsweep/modelsweep/internal/i18n"
	"github.com/modelsweep/modelsweep/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	EngineURL  string
	Locale     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if cfg.Locale != "" {
		i18n.SetLocale(cfg.Locale)
	}
	feed := engine.NewFeed(cfg.EngineURL)
	defer feed.Stop()

	model := ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, feed, bridge.New(cfg.EngineURL))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
