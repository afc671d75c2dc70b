package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"badgagotchi/internal/badge"
	"badgagotchi/internal/config"
	"badgagotchi/internal/score"
	"badgagotchi/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("badgagotchi", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to config file (default ~/.config/badgagotchi/config.yaml)")
	host := flags.String("host", "", "where to run the pet: tui or badge (overrides config)")
	showBest := flags.Bool("best", false, "show the best survival time and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if *host != "" {
		cfg.Host = *host
	}
	if cfg.Host != config.HostTerminal && cfg.Host != config.HostBadge {
		return fmt.Errorf("unknown host %q (want %s or %s)", cfg.Host, config.HostTerminal, config.HostBadge)
	}

	f, err := tea.LogToFile(cfg.LogFile, "badgagotchi")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	store := openScores(cfg.Score)
	if *showBest {
		return ui.DisplayScore(store)
	}

	log.Printf("Starting %s host", cfg.Host)
	if cfg.Host == config.HostBadge {
		return badge.Run(cfg.Rules(), store)
	}

	model := ui.NewModel(cfg.Rules(), cfg.KeyMap(), store, cfg.FrameInterval)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}

func openScores(c config.ScoreConfig) *score.Store {
	if !c.Enabled {
		return score.NewStore(nil)
	}
	return score.Open(c.AppName)
}
