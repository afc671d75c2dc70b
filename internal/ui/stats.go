package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"badgagotchi/internal/score"
	"badgagotchi/internal/screen"
)

// ScoreModel is a simple Bubble Tea model for displaying the saved record
type ScoreModel struct {
	Record     score.Record
	Persistent bool
}

// Init implements tea.Model
func (m ScoreModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ScoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m ScoreModel) View() string {
	orNone := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	storage := "saved"
	if !m.Persistent {
		storage = "memory only"
	}

	updated := "never"
	if !m.Record.UpdatedAt.IsZero() {
		updated = m.Record.UpdatedAt.Local().Format("2006-01-02 15:04")
	}

	var s strings.Builder
	s.WriteString("╔════════════════════════════════════╗\n")
	s.WriteString("║  🏆 Badgagotchi High Score 🏆      ║\n")
	s.WriteString("╠════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Best:       %-21s ║\n", screen.FormatDuration(m.Record.Best)))
	s.WriteString(fmt.Sprintf("║  Died of:    %-21s ║\n", orNone(m.Record.BestCause)))
	s.WriteString(fmt.Sprintf("║  Games:      %-21d ║\n", m.Record.Games))
	s.WriteString(fmt.Sprintf("║  Last death: %-21s ║\n", orNone(m.Record.LastCause)))
	s.WriteString(fmt.Sprintf("║  Updated:    %-21s ║\n", updated))
	s.WriteString(fmt.Sprintf("║  Storage:    %-21s ║\n", storage))
	s.WriteString("╚════════════════════════════════════╝\n")
	s.WriteString("\nPress ESC, click, or any key to close...")

	return s.String()
}

// DisplayScore shows the saved record until a key is pressed
func DisplayScore(store *score.Store) error {
	model := ScoreModel{Record: store.Record(), Persistent: store.Persistent()}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running score display: %w", err)
	}
	return nil
}
