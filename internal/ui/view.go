package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"badgagotchi/internal/pet"
	"badgagotchi/internal/screen"
)

// barCells is the width of a terminal stat bar
const barCells = 20

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	empty   lipgloss.Style
	anim    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(36),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(screen.HintColour))),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(screen.BarBackground))),

	anim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(0, 2),
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if pet.IsGameOver(m.State) {
		return m.deadView()
	}

	if m.Minimised {
		return m.minimisedView()
	}

	mood := pet.Status(m.State, m.Rules)
	title := gameStyles.title.Render(mood.Emoji() + " Badgagotchi " + mood.Emoji())

	sections := []string{
		title,
		"",
		m.renderPet(),
		gameStyles.status.Render(m.currentMessage()),
		"",
		m.renderStats(),
		"",
		gameStyles.status.Render("Alive: " + screen.FormatDuration(m.State.Elapsed) + m.bestSuffix()),
		"",
		gameStyles.menuBox.Render(gameStyles.menu.Render(strings.Join(m.helpLines(), "\n"))),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// currentMessage returns the action feedback while it lasts, then the mood
func (m Model) currentMessage() string {
	if m.Message != "" && TimeNow().Before(m.MessageExpires) {
		return m.Message
	}
	return pet.StatusWithLabel(m.State, m.Rules)
}

func (m Model) renderPet() string {
	if m.Animation.Type != AnimNone {
		return gameStyles.anim.Render(GetAnimationFrame(m.Animation))
	}
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(screen.PetColour(m.State, m.Rules)))).
		Padding(0, 4)
	return body.Render("▄▀▀▀▀▄\n█ ● ● █\n▀▄▄▄▄▀")
}

func (m Model) renderStats() string {
	var lines []string
	for _, bar := range screen.Bars(m.State) {
		lines = append(lines, renderBar(bar))
	}
	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func renderBar(bar screen.Bar) string {
	filled := screen.FillWidth(bar.Value, barCells)
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(bar.Colour)))
	return fmt.Sprintf("%-8s %s%s %3d%%",
		bar.Label,
		fill.Render(strings.Repeat("█", filled)),
		gameStyles.empty.Render(strings.Repeat("░", barCells-filled)),
		bar.Value,
	)
}

func (m Model) bestSuffix() string {
	if m.Best <= 0 {
		return ""
	}
	return "   Best: " + screen.FormatDuration(m.Best)
}

// helpLines lists the bound keys for each action, then the fixed keys
func (m Model) helpLines() []string {
	bound := make(map[pet.Action][]string)
	for key, action := range m.Keys {
		bound[action] = append(bound[action], keyLabel(key))
	}

	var lines []string
	for _, action := range []pet.Action{pet.ActionFeed, pet.ActionPlay, pet.ActionRest} {
		keys := bound[action]
		if len(keys) == 0 {
			continue
		}
		sort.Strings(keys)
		lines = append(lines, fmt.Sprintf("%-12s %s", strings.Join(keys, "/"), action))
	}
	return append(lines, "m            minimise", "q            quit")
}

func keyLabel(key string) string {
	switch key {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "right":
		return "→"
	default:
		return key
	}
}

func (m Model) minimisedView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render(pet.Status(m.State, m.Rules).Emoji()+" Badgagotchi (minimised)"),
		gameStyles.status.Render("Needs slow down while you're away."),
		gameStyles.menu.Render("m to come back • q to quit"),
	)
}

func (m Model) deadView() string {
	sections := []string{
		gameStyles.title.Render(pet.StatusEmojiDead + " Badgagotchi " + pet.StatusEmojiDead),
		"",
		gameStyles.status.Render("Your pet has passed away..."),
		gameStyles.status.Render("Cause of death: " + m.State.Cause),
		gameStyles.status.Render("Survived: " + screen.FormatDuration(m.State.Elapsed)),
	}
	if m.Best > 0 {
		sections = append(sections, gameStyles.status.Render("Best: "+screen.FormatDuration(m.Best)))
	}
	if m.NewBest {
		sections = append(sections, gameStyles.title.Render("🏆 New best! 🏆"))
	}
	sections = append(sections,
		"",
		gameStyles.status.Render("Press 'r' to hatch a new pet, 'q' to quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}
