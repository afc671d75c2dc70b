package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"badgagotchi/internal/pet"
	"badgagotchi/internal/score"
)

// Testable time function
var TimeNow = time.Now

const messageDuration = 3 * time.Second

// Model represents the game state. It owns the only copy of the pet.
type Model struct {
	State          pet.State
	Rules          pet.Rules
	Keys           map[string]pet.Action
	Scores         score.Keeper
	FrameInterval  time.Duration
	LastFrame      time.Time
	Minimised      bool
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation
	Best           time.Duration
	NewBest        bool
}

type frameMsg time.Time
type animTickMsg struct {
	started time.Time
}

// NewModel creates a new game model
func NewModel(rules pet.Rules, keys map[string]pet.Action, scores score.Keeper, frame time.Duration) Model {
	m := Model{
		State:         pet.Reset(rules),
		Rules:         rules,
		Keys:          keys,
		Scores:        scores,
		FrameInterval: frame,
	}
	if scores != nil {
		m.Best = scores.Best()
	}
	m.setMessage(pet.MessageHello)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return frame(m.FrameInterval)
}

func frame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "m":
			m.Minimised = !m.Minimised
			log.Printf("Minimised: %t", m.Minimised)
			return m, nil
		case "r":
			if pet.IsGameOver(m.State) {
				m.restart()
			}
			return m, nil
		}

		if action, ok := m.Keys[msg.String()]; ok {
			if m.act(action) {
				return m, animTick(m.Animation.StartTime)
			}
		}

	case frameMsg:
		m.step(time.Time(msg))
		return m, frame(m.FrameInterval)

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

// step advances the simulation to the frame time t
func (m *Model) step(t time.Time) {
	var dt time.Duration
	if !m.LastFrame.IsZero() {
		dt = t.Sub(m.LastFrame)
	}
	m.LastFrame = t

	wasAlive := m.State.Alive
	if m.Minimised {
		m.State = pet.TickBackground(m.State, m.Rules, dt)
	} else {
		m.State = pet.Tick(m.State, m.Rules, dt)
	}
	if wasAlive && pet.IsGameOver(m.State) {
		m.finishGame()
	}
}

// act applies a button press. Dead pets ignore it.
func (m *Model) act(action pet.Action) bool {
	if pet.IsGameOver(m.State) {
		return false
	}
	// Pressing a button brings the app back to the foreground
	m.Minimised = false

	m.State = pet.ApplyAction(m.State, m.Rules, action)
	log.Printf("%s: hunger %d, happiness %d, energy %d", action, m.State.Hunger, m.State.Happiness, m.State.Energy)

	if pet.IsGameOver(m.State) {
		m.finishGame()
		return false
	}

	m.setMessage(action.Message())
	m.startAnimation(animationFor(action))
	return true
}

func (m *Model) finishGame() {
	m.Animation = Animation{}
	log.Printf("Pet died of %s after %s", m.State.Cause, m.State.Elapsed)

	if m.Scores == nil {
		return
	}
	rec, newBest, err := m.Scores.Submit(m.State.Elapsed, m.State.Cause)
	if err != nil {
		log.Printf("Error saving score: %v", err)
	}
	m.Best = rec.Best
	m.NewBest = newBest
}

func (m *Model) restart() {
	m.State = pet.Reset(m.Rules)
	m.NewBest = false
	m.Minimised = false
	m.Animation = Animation{}
	m.setMessage(pet.MessageHello)
	log.Printf("New pet hatched")
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = TimeNow().Add(messageDuration)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: TimeNow(),
	}
}
