package pet

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrUnknownAction is returned by ParseAction for names it does not know
var ErrUnknownAction = errors.New("unknown action")

// Action is a button-triggered care action
type Action int

const (
	ActionNone Action = iota
	ActionFeed
	ActionPlay
	ActionRest
)

// String returns the config/log name of the action
func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionRest:
		return "rest"
	default:
		return "none"
	}
}

// Message returns the feedback line shown after the action
func (a Action) Message() string {
	switch a {
	case ActionFeed:
		return MessageFed
	case ActionPlay:
		return MessagePlayed
	case ActionRest:
		return MessageRested
	default:
		return ""
	}
}

// ParseAction maps a name like "feed" to its Action
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "feed":
		return ActionFeed, nil
	case "play":
		return ActionPlay, nil
	case "rest", "sleep":
		return ActionRest, nil
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Rules holds the tuning of the simulation. Decay rates are points per second.
type Rules struct {
	Initial          int
	HungerDecay      float64
	HappinessDecay   float64
	EnergyDecay      float64
	FeedAmount       int
	PlayAmount       int
	RestAmount       int
	PlayEnergyCost   int
	PlayHungerCost   int
	LowStatThreshold int
	LowStatPenalty   float64
	BackgroundScale  float64
}

// DefaultRules returns the tuning used on the badge
func DefaultRules() Rules {
	return Rules{
		Initial:          InitialStat,
		HungerDecay:      HungerDecayRate,
		HappinessDecay:   HappinessDecayRate,
		EnergyDecay:      EnergyDecayRate,
		FeedAmount:       FeedAmount,
		PlayAmount:       PlayAmount,
		RestAmount:       RestAmount,
		PlayEnergyCost:   PlayEnergyCost,
		PlayHungerCost:   PlayHungerCost,
		LowStatThreshold: LowStatThreshold,
		LowStatPenalty:   LowStatPenalty,
		BackgroundScale:  BackgroundScale,
	}
}

// Validate reports the first rule that would break the stat bounds
func (r Rules) Validate() error {
	if r.Initial <= MinStat || r.Initial > MaxStat {
		return fmt.Errorf("initial stat %d out of range 1..%d", r.Initial, MaxStat)
	}
	if !finite(r.HungerDecay, r.HappinessDecay, r.EnergyDecay, r.LowStatPenalty, r.BackgroundScale) {
		return fmt.Errorf("decay rates, penalty and background scale must be finite numbers")
	}
	if r.HungerDecay < 0 || r.HappinessDecay < 0 || r.EnergyDecay < 0 {
		return fmt.Errorf("decay rates must not be negative")
	}
	if r.LowStatPenalty < 0 {
		return fmt.Errorf("low stat penalty must not be negative")
	}
	if r.FeedAmount <= 0 || r.PlayAmount <= 0 || r.RestAmount <= 0 {
		return fmt.Errorf("action gains must be positive")
	}
	if r.PlayEnergyCost < 0 || r.PlayHungerCost < 0 {
		return fmt.Errorf("play costs must not be negative")
	}
	if r.LowStatThreshold < MinStat || r.LowStatThreshold > MaxStat {
		return fmt.Errorf("low stat threshold %d out of range 0..%d", r.LowStatThreshold, MaxStat)
	}
	if r.BackgroundScale < 0 || r.BackgroundScale > 1 {
		return fmt.Errorf("background scale %.2f out of range 0..1", r.BackgroundScale)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// State represents the pet. It is a plain value: every operation returns
// the next state and leaves its argument untouched.
type State struct {
	Hunger    int
	Happiness int
	Energy    int
	Alive     bool
	Elapsed   time.Duration // Survival time
	Cause     string        // Set once the pet dies

	// Fractional stat accumulators
	hungerCarry    float64
	happinessCarry float64
	energyCarry    float64
}

// Reset returns a fresh pet
func Reset(r Rules) State {
	return State{
		Hunger:    r.Initial,
		Happiness: r.Initial,
		Energy:    r.Initial,
		Alive:     true,
	}
}

// IsGameOver reports whether the pet has died
func IsGameOver(s State) bool {
	return !s.Alive
}

// Tick decays the stats for dt of foreground time
func Tick(s State, r Rules, dt time.Duration) State {
	return tick(s, r, dt, 1.0)
}

// TickBackground decays the stats for dt while the app is minimised
func TickBackground(s State, r Rules, dt time.Duration) State {
	return tick(s, r, dt, r.BackgroundScale)
}

func tick(s State, r Rules, dt time.Duration, scale float64) State {
	if !s.Alive {
		return s
	}
	if dt < 0 {
		dt = 0
	}
	secs := dt.Seconds() * scale

	// Happiness suffers while another need is neglected
	happinessRate := r.HappinessDecay
	if s.Hunger < r.LowStatThreshold || s.Energy < r.LowStatThreshold {
		happinessRate += r.LowStatPenalty
	}

	s.Hunger, s.hungerCarry = decay(s.Hunger, s.hungerCarry, r.HungerDecay*secs)
	s.Happiness, s.happinessCarry = decay(s.Happiness, s.happinessCarry, happinessRate*secs)
	s.Energy, s.energyCarry = decay(s.Energy, s.energyCarry, r.EnergyDecay*secs)
	s.Elapsed += dt

	return checkDeath(s)
}

// carryEpsilon absorbs float drift from summing many small frame losses
const carryEpsilon = 1e-9

// decay removes whole points from v and carries the remainder forward
func decay(v int, carry, loss float64) (int, float64) {
	carry += loss
	whole := int(carry + carryEpsilon)
	carry -= float64(whole)
	return max(v-whole, MinStat), carry
}

// ApplyAction applies a care action. Dead pets ignore it.
func ApplyAction(s State, r Rules, a Action) State {
	if !s.Alive {
		return s
	}

	switch a {
	case ActionFeed:
		s.Hunger = min(s.Hunger+r.FeedAmount, MaxStat)
	case ActionPlay:
		s.Happiness = min(s.Happiness+r.PlayAmount, MaxStat)
		s.Energy = max(s.Energy-r.PlayEnergyCost, MinStat)
		s.Hunger = max(s.Hunger-r.PlayHungerCost, MinStat)
	case ActionRest:
		s.Energy = min(s.Energy+r.RestAmount, MaxStat)
	default:
		return s
	}

	return checkDeath(s)
}

func checkDeath(s State) State {
	switch {
	case s.Hunger <= MinStat:
		s.Cause = CauseStarvation
	case s.Energy <= MinStat:
		s.Cause = CauseExhaustion
	case s.Happiness <= MinStat:
		s.Cause = CauseBoredom
	default:
		return s
	}
	s.Alive = false
	return s
}
