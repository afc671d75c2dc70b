package pet

import (
	"errors"
	"math"
	"testing"
	"time"
)

// hungerOnlyRules decays hunger at 1 point per second and nothing else
func hungerOnlyRules() Rules {
	r := DefaultRules()
	r.Initial = MaxStat
	r.HungerDecay = 1
	r.HappinessDecay = 0
	r.EnergyDecay = 0
	r.LowStatPenalty = 0
	return r
}

func assertInBounds(t *testing.T, s State) {
	t.Helper()
	for name, v := range map[string]int{"hunger": s.Hunger, "happiness": s.Happiness, "energy": s.Energy} {
		if v < MinStat || v > MaxStat {
			t.Fatalf("%s out of bounds: %d", name, v)
		}
	}
}

func TestReset(t *testing.T) {
	r := DefaultRules()
	s := Reset(r)

	if s.Hunger != InitialStat || s.Happiness != InitialStat || s.Energy != InitialStat {
		t.Errorf("Expected all stats at %d, got %d/%d/%d", InitialStat, s.Hunger, s.Happiness, s.Energy)
	}
	if !s.Alive {
		t.Error("New pet should be alive")
	}
	if s.Elapsed != 0 {
		t.Errorf("Expected zero elapsed time, got %v", s.Elapsed)
	}
	if s.Cause != "" {
		t.Errorf("Expected no cause of death, got %q", s.Cause)
	}

	t.Run("Ignores prior state", func(t *testing.T) {
		dead := Tick(Reset(r), r, time.Hour)
		if dead.Alive {
			t.Fatal("Expected pet to die after an hour of neglect")
		}
		if fresh := Reset(r); fresh != Reset(r) || !fresh.Alive {
			t.Error("Reset should always return the same initial state")
		}
	})
}

func TestTick(t *testing.T) {
	t.Run("Decay to zero ends the game", func(t *testing.T) {
		r := hungerOnlyRules()
		s := Tick(Reset(r), r, 100*time.Second)

		if s.Hunger != 0 {
			t.Errorf("Expected hunger 0, got %d", s.Hunger)
		}
		if s.Alive {
			t.Error("Pet should be dead once hunger reaches 0")
		}
		if s.Cause != CauseStarvation {
			t.Errorf("Expected cause %q, got %q", CauseStarvation, s.Cause)
		}
		if !IsGameOver(s) {
			t.Error("IsGameOver should report a dead pet")
		}
	})

	t.Run("Per-stat rates", func(t *testing.T) {
		r := DefaultRules()
		r.Initial = MaxStat
		r.HungerDecay = 2
		r.HappinessDecay = 1
		r.EnergyDecay = 0.5
		s := Tick(Reset(r), r, 10*time.Second)

		if s.Hunger != 80 {
			t.Errorf("Expected hunger 80, got %d", s.Hunger)
		}
		if s.Happiness != 90 {
			t.Errorf("Expected happiness 90, got %d", s.Happiness)
		}
		if s.Energy != 95 {
			t.Errorf("Expected energy 95, got %d", s.Energy)
		}
		if s.Elapsed != 10*time.Second {
			t.Errorf("Expected elapsed 10s, got %v", s.Elapsed)
		}
	})

	t.Run("Small frames accumulate", func(t *testing.T) {
		r := hungerOnlyRules()
		s := Reset(r)
		// 16 frames of 125ms = 2s at 1 point per second
		for i := 0; i < 16; i++ {
			s = Tick(s, r, 125*time.Millisecond)
		}
		if s.Hunger != 98 {
			t.Errorf("Expected hunger 98 after 2s of frames, got %d", s.Hunger)
		}
	})

	t.Run("Negative delta is ignored", func(t *testing.T) {
		r := hungerOnlyRules()
		start := Tick(Reset(r), r, 10*time.Second)
		s := Tick(start, r, -time.Minute)
		if s != start {
			t.Errorf("Expected negative delta to be a no-op, got %+v", s)
		}
	})

	t.Run("Negative delta does not revive", func(t *testing.T) {
		r := hungerOnlyRules()
		dead := Tick(Reset(r), r, 200*time.Second)
		s := Tick(dead, r, -time.Hour)
		if s.Alive || s.Hunger != 0 {
			t.Errorf("Dead pet should stay dead, got %+v", s)
		}
	})

	t.Run("Low stats drain happiness", func(t *testing.T) {
		r := hungerOnlyRules()
		r.LowStatPenalty = 2
		s := Reset(r)
		s.Hunger = LowStatThreshold - 1
		s = Tick(s, r, 5*time.Second)
		if s.Happiness != MaxStat-10 {
			t.Errorf("Expected happiness %d, got %d", MaxStat-10, s.Happiness)
		}
	})

	t.Run("Monotonic without actions", func(t *testing.T) {
		r := DefaultRules()
		s := Reset(r)
		for i := 0; i < 200 && s.Alive; i++ {
			next := Tick(s, r, 137*time.Millisecond)
			if next.Hunger > s.Hunger || next.Happiness > s.Happiness || next.Energy > s.Energy {
				t.Fatalf("Stats increased during decay: %+v -> %+v", s, next)
			}
			assertInBounds(t, next)
			s = next
		}
	})
}

func TestTickBackground(t *testing.T) {
	r := hungerOnlyRules()
	r.BackgroundScale = 0.5

	fg := Tick(Reset(r), r, 20*time.Second)
	bg := TickBackground(Reset(r), r, 20*time.Second)

	if lossFg, lossBg := MaxStat-fg.Hunger, MaxStat-bg.Hunger; lossBg*2 != lossFg {
		t.Errorf("Expected background loss to be half of %d, got %d", lossFg, lossBg)
	}
	if bg.Elapsed != 20*time.Second {
		t.Errorf("Background time should still count towards survival, got %v", bg.Elapsed)
	}
}

func TestApplyAction(t *testing.T) {
	r := DefaultRules()
	r.FeedAmount = 20

	tests := []struct {
		name   string
		start  State
		action Action
		want   State
	}{
		{
			name:   "Feed adds hunger",
			start:  State{Hunger: 50, Happiness: 50, Energy: 50, Alive: true},
			action: ActionFeed,
			want:   State{Hunger: 70, Happiness: 50, Energy: 50, Alive: true},
		},
		{
			name:   "Feed clamps at max",
			start:  State{Hunger: MaxStat, Happiness: 50, Energy: 50, Alive: true},
			action: ActionFeed,
			want:   State{Hunger: MaxStat, Happiness: 50, Energy: 50, Alive: true},
		},
		{
			name:   "Play adds happiness and tires the pet",
			start:  State{Hunger: 50, Happiness: 50, Energy: 50, Alive: true},
			action: ActionPlay,
			want:   State{Hunger: 40, Happiness: 80, Energy: 40, Alive: true},
		},
		{
			name:   "Rest adds energy",
			start:  State{Hunger: 50, Happiness: 50, Energy: 90, Alive: true},
			action: ActionRest,
			want:   State{Hunger: 50, Happiness: 50, Energy: MaxStat, Alive: true},
		},
		{
			name:   "Unknown action is ignored",
			start:  State{Hunger: 50, Happiness: 50, Energy: 50, Alive: true},
			action: ActionNone,
			want:   State{Hunger: 50, Happiness: 50, Energy: 50, Alive: true},
		},
		{
			name:   "Play can exhaust the pet",
			start:  State{Hunger: 50, Happiness: 50, Energy: 5, Alive: true},
			action: ActionPlay,
			want:   State{Hunger: 40, Happiness: 80, Energy: 0, Alive: false, Cause: CauseExhaustion},
		},
		{
			name:   "Dead pets ignore actions",
			start:  State{Hunger: 0, Happiness: 50, Energy: 50, Cause: CauseStarvation},
			action: ActionFeed,
			want:   State{Hunger: 0, Happiness: 50, Energy: 50, Cause: CauseStarvation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyAction(tt.start, r, tt.action)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRepeatedFeedAtMax(t *testing.T) {
	r := DefaultRules()
	s := State{Hunger: MaxStat, Happiness: 50, Energy: 50, Alive: true}
	for i := 0; i < 5; i++ {
		s = ApplyAction(s, r, ActionFeed)
		if s.Hunger != MaxStat {
			t.Fatalf("Feed %d: expected hunger %d, got %d", i, MaxStat, s.Hunger)
		}
	}
}

func TestGameOverIsSticky(t *testing.T) {
	r := DefaultRules()
	dead := Tick(Reset(r), r, time.Hour)
	if dead.Alive {
		t.Fatal("Expected pet to be dead")
	}

	s := dead
	for _, a := range []Action{ActionFeed, ActionPlay, ActionRest} {
		s = ApplyAction(s, r, a)
		s = Tick(s, r, time.Second)
		s = TickBackground(s, r, time.Second)
	}
	if s != dead {
		t.Errorf("Dead state changed: %+v -> %+v", dead, s)
	}
}

func TestStatsStayInBounds(t *testing.T) {
	r := DefaultRules()
	s := Reset(r)
	actions := []Action{ActionFeed, ActionPlay, ActionRest, ActionFeed, ActionFeed, ActionRest}
	for i := 0; i < 300; i++ {
		if i%3 == 0 {
			s = ApplyAction(s, r, actions[i%len(actions)])
		} else {
			s = Tick(s, r, time.Duration(i%7)*100*time.Millisecond)
		}
		assertInBounds(t, s)
	}
}

func TestCauseOfDeathPriority(t *testing.T) {
	tests := []struct {
		name  string
		start State
		want  string
	}{
		{"Hunger first", State{Hunger: 1, Happiness: 1, Energy: 1, Alive: true}, CauseStarvation},
		{"Energy before happiness", State{Hunger: 50, Happiness: 1, Energy: 1, Alive: true}, CauseExhaustion},
		{"Happiness alone", State{Hunger: 50, Happiness: 1, Energy: 50, Alive: true}, CauseBoredom},
	}

	r := DefaultRules()
	r.HungerDecay, r.HappinessDecay, r.EnergyDecay = 1, 1, 1
	r.LowStatPenalty = 0

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Tick(tt.start, r, 2*time.Second)
			if s.Alive {
				t.Fatal("Expected pet to die")
			}
			if s.Cause != tt.want {
				t.Errorf("Expected cause %q, got %q", tt.want, s.Cause)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"feed", ActionFeed},
		{" Play ", ActionPlay},
		{"rest", ActionRest},
		{"sleep", ActionRest},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if back, _ := ParseAction(got.String()); back != got {
				t.Errorf("String() %q does not parse back to %v", got.String(), got)
			}
		})
	}

	if _, err := ParseAction("dance"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

func TestRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("Default rules should be valid: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Rules)
	}{
		{"Zero initial", func(r *Rules) { r.Initial = 0 }},
		{"Initial above max", func(r *Rules) { r.Initial = MaxStat + 1 }},
		{"Negative decay", func(r *Rules) { r.EnergyDecay = -1 }},
		{"Negative penalty", func(r *Rules) { r.LowStatPenalty = -0.5 }},
		{"Zero feed", func(r *Rules) { r.FeedAmount = 0 }},
		{"Negative play cost", func(r *Rules) { r.PlayHungerCost = -1 }},
		{"Threshold above max", func(r *Rules) { r.LowStatThreshold = MaxStat + 1 }},
		{"Background scale above one", func(r *Rules) { r.BackgroundScale = 1.5 }},
		{"NaN decay", func(r *Rules) { r.HungerDecay = math.NaN() }},
		{"Infinite decay", func(r *Rules) { r.HappinessDecay = math.Inf(1) }},
		{"NaN penalty", func(r *Rules) { r.LowStatPenalty = math.NaN() }},
		{"NaN background scale", func(r *Rules) { r.BackgroundScale = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.modify(&r)
			if err := r.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		want      Mood
		wantLabel string
	}{
		{"Dead", State{Hunger: 0, Happiness: 50, Energy: 50}, MoodDead, "💀 Game over"},
		{"Hungry beats tired", State{Hunger: 10, Happiness: 50, Energy: 10, Alive: true}, MoodHungry, "🙀 I'm hungry!"},
		{"Tired", State{Hunger: 50, Happiness: 10, Energy: 10, Alive: true}, MoodTired, "😾 So sleepy..."},
		{"Bored", State{Hunger: 50, Happiness: 10, Energy: 50, Alive: true}, MoodBored, "😿 Urgh, I'm Bored!"},
		{"Great", State{Hunger: 50, Happiness: 50, Energy: 50, Alive: true}, MoodGreat, "😸 This is Great!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.state, DefaultRules()); got != tt.want {
				t.Errorf("Expected mood %v, got %v", tt.want, got)
			}
			if got := StatusWithLabel(tt.state, DefaultRules()); got != tt.wantLabel {
				t.Errorf("Expected label %q, got %q", tt.wantLabel, got)
			}
		})
	}
}

func TestStatusFollowsRulesThreshold(t *testing.T) {
	r := DefaultRules()
	r.LowStatThreshold = 50
	s := State{Hunger: 40, Happiness: 60, Energy: 60, Alive: true}

	if got := Status(s, DefaultRules()); got != MoodGreat {
		t.Errorf("Expected %v with the default threshold, got %v", MoodGreat, got)
	}
	if got := Status(s, r); got != MoodHungry {
		t.Errorf("Expected %v with threshold 50, got %v", MoodHungry, got)
	}
}

func TestActionMessages(t *testing.T) {
	if ActionFeed.Message() != MessageFed || ActionPlay.Message() != MessagePlayed || ActionRest.Message() != MessageRested {
		t.Error("Action messages do not match the status constants")
	}
	if ActionNone.Message() != "" {
		t.Errorf("Expected no message for ActionNone, got %q", ActionNone.Message())
	}
}
