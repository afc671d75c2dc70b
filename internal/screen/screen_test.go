package screen

import (
	"image/color"
	"testing"
	"time"

	"badgagotchi/internal/pet"
)

func TestFillWidth(t *testing.T) {
	tests := []struct {
		name  string
		value int
		width int
		want  int
	}{
		{"Empty", 0, BarWidth, 0},
		{"Full", 100, BarWidth, BarWidth},
		{"Half", 50, BarWidth, 65},
		{"Rounds down", 33, 10, 3},
		{"Clamps below", -20, BarWidth, 0},
		{"Clamps above", 250, BarWidth, BarWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillWidth(tt.value, tt.width); got != tt.want {
				t.Errorf("FillWidth(%d, %d) = %d, want %d", tt.value, tt.width, got, tt.want)
			}
		})
	}
}

func TestBars(t *testing.T) {
	s := pet.State{Hunger: 10, Happiness: 20, Energy: 30, Alive: true}
	bars := Bars(s)

	if len(bars) != 3 {
		t.Fatalf("Expected 3 bars, got %d", len(bars))
	}
	want := []int{10, 20, 30}
	for i, b := range bars {
		if b.Value != want[i] {
			t.Errorf("Bar %d (%s): expected %d, got %d", i, b.Label, want[i], b.Value)
		}
		if i > 0 && b.Y <= bars[i-1].Y {
			t.Errorf("Bar %d should sit below bar %d", i, i-1)
		}
	}
}

func TestPetColour(t *testing.T) {
	tests := []struct {
		name  string
		state pet.State
		want  string
	}{
		{"Dead is grey", pet.State{Hunger: 0, Happiness: 50, Energy: 50}, "grey"},
		{"Starving is green", pet.State{Hunger: 10, Happiness: 10, Energy: 10, Alive: true}, "green"},
		{"Exhausted is purple", pet.State{Hunger: 50, Happiness: 10, Energy: 10, Alive: true}, "purple"},
		{"Bored is blue", pet.State{Hunger: 50, Happiness: 20, Energy: 50, Alive: true}, "blue"},
		{"Content is pink", pet.State{Hunger: 50, Happiness: 50, Energy: 50, Alive: true}, "pink"},
	}
	colours := map[string]color.RGBA{
		"grey":   PetGrey,
		"green":  PetGreen,
		"purple": PetPurple,
		"blue":   PetBlue,
		"pink":   PetPink,
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PetColour(tt.state, pet.DefaultRules()); got != colours[tt.want] {
				t.Errorf("Expected %s, got %v", tt.want, got)
			}
		})
	}
}

func TestPetColourFollowsRulesThreshold(t *testing.T) {
	r := pet.DefaultRules()
	r.LowStatThreshold = 50
	s := pet.State{Hunger: 60, Happiness: 40, Energy: 60, Alive: true}

	if got := PetColour(s, pet.DefaultRules()); got != PetPink {
		t.Errorf("Expected pink with the default threshold, got %v", got)
	}
	if got := PetColour(s, r); got != PetBlue {
		t.Errorf("Expected blue with threshold 50, got %v", got)
	}
}

func TestToScreen(t *testing.T) {
	x, y := ToScreen(0, 0)
	if x != Width/2 || y != Height/2 {
		t.Errorf("Centre should map to (%d,%d), got (%d,%d)", Width/2, Height/2, x, y)
	}
	x, y = ToScreen(BarX(), PetY)
	if x < 0 || y < 0 || x+BarWidth > Width {
		t.Errorf("Layout falls off the screen at (%d,%d)", x, y)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{1500 * time.Millisecond, "0:01"},
		{65 * time.Second, "1:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Errorf("FormatDuration(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
