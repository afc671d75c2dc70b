// Package screen lays out the badge display. Coordinates are relative to the
// centre of the round 240x240 screen, the way the badge OS draws; hosts
// convert them with ToScreen.
package screen

import (
	"fmt"
	"image/color"
	"time"

	"badgagotchi/internal/pet"
)

// Screen geometry
const (
	Width  = 240
	Height = 240

	BarWidth   = 130
	BarHeight  = 12
	BarXOffset = 10
	LabelGap   = 50 // Label starts this far left of the bar

	PetX    = -30
	PetY    = -105
	PetSize = 60
	EyeSize = 10
	EyeY    = -85
	EyeX    = 15 // Eyes sit at ±EyeX

	MessageX = -40
	MessageY = -15

	HintX     = -30
	HintY     = 65
	HintSpace = 12
)

// Colours
var (
	BarBackground = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	HungerColour  = color.RGBA{R: 255, G: 178, B: 0, A: 255}
	HappyColour   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	EnergyColour  = color.RGBA{R: 77, G: 153, B: 255, A: 255}
	HintColour    = color.RGBA{R: 178, G: 178, B: 178, A: 255}
	EyeColour     = color.RGBA{A: 255}

	PetPink   = color.RGBA{R: 255, G: 128, B: 204, A: 255}
	PetGreen  = color.RGBA{G: 255, A: 255}
	PetPurple = color.RGBA{R: 128, G: 77, B: 153, A: 255}
	PetBlue   = color.RGBA{G: 128, B: 255, A: 255}
	PetGrey   = color.RGBA{R: 102, G: 102, B: 102, A: 255}
)

// Controls is the hint block shown under the bars
var Controls = []string{
	"UP=Feed",
	"RIGHT=Play",
	"CONFIRM=Rest",
	"CANCEL=Exit",
}

// Bar is one stat bar
type Bar struct {
	Label  string
	Value  int
	Colour color.RGBA
	Y      int
}

// Bars returns the hunger, happiness and energy bars top to bottom
func Bars(s pet.State) []Bar {
	return []Bar{
		{Label: "Hunger:", Value: s.Hunger, Colour: HungerColour, Y: 5},
		{Label: "Happy:", Value: s.Happiness, Colour: HappyColour, Y: 20},
		{Label: "Energy:", Value: s.Energy, Colour: EnergyColour, Y: 35},
	}
}

// BarX is the left edge of every bar
func BarX() int {
	return -BarWidth/2 + BarXOffset
}

// FillWidth returns how much of a bar of the given width value fills.
// Out-of-range values are clamped.
func FillWidth(value, width int) int {
	value = max(pet.MinStat, min(value, pet.MaxStat))
	return value * width / pet.MaxStat
}

// PetColour picks the body colour, most urgent need first
func PetColour(s pet.State, r pet.Rules) color.RGBA {
	switch {
	case !s.Alive:
		return PetGrey
	case s.Hunger < pet.CriticalStat:
		return PetGreen
	case s.Energy < pet.CriticalStat:
		return PetPurple
	case s.Happiness < r.LowStatThreshold:
		return PetBlue
	default:
		return PetPink
	}
}

// ToScreen converts centre-relative coordinates to pixel coordinates
func ToScreen(x, y int) (int, int) {
	return x + Width/2, y + Height/2
}

// FormatDuration renders a survival time as m:ss, or h:mm:ss past an hour
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
