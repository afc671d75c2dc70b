// Package badge runs the pet in a window laid out like the 240x240 badge
// screen. Arrow keys stand in for the badge buttons.
package badge

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"badgagotchi/internal/pet"
	"badgagotchi/internal/score"
	"badgagotchi/internal/screen"
)

const (
	windowScale     = 2
	messageDuration = 3 * time.Second
	charWidth       = 6 // debug font glyph width
)

// Game is the ebiten host. It owns the only copy of the pet.
type Game struct {
	State  pet.State
	Rules  pet.Rules
	Scores score.Keeper

	Message     string
	messageLeft time.Duration
	Best        time.Duration
	NewBest     bool
}

// NewGame creates a game with a fresh pet
func NewGame(rules pet.Rules, scores score.Keeper) *Game {
	g := &Game{
		State:  pet.Reset(rules),
		Rules:  rules,
		Scores: scores,
	}
	if scores != nil {
		g.Best = scores.Best()
	}
	g.setMessage(pet.MessageHello)
	return g
}

// Run opens the badge window and blocks until it is closed
func Run(rules pet.Rules, scores score.Keeper) error {
	ebiten.SetWindowSize(screen.Width*windowScale, screen.Height*windowScale)
	ebiten.SetWindowTitle("Badgagotchi")

	if err := ebiten.RunGame(NewGame(rules, scores)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running badge: %w", err)
	}
	return nil
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.step(dt, !ebiten.IsFocused())

	if pet.IsGameOver(g.State) {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.act(pet.ActionFeed)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.act(pet.ActionPlay)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.act(pet.ActionRest)
	}
	return nil
}

// step advances the pet by dt. An unfocused window counts as minimised.
func (g *Game) step(dt time.Duration, background bool) {
	if g.messageLeft > 0 {
		g.messageLeft -= dt
	}

	wasAlive := g.State.Alive
	if background {
		g.State = pet.TickBackground(g.State, g.Rules, dt)
	} else {
		g.State = pet.Tick(g.State, g.Rules, dt)
	}
	if wasAlive && pet.IsGameOver(g.State) {
		g.finishGame()
	}
}

func (g *Game) act(action pet.Action) {
	g.State = pet.ApplyAction(g.State, g.Rules, action)
	log.Printf("%s: hunger %d, happiness %d, energy %d", action, g.State.Hunger, g.State.Happiness, g.State.Energy)

	if pet.IsGameOver(g.State) {
		g.finishGame()
		return
	}
	g.setMessage(action.Message())
}

func (g *Game) finishGame() {
	g.messageLeft = 0
	log.Printf("Pet died of %s after %s", g.State.Cause, g.State.Elapsed)
	if g.Scores == nil {
		return
	}
	rec, newBest, err := g.Scores.Submit(g.State.Elapsed, g.State.Cause)
	if err != nil {
		log.Printf("Error saving score: %v", err)
	}
	g.Best = rec.Best
	g.NewBest = newBest
}

func (g *Game) restart() {
	g.State = pet.Reset(g.Rules)
	g.NewBest = false
	g.setMessage(pet.MessageHello)
	log.Printf("New pet hatched")
}

func (g *Game) setMessage(msg string) {
	g.Message = msg
	g.messageLeft = messageDuration
}

// message is the action feedback while it lasts, then the mood
func (g *Game) message() string {
	if g.messageLeft > 0 {
		return g.Message
	}
	return pet.Status(g.State, g.Rules).Message()
}

// Draw implements ebiten.Game
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)

	g.drawPet(dst)
	printAt(dst, g.message(), screen.MessageX, screen.MessageY)

	if pet.IsGameOver(g.State) {
		g.drawGameOver(dst)
		return
	}

	for _, bar := range screen.Bars(g.State) {
		drawBar(dst, bar)
	}
	for i, hint := range screen.Controls {
		printAt(dst, hint, screen.HintX, screen.HintY+i*screen.HintSpace)
	}
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screen.Width, screen.Height
}

func (g *Game) drawPet(dst *ebiten.Image) {
	fillRect(dst, screen.PetX, screen.PetY, screen.PetSize, screen.PetSize, screen.PetColour(g.State, g.Rules))
	fillRect(dst, -screen.EyeX-screen.EyeSize/2, screen.EyeY, screen.EyeSize, screen.EyeSize, screen.EyeColour)
	fillRect(dst, screen.EyeX-screen.EyeSize/2, screen.EyeY, screen.EyeSize, screen.EyeSize, screen.EyeColour)
}

func (g *Game) drawGameOver(dst *ebiten.Image) {
	lines := []string{
		"Died of " + g.State.Cause,
		"Survived " + screen.FormatDuration(g.State.Elapsed),
		"Best " + screen.FormatDuration(g.Best),
	}
	if g.NewBest {
		lines = append(lines, "New best!")
	}
	lines = append(lines, "R=Restart", "CANCEL=Exit")

	for i, line := range lines {
		printAt(dst, line, -len(line)*charWidth/2, screen.BarHeight+i*screen.HintSpace)
	}
}

func drawBar(dst *ebiten.Image, bar screen.Bar) {
	x := screen.BarX()
	printAt(dst, bar.Label, x-screen.LabelGap, bar.Y-2)
	fillRect(dst, x, bar.Y, screen.BarWidth, screen.BarHeight, screen.BarBackground)
	if w := screen.FillWidth(bar.Value, screen.BarWidth); w > 0 {
		fillRect(dst, x, bar.Y, w, screen.BarHeight, bar.Colour)
	}
}

// fillRect draws in centre-relative coordinates
func fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	sx, sy := screen.ToScreen(x, y)
	vector.DrawFilledRect(dst, float32(sx), float32(sy), float32(w), float32(h), clr, false)
}

func printAt(dst *ebiten.Image, msg string, x, y int) {
	sx, sy := screen.ToScreen(x, y)
	ebitenutil.DebugPrintAt(dst, msg, sx, sy)
}
