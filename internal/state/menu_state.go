// internal/state/menu_state.go
package state

import (
	"log"

	"go-colony-defense/internal/config"
	"go-colony-defense/internal/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	opts layout.Options
	seed int64
}

func NewMenuState(sm *StateMachine, opts layout.Options, seed int64) *MenuState {
	return &MenuState{sm: sm, opts: opts, seed: seed}
}

func (m *MenuState) Enter() {}
func (m *MenuState) Exit()  {}

func (m *MenuState) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gameState, err := NewGameState(m.sm, m.opts, m.seed)
		if err != nil {
			log.Printf("Failed to start game: %v", err)
			return
		}
		m.sm.SetState(gameState)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	title := "ANTS VS SOME BEES"
	bounds := text.BoundString(face, title)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(screen, title, face, (config.ScreenWidth-w)/2, config.ScreenHeight/2-20, config.TextLightColor)

	hint := "click or press Enter to start"
	bounds = text.BoundString(face, hint)
	w = bounds.Max.X - bounds.Min.X
	text.Draw(screen, hint, face, (config.ScreenWidth-w)/2, config.ScreenHeight/2+10, config.EdgeColor)
}
