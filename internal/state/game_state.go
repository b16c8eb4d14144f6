// internal/state/game_state.go
package state

import (
	"log"

	game "go-colony-defense/internal/app"
	"go-colony-defense/internal/config"
	"go-colony-defense/internal/layout"
	"go-colony-defense/internal/render"
	"go-colony-defense/internal/sim"
	"go-colony-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние партии: принимает ввод игрока и транслирует его в
// команды ядра, отрисовывает поле и панель.
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	board     *render.Board
	panel     *ui.ArchetypePanel
	indicator *ui.StatusIndicator
	banner    *ui.OutcomeBanner
	endTurn   *ui.Button
}

func NewGameState(sm *StateMachine, opts layout.Options, seed int64) (*GameState, error) {
	gameLogic, err := game.NewGame(opts, seed)
	if err != nil {
		return nil, err
	}

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		board:     render.NewBoard(gameLogic),
		panel:     ui.NewArchetypePanel(gameLogic.Archetypes()),
		indicator: ui.NewStatusIndicator(),
		banner:    ui.NewOutcomeBanner(gameLogic.EventDispatcher),
		endTurn: ui.NewButton(
			float32(config.ScreenWidth-config.ButtonWidth-16), 16,
			float32(config.ButtonWidth), float32(config.ButtonHeight),
			"End Turn"),
	}, nil
}

func (g *GameState) Enter() {}
func (g *GameState) Exit()  {}

func (g *GameState) Update() {
	cursorX, cursorY := ebiten.CursorPosition()

	for i := 0; i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(int(ebiten.Key1) + i)) {
			g.game.SelectArchetype(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.SelectArchetype(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.EndTurn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.game.Outcome() != sim.OutcomeUnresolved {
		g.sm.SetState(NewMenuState(g.sm, layout.StandardOptions(), 0))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.endTurn.Contains(cursorX, cursorY):
			g.game.EndTurn()
		case g.panel.SlotAt(cursorX, cursorY) >= 0:
			g.game.SelectArchetype(g.panel.SlotAt(cursorX, cursorY))
		default:
			if place := g.board.PlaceAt(cursorX, cursorY); place != nil {
				if ant := g.game.PlaceSelected(place); ant == nil {
					log.Printf("Cannot place at %v", place)
				}
			}
		}
	}

	// Правый клик — пожертвовать муравьём под курсором
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if place := g.board.PlaceAt(cursorX, cursorY); place != nil {
			g.game.Sacrifice(place.Defender())
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.board.Draw(screen)
	g.panel.Draw(screen, g.game.SelectedIndex(), g.game.Food())
	g.indicator.Draw(screen, g.game.Food(), g.game.Turn())

	cursorX, cursorY := ebiten.CursorPosition()
	g.endTurn.Draw(screen, cursorX, cursorY)
	g.banner.Draw(screen)
}
