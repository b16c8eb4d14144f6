// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-colony-defense/internal/config"
	"go-colony-defense/internal/event"
	"go-colony-defense/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// StatusIndicator показывает еду и номер хода в углу экрана.
type StatusIndicator struct {
	fontFace font.Face
}

func NewStatusIndicator() *StatusIndicator {
	return &StatusIndicator{fontFace: basicfont.Face7x13}
}

// Draw отрисовывает индикатор.
func (i *StatusIndicator) Draw(screen *ebiten.Image, food, turn int) {
	label := fmt.Sprintf("Food: %d   Turn: %d", food, turn)
	text.Draw(screen, label, i.fontFace, 16, 24, config.TextLightColor)
}

// OutcomeBanner подписан на событие GameEnded и показывает результат
// партии поверх поля.
type OutcomeBanner struct {
	fontFace font.Face
	outcome  sim.Outcome
}

func NewOutcomeBanner(dispatcher *event.Dispatcher) *OutcomeBanner {
	banner := &OutcomeBanner{fontFace: basicfont.Face7x13}
	dispatcher.Subscribe(event.GameEnded, banner)
	return banner
}

// OnEvent реализует интерфейс event.Listener.
func (b *OutcomeBanner) OnEvent(e event.Event) {
	if outcome, ok := e.Data.(sim.Outcome); ok {
		b.outcome = outcome
	}
}

// Draw отрисовывает баннер, если игра окончена.
func (b *OutcomeBanner) Draw(screen *ebiten.Image) {
	if b.outcome == "" {
		return
	}
	var label string
	var clr color.Color
	if b.outcome == sim.OutcomeWin {
		label = "YOU WIN: THE COLONY HOLDS"
		clr = config.WinColor
	} else {
		label = "YOU LOSE: THE QUEEN HAS FALLEN"
		clr = config.LossColor
	}
	bounds := text.BoundString(b.fontFace, label)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(screen, label, b.fontFace, (config.ScreenWidth-w)/2, config.ScreenHeight/3, clr)
}
