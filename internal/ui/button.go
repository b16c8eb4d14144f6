// internal/ui/button.go
package ui

import (
	"image/color"

	"go-colony-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Label               string
	TextColor           color.Color
	BgColor             color.Color
	HoverColor          color.Color
	fontFace            font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{
		X: x, Y: y, Width: width, Height: height,
		Label:      label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		fontFace:   basicfont.Face7x13,
	}
}

// Contains проверяет, попадает ли точка внутрь кнопки.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, float32(config.StrokeWidth), config.TextLightColor, true)

	bounds := text.BoundString(b.fontFace, b.Label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(screen, b.Label, b.fontFace,
		int(b.X)+(int(b.Width)-w)/2, int(b.Y)+(int(b.Height)+h)/2, b.TextColor)
}
