// internal/render/board.go
package render

import (
	"fmt"
	"image/color"

	"go-colony-defense/internal/app"
	"go-colony-defense/internal/config"
	"go-colony-defense/internal/defs"
	"go-colony-defense/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Board draws the place graph and everything living on it, and maps screen
// coordinates back to places for input handling. It reads only the game's
// query surface.
type Board struct {
	game     *app.Game
	fontFace font.Face

	// world-to-screen transform, computed once from the place bounds
	scale            float64
	offsetX, offsetY float64
}

// NewBoard fits the world's place coordinates into the playfield above the
// archetype panel.
func NewBoard(game *app.Game) *Board {
	minX, minY := 1e18, 1e18
	maxX, maxY := -1e18, -1e18
	for _, place := range game.World.Places() {
		minX = min(minX, place.WorldX)
		maxX = max(maxX, place.WorldX)
		minY = min(minY, place.WorldY)
		maxY = max(maxY, place.WorldY)
	}

	fieldW := float64(config.ScreenWidth) - 2*config.BoardMargin
	fieldH := float64(config.ScreenHeight) - config.PanelHeight - 2*config.BoardMargin
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	scale := min(fieldW/spanX, fieldH/spanY)

	return &Board{
		game:     game,
		fontFace: basicfont.Face7x13,
		scale:    scale,
		offsetX:  config.BoardMargin - minX*scale + (fieldW-spanX*scale)/2,
		offsetY:  config.BoardMargin - minY*scale + (fieldH-spanY*scale)/2,
	}
}

// ToScreen converts a place's world coordinates to screen pixels.
func (b *Board) ToScreen(place *sim.Place) (float32, float32) {
	return float32(place.WorldX*b.scale + b.offsetX),
		float32(place.WorldY*b.scale + b.offsetY)
}

// PlaceAt returns the place whose circle covers the given screen point.
func (b *Board) PlaceAt(x, y int) *sim.Place {
	for _, place := range b.game.World.Places() {
		px, py := b.ToScreen(place)
		dx := float64(x) - float64(px)
		dy := float64(y) - float64(py)
		if dx*dx+dy*dy <= config.PlaceRadius*config.PlaceRadius {
			return place
		}
	}
	return nil
}

// Draw renders edges, target lines, places and insects.
func (b *Board) Draw(screen *ebiten.Image) {
	places := b.game.World.Places()

	for _, place := range places {
		x0, y0 := b.ToScreen(place)
		for _, destination := range place.Destinations() {
			x1, y1 := b.ToScreen(destination)
			vector.StrokeLine(screen, x0, y0, x1, y1, float32(config.StrokeWidth), config.EdgeColor, true)
		}
	}

	for _, ant := range b.game.Ants() {
		ranged, ok := ant.(sim.Ranged)
		if !ok {
			continue
		}
		target := ranged.TargetPlace()
		if target == nil {
			continue
		}
		x0, y0 := b.ToScreen(ant.Place())
		x1, y1 := b.ToScreen(target)
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(config.StrokeWidth), config.TargetLineColor, true)
	}

	for _, place := range places {
		b.drawPlace(screen, place)
	}
}

func (b *Board) drawPlace(screen *ebiten.Image, place *sim.Place) {
	x, y := b.ToScreen(place)

	fill := config.PlaceColor
	switch {
	case place == b.game.World.QueenPlace():
		fill = config.QueenPlaceColor
	case place.HealthBoost() > 0:
		fill = config.RespiteColor
	case place.CanHoldAnt():
		fill = config.ColonyPlaceColor
	case len(place.Bees()) > 0 && len(place.Sources()) == 0:
		fill = config.HivePlaceColor
	}
	vector.DrawFilledCircle(screen, x, y, float32(config.PlaceRadius), fill, true)
	vector.StrokeCircle(screen, x, y, float32(config.PlaceRadius), float32(config.PlaceStrokeWidth), config.EdgeColor, true)

	if ant := place.Defender(); ant != nil {
		antColor := color.RGBA{200, 200, 200, 255}
		radius := 9.0
		if def, ok := defs.AntDefs[string(ant.UnitType())]; ok {
			antColor = def.Visuals.Color
			radius = def.Visuals.Radius
		}
		vector.DrawFilledCircle(screen, x, y, float32(radius), antColor, true)
		b.drawCenteredLabel(screen, fmt.Sprintf("%d", ant.Health()), x, y, config.TextDarkColor)
	}

	if bees := place.Bees(); len(bees) > 0 {
		bx := x + float32(config.PlaceRadius)*0.45
		by := y - float32(config.PlaceRadius)*0.45
		vector.DrawFilledCircle(screen, bx, by, 8, config.BeeColor, true)
		b.drawCenteredLabel(screen, fmt.Sprintf("%d", len(bees)), bx, by, config.TextDarkColor)
	}
}

func (b *Board) drawCenteredLabel(screen *ebiten.Image, label string, x, y float32, clr color.Color) {
	bounds := text.BoundString(b.fontFace, label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(screen, label, b.fontFace, int(x)-w/2, int(y)+h/2, clr)
}
