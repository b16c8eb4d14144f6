// internal/ui/panel.go
package ui

import (
	"fmt"

	"go-colony-defense/internal/config"
	"go-colony-defense/internal/defs"
	"go-colony-defense/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const slotWidth = 110.0

// ArchetypePanel — нижняя панель с каталогом муравьёв. Клик по слоту
// выбирает архетип для размещения.
type ArchetypePanel struct {
	archetypes []sim.Ant
	fontFace   font.Face
	y          float32
}

// NewArchetypePanel создает панель для данного каталога.
func NewArchetypePanel(archetypes []sim.Ant) *ArchetypePanel {
	return &ArchetypePanel{
		archetypes: archetypes,
		fontFace:   basicfont.Face7x13,
		y:          float32(config.ScreenHeight - config.PanelHeight),
	}
}

// SlotAt возвращает индекс слота под точкой или -1.
func (p *ArchetypePanel) SlotAt(x, y int) int {
	if float32(y) < p.y {
		return -1
	}
	index := x / slotWidth
	if index < 0 || index >= len(p.archetypes) {
		return -1
	}
	return index
}

// Draw отрисовывает панель; selected — индекс выбранного слота или -1.
func (p *ArchetypePanel) Draw(screen *ebiten.Image, selected int, food int) {
	vector.DrawFilledRect(screen, 0, p.y,
		float32(config.ScreenWidth), float32(config.PanelHeight), config.PanelColor, true)

	for i, archetype := range p.archetypes {
		x := float32(i * slotWidth)
		cx := x + slotWidth/2
		cy := p.y + float32(config.PanelHeight)/2 - 8

		radius := 10.0
		clr := config.TextLightColor
		if def, ok := defs.AntDefs[string(archetype.UnitType())]; ok {
			radius = def.Visuals.Radius
			clr = def.Visuals.Color
		}
		vector.DrawFilledCircle(screen, cx, cy, float32(radius), clr, true)
		if i == selected {
			vector.StrokeCircle(screen, cx, cy, float32(radius)+4,
				float32(config.StrokeWidth), config.SelectionColor, true)
		}

		affordable := food >= archetype.FoodCost()
		label := fmt.Sprintf("%d:%s (%d)", i+1, archetype.UnitType(), archetype.FoodCost())
		labelColor := config.TextLightColor
		if !affordable {
			labelColor = config.EdgeColor
		}
		bounds := text.BoundString(p.fontFace, label)
		w := bounds.Max.X - bounds.Min.X
		text.Draw(screen, label, p.fontFace, int(cx)-w/2, int(p.y)+int(config.PanelHeight)-14, labelColor)
	}
}
