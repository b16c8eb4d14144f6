// internal/sim/archetype.go
package sim

import (
	"fmt"

	"go-colony-defense/internal/defs"
)

// NewArchetype builds the immutable template ant described by def. The
// template never enters the graph; PlaceAnt copies it via Instantiate.
func NewArchetype(def defs.AntDefinition) (Ant, error) {
	unitType := UnitType(def.ID)
	maximumRange := UnboundedRange
	if def.MaxRange != nil {
		maximumRange = *def.MaxRange
	}

	switch def.Kind {
	case defs.AntKindWall:
		return NewWall(unitType, def.FoodCost, def.Health), nil
	case defs.AntKindHarvester:
		return NewHarvester(unitType, def.FoodCost, def.Health, def.Production), nil
	case defs.AntKindThrower:
		return NewThrower(unitType, def.FoodCost, def.Health, def.Damage, def.Ammo, def.MinRange, maximumRange), nil
	case defs.AntKindPhalanxThrower:
		return NewPhalanxThrower(unitType, def.FoodCost, def.Health, def.Ammo, def.MinRange, maximumRange), nil
	case defs.AntKindFrenzyThrower:
		return NewFrenzyThrower(unitType, def.FoodCost, def.Health, def.Damage, def.Ammo, def.MinRange, maximumRange), nil
	case defs.AntKindGuardedHarvester:
		return NewGuardedHarvester(unitType, def.FoodCost, def.Health, def.Production), nil
	default:
		return nil, fmt.Errorf("unknown ant kind %q in definition %q", def.Kind, def.ID)
	}
}

// BuildArchetypes builds the whole catalog in the library's player-facing
// order. It fails on the first definition it cannot build.
func BuildArchetypes(catalog []string, library map[string]defs.AntDefinition) ([]Ant, error) {
	archetypes := make([]Ant, 0, len(catalog))
	for _, id := range catalog {
		def, ok := library[id]
		if !ok {
			return nil, fmt.Errorf("ant definition not found for ID: %s", id)
		}
		archetype, err := NewArchetype(def)
		if err != nil {
			return nil, err
		}
		archetypes = append(archetypes, archetype)
	}
	return archetypes, nil
}
