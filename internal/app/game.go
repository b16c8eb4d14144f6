// internal/app/game.go
package app

import (
	"log"

	"go-colony-defense/internal/defs"
	"go-colony-defense/internal/event"
	"go-colony-defense/internal/layout"
	"go-colony-defense/internal/sim"
	"go-colony-defense/internal/utils"
)

// Game holds the running match and the surface the presentation layer
// talks to. All commands funnel into the simulation core; queries only
// read it.
type Game struct {
	World           *sim.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	selected int // index into the archetype catalog, -1 when nothing is selected
	turn     int
	outcome  sim.Outcome
}

// NewGame builds a standard world from the loaded ant library and starts a
// match. A zero seed gives a different game every run.
func NewGame(opts layout.Options, seed int64) (*Game, error) {
	if defs.AntDefs == nil {
		defs.LoadStandardAnts()
	}
	archetypes, err := sim.BuildArchetypes(defs.AntCatalog, defs.AntDefs)
	if err != nil {
		return nil, err
	}

	rng := utils.NewPRNGService(seed)
	world := layout.BuildStandard(opts, archetypes, rng)
	log.Printf("New game: %v, %d archetypes, %d bees seeded",
		opts, len(archetypes), len(world.Bees()))

	return &Game{
		World:           world,
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		selected:        -1,
		outcome:         sim.OutcomeUnresolved,
	}, nil
}

// SelectArchetype picks the catalog entry the next placement will use.
// An out-of-range index clears the selection.
func (g *Game) SelectArchetype(index int) {
	if index < 0 || index >= len(g.World.Archetypes()) {
		g.selected = -1
		return
	}
	g.selected = index
}

// SelectedIndex returns the selected catalog index, or -1.
func (g *Game) SelectedIndex() int { return g.selected }

// SelectedArchetype returns the selected archetype, or nil.
func (g *Game) SelectedArchetype() sim.Ant {
	if g.selected < 0 {
		return nil
	}
	return g.World.Archetypes()[g.selected]
}

// PlaceSelected tries to place the selected archetype at the given place.
// Returns the new ant, or nil if the selection is empty or the move is
// rejected by the game rules. Clicks on places that cannot hold an ant are
// ordinary rejections here, not caller bugs.
func (g *Game) PlaceSelected(place *sim.Place) sim.Ant {
	if place == nil || !place.CanHoldAnt() {
		return nil
	}
	ant := g.World.PlaceAnt(g.SelectedArchetype(), place)
	if ant != nil {
		g.EventDispatcher.Dispatch(event.Event{Type: event.AntPlaced, Data: ant})
	}
	return ant
}

// Sacrifice kills one of the player's placed ants. The cost is not
// refunded.
func (g *Game) Sacrifice(ant sim.Ant) {
	if ant == nil {
		return
	}
	g.World.SacrificeAnt(ant)
	g.EventDispatcher.Dispatch(event.Event{Type: event.AntSacrificed, Data: ant})
}

// EndTurn advances the world by one turn. Once the game has ended, further
// calls return the final outcome without touching the world.
func (g *Game) EndTurn() sim.Outcome {
	if g.outcome != sim.OutcomeUnresolved {
		return g.outcome
	}
	g.outcome = g.World.TakeTurn()
	if g.outcome == sim.OutcomeUnresolved {
		g.turn++
		g.EventDispatcher.Dispatch(event.Event{Type: event.TurnResolved, Data: g.turn})
	} else {
		log.Printf("Game over after %d turns: %s", g.turn, g.outcome)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameEnded, Data: g.outcome})
	}
	return g.outcome
}

// Turn returns the number of resolved turns.
func (g *Game) Turn() int { return g.turn }

// Outcome returns the match outcome as of the last EndTurn.
func (g *Game) Outcome() sim.Outcome { return g.outcome }

// Food returns the current food balance.
func (g *Game) Food() int { return g.World.Food() }

// Ants returns every deployed ant.
func (g *Game) Ants() []sim.Ant { return g.World.Ants() }

// Bees returns every deployed bee.
func (g *Game) Bees() []*sim.Bee { return g.World.Bees() }

// Archetypes returns the placeable catalog in player-facing order.
func (g *Game) Archetypes() []sim.Ant { return g.World.Archetypes() }
