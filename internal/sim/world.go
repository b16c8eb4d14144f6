// internal/sim/world.go
package sim

import "fmt"

// Outcome represents whether a game should continue and, if not, why.
type Outcome string

const (
	OutcomeUnresolved Outcome = "UNRESOLVED"
	OutcomeLoss       Outcome = "LOSS"
	OutcomeWin        Outcome = "WIN"
)

// Rand is the random source the simulation draws from. *utils.PRNGService
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// World is the state of an entire game: the place graph with the insects at
// each place, the archetypes offered to the player, and the food ledger.
// All mutation happens through PlaceAnt, SacrificeAnt and TakeTurn; the
// simulation is single-threaded and turn-synchronous.
type World struct {
	places     []*Place
	queenPlace *Place
	archetypes []Ant
	food       int
	rng        Rand
}

// NewWorld builds a world from an already-constructed graph. The queen
// place is the bees' target; any bee reaching it loses the game. Places
// may be (and usually should be) pre-seeded with bees.
func NewWorld(places []*Place, queenPlace *Place, archetypes []Ant, food int, rng Rand) *World {
	if queenPlace == nil {
		panic("queen place cannot be nil")
	}
	if rng == nil {
		panic("rng cannot be nil")
	}
	return &World{
		places:     places,
		queenPlace: queenPlace,
		archetypes: archetypes,
		food:       food,
		rng:        rng,
	}
}

// Places returns every place in the world.
func (w *World) Places() []*Place { return w.places }

// QueenPlace returns the place bees are trying to reach.
func (w *World) QueenPlace() *Place { return w.queenPlace }

// Archetypes returns the catalog of placeable ants, in player-facing order.
func (w *World) Archetypes() []Ant { return w.archetypes }

// Food returns the current food balance.
func (w *World) Food() int { return w.food }

// Ants collects every ant currently deployed in the world. The list is
// recomputed on each call.
func (w *World) Ants() []Ant {
	var ants []Ant
	for _, place := range w.places {
		if defender := place.Defender(); defender != nil {
			ants = append(ants, defender)
		}
	}
	return ants
}

// Bees collects every bee currently deployed in the world.
func (w *World) Bees() []*Bee {
	var bees []*Bee
	for _, place := range w.places {
		bees = append(bees, place.bees...)
	}
	return bees
}

// PlaceAnt makes a player move to place an ant built from the given
// archetype at the given place. It returns nil without touching the world
// if the archetype is missing, the place is occupied by an ant or any bee,
// or food is short. On success the cost is debited and the new ant
// returned.
func (w *World) PlaceAnt(archetype Ant, place *Place) Ant {
	if archetype == nil || place == nil || place.Defender() != nil ||
		len(place.bees) > 0 || w.food < archetype.FoodCost() {
		return nil
	}
	w.food -= archetype.FoodCost()
	ant := archetype.Instantiate()
	place.AddInsect(ant)
	return ant
}

// SacrificeAnt makes a player move to kill one of their own ants. The food
// spent on it is not refunded. Sacrificing nil is a no-op; sacrificing an
// ant that is not placed, or that belongs to a different world, is a caller
// bug and panics.
func (w *World) SacrificeAnt(ant Ant) {
	if ant == nil {
		return
	}
	if ant.Place() == nil {
		panic(fmt.Sprintf("cannot sacrifice %v, which is already dead", ant))
	}
	owned := false
	for _, place := range w.places {
		if place.ant != nil && place.ant.core() == ant.core() {
			owned = true
			break
		}
	}
	if !owned {
		panic(fmt.Sprintf("cannot sacrifice %v, which belongs to a different game", ant))
	}
	ant.ReduceHealth(ant.Health())
}

// Outcome reports the game's current outcome without mutating anything:
// LOSS if any bee stands at the queen place, WIN if no bee remains
// anywhere, UNRESOLVED otherwise.
func (w *World) Outcome() Outcome {
	if len(w.queenPlace.bees) > 0 {
		return OutcomeLoss
	}
	if len(w.Bees()) == 0 {
		return OutcomeWin
	}
	return OutcomeUnresolved
}

// TakeTurn causes one turn of game time to pass, if possible. Every ant
// acts, then every surviving bee acts; both phases iterate over a snapshot
// taken before the phase starts, and entries that died mid-phase are
// skipped. Returns UNRESOLVED if time passed, or the terminal outcome if
// the game was already over.
func (w *World) TakeTurn() Outcome {
	if outcome := w.Outcome(); outcome != OutcomeUnresolved {
		return outcome
	}
	for _, ant := range w.Ants() {
		if ant.Place() == nil {
			continue
		}
		ant.Act(w)
	}
	for _, bee := range w.Bees() {
		if bee.place == nil {
			continue
		}
		bee.Act(w)
	}
	return OutcomeUnresolved
}
