// internal/sim/ant.go
package sim

import (
	"fmt"
	"math"
)

// UnboundedRange marks a thrower with no upper range limit.
const UnboundedRange = math.MaxInt

// Ant is a stationary defender occupying a colony place. The variant set is
// closed: the unexported core accessor keeps implementations inside this
// package, so turn dispatch is a plain interface call over known types.
type Ant interface {
	Insect

	// FoodCost is the price of placing an ant built from this archetype.
	// It is spent once at placement and never stored on the instance.
	FoodCost() int

	// Blocks reports whether bees at this ant's place must sting it
	// instead of flying on. Every current variant blocks.
	Blocks() bool

	// TargetPlace returns the place this ant's attacks target, or nil.
	// Non-ranged ants always return nil.
	TargetPlace() *Place

	// InRangeBees returns every bee this ant could currently target.
	InRangeBees() []*Bee

	// Instantiate returns an independent copy of this ant with no place,
	// ready to be added to the graph. Archetypes themselves never enter
	// the graph.
	Instantiate() Ant

	core() *antCore
}

// Ranged is implemented by throwers and every variant that delegates to
// them.
type Ranged interface {
	Ant
	Range() (minimum, maximum int)
	Ammo() int
}

// antCore carries the state shared by every ant variant.
type antCore struct {
	unitType UnitType
	foodCost int
	health   int
	damage   int
	place    *Place
}

func (c *antCore) UnitType() UnitType { return c.unitType }
func (c *antCore) Health() int        { return c.health }
func (c *antCore) Damage() int        { return c.damage }
func (c *antCore) FoodCost() int      { return c.foodCost }
func (c *antCore) Place() *Place      { return c.place }
func (c *antCore) Blocks() bool       { return true }

func (c *antCore) TargetPlace() *Place { return nil }
func (c *antCore) InRangeBees() []*Bee { return nil }

func (c *antCore) Act(*World) {}

// ReduceHealth implements Insect. Removal goes through the place so the
// occupancy invariant holds no matter which variant embeds the core.
func (c *antCore) ReduceHealth(amount int) {
	c.health -= amount
	if c.health <= 0 && c.place != nil {
		c.place.removeAnt(c)
	}
}

func (c *antCore) core() *antCore { return c }

func (c *antCore) String() string {
	return fmt.Sprintf("%s(%d, %v)", c.unitType, c.health, c.place)
}

// Wall is an ant with no action of its own; it just blocks.
type Wall struct {
	antCore
}

// NewWall creates a wall archetype.
func NewWall(unitType UnitType, foodCost, health int) *Wall {
	return &Wall{antCore{unitType: unitType, foodCost: foodCost, health: health}}
}

func (w *Wall) Instantiate() Ant {
	clone := *w
	return &clone
}

// Harvester produces food for the colony every turn.
type Harvester struct {
	antCore
	production int
}

// NewHarvester creates a harvester archetype with the given per-turn food
// production.
func NewHarvester(unitType UnitType, foodCost, health, production int) *Harvester {
	return &Harvester{
		antCore:    antCore{unitType: unitType, foodCost: foodCost, health: health},
		production: production,
	}
}

// Production returns the food added to the colony each turn.
func (h *Harvester) Production() int { return h.production }

func (h *Harvester) Act(w *World) {
	w.food += h.production
}

func (h *Harvester) Instantiate() Ant {
	clone := *h
	return &clone
}

// Thrower attacks the nearest bee within its range each turn. Range is
// measured in hops against edge direction: 0 is the thrower's own place, 1
// covers the places leading there, and so on. Each attack spends one unit
// of ammunition; firing the last one destroys the thrower.
type Thrower struct {
	antCore
	ammo         int
	minimumRange int
	maximumRange int
}

// NewThrower creates a thrower archetype. Pass UnboundedRange as
// maximumRange for an unlimited reach.
func NewThrower(unitType UnitType, foodCost, health, damage, ammo, minimumRange, maximumRange int) *Thrower {
	return &Thrower{
		antCore:      antCore{unitType: unitType, foodCost: foodCost, health: health, damage: damage},
		ammo:         ammo,
		minimumRange: minimumRange,
		maximumRange: maximumRange,
	}
}

// Range returns the inclusive hop-count bounds of the thrower's reach.
func (t *Thrower) Range() (minimum, maximum int) {
	return t.minimumRange, t.maximumRange
}

// Ammo returns the attacks the thrower has left.
func (t *Thrower) Ammo() int { return t.ammo }

func (t *Thrower) TargetPlace() *Place {
	return targetPlace(t.place, t.minimumRange, t.maximumRange)
}

func (t *Thrower) InRangeBees() []*Bee {
	return inRangeBees(t.place, t.minimumRange, t.maximumRange)
}

func (t *Thrower) Act(w *World) {
	target := t.TargetPlace()
	if target == nil {
		return
	}
	bee := target.bees[w.rng.Intn(len(target.bees))]
	bee.ReduceHealth(t.damage)
	t.ammo--
	if t.ammo <= 0 {
		t.ReduceHealth(t.health)
	}
}

func (t *Thrower) Instantiate() Ant {
	clone := *t
	return &clone
}

// PhalanxThrower is a thrower whose damage each turn equals the number of
// adjacent source places currently holding an ant.
type PhalanxThrower struct {
	Thrower
}

// NewPhalanxThrower creates a phalanx thrower archetype. Its damage field
// is recomputed every turn, so none is taken here.
func NewPhalanxThrower(unitType UnitType, foodCost, health, ammo, minimumRange, maximumRange int) *PhalanxThrower {
	return &PhalanxThrower{*NewThrower(unitType, foodCost, health, 0, ammo, minimumRange, maximumRange)}
}

func (p *PhalanxThrower) Act(w *World) {
	support := 0
	for _, source := range p.place.sources {
		if source.Defender() != nil {
			support++
		}
	}
	p.damage = support
	p.Thrower.Act(w)
}

func (p *PhalanxThrower) Instantiate() Ant {
	clone := *p
	return &clone
}

// FrenzyThrower is a thrower that regains one unit of ammunition whenever
// it acts at exactly 1 health.
type FrenzyThrower struct {
	Thrower
}

// NewFrenzyThrower creates a frenzy thrower archetype.
func NewFrenzyThrower(unitType UnitType, foodCost, health, damage, ammo, minimumRange, maximumRange int) *FrenzyThrower {
	return &FrenzyThrower{*NewThrower(unitType, foodCost, health, damage, ammo, minimumRange, maximumRange)}
}

func (f *FrenzyThrower) Act(w *World) {
	if f.health == 1 {
		f.ammo++
	}
	f.Thrower.Act(w)
}

func (f *FrenzyThrower) Instantiate() Ant {
	clone := *f
	return &clone
}

// GuardedHarvester is a harvester that only dares to work under cover: it
// self-destructs at the start of its action unless some adjacent source
// place holds a ranged ant.
type GuardedHarvester struct {
	Harvester
}

// NewGuardedHarvester creates a guarded harvester archetype.
func NewGuardedHarvester(unitType UnitType, foodCost, health, production int) *GuardedHarvester {
	return &GuardedHarvester{*NewHarvester(unitType, foodCost, health, production)}
}

func (g *GuardedHarvester) Act(w *World) {
	for _, source := range g.place.sources {
		if _, ok := source.Defender().(Ranged); ok {
			g.Harvester.Act(w)
			return
		}
	}
	g.ReduceHealth(g.health)
}

func (g *GuardedHarvester) Instantiate() Ant {
	clone := *g
	return &clone
}
