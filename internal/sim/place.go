// internal/sim/place.go
package sim

import "fmt"

// Place is a node of the world graph. Bees travel forward along destination
// edges; the inverse source edges are maintained automatically and are what
// throwers search through. A plain place only holds bees; colony places
// additionally hold at most one ant.
type Place struct {
	// WorldX and WorldY are display coordinates. The simulation itself
	// never reads them.
	WorldX, WorldY float64

	colony      bool
	healthBoost int

	sources      []*Place
	destinations []*Place
	bees         []*Bee
	ant          Ant
}

// NewPlace creates a plain place at the given coordinates.
func NewPlace(x, y float64) *Place {
	return &Place{WorldX: x, WorldY: y}
}

// NewColonyPlace creates a place that can hold an ant.
func NewColonyPlace(x, y float64) *Place {
	return &Place{WorldX: x, WorldY: y, colony: true}
}

// NewRespite creates a colony place that boosts a bee's health by
// healthBoost whenever one enters it.
func NewRespite(x, y float64, healthBoost int) *Place {
	return &Place{WorldX: x, WorldY: y, colony: true, healthBoost: healthBoost}
}

// ConnectTo creates a directed connection from p to other; bees will travel
// from p to other. The inverse edge is recorded in other's sources, and the
// registration order of those sources is what breaks targeting ties.
func (p *Place) ConnectTo(other *Place) {
	p.destinations = append(p.destinations, other)
	other.sources = append(other.sources, p)
}

// Sources returns the places whose destinations include p. Topology is
// fixed after world construction; callers must not modify the slice.
func (p *Place) Sources() []*Place {
	return p.sources
}

// Destinations returns the places bees at p may fly to next.
func (p *Place) Destinations() []*Place {
	return p.destinations
}

// Bees returns a copy of the bees currently at p.
func (p *Place) Bees() []*Bee {
	out := make([]*Bee, len(p.bees))
	copy(out, p.bees)
	return out
}

// CanHoldAnt reports whether p is a colony place.
func (p *Place) CanHoldAnt() bool {
	return p.colony
}

// HealthBoost returns the health granted to a bee entering p.
func (p *Place) HealthBoost() int {
	return p.healthBoost
}

// Defender returns the ant occupying p, if any. A plain place always
// returns nil.
func (p *Place) Defender() Ant {
	return p.ant
}

// AddInsect adds an insect to p. Adding an ant to a plain place, a second
// ant to a colony place, or a bee that is already present is a caller bug
// and panics.
func (p *Place) AddInsect(i Insect) {
	switch v := i.(type) {
	case *Bee:
		for _, b := range p.bees {
			if b == v {
				panic(fmt.Sprintf("the bee %v cannot be added to %v twice", v, p))
			}
		}
		p.bees = append(p.bees, v)
		v.place = p
		if p.healthBoost > 0 {
			v.health += p.healthBoost
		}
	case Ant:
		if !p.colony {
			panic(fmt.Sprintf("the place %v cannot hold %v of the type %s", p, v, v.UnitType()))
		}
		if p.ant != nil {
			panic(fmt.Sprintf("the place %v cannot hold both %v and %v", p, p.ant, v))
		}
		p.ant = v
		v.core().place = p
	default:
		panic(fmt.Sprintf("the place %v cannot hold %v of the type %T", p, i, i))
	}
}

// RemoveInsect removes an insect from p. Removing an insect that is not at
// p panics.
func (p *Place) RemoveInsect(i Insect) {
	switch v := i.(type) {
	case *Bee:
		for idx, b := range p.bees {
			if b == v {
				p.bees = append(p.bees[:idx], p.bees[idx+1:]...)
				v.place = nil
				return
			}
		}
		panic(fmt.Sprintf("%v is not at %v to be removed", v, p))
	case Ant:
		if p.ant == nil || p.ant.core() != v.core() {
			panic(fmt.Sprintf("the ant %v is not at %v to be removed", v, p))
		}
		p.removeAnt(v.core())
	default:
		panic(fmt.Sprintf("%v of the type %T cannot be removed from %v", i, i, p))
	}
}

// removeAnt clears the ant slot. Used by RemoveInsect and by antCore when
// health runs out, where only the shared core is reachable.
func (p *Place) removeAnt(c *antCore) {
	if p.ant == nil || p.ant.core() != c {
		panic(fmt.Sprintf("no ant with core %p at %v to be removed", c, p))
	}
	p.ant = nil
	c.place = nil
}

func (p *Place) String() string {
	kind := "Place"
	switch {
	case p.healthBoost > 0:
		kind = "Respite"
	case p.colony:
		kind = "ColonyPlace"
	}
	return fmt.Sprintf("%s(%g, %g)", kind, p.WorldX, p.WorldY)
}
