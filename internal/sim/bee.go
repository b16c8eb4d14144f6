// internal/sim/bee.go
package sim

import "fmt"

// Bee is a mobile attacker. It advances along destination edges toward the
// queen place, stinging any ant that blocks its way.
type Bee struct {
	health int
	damage int
	delay  int
	place  *Place
}

// NewBee creates a bee with the given health and damage that waits delay
// turns before taking its first action.
func NewBee(health, damage, delay int) *Bee {
	if health <= 0 {
		panic(fmt.Sprintf("a bee must start with positive health, got %d", health))
	}
	if delay < 0 {
		panic(fmt.Sprintf("a bee's delay cannot be negative, got %d", delay))
	}
	return &Bee{health: health, damage: damage, delay: delay}
}

func (b *Bee) UnitType() UnitType { return UnitBee }
func (b *Bee) Health() int        { return b.health }
func (b *Bee) Damage() int        { return b.damage }
func (b *Bee) Place() *Place      { return b.place }

// Delay returns the number of turns the bee still has to wait.
func (b *Bee) Delay() int { return b.delay }

// ReduceHealth implements Insect.
func (b *Bee) ReduceHealth(amount int) {
	b.health -= amount
	if b.health <= 0 && b.place != nil {
		b.place.RemoveInsect(b)
	}
}

// Act makes the bee sting the ant defending its place if that ant blocks,
// and fly toward the queen otherwise. A delayed bee only counts down.
func (b *Bee) Act(w *World) {
	if b.delay > 0 {
		b.delay--
		return
	}
	if defender := b.place.Defender(); defender != nil && defender.Blocks() {
		defender.ReduceHealth(b.damage)
		return
	}
	b.fly(w.rng)
}

// fly moves the bee to a uniformly random destination of its place, or
// nowhere if the place has none.
func (b *Bee) fly(rng Rand) {
	destinations := b.place.destinations
	if len(destinations) == 0 {
		return
	}
	destination := destinations[rng.Intn(len(destinations))]
	b.place.RemoveInsect(b)
	destination.AddInsect(b)
}

func (b *Bee) String() string {
	return fmt.Sprintf("Bee(%d, %v)", b.health, b.place)
}
