// internal/sim/targeting_test.go
package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classicNetwork builds the reference topology: a two-level tree of colony
// places feeding into a, which leads to z, plus one plain place g outside
// the colony.
//
//	d ─┐
//	e ─┴─ b ─┐
//	f ─┐     ├─ a ── z
//	g ─┴─ c ─┘
func classicNetwork() (z, a, b, c, d, e, f, g *Place) {
	z = NewColonyPlace(0, 0)
	a = NewColonyPlace(1, 1)
	b = NewColonyPlace(2, 2)
	c = NewColonyPlace(3, 3)
	d = NewColonyPlace(4, 4)
	e = NewColonyPlace(5, 5)
	f = NewColonyPlace(6, 6)
	g = NewPlace(7, 7)
	a.ConnectTo(z)
	b.ConnectTo(a)
	c.ConnectTo(a)
	d.ConnectTo(b)
	e.ConnectTo(b)
	f.ConnectTo(c)
	g.ConnectTo(c)
	return
}

func TestTargetPlaceNoBees(t *testing.T) {
	_, a, _, _, _, _, _, _ := classicNetwork()
	assert.Nil(t, targetPlace(a, 0, UnboundedRange))
}

func TestTargetPlaceIgnoresBeesOutsideColony(t *testing.T) {
	_, a, _, _, _, _, _, g := classicNetwork()
	g.AddInsect(NewBee(1, 1, 0))
	assert.Nil(t, targetPlace(a, 0, UnboundedRange))
}

func TestTargetPlaceFindsNearest(t *testing.T) {
	_, a, b, _, d, _, _, _ := classicNetwork()
	d.AddInsect(NewBee(1, 1, 0))
	assert.Equal(t, d, targetPlace(a, 0, UnboundedRange))

	// a nearer bee shadows the place behind it
	b.AddInsect(NewBee(1, 1, 0))
	assert.Equal(t, b, targetPlace(a, 0, UnboundedRange))
}

func TestTargetPlaceTieBreaksBySourceOrder(t *testing.T) {
	_, a, _, _, d, e, f, _ := classicNetwork()

	// d and e are both two hops out through b; d was registered first
	d.AddInsect(NewBee(1, 1, 0))
	e.AddInsect(NewBee(1, 1, 0))
	assert.Equal(t, d, targetPlace(a, 0, UnboundedRange))

	// e (behind b) beats f (behind c) because b precedes c in a's sources
	d.RemoveInsect(d.Bees()[0])
	f.AddInsect(NewBee(1, 1, 0))
	assert.Equal(t, e, targetPlace(a, 0, UnboundedRange))
}

func TestTargetPlaceRespectsMinimumRange(t *testing.T) {
	_, a, b, _, _, _, _, _ := classicNetwork()
	a.AddInsect(NewBee(1, 1, 0))
	b.AddInsect(NewBee(1, 1, 0))

	assert.Equal(t, a, targetPlace(a, 0, UnboundedRange))
	assert.Equal(t, b, targetPlace(a, 1, UnboundedRange))
	assert.Nil(t, targetPlace(a, 3, UnboundedRange))
}

func TestTargetPlaceRespectsMaximumRange(t *testing.T) {
	_, a, _, _, d, _, _, _ := classicNetwork()
	d.AddInsect(NewBee(1, 1, 0))

	assert.Nil(t, targetPlace(a, 0, 1))
	assert.Equal(t, d, targetPlace(a, 0, 2))
}

func TestTargetPlaceNegativeMaximumRange(t *testing.T) {
	_, a, b, _, _, _, _, _ := classicNetwork()
	b.AddInsect(NewBee(1, 1, 0))
	assert.Nil(t, targetPlace(a, 0, -1))
	assert.Nil(t, inRangeBees(a, 0, -1))
}

// A place reachable over paths of different lengths keeps its
// first-discovered distance; it is never reconsidered at the longer one.
func TestSearchVisitsEachPlaceOnce(t *testing.T) {
	root := NewColonyPlace(0, 0)
	middle := NewColonyPlace(1, 0)
	far := NewColonyPlace(2, 0)
	middle.ConnectTo(root)
	far.ConnectTo(root) // distance 1, registered second
	far.ConnectTo(middle)

	far.AddInsect(NewBee(1, 1, 0))

	// far is discovered at distance 1, so a minimum range of 2 excludes it
	// even though a two-hop path exists through middle
	assert.Nil(t, targetPlace(root, 2, UnboundedRange))
	assert.Empty(t, inRangeBees(root, 2, UnboundedRange))
	assert.Equal(t, far, targetPlace(root, 1, UnboundedRange))
}

func TestInRangeBeesUnionsQualifyingPlaces(t *testing.T) {
	_, a, b, _, d, e, _, g := classicNetwork()
	beeB := NewBee(1, 1, 0)
	beeD := NewBee(1, 1, 0)
	beeE := NewBee(1, 1, 0)
	b.AddInsect(beeB)
	d.AddInsect(beeD)
	e.AddInsect(beeE)
	g.AddInsect(NewBee(1, 1, 0)) // outside the colony, never targetable

	all := inRangeBees(a, 0, UnboundedRange)
	require.Len(t, all, 3)
	assert.Equal(t, []*Bee{beeB, beeD, beeE}, all)

	assert.Equal(t, []*Bee{beeD, beeE}, inRangeBees(a, 2, UnboundedRange))
	assert.Equal(t, []*Bee{beeB}, inRangeBees(a, 0, 1))
}

func TestThrowerQueriesMatchSearch(t *testing.T) {
	_, a, _, _, d, _, _, _ := classicNetwork()
	bee := NewBee(1, 1, 0)
	d.AddInsect(bee)

	thrower := NewThrower(UnitThrower, 7, 1, 1, 10, 0, UnboundedRange).Instantiate().(Ranged)
	a.AddInsect(thrower)

	assert.Equal(t, d, thrower.TargetPlace())
	assert.Equal(t, []*Bee{bee}, thrower.InRangeBees())
}
