// internal/sim/ant_test.go
package sim

import (
	"testing"

	"go-colony-defense/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvesterProducesFood(t *testing.T) {
	place := NewColonyPlace(0, 0)
	world := newTestWorld([]*Place{place}, NewPlace(9, 9), nil, 10)

	harvester := NewHarvester(UnitHarvester, 3, 1, 2).Instantiate()
	place.AddInsect(harvester)

	harvester.Act(world)
	assert.Equal(t, 12, world.Food())
}

func TestWallJustBlocks(t *testing.T) {
	place := NewColonyPlace(0, 0)
	next := NewColonyPlace(1, 0)
	place.ConnectTo(next)
	world := newTestWorld([]*Place{place, next}, NewPlace(9, 9), nil, 0)

	wall := NewWall(UnitWall, 4, 4).Instantiate()
	place.AddInsect(wall)
	bee := NewBee(2, 1, 0)
	place.AddInsect(bee)

	wall.Act(world) // no-op
	bee.Act(world)  // stings instead of flying

	assert.Equal(t, 3, wall.Health())
	assert.Equal(t, place, bee.Place())
	assert.True(t, wall.Blocks())
}

func TestBeeFliesPastEmptyPlace(t *testing.T) {
	place := NewColonyPlace(0, 0)
	next := NewColonyPlace(1, 0)
	place.ConnectTo(next)
	world := newTestWorld([]*Place{place, next}, NewPlace(9, 9), nil, 0)

	bee := NewBee(2, 1, 0)
	place.AddInsect(bee)
	bee.Act(world)

	assert.Equal(t, next, bee.Place())
	assert.Empty(t, place.Bees())
}

func TestBeeWithNoDestinationsStaysPut(t *testing.T) {
	place := NewColonyPlace(0, 0)
	world := newTestWorld([]*Place{place}, NewPlace(9, 9), nil, 0)

	bee := NewBee(2, 1, 0)
	place.AddInsect(bee)
	bee.Act(world)
	assert.Equal(t, place, bee.Place())
}

func TestThrowerSpendsAmmoAndSelfDestructsOnLastShot(t *testing.T) {
	place := NewColonyPlace(0, 0)
	world := newTestWorld([]*Place{place}, NewPlace(9, 9), nil, 0)

	thrower := NewThrower(UnitThrower, 7, 1, 1, 2, 0, UnboundedRange).Instantiate().(*Thrower)
	place.AddInsect(thrower)
	bee := NewBee(3, 1, 0)
	place.AddInsect(bee)

	thrower.Act(world)
	assert.Equal(t, 2, bee.Health())
	assert.Equal(t, 1, thrower.Ammo())
	assert.Equal(t, place, thrower.Place())

	thrower.Act(world)
	assert.Equal(t, 1, bee.Health())
	assert.Equal(t, 0, thrower.Ammo())
	assert.Nil(t, thrower.Place(), "firing the last shot destroys the thrower")
	assert.Nil(t, place.Defender())
}

func TestThrowerHoldsFireWithoutTarget(t *testing.T) {
	place := NewColonyPlace(0, 0)
	world := newTestWorld([]*Place{place}, NewPlace(9, 9), nil, 0)

	thrower := NewThrower(UnitThrower, 7, 1, 1, 1, 0, UnboundedRange).Instantiate().(*Thrower)
	place.AddInsect(thrower)

	thrower.Act(world)
	assert.Equal(t, 1, thrower.Ammo())
	assert.Equal(t, place, thrower.Place())
}

func TestPhalanxThrowerScalesDamageWithNeighbors(t *testing.T) {
	post := NewColonyPlace(0, 0)
	left := NewColonyPlace(1, 0)
	right := NewColonyPlace(1, 1)
	left.ConnectTo(post)
	right.ConnectTo(post)
	world := newTestWorld([]*Place{post, left, right}, NewPlace(9, 9), nil, 0)

	phalanx := NewPhalanxThrower(UnitPhalanxThrower, 5, 1, 10, 1, 3).Instantiate().(*PhalanxThrower)
	post.AddInsect(phalanx)
	bee := NewBee(5, 1, 0)
	left.AddInsect(bee)

	// no adjacent defenders: zero damage, but the shot still costs ammo
	phalanx.Act(world)
	assert.Equal(t, 5, bee.Health())
	assert.Equal(t, 9, phalanx.Ammo())

	left.AddInsect(NewWall(UnitWall, 4, 4).Instantiate())
	phalanx.Act(world)
	assert.Equal(t, 4, bee.Health())

	right.AddInsect(NewWall(UnitWall, 4, 4).Instantiate())
	phalanx.Act(world)
	assert.Equal(t, 2, bee.Health())
}

func TestFrenzyThrowerRegainsAmmoAtOneHealth(t *testing.T) {
	place := NewColonyPlace(0, 0)
	world := newTestWorld([]*Place{place}, NewPlace(9, 9), nil, 0)

	frenzy := NewFrenzyThrower(UnitFrenzyThrower, 6, 2, 1, 1, 0, UnboundedRange).Instantiate().(*FrenzyThrower)
	place.AddInsect(frenzy)
	bee := NewBee(10, 1, 0)
	place.AddInsect(bee)

	// at 2 health there is no regen; the single shot would be its last,
	// so the thrower dies with it
	require.Equal(t, 2, frenzy.Health())
	frenzy.Act(world)
	assert.Equal(t, 9, bee.Health())
	assert.Equal(t, 0, frenzy.Ammo())
	assert.Nil(t, frenzy.Place())

	// at exactly 1 health the regen keeps it one shot ahead
	place2 := NewColonyPlace(2, 0)
	world2 := newTestWorld([]*Place{place2}, NewPlace(9, 9), nil, 0)
	frenzy2 := NewFrenzyThrower(UnitFrenzyThrower, 6, 1, 1, 1, 0, UnboundedRange).Instantiate().(*FrenzyThrower)
	place2.AddInsect(frenzy2)
	bee2 := NewBee(10, 1, 0)
	place2.AddInsect(bee2)

	frenzy2.Act(world2)
	assert.Equal(t, 1, frenzy2.Ammo())
	assert.Equal(t, place2, frenzy2.Place())
	frenzy2.Act(world2)
	assert.Equal(t, 1, frenzy2.Ammo())
	assert.Equal(t, 8, bee2.Health())
}

func TestGuardedHarvesterNeedsRangedCover(t *testing.T) {
	field := NewColonyPlace(0, 0)
	cover := NewColonyPlace(1, 0)
	cover.ConnectTo(field)
	world := newTestWorld([]*Place{field, cover}, NewPlace(9, 9), nil, 0)

	guarded := NewGuardedHarvester(UnitGuardedHarvester, 2, 1, 3).Instantiate()
	field.AddInsect(guarded)

	// a wall is not ranged cover
	wall := NewWall(UnitWall, 4, 4).Instantiate()
	cover.AddInsect(wall)
	guarded.Act(world)
	assert.Nil(t, guarded.Place())
	assert.Equal(t, 0, world.Food())

	cover.RemoveInsect(wall)
	cover.AddInsect(NewThrower(UnitThrower, 7, 1, 1, 10, 0, UnboundedRange).Instantiate())
	guarded2 := NewGuardedHarvester(UnitGuardedHarvester, 2, 1, 3).Instantiate()
	field.AddInsect(guarded2)
	guarded2.Act(world)
	assert.Equal(t, field, guarded2.Place())
	assert.Equal(t, 3, world.Food())
}

func TestDerivedThrowersAreRanged(t *testing.T) {
	var ant Ant = NewPhalanxThrower(UnitPhalanxThrower, 5, 1, 8, 1, 3)
	ranged, ok := ant.(Ranged)
	require.True(t, ok)
	minimum, maximum := ranged.Range()
	assert.Equal(t, 1, minimum)
	assert.Equal(t, 3, maximum)

	_, ok = Ant(NewFrenzyThrower(UnitFrenzyThrower, 6, 2, 1, 4, 0, 4)).(Ranged)
	assert.True(t, ok)
	_, ok = Ant(NewGuardedHarvester(UnitGuardedHarvester, 2, 1, 3)).(Ranged)
	assert.False(t, ok)
}

func TestInstantiateGivesIndependentCopies(t *testing.T) {
	archetype := NewThrower(UnitThrower, 7, 1, 1, 10, 0, UnboundedRange)

	first := archetype.Instantiate()
	second := archetype.Instantiate()
	require.NotSame(t, first, second)
	assert.Nil(t, first.Place())

	first.ReduceHealth(1)
	assert.Equal(t, 0, first.Health())
	assert.Equal(t, 1, archetype.Health())
	assert.Equal(t, 1, second.Health())
}

func TestNewArchetypeBuildsEveryKind(t *testing.T) {
	defs.LoadStandardAnts()
	for _, id := range defs.AntCatalog {
		archetype, err := NewArchetype(defs.AntDefs[id])
		require.NoError(t, err, id)
		assert.Equal(t, UnitType(id), archetype.UnitType())
	}
}

func TestNewArchetypeFieldMapping(t *testing.T) {
	maxRange := 2
	archetype, err := NewArchetype(defs.AntDefinition{
		ID: "SHORT_THROWER", Kind: defs.AntKindThrower,
		FoodCost: 3, Health: 1, Damage: 1, Ammo: 6, MinRange: 0, MaxRange: &maxRange,
	})
	require.NoError(t, err)
	thrower := archetype.(*Thrower)
	minimum, maximum := thrower.Range()
	assert.Equal(t, 0, minimum)
	assert.Equal(t, 2, maximum)
	assert.Equal(t, 6, thrower.Ammo())
	assert.Equal(t, 3, thrower.FoodCost())

	// an omitted max range means unbounded
	archetype, err = NewArchetype(defs.AntDefinition{
		ID: "THROWER", Kind: defs.AntKindThrower,
		FoodCost: 7, Health: 1, Damage: 1, Ammo: 10,
	})
	require.NoError(t, err)
	_, maximum = archetype.(*Thrower).Range()
	assert.Equal(t, UnboundedRange, maximum)
}

func TestNewArchetypeUnknownKind(t *testing.T) {
	_, err := NewArchetype(defs.AntDefinition{ID: "MYSTERY", Kind: "MYSTERY"})
	assert.Error(t, err)
}
