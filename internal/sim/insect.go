// internal/sim/insect.go
package sim

// UnitType represents how an insect looks to the player. Otherwise
// identical insects may carry different unit types, and fundamentally
// different insects may share one.
type UnitType string

const (
	UnitBee              UnitType = "BEE"
	UnitHarvester        UnitType = "HARVESTER"
	UnitShortThrower     UnitType = "SHORT_THROWER"
	UnitThrower          UnitType = "THROWER"
	UnitLongThrower      UnitType = "LONG_THROWER"
	UnitWall             UnitType = "WALL"
	UnitPhalanxThrower   UnitType = "PHALANX_THROWER"
	UnitFrenzyThrower    UnitType = "FRENZY_THROWER"
	UnitGuardedHarvester UnitType = "GUARDED_HARVESTER"
)

// Insect is anything that lives at a place and takes a turn action: bees
// and every ant variant. An insect with a place is alive; reducing health
// to zero or below removes it from its place immediately.
type Insect interface {
	UnitType() UnitType
	Health() int
	Damage() int

	// Place returns the place the insect currently occupies, or nil when
	// it is dead or was never placed.
	Place() *Place

	// ReduceHealth subtracts amount from health and removes the insect
	// from its place once health drops to zero or below.
	ReduceHealth(amount int)

	// Act performs the insect's action for one turn.
	Act(w *World)
}
