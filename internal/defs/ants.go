// internal/defs/ants.go
package defs

// AntKind selects the behavior an ant definition is built with.
type AntKind string

const (
	AntKindWall             AntKind = "WALL"
	AntKindHarvester        AntKind = "HARVESTER"
	AntKindThrower          AntKind = "THROWER"
	AntKindPhalanxThrower   AntKind = "PHALANX_THROWER"
	AntKindFrenzyThrower    AntKind = "FRENZY_THROWER"
	AntKindGuardedHarvester AntKind = "GUARDED_HARVESTER"
)

// AntDefinition holds all the static data for a specific type of ant.
// Which fields matter depends on Kind: Production only for harvesters,
// Ammo and the range bounds only for throwers. A nil MaxRange means the
// range is unbounded.
type AntDefinition struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Kind       AntKind `json:"kind"`
	FoodCost   int     `json:"food_cost"`
	Health     int     `json:"health"`
	Damage     int     `json:"damage,omitempty"`
	Production int     `json:"production,omitempty"`
	Ammo       int     `json:"ammo,omitempty"`
	MinRange   int     `json:"min_range,omitempty"`
	MaxRange   *int    `json:"max_range,omitempty"`
	Visuals    Visuals `json:"visuals"`
}

// AntDefs is the library of all ant definitions, mapped by their ID.
var AntDefs map[string]AntDefinition

// AntCatalog preserves the order ants are offered to the player in.
var AntCatalog []string

func intPtr(v int) *int { return &v }

// StandardAnts is the built-in catalog used when no definitions file is
// given. Costs and stats follow the classic setup.
var StandardAnts = []AntDefinition{
	{
		ID: "HARVESTER", Name: "Harvester", Kind: AntKindHarvester,
		FoodCost: 3, Health: 1, Production: 2,
		Visuals: Visuals{Color: RGBA(240, 200, 60, 255), Radius: 9},
	},
	{
		ID: "SHORT_THROWER", Name: "Short Thrower", Kind: AntKindThrower,
		FoodCost: 3, Health: 1, Damage: 1, Ammo: 6, MinRange: 0, MaxRange: intPtr(2),
		Visuals: Visuals{Color: RGBA(120, 200, 120, 255), Radius: 9},
	},
	{
		ID: "THROWER", Name: "Thrower", Kind: AntKindThrower,
		FoodCost: 7, Health: 1, Damage: 1, Ammo: 10,
		Visuals: Visuals{Color: RGBA(60, 160, 60, 255), Radius: 10},
	},
	{
		ID: "LONG_THROWER", Name: "Long Thrower", Kind: AntKindThrower,
		FoodCost: 3, Health: 1, Damage: 1, Ammo: 6, MinRange: 4,
		Visuals: Visuals{Color: RGBA(40, 120, 90, 255), Radius: 9},
	},
	{
		ID: "WALL", Name: "Wall", Kind: AntKindWall,
		FoodCost: 4, Health: 4,
		Visuals: Visuals{Color: RGBA(128, 128, 128, 255), Radius: 11},
	},
	{
		ID: "PHALANX_THROWER", Name: "Phalanx Thrower", Kind: AntKindPhalanxThrower,
		FoodCost: 5, Health: 1, Ammo: 8, MinRange: 1, MaxRange: intPtr(3),
		Visuals: Visuals{Color: RGBA(80, 100, 220, 255), Radius: 10},
	},
	{
		ID: "FRENZY_THROWER", Name: "Frenzy Thrower", Kind: AntKindFrenzyThrower,
		FoodCost: 6, Health: 2, Damage: 1, Ammo: 4, MinRange: 0, MaxRange: intPtr(4),
		Visuals: Visuals{Color: RGBA(200, 60, 60, 255), Radius: 10},
	},
	{
		ID: "GUARDED_HARVESTER", Name: "Guarded Harvester", Kind: AntKindGuardedHarvester,
		FoodCost: 2, Health: 1, Production: 3,
		Visuals: Visuals{Color: RGBA(230, 170, 120, 255), Radius: 9},
	},
}

// LoadStandardAnts populates the libraries from the built-in catalog.
func LoadStandardAnts() {
	AntDefs = make(map[string]AntDefinition, len(StandardAnts))
	AntCatalog = AntCatalog[:0]
	for _, def := range StandardAnts {
		AntDefs[def.ID] = def
		AntCatalog = append(AntCatalog, def.ID)
	}
}
