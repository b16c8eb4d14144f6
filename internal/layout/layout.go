// internal/layout/layout.go
package layout

import (
	"fmt"

	"go-colony-defense/internal/config"
	"go-colony-defense/internal/defs"
	"go-colony-defense/internal/sim"
)

// Rand covers what world construction needs from the PRNG service: integer
// draws for the simulation and a uniform float draw for the cosmetic
// scatter of hive places.
type Rand interface {
	sim.Rand
	UniformRange(min, max float64) float64
}

// Options describes the shape of a standard game world.
type Options struct {
	MinimumRowCount int
	MaximumRowCount int
	ColumnCount     int
	Hive            defs.HivePlan
	Food            int
}

// StandardOptions returns the classic world shape.
func StandardOptions() Options {
	return Options{
		MinimumRowCount: config.MinimumRowCount,
		MaximumRowCount: config.MaximumRowCount,
		ColumnCount:     config.ColumnCount,
		Hive:            defs.StandardHive,
		Food:            config.StartingFood,
	}
}

// BuildHive constructs places representing a bee hive pre-seeded with bees
// that attack in waves. The hive places are scattered uniformly in a square
// with the given center and radius; the scatter is cosmetic only.
func BuildHive(centerX, centerY, radius float64, plan defs.HivePlan, rng Rand) []*sim.Place {
	var hive []*sim.Place
	for waveIndex := 0; waveIndex < plan.WaveCount; waveIndex++ {
		waveSize := plan.WaveSize + waveIndex*plan.WaveGrowth
		for beeIndex := 0; beeIndex < waveSize; beeIndex++ {
			bee := sim.NewBee(plan.BeeHealth, plan.BeeDamage, waveIndex*plan.WaveInterval)
			lowY := centerY - radius
			if lowY < 0 {
				lowY = 0
			}
			hivePlace := sim.NewPlace(
				centerX+rng.UniformRange(-radius, radius),
				rng.UniformRange(lowY, centerY+radius),
			)
			hivePlace.AddInsect(bee)
			hive = append(hive, hivePlace)
		}
	}
	return hive
}

// BuildStandard constructs the world for the beginning of a standard game:
// the queen and the hive separated by tunnels of colony places, with bees
// attacking in waves of increasing size. Every few tunnel places is a
// respite that heals bees passing through it.
func BuildStandard(opts Options, archetypes []sim.Ant, rng Rand) *sim.World {
	if opts.MinimumRowCount <= 0 {
		panic("cannot create a game with no rows")
	}
	if opts.MaximumRowCount < opts.MinimumRowCount {
		panic("the maximum row count must be at least the minimum row count")
	}
	if opts.ColumnCount <= 0 {
		panic("cannot create a game with no columns")
	}

	centerY := float64(opts.MaximumRowCount+1) / 2
	queenPlace := sim.NewPlace(1, centerY)

	multiplier := opts.MaximumRowCount - opts.MinimumRowCount + 1
	heights := make([]int, opts.ColumnCount)
	for column := range heights {
		heights[column] = opts.MinimumRowCount + multiplier*column/opts.ColumnCount
	}

	hiveCenterX := float64(6 + opts.ColumnCount + heights[len(heights)-1] - opts.MinimumRowCount)
	hive := BuildHive(hiveCenterX, centerY, 2, opts.Hive, rng)

	places := []*sim.Place{queenPlace}
	places = append(places, hive...)

	type cell struct{ column, row int }
	tunnels := make(map[cell]*sim.Place)
	for column := 0; column < opts.ColumnCount; column++ {
		height := heights[column]
		x := float64(3 + column + height - opts.MinimumRowCount)
		for row := 0; row < height; row++ {
			y := centerY + float64(row) - float64(height-1)/2
			var place *sim.Place
			if (column+2*row)%5 == 1 {
				place = sim.NewRespite(x, y, 1)
			} else {
				place = sim.NewColonyPlace(x, y)
			}
			switch {
			case column == 0:
				place.ConnectTo(queenPlace)
			case height == heights[column-1]:
				place.ConnectTo(tunnels[cell{column - 1, row}])
			default:
				for otherRow := 0; otherRow < heights[column-1]; otherRow++ {
					place.ConnectTo(tunnels[cell{column - 1, otherRow}])
				}
			}
			if column == opts.ColumnCount-1 {
				for _, hivePlace := range hive {
					hivePlace.ConnectTo(place)
				}
			}
			tunnels[cell{column, row}] = place
			places = append(places, place)
		}
	}

	return sim.NewWorld(places, queenPlace, archetypes, opts.Food, rng)
}

// String gives Options a compact form for startup logging.
func (o Options) String() string {
	return fmt.Sprintf("rows %d-%d, %d columns, %d waves, %d food",
		o.MinimumRowCount, o.MaximumRowCount, o.ColumnCount, o.Hive.WaveCount, o.Food)
}
