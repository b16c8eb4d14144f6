// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAnts = `[
  {"id": "HARVESTER", "name": "Harvester", "kind": "HARVESTER",
   "food_cost": 3, "health": 1, "production": 2,
   "visuals": {"color": {"R": 240, "G": 200, "B": 60, "A": 255}, "radius": 9}},
  {"id": "SNIPER", "name": "Sniper", "kind": "THROWER",
   "food_cost": 5, "health": 1, "damage": 2, "ammo": 3,
   "min_range": 4,
   "visuals": {"color": {"R": 10, "G": 10, "B": 10, "A": 255}, "radius": 8}}
]`

func TestLoadAntDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ants.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleAnts), 0o644))

	require.NoError(t, LoadAntDefinitions(path))
	require.Len(t, AntDefs, 2)
	assert.Equal(t, []string{"HARVESTER", "SNIPER"}, AntCatalog)

	sniper := AntDefs["SNIPER"]
	assert.Equal(t, AntKindThrower, sniper.Kind)
	assert.Equal(t, 4, sniper.MinRange)
	assert.Nil(t, sniper.MaxRange, "an omitted max_range stays unbounded")
	assert.Equal(t, uint8(240), AntDefs["HARVESTER"].Visuals.Color.R)
}

func TestLoadAntDefinitionsMissingFile(t *testing.T) {
	assert.Error(t, LoadAntDefinitions(filepath.Join(t.TempDir(), "nope.json")))
}

func TestLoadAntDefinitionsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ants.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	assert.Error(t, LoadAntDefinitions(path))
}

func TestLoadStandardAnts(t *testing.T) {
	LoadStandardAnts()
	require.Len(t, AntCatalog, len(StandardAnts))
	for i, def := range StandardAnts {
		assert.Equal(t, def.ID, AntCatalog[i])
		assert.Equal(t, def, AntDefs[def.ID])
	}
	// the classic five plus the three derived variants
	assert.Contains(t, AntDefs, "WALL")
	assert.Contains(t, AntDefs, "PHALANX_THROWER")
	assert.Contains(t, AntDefs, "FRENZY_THROWER")
	assert.Contains(t, AntDefs, "GUARDED_HARVESTER")
}

func TestLoadHivePlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hive.json")
	plan := `{"wave_count": 2, "wave_size": 3, "wave_growth": 0,
	          "wave_interval": 4, "bee_health": 5, "bee_damage": 2}`
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	loaded, err := LoadHivePlan(path)
	require.NoError(t, err)
	assert.Equal(t, HivePlan{WaveCount: 2, WaveSize: 3, WaveGrowth: 0,
		WaveInterval: 4, BeeHealth: 5, BeeDamage: 2}, loaded)

	_, err = LoadHivePlan(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
