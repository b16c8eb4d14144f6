// internal/defs/waves.go
package defs

// HivePlan описывает параметры атакующих волн пчёл, засеваемых в улей при
// построении мира. Волна с индексом i содержит WaveSize + i*WaveGrowth пчёл
// с задержкой i*WaveInterval ходов.
type HivePlan struct {
	WaveCount    int `json:"wave_count"`
	WaveSize     int `json:"wave_size"`
	WaveGrowth   int `json:"wave_growth"`
	WaveInterval int `json:"wave_interval"`
	BeeHealth    int `json:"bee_health"`
	BeeDamage    int `json:"bee_damage"`
}

// StandardHive определяет стандартный набор волн.
var StandardHive = HivePlan{
	WaveCount:    4,
	WaveSize:     2,
	WaveGrowth:   1,
	WaveInterval: 5,
	BeeHealth:    4,
	BeeDamage:    1,
}
