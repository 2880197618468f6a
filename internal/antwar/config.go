package antwar

import "math"

// Config is the full tuning surface of a simulation run. Zero values for
// optional fields fall back to the defaults documented per field.
type Config struct {
	// GridSize is the side length of the square toroidal grid.
	GridSize int `json:"grid_size"`

	// SpawnProbability is the per-tick chance of a new ant appearing at an
	// unoccupied home center.
	SpawnProbability float64 `json:"spawn_probability"`

	// NumResources is the number of resource source coordinates kept alive.
	NumResources int `json:"num_resources"`

	// ResourceProbability is the per-tick chance that an unoccupied source
	// materializes a resource on its cell.
	ResourceProbability float64 `json:"resource_probability"`

	// ResourceRefreshTicks is how often (in ticks) all sources relocate.
	ResourceRefreshTicks int `json:"resource_refresh_ticks"`

	// ScentDecayRate is subtracted from every cell's scent each tick.
	// When zero, the rate is derived from the grid size as 20/sqrt(size).
	ScentDecayRate float64 `json:"scent_decay_rate,omitempty"`

	// ScentDeposit is the trail intensity at the resource itself; marks laid
	// further along the return path fall off from this ceiling.
	ScentDeposit float64 `json:"scent_deposit"`

	// ScentThreshold makes foraging ants ignore trails at or below this
	// intensity. Zero keeps every positive trail attractive.
	ScentThreshold float64 `json:"scent_threshold,omitempty"`

	// AttackDamage is the power an attacker inflicts on its target.
	AttackDamage float64 `json:"attack_damage"`

	// AttackRecoil is the power the attacker itself loses per attack.
	AttackRecoil float64 `json:"attack_recoil"`

	// EatGain is the power restored by consuming a resource.
	EatGain float64 `json:"eat_gain"`

	// BasePower is the power a freshly spawned ant starts with.
	BasePower float64 `json:"base_power"`

	// MaxPower is the soft cap applied when eating.
	MaxPower float64 `json:"max_power"`

	// Asymmetric doubles the red breed's power budget and gives the blue
	// breed a second spawn attempt at a center offset by one cell.
	Asymmetric bool `json:"asymmetric,omitempty"`

	// Seed fixes the random generator; identical configs and seeds replay
	// identical runs.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		GridSize:             40,
		SpawnProbability:     0.4,
		NumResources:         3,
		ResourceProbability:  0.8,
		ResourceRefreshTicks: 100,
		ScentDeposit:         ScentMax,
		AttackDamage:         20,
		AttackRecoil:         5,
		EatGain:              40,
		BasePower:            90,
		MaxPower:             100,
		Seed:                 64925,
	}
}

// DecayRate resolves the effective scent decay rate, deriving it from the
// grid size when not set explicitly.
func (c Config) DecayRate() float64 {
	if c.ScentDecayRate > 0 {
		return c.ScentDecayRate
	}
	return 20.0 / math.Sqrt(float64(c.GridSize))
}
