package antwar

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation issues
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid config: unknown validation error"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return "config validation errors: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// MinGridSize is the smallest grid on which the two home centers and the
// resource band are distinct.
const MinGridSize = 8

// ValidateConfig checks a Config before a world is built from it.
func ValidateConfig(cfg Config) error {
	err := &ValidationError{}

	if cfg.GridSize < MinGridSize {
		err.Add(fmt.Sprintf("grid_size must be at least %d, got %d", MinGridSize, cfg.GridSize))
	}
	if cfg.SpawnProbability < 0 || cfg.SpawnProbability > 1 {
		err.Add(fmt.Sprintf("spawn_probability must be in [0,1], got %g", cfg.SpawnProbability))
	}
	if cfg.NumResources < 0 {
		err.Add(fmt.Sprintf("num_resources must not be negative, got %d", cfg.NumResources))
	}
	if cfg.ResourceProbability < 0 || cfg.ResourceProbability > 1 {
		err.Add(fmt.Sprintf("resource_probability must be in [0,1], got %g", cfg.ResourceProbability))
	}
	if cfg.ResourceRefreshTicks < 1 {
		err.Add(fmt.Sprintf("resource_refresh_ticks must be at least 1, got %d", cfg.ResourceRefreshTicks))
	}
	if cfg.ScentDecayRate < 0 {
		err.Add(fmt.Sprintf("scent_decay_rate must not be negative, got %g", cfg.ScentDecayRate))
	}
	if cfg.ScentDeposit <= 0 || cfg.ScentDeposit > ScentMax {
		err.Add(fmt.Sprintf("scent_deposit must be in (0,%g], got %g", ScentMax, cfg.ScentDeposit))
	}
	if cfg.ScentThreshold < 0 {
		err.Add(fmt.Sprintf("scent_threshold must not be negative, got %g", cfg.ScentThreshold))
	}
	if cfg.AttackDamage < 0 {
		err.Add(fmt.Sprintf("attack_damage must not be negative, got %g", cfg.AttackDamage))
	}
	if cfg.AttackRecoil < 0 {
		err.Add(fmt.Sprintf("attack_recoil must not be negative, got %g", cfg.AttackRecoil))
	}
	if cfg.EatGain < 0 {
		err.Add(fmt.Sprintf("eat_gain must not be negative, got %g", cfg.EatGain))
	}
	if cfg.BasePower <= 0 {
		err.Add(fmt.Sprintf("base_power must be positive, got %g", cfg.BasePower))
	}
	if cfg.MaxPower < cfg.BasePower {
		err.Add(fmt.Sprintf("max_power (%g) must not be below base_power (%g)", cfg.MaxPower, cfg.BasePower))
	}

	if err.HasIssues() {
		return err
	}
	return nil
}
