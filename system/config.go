package system

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is the host-tunable knobs a system reads from its process
// environment: how much time each idle slice gets, what refresh rate the
// host's animation clock should aim for, and a log level string.
type Config struct {
	ReadyBudgetMS   int64  `env:"UICORE_READY_BUDGET_MS" envDefault:"2"`
	TargetFPS       int    `env:"UICORE_TARGET_FPS" envDefault:"60"`
	LogLevel        string `env:"UICORE_LOG_LEVEL" envDefault:"info"`
}

// ReadyBudget converts the configured millisecond budget into a
// time.Duration for Scheduler.RunReady.
func (c Config) ReadyBudget() time.Duration {
	return time.Duration(c.ReadyBudgetMS) * time.Millisecond
}

// FrameInterval returns the target duration between animation ticks.
func (c Config) FrameInterval() time.Duration {
	if c.TargetFPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TargetFPS)
}

// LoadConfig parses Config from the process environment, the same way the
// rest of the pack's hosts do.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("system: parse config: %w", err)
	}
	return cfg, nil
}
