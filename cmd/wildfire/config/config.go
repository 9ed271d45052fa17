package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SimulationConfig holds the complete wildfire simulation configuration
type SimulationConfig struct {
	// Basic simulation settings
	Simulation SimulationSettings `yaml:"simulation"`

	// Decision engine settings
	Engine EngineConfig `yaml:"engine"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// SimulationSettings holds basic simulation settings
type SimulationSettings struct {
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description"`
	UpdateInterval time.Duration `yaml:"update_interval"`
	Duration       time.Duration `yaml:"duration"` // 0 runs until stopped
}

// UnmarshalYAML decodes the settings block with human-readable duration
// strings ("3s", "5m") for the interval fields
func (s *SimulationSettings) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name           string `yaml:"name"`
		Description    string `yaml:"description"`
		UpdateInterval string `yaml:"update_interval"`
		Duration       string `yaml:"duration"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.Name = raw.Name
	s.Description = raw.Description

	if raw.UpdateInterval != "" {
		interval, err := time.ParseDuration(raw.UpdateInterval)
		if err != nil {
			return fmt.Errorf("invalid update_interval: %w", err)
		}
		s.UpdateInterval = interval
	}

	if raw.Duration != "" {
		duration, err := time.ParseDuration(raw.Duration)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		s.Duration = duration
	}

	return nil
}

// MarshalYAML emits the interval fields as duration strings
func (s SimulationSettings) MarshalYAML() (interface{}, error) {
	return struct {
		Name           string `yaml:"name"`
		Description    string `yaml:"description"`
		UpdateInterval string `yaml:"update_interval"`
		Duration       string `yaml:"duration"`
	}{
		Name:           s.Name,
		Description:    s.Description,
		UpdateInterval: s.UpdateInterval.String(),
		Duration:       s.Duration.String(),
	}, nil
}

// EngineConfig defines decision engine parameters
type EngineConfig struct {
	MaxUAVSpeed         float64 `yaml:"max_uav_speed"`
	ExclusiveAssignment bool    `yaml:"exclusive_assignment"`
	ExploreIdle         bool    `yaml:"explore_idle"`
	Seed                int64   `yaml:"seed"` // 0 seeds from the clock
}

// LoggingConfig defines logging and reporting settings
type LoggingConfig struct {
	ConsoleLevel string `yaml:"console_level"` // "debug", "info", "warn", "error"
	CycleReport  bool   `yaml:"cycle_report"`
}

// Validate checks if the configuration is valid
func (c *SimulationConfig) Validate() error {
	if c.Simulation.Name == "" {
		return fmt.Errorf("simulation name is required")
	}

	if c.Simulation.UpdateInterval <= 0 {
		return fmt.Errorf("update interval must be positive")
	}

	if c.Simulation.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	if c.Engine.MaxUAVSpeed <= 0 {
		return fmt.Errorf("max UAV speed must be positive")
	}

	switch c.Logging.ConsoleLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid console level: %s", c.Logging.ConsoleLevel)
	}

	return nil
}

// String returns a human-readable representation of the configuration
func (c *SimulationConfig) String() string {
	return fmt.Sprintf(`Simulation Configuration:
  Name: %s
  Description: %s
  Update Interval: %v
  Duration: %v

Engine:
  Max UAV Speed: %.1f
  Exclusive Assignment: %t
  Explore Idle: %t
  Seed: %d

Logging:
  Console Level: %s
  Cycle Report: %t`,
		c.Simulation.Name,
		c.Simulation.Description,
		c.Simulation.UpdateInterval,
		c.Simulation.Duration,
		c.Engine.MaxUAVSpeed,
		c.Engine.ExclusiveAssignment,
		c.Engine.ExploreIdle,
		c.Engine.Seed,
		c.Logging.ConsoleLevel,
		c.Logging.CycleReport,
	)
}

// GetDefaultConfig returns the default wildfire simulation configuration
func GetDefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		Simulation: SimulationSettings{
			Name:           "wildfire-uav",
			Description:    "Wildfire UAV Tracking Adaptation Simulation",
			UpdateInterval: 3 * time.Second,
			Duration:       5 * time.Minute,
		},

		Engine: EngineConfig{
			MaxUAVSpeed:         2,
			ExclusiveAssignment: false,
			ExploreIdle:         false,
			Seed:                0,
		},

		Logging: LoggingConfig{
			ConsoleLevel: "info",
			CycleReport:  true,
		},
	}
}
