package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*SimulationConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config SimulationConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadConfigOrDefault loads config from file or returns default, with
// environment overrides applied in both cases
func LoadConfigOrDefault(path string) (*SimulationConfig, error) {
	var config *SimulationConfig
	var err error

	if path != "" {
		config, err = LoadConfig(path)
		if err != nil {
			fmt.Printf("Warning: Could not load config from %s: %v\n", path, err)
			config = nil
		}
	}

	if config == nil {
		defaultPaths := []string{
			"config.yaml",
			filepath.Join("cmd", "wildfire", "config.yaml"),
		}

		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				config, err = LoadConfig(p)
				if err == nil {
					fmt.Printf("Loaded config from: %s\n", p)
					break
				}
			}
		}
	}

	if config == nil {
		fmt.Println("Using default configuration")
		config = GetDefaultConfig()
	}

	MergeWithEnvironment(config)

	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *SimulationConfig, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// MergeWithParams applies simulation.yaml prompt parameters to the
// configuration. Parameter names match the manifest.
func MergeWithParams(config *SimulationConfig, params map[string]interface{}) {
	for key, value := range params {
		switch key {
		case "update_interval":
			if interval, ok := value.(time.Duration); ok && interval > 0 {
				config.Simulation.UpdateInterval = interval
			}
		case "duration":
			if duration, ok := value.(time.Duration); ok && duration >= 0 {
				config.Simulation.Duration = duration
			}
		case "max_uav_speed":
			if speed, ok := toFloat(value); ok && speed > 0 {
				config.Engine.MaxUAVSpeed = speed
			}
		case "exclusive_assignment":
			if exclusive, ok := value.(bool); ok {
				config.Engine.ExclusiveAssignment = exclusive
			}
		case "explore_idle":
			if explore, ok := value.(bool); ok {
				config.Engine.ExploreIdle = explore
			}
		case "seed":
			if seed, ok := value.(int); ok {
				config.Engine.Seed = int64(seed)
			}
		case "log_level":
			if level, ok := value.(string); ok {
				applyLogLevel(config, level)
			}
		}
	}
}

// MergeWithEnvironment merges config with environment variables
func MergeWithEnvironment(config *SimulationConfig) {
	if updateInterval := os.Getenv("WILDFIRE_UPDATE_INTERVAL"); updateInterval != "" {
		if duration, err := time.ParseDuration(updateInterval); err == nil && duration > 0 {
			config.Simulation.UpdateInterval = duration
		}
	}

	if runDuration := os.Getenv("WILDFIRE_DURATION"); runDuration != "" {
		if duration, err := time.ParseDuration(runDuration); err == nil && duration >= 0 {
			config.Simulation.Duration = duration
		}
	}

	if maxSpeed := os.Getenv("MAX_UAV_SPEED"); maxSpeed != "" {
		if speed, err := strconv.ParseFloat(maxSpeed, 64); err == nil && speed > 0 {
			config.Engine.MaxUAVSpeed = speed
		}
	}

	if exclusive := os.Getenv("EXCLUSIVE_ASSIGNMENT"); exclusive != "" {
		if enable, err := strconv.ParseBool(exclusive); err == nil {
			config.Engine.ExclusiveAssignment = enable
		}
	}

	if explore := os.Getenv("EXPLORE_IDLE"); explore != "" {
		if enable, err := strconv.ParseBool(explore); err == nil {
			config.Engine.ExploreIdle = enable
		}
	}

	if seed := os.Getenv("ENGINE_SEED"); seed != "" {
		if value, err := strconv.ParseInt(seed, 10, 64); err == nil {
			config.Engine.Seed = value
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		applyLogLevel(config, logLevel)
	}

	if cycleReport := os.Getenv("CYCLE_REPORT"); cycleReport != "" {
		if enable, err := strconv.ParseBool(cycleReport); err == nil {
			config.Logging.CycleReport = enable
		}
	}
}

func applyLogLevel(config *SimulationConfig, level string) {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		config.Logging.ConsoleLevel = strings.ToLower(level)
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}
