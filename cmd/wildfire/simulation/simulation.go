package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/firewatch/wildfire-uav/cmd/wildfire/config"
	"github.com/firewatch/wildfire-uav/cmd/wildfire/controllers"
	"github.com/firewatch/wildfire-uav/cmd/wildfire/core"
	"github.com/firewatch/wildfire-uav/cmd/wildfire/reporting"
	"github.com/firewatch/wildfire-uav/pkg/client"
	"github.com/firewatch/wildfire-uav/pkg/logger"
	"github.com/firewatch/wildfire-uav/pkg/simulation"
)

// WildfireSimulation runs the wildfire tracking adaptation loop against
// a Firewatch exemplar: monitor the fleet, analyze fire zones and
// collision risk, plan adjustments and execute them
type WildfireSimulation struct {
	config   *config.SimulationConfig
	stopChan chan struct{}
}

// NewWildfireSimulation creates a new instance of the wildfire simulation
func NewWildfireSimulation() simulation.Simulation {
	return &WildfireSimulation{
		stopChan: make(chan struct{}),
	}
}

// Name returns the simulation name
func (s *WildfireSimulation) Name() string {
	return "Wildfire UAV Tracking"
}

// Description returns the simulation description
func (s *WildfireSimulation) Description() string {
	return "Adaptive fire-zone tracking and collision avoidance for a UAV fleet"
}

// Configure sets up the simulation with provided parameters
func (s *WildfireSimulation) Configure(params map[string]interface{}) error {
	cfg := config.GetDefaultConfig()
	config.MergeWithEnvironment(cfg)
	config.MergeWithParams(cfg, params)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	s.config = cfg
	return nil
}

// Run executes the adaptation loop until the configured duration
// elapses, the context is cancelled, or Stop is called
func (s *WildfireSimulation) Run(ctx context.Context, fw *client.Firewatch) error {
	if s.config == nil {
		return fmt.Errorf("simulation not configured")
	}

	logger.SetLevel(logger.ParseLevel(s.config.Logging.ConsoleLevel))
	logger.Infof("Starting %s (interval %s, duration %s)",
		s.Name(), s.config.Simulation.UpdateInterval, s.config.Simulation.Duration)

	seed := s.config.Engine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := core.NewEngine(core.Options{
		MaxUAVSpeed:         s.config.Engine.MaxUAVSpeed,
		ExclusiveAssignment: s.config.Engine.ExclusiveAssignment,
		ExploreIdle:         s.config.Engine.ExploreIdle,
		Seed:                seed,
	})

	reporter := reporting.NewCycleReporter()

	controller := controllers.NewAdaptationController(controllers.Options{
		Monitor:  fw,
		Executor: fw,
		Engine:   engine,
		Reporter: reporter,
		Interval: s.config.Simulation.UpdateInterval,
		Duration: s.config.Simulation.Duration,
		StopChan: s.stopChan,
	})

	err := controller.Run(ctx)

	if s.config.Logging.CycleReport {
		reporter.Summary()
	}

	return err
}

// Stop gracefully shuts down the simulation
func (s *WildfireSimulation) Stop() error {
	close(s.stopChan)
	return nil
}

// init registers the simulation
func init() {
	err := simulation.DefaultRegistry.Register("Wildfire UAV Tracking", NewWildfireSimulation)
	if err != nil {
		logger.Errorf("Failed to register wildfire simulation: %v", err)
		return
	}
}
