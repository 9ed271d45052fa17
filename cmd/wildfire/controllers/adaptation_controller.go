package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/firewatch/wildfire-uav/cmd/wildfire/core"
	"github.com/firewatch/wildfire-uav/cmd/wildfire/reporting"
	"github.com/firewatch/wildfire-uav/pkg/logger"
	"github.com/firewatch/wildfire-uav/pkg/models"
)

// Monitor retrieves a normalized state snapshot for one cycle
type Monitor interface {
	Monitor(ctx context.Context) (*models.Snapshot, error)
}

// Executor delivers one adjustment to the execution endpoint
type Executor interface {
	Execute(ctx context.Context, adj models.Adjustment) error
}

// AdaptationController drives the Monitor -> Analyze -> Plan ->
// Execute loop. Cycles are strictly sequential: the next tick is not
// consumed until the previous cycle finishes, which keeps the radius
// controller's state safe without further locking.
type AdaptationController struct {
	monitor  Monitor
	executor Executor
	engine   *core.Engine
	reporter *reporting.CycleReporter

	interval time.Duration
	duration time.Duration // 0 runs until stopped
	stopChan <-chan struct{}
	log      logger.Logger
}

// Options configures an AdaptationController
type Options struct {
	Monitor  Monitor
	Executor Executor
	Engine   *core.Engine
	Reporter *reporting.CycleReporter
	Interval time.Duration
	Duration time.Duration
	StopChan <-chan struct{}
}

// NewAdaptationController creates a controller for one simulation run
func NewAdaptationController(opts Options) *AdaptationController {
	return &AdaptationController{
		monitor:  opts.Monitor,
		executor: opts.Executor,
		engine:   opts.Engine,
		reporter: opts.Reporter,
		interval: opts.Interval,
		duration: opts.Duration,
		stopChan: opts.StopChan,
		log:      logger.WithPrefix("adaptation"),
	}
}

// Run executes adaptation cycles on the configured interval until the
// context is cancelled, the stop channel closes, or the run duration
// elapses. A failed cycle is reported and the loop moves on to the
// next tick; failures never leave a cycle half-executed beyond the
// adjustment that failed.
func (ac *AdaptationController) Run(ctx context.Context) error {
	ticker := time.NewTicker(ac.interval)
	defer ticker.Stop()

	var timeout <-chan time.Time
	if ac.duration > 0 {
		timeout = time.After(ac.duration)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ac.stopChan:
			ac.log.Info("Adaptation loop stopped by user")
			return nil
		case <-timeout:
			ac.log.Infof("Adaptation loop completed after %s", ac.duration)
			return nil
		case <-ticker.C:
			if err := ac.Cycle(ctx); err != nil {
				ac.reporter.LogCycleFailure(err)
			}
		}
	}
}

// Cycle performs exactly one Monitor -> Analyze -> Plan -> Execute
// pass. Transport failures on the monitor or any single execute call
// abort the remainder of the cycle and are returned to the caller.
func (ac *AdaptationController) Cycle(ctx context.Context) error {
	snap, err := ac.monitor.Monitor(ctx)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	if len(snap.UAVs) == 0 {
		// An empty fleet is a legitimate state: nothing to command
		ac.log.Warn("Snapshot contains no UAVs, skipping cycle")
		return nil
	}

	plan, err := ac.engine.RunCycle(snap)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	for _, adj := range plan.Adjustments {
		if err := ac.executor.Execute(ctx, adj); err != nil {
			return fmt.Errorf("execute adjustment for UAV %d: %w", adj.ID, err)
		}
	}

	ac.reporter.LogCycle(snap, plan)
	return nil
}
