package reporting

import (
	"fmt"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/firewatch/wildfire-uav/cmd/wildfire/core"
	"github.com/firewatch/wildfire-uav/pkg/logger"
	"github.com/firewatch/wildfire-uav/pkg/models"
)

// Color definitions for cycle output
var (
	colorCollision = color.New(color.FgRed, color.Bold)
	colorZone      = color.New(color.FgYellow)
	colorDispatch  = color.New(color.FgCyan)
	colorSummary   = color.New(color.FgGreen)
)

// CycleReporter aggregates per-cycle statistics for one simulation run
// and prints colored cycle summaries
type CycleReporter struct {
	runID     uuid.UUID
	startTime time.Time

	cycles           int
	failedCycles     int
	totalAdjustments int
	totalCollisions  int
	mu               sync.Mutex
}

// NewCycleReporter creates a reporter for a new run
func NewCycleReporter() *CycleReporter {
	cr := &CycleReporter{
		runID:     uuid.New(),
		startTime: time.Now(),
	}

	logger.Infof("Adaptation run started | ID: %s | Time: %s",
		cr.runID, cr.startTime.Format("15:04:05"))

	return cr
}

// RunID returns the identifier of this run
func (cr *CycleReporter) RunID() uuid.UUID {
	return cr.runID
}

// LogCycle records one completed cycle and prints its summary
func (cr *CycleReporter) LogCycle(snap *models.Snapshot, plan *core.AdjustmentPlan) {
	cr.mu.Lock()
	cr.cycles++
	cr.totalAdjustments += len(plan.Adjustments)
	cr.totalCollisions += len(plan.Analysis.Collisions)
	cycle := cr.cycles
	cr.mu.Unlock()

	logger.Infof("Cycle %d [%s]: %s, %s, %s, radius %.0f",
		cycle,
		plan.CycleID,
		colorZone.Sprintf("%d zones", len(plan.Analysis.Prioritized)),
		colorCollision.Sprintf("%d collisions", len(plan.Analysis.Collisions)),
		colorDispatch.Sprintf("%d adjustments", len(plan.Adjustments)),
		plan.Analysis.Radius,
	)

	for _, pair := range plan.Analysis.Collisions {
		logger.Warnf("%s proximity warning: UAV %d and UAV %d",
			logger.IconWarning, pair.First.ID, pair.Second.ID)
	}

	if len(plan.Analysis.Predicted) > 0 && snap.Wind.Active {
		logger.Debugf("Wind %s: %d zones projected one step downwind",
			snap.Wind.Direction, len(plan.Analysis.Predicted))
	}
}

// LogCycleFailure records a cycle that aborted with an error
func (cr *CycleReporter) LogCycleFailure(err error) {
	cr.mu.Lock()
	cr.failedCycles++
	cr.mu.Unlock()

	logger.Errorf("Cycle aborted: %v", err)
}

// Summary prints the end-of-run totals
func (cr *CycleReporter) Summary() {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	elapsed := time.Since(cr.startTime).Round(time.Second)
	logger.Info(colorSummary.Sprintf(
		"Run %s complete: %d cycles (%d failed), %d adjustments dispatched, %d collision warnings in %s",
		cr.runID, cr.cycles, cr.failedCycles, cr.totalAdjustments, cr.totalCollisions, elapsed,
	))
}

// String describes the reporter state, mostly for debug logs
func (cr *CycleReporter) String() string {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return fmt.Sprintf("run %s: %d cycles, %d adjustments", cr.runID, cr.cycles, cr.totalAdjustments)
}
