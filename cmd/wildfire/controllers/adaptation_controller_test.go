package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firewatch/wildfire-uav/cmd/wildfire/core"
	"github.com/firewatch/wildfire-uav/cmd/wildfire/reporting"
	"github.com/firewatch/wildfire-uav/pkg/models"
)

type fakeMonitor struct {
	snap *models.Snapshot
	err  error
}

func (m *fakeMonitor) Monitor(ctx context.Context) (*models.Snapshot, error) {
	return m.snap, m.err
}

type fakeExecutor struct {
	executed []models.Adjustment
	failOn   int // 1-based call index to fail at, 0 never fails
	calls    int
}

func (e *fakeExecutor) Execute(ctx context.Context, adj models.Adjustment) error {
	e.calls++
	if e.failOn != 0 && e.calls == e.failOn {
		return errors.New("execute endpoint rejected adjustment")
	}
	e.executed = append(e.executed, adj)
	return nil
}

func newTestController(monitor Monitor, executor Executor) *AdaptationController {
	return NewAdaptationController(Options{
		Monitor:  monitor,
		Executor: executor,
		Engine:   core.NewEngine(core.Options{MaxUAVSpeed: 2, Seed: 1}),
		Reporter: reporting.NewCycleReporter(),
		Interval: 10 * time.Millisecond,
		StopChan: make(chan struct{}),
	})
}

func TestCycleExecutesPlannedAdjustments(t *testing.T) {
	monitor := &fakeMonitor{snap: &models.Snapshot{
		UAVs: []models.UAV{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 100, Y: 100},
		},
		FireZones:        []models.FireZone{{X: 1, Y: 1, Intensity: 10}},
		SecurityDistance: 10,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Direction: models.DirectionNone},
	}}
	executor := &fakeExecutor{}

	ctrl := newTestController(monitor, executor)

	if err := ctrl.Cycle(context.Background()); err != nil {
		t.Fatalf("Cycle failed: %v", err)
	}

	if len(executor.executed) != 1 {
		t.Fatalf("Expected 1 executed adjustment, got %d", len(executor.executed))
	}

	expected := models.MoveAdjustment(1, 1, 1, 2)
	if executor.executed[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, executor.executed[0])
	}
}

func TestCycleMonitorFailureAborts(t *testing.T) {
	monitor := &fakeMonitor{err: errors.New("monitor unreachable")}
	executor := &fakeExecutor{}

	ctrl := newTestController(monitor, executor)

	if err := ctrl.Cycle(context.Background()); err == nil {
		t.Fatal("Expected error when monitor fails")
	}
	if executor.calls != 0 {
		t.Errorf("Expected no execute calls after monitor failure, got %d", executor.calls)
	}
}

func TestCycleExecuteFailureAbortsRemainder(t *testing.T) {
	// Two colliding UAVs produce two evasive adjustments; failing the
	// first execute call must abort before the second
	monitor := &fakeMonitor{snap: &models.Snapshot{
		UAVs: []models.UAV{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 1, Y: 1},
		},
		SecurityDistance: 10,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Direction: models.DirectionNone},
	}}
	executor := &fakeExecutor{failOn: 1}

	ctrl := newTestController(monitor, executor)

	if err := ctrl.Cycle(context.Background()); err == nil {
		t.Fatal("Expected error when execute fails")
	}
	if executor.calls != 1 {
		t.Errorf("Expected cycle to stop after first failed execute, got %d calls", executor.calls)
	}
}

func TestCycleEmptyFleetSkips(t *testing.T) {
	monitor := &fakeMonitor{snap: &models.Snapshot{
		FireZones:        []models.FireZone{{X: 1, Y: 1, Intensity: 5}},
		SecurityDistance: 10,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Direction: models.DirectionNone},
	}}
	executor := &fakeExecutor{}

	ctrl := newTestController(monitor, executor)

	if err := ctrl.Cycle(context.Background()); err != nil {
		t.Fatalf("Expected empty fleet to be skipped without error, got %v", err)
	}
	if executor.calls != 0 {
		t.Errorf("Expected no execute calls for empty fleet, got %d", executor.calls)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	monitor := &fakeMonitor{snap: &models.Snapshot{
		UAVs:             []models.UAV{{ID: 1, X: 0, Y: 0}},
		SecurityDistance: 10,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Direction: models.DirectionNone},
	}}

	ctrl := newTestController(monitor, &fakeExecutor{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Run(ctx)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestRunStopsAfterDuration(t *testing.T) {
	monitor := &fakeMonitor{snap: &models.Snapshot{
		UAVs:             []models.UAV{{ID: 1, X: 0, Y: 0}},
		SecurityDistance: 10,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Direction: models.DirectionNone},
	}}

	ctrl := NewAdaptationController(Options{
		Monitor:  monitor,
		Executor: &fakeExecutor{},
		Engine:   core.NewEngine(core.Options{MaxUAVSpeed: 2, Seed: 1}),
		Reporter: reporting.NewCycleReporter(),
		Interval: 10 * time.Millisecond,
		Duration: 50 * time.Millisecond,
		StopChan: make(chan struct{}),
	})

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Run(context.Background())
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean completion after duration, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after configured duration")
	}
}
