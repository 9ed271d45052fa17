package core

import (
	"errors"
	"testing"

	"github.com/firewatch/wildfire-uav/pkg/models"
)

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		UAVs: []models.UAV{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 100, Y: 100},
		},
		FireZones:         []models.FireZone{{X: 1, Y: 1, Intensity: 10}},
		Wind:              models.Wind{Active: false, Direction: models.DirectionNone},
		ObservationRadius: models.DefaultObservationRadius,
		SecurityDistance:  models.DefaultSecurityDistance,
		FireSpreadSpeed:   models.DefaultFireSpreadSpeed,
	}
}

func TestEngineAllocationScenario(t *testing.T) {
	// UAVs at (0,0) and (100,100), one zone at (1,1): the zone's
	// nearest UAV is id 1 at distance ~1.41, so the plan holds one
	// allocation move for it at fleet max speed
	engine := NewEngine(Options{MaxUAVSpeed: 2, Seed: 1})

	plan, err := engine.RunCycle(testSnapshot())
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}

	if len(plan.Adjustments) != 1 {
		t.Fatalf("Expected 1 adjustment, got %d", len(plan.Adjustments))
	}

	expected := models.MoveAdjustment(1, 1, 1, 2)
	if plan.Adjustments[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, plan.Adjustments[0])
	}
}

func TestEngineCollisionScenario(t *testing.T) {
	// UAVs at (0,0) and (1,1) with security distance 10: distance
	// ~1.41 < 10, exactly one collision pair, resolver emits two
	// adjustments at half the fleet max speed
	engine := NewEngine(Options{MaxUAVSpeed: 2, Seed: 1})

	snap := &models.Snapshot{
		UAVs: []models.UAV{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 1, Y: 1},
		},
		SecurityDistance: 10,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Direction: models.DirectionNone},
	}

	plan, err := engine.RunCycle(snap)
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}

	if len(plan.Analysis.Collisions) != 1 {
		t.Fatalf("Expected 1 collision pair, got %d", len(plan.Analysis.Collisions))
	}

	pair := plan.Analysis.Collisions[0]
	if pair.First.ID != 1 || pair.Second.ID != 2 {
		t.Errorf("Expected pair (1,2), got (%d,%d)", pair.First.ID, pair.Second.ID)
	}

	// No fire zones, so all adjustments come from the resolver
	if len(plan.Adjustments) != 2 {
		t.Fatalf("Expected 2 adjustments, got %d", len(plan.Adjustments))
	}
	for _, adj := range plan.Adjustments {
		if adj.Speed != 1 {
			t.Errorf("Expected evasive speed 1 (max/2), got %f", adj.Speed)
		}
	}
}

func TestEngineRadiusAcrossCycles(t *testing.T) {
	// fire_spread_speed=5 starting at radius 8: one cycle -> 7, five
	// cycles -> clamped at 5
	engine := NewEngine(Options{MaxUAVSpeed: 2, Seed: 1})

	snap := testSnapshot()
	snap.FireSpreadSpeed = 5

	plan, err := engine.RunCycle(snap)
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}
	if plan.Analysis.Radius != 7 {
		t.Errorf("Expected radius 7 after first fast cycle, got %f", plan.Analysis.Radius)
	}

	for i := 0; i < 6; i++ {
		plan, err = engine.RunCycle(snap)
		if err != nil {
			t.Fatalf("RunCycle failed: %v", err)
		}
	}
	if plan.Analysis.Radius != MinObservationRadius {
		t.Errorf("Expected radius clamped at %f, got %f", MinObservationRadius, plan.Analysis.Radius)
	}
}

func TestEngineAdjustmentIDsReferToSnapshotUAVs(t *testing.T) {
	engine := NewEngine(Options{MaxUAVSpeed: 3, ExploreIdle: true, Seed: 9})

	snap := &models.Snapshot{
		UAVs: []models.UAV{
			{ID: 4, X: 0, Y: 0},
			{ID: 8, X: 2, Y: 2},
			{ID: 15, X: 50, Y: 50},
		},
		FireZones: []models.FireZone{
			{X: 1, Y: 1, Intensity: 9},
		},
		SecurityDistance: 5,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Active: true, Direction: models.DirectionWest},
	}

	plan, err := engine.RunCycle(snap)
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}

	known := map[int]bool{4: true, 8: true, 15: true}
	for _, adj := range plan.Adjustments {
		if !known[adj.ID] {
			t.Errorf("Adjustment targets unknown UAV %d", adj.ID)
		}
		if adj.Action != models.ActionMove {
			t.Errorf("Expected action %q, got %q", models.ActionMove, adj.Action)
		}
	}
}

func TestEngineExploreIdle(t *testing.T) {
	engine := NewEngine(Options{MaxUAVSpeed: 2, ExploreIdle: true, Seed: 3})

	// Zone near UAV 1; UAV 2 is idle and should receive an
	// exploration step of at most one unit per axis
	plan, err := engine.RunCycle(testSnapshot())
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}

	if len(plan.Adjustments) != 2 {
		t.Fatalf("Expected allocation + exploration, got %d adjustments", len(plan.Adjustments))
	}

	explore := plan.Adjustments[1]
	if explore.ID != 2 {
		t.Errorf("Expected exploration for idle UAV 2, got %d", explore.ID)
	}
	if dx := explore.Target[0] - 100; dx < -1 || dx > 1 {
		t.Errorf("Exploration step x out of range: %f", dx)
	}
	if dy := explore.Target[1] - 100; dy < -1 || dy > 1 {
		t.Errorf("Exploration step y out of range: %f", dy)
	}
	if explore.Speed != 2 {
		t.Errorf("Expected exploration at max speed, got %f", explore.Speed)
	}
}

func TestEngineDeterministicUnderSeed(t *testing.T) {
	snap := &models.Snapshot{
		UAVs: []models.UAV{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 1, Y: 1},
			{ID: 3, X: 200, Y: 200},
		},
		FireZones:        []models.FireZone{{X: 5, Y: 5, Intensity: 6}},
		SecurityDistance: 10,
		FireSpreadSpeed:  2,
		Wind:             models.Wind{Direction: models.DirectionNone},
	}

	run := func() []models.Adjustment {
		engine := NewEngine(Options{MaxUAVSpeed: 2, ExploreIdle: true, Seed: 11})
		plan, err := engine.RunCycle(snap)
		if err != nil {
			t.Fatalf("RunCycle failed: %v", err)
		}
		return plan.Adjustments
	}

	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("Plan lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Adjustment %d differs between seeded runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEngineEmptyFleet(t *testing.T) {
	engine := NewEngine(Options{MaxUAVSpeed: 2, Seed: 1})

	snap := testSnapshot()
	snap.UAVs = nil

	_, err := engine.RunCycle(snap)
	if err == nil {
		t.Fatal("Expected InputError for empty fleet")
	}

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected InputError, got %T: %v", err, err)
	}
}

func TestEngineWindPredictionInAnalysis(t *testing.T) {
	engine := NewEngine(Options{MaxUAVSpeed: 2, Seed: 1})

	snap := testSnapshot()
	snap.Wind = models.Wind{Active: true, Direction: models.DirectionNorth, Velocity: 2}

	plan, err := engine.RunCycle(snap)
	if err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}

	if len(plan.Analysis.Predicted) != 1 {
		t.Fatalf("Expected 1 predicted position, got %d", len(plan.Analysis.Predicted))
	}
	expected := Position{X: 1, Y: 0}
	if plan.Analysis.Predicted[0] != expected {
		t.Errorf("Expected predicted position %+v, got %+v", expected, plan.Analysis.Predicted[0])
	}
}
