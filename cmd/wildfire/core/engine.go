package core

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/firewatch/wildfire-uav/pkg/models"
)

// Options configures the decision engine for a run
type Options struct {
	// MaxUAVSpeed is the fleet-wide speed ceiling applied to
	// allocation moves; evasive maneuvers run at half of it
	MaxUAVSpeed float64

	// ExclusiveAssignment removes a UAV from the candidate pool once
	// it is assigned to a zone within a cycle
	ExclusiveAssignment bool

	// ExploreIdle gives UAVs that received no command this cycle a
	// random one-unit step so untasked aircraft keep surveying
	ExploreIdle bool

	// Seed initializes the injected randomness source; runs with the
	// same seed and inputs produce identical plans
	Seed int64
}

// Engine is the Analyze+Plan decision core of the adaptation loop. It
// is a pure function of the snapshot plus the radius controller state;
// the caller serializes cycles.
type Engine struct {
	opts      Options
	radius    *RadiusController
	allocator *Allocator
	resolver  *CollisionResolver
	rng       *rand.Rand
}

// Analysis holds the per-cycle derived state the planner consumes
type Analysis struct {
	Prioritized []PrioritizedZone
	Predicted   []Position
	Collisions  []CollisionPair
	Radius      float64
}

// AdjustmentPlan is the ordered list of commands emitted for one cycle
type AdjustmentPlan struct {
	CycleID     uuid.UUID
	Adjustments []models.Adjustment
	Analysis    Analysis
}

// NewEngine creates a decision engine with the given options
func NewEngine(opts Options) *Engine {
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Engine{
		opts:      opts,
		radius:    NewRadiusController(),
		allocator: NewAllocator(opts.MaxUAVSpeed, opts.ExclusiveAssignment),
		resolver:  NewCollisionResolver(opts.MaxUAVSpeed, rng),
		rng:       rng,
	}
}

// Radius exposes the observation radius controller
func (e *Engine) Radius() *RadiusController {
	return e.radius
}

// Analyze derives the per-cycle state from a snapshot: collision
// pairs, zone priorities, predicted spread and the adapted observation
// radius. The radius transition is applied exactly once per cycle.
func (e *Engine) Analyze(snap *models.Snapshot) (*Analysis, error) {
	prioritized, err := PrioritizeZones(snap.FireZones, snap.UAVs)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Prioritized: prioritized,
		Predicted:   PredictSpread(snap.Wind, snap.FireZones),
		Collisions:  DetectCollisions(snap.UAVs, snap.SecurityDistance),
		Radius:      e.radius.Adjust(snap.FireSpreadSpeed),
	}, nil
}

// Plan turns an analysis into the cycle's adjustment list: allocation
// moves in priority order, then evasive maneuvers for each collision
// pair (perturbed by the current observation radius), then optional
// exploration steps for idle UAVs.
func (e *Engine) Plan(snap *models.Snapshot, analysis *Analysis) (*AdjustmentPlan, error) {
	adjustments, err := e.allocator.Assign(analysis.Prioritized, snap.UAVs)
	if err != nil {
		return nil, err
	}

	for _, pair := range analysis.Collisions {
		adjustments = append(adjustments, e.resolver.Resolve(pair, analysis.Radius)...)
	}

	if e.opts.ExploreIdle {
		adjustments = append(adjustments, e.exploreIdle(snap.UAVs, adjustments)...)
	}

	return &AdjustmentPlan{
		CycleID:     uuid.New(),
		Adjustments: adjustments,
		Analysis:    *analysis,
	}, nil
}

// RunCycle performs one full Analyze+Plan pass over a snapshot
func (e *Engine) RunCycle(snap *models.Snapshot) (*AdjustmentPlan, error) {
	analysis, err := e.Analyze(snap)
	if err != nil {
		return nil, err
	}
	return e.Plan(snap, analysis)
}

// exploreIdle emits a random one-unit step for every UAV that received
// no command this cycle
func (e *Engine) exploreIdle(uavs []models.UAV, planned []models.Adjustment) []models.Adjustment {
	tasked := make(map[int]bool, len(planned))
	for _, adj := range planned {
		tasked[adj.ID] = true
	}

	var exploration []models.Adjustment
	for _, uav := range uavs {
		if tasked[uav.ID] {
			continue
		}
		exploration = append(exploration, models.MoveAdjustment(
			uav.ID,
			uav.X+e.randomStep(),
			uav.Y+e.randomStep(),
			e.opts.MaxUAVSpeed,
		))
	}
	return exploration
}

// randomStep picks -1, 0 or 1
func (e *Engine) randomStep() float64 {
	return float64(e.rng.Intn(3) - 1)
}
