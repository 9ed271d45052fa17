package core

import (
	"math/rand"

	"github.com/firewatch/wildfire-uav/pkg/models"
)

// CollisionResolver generates evasive maneuvers for colliding UAV
// pairs. Its randomness source is injected so collision resolution is
// deterministic under a fixed seed.
type CollisionResolver struct {
	maxSpeed float64
	rng      *rand.Rand
}

// NewCollisionResolver creates a resolver with the fleet-wide max UAV
// speed and a seeded randomness source
func NewCollisionResolver(maxSpeed float64, rng *rand.Rand) *CollisionResolver {
	return &CollisionResolver{maxSpeed: maxSpeed, rng: rng}
}

// Resolve produces two move adjustments, one per UAV in the pair, each
// displaced by a randomly signed offset of the given magnitude on both
// axes. Speed is half the fleet max: UAVs slow down while evading.
func (cr *CollisionResolver) Resolve(pair CollisionPair, magnitude float64) []models.Adjustment {
	adjustments := make([]models.Adjustment, 0, 2)
	for _, uav := range []models.UAV{pair.First, pair.Second} {
		adjustments = append(adjustments, models.MoveAdjustment(
			uav.ID,
			uav.X+cr.randomSign()*magnitude,
			uav.Y+cr.randomSign()*magnitude,
			cr.maxSpeed/2,
		))
	}
	return adjustments
}

func (cr *CollisionResolver) randomSign() float64 {
	if cr.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
