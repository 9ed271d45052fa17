package core

import (
	"github.com/firewatch/wildfire-uav/pkg/models"
)

// Allocator assigns UAVs to prioritized fire zones. Each zone receives
// one move adjustment targeting the zone's position at the fleet-wide
// max speed, assigned to the UAV nearest the zone at the time of
// assignment.
type Allocator struct {
	maxSpeed  float64
	exclusive bool
}

// NewAllocator creates an allocator. With exclusive set, an assigned
// UAV is removed from the candidate pool before the next zone is
// evaluated, so no UAV is double-booked within a cycle; otherwise the
// same UAV may be nearest to, and assigned to, several zones.
func NewAllocator(maxSpeed float64, exclusive bool) *Allocator {
	return &Allocator{maxSpeed: maxSpeed, exclusive: exclusive}
}

// Assign produces one move adjustment per prioritized zone, in
// priority order. Under the exclusive policy, zones beyond the fleet
// size are left unassigned once the pool is exhausted.
//
// Returns an InputError when the UAV set is empty.
func (a *Allocator) Assign(prioritized []PrioritizedZone, uavs []models.UAV) ([]models.Adjustment, error) {
	if len(uavs) == 0 {
		return nil, &InputError{Op: "Allocator.Assign", Reason: "UAV set is empty"}
	}

	pool := uavs
	if a.exclusive {
		pool = make([]models.UAV, len(uavs))
		copy(pool, uavs)
	}

	adjustments := make([]models.Adjustment, 0, len(prioritized))
	for _, pz := range prioritized {
		if len(pool) == 0 {
			break
		}

		assigned, _ := nearestUAV(pool, pz.Zone)
		adjustments = append(adjustments, models.MoveAdjustment(
			assigned.ID, pz.Zone.X, pz.Zone.Y, a.maxSpeed,
		))

		if a.exclusive {
			pool = removeUAV(pool, assigned.ID)
		}
	}

	return adjustments, nil
}

func removeUAV(pool []models.UAV, id int) []models.UAV {
	for i, u := range pool {
		if u.ID == id {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}
