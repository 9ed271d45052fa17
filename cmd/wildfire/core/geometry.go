package core

import (
	"math"

	"github.com/firewatch/wildfire-uav/pkg/models"
)

// Position is a planar point used for spread predictions and targets
type Position struct {
	X float64
	Y float64
}

// distance returns the planar Euclidean distance between two UAVs
func distance(a, b models.UAV) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// distanceToZone returns the planar Euclidean distance from a UAV to a
// fire zone
func distanceToZone(u models.UAV, z models.FireZone) float64 {
	return math.Hypot(u.X-z.X, u.Y-z.Y)
}

// nearestUAV returns the UAV closest to the given zone and its
// distance. The uavs slice must be non-empty; ties keep the earlier
// entry so results are deterministic.
func nearestUAV(uavs []models.UAV, zone models.FireZone) (models.UAV, float64) {
	nearest := uavs[0]
	best := distanceToZone(uavs[0], zone)
	for _, u := range uavs[1:] {
		if d := distanceToZone(u, zone); d < best {
			nearest = u
			best = d
		}
	}
	return nearest, best
}
