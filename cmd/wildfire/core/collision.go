package core

import (
	"github.com/firewatch/wildfire-uav/pkg/models"
)

// CollisionPair is an unordered pair of UAVs closer than the security
// distance. Each unordered pair is reported at most once and a UAV is
// never paired with itself.
type CollisionPair struct {
	First  models.UAV
	Second models.UAV
}

// DetectCollisions returns every UAV pair whose planar distance is
// strictly less than securityDistance. Distance exactly equal to the
// threshold does not trigger a warning.
//
// The comparison is exhaustive and quadratic in fleet size, which is
// acceptable for the small fleets this simulation runs.
func DetectCollisions(uavs []models.UAV, securityDistance float64) []CollisionPair {
	var pairs []CollisionPair
	for i, first := range uavs {
		for _, second := range uavs[i+1:] {
			if distance(first, second) < securityDistance {
				pairs = append(pairs, CollisionPair{First: first, Second: second})
			}
		}
	}
	return pairs
}
