package core

import (
	"sort"

	"github.com/firewatch/wildfire-uav/pkg/models"
)

// PrioritizedZone pairs a fire zone with its computed urgency score
type PrioritizedZone struct {
	Zone  models.FireZone
	Score float64
}

// PrioritizeZones ranks fire zones by urgency and UAV proximity. Each
// zone scores intensity / (distance to nearest UAV + 1); the +1 keeps
// the score defined when a UAV sits exactly on a zone and dampens the
// effect of very close UAVs. The result is sorted by descending score
// with a stable sort, so equal scores preserve input order.
//
// Returns an InputError when the UAV set is empty: an empty fleet is a
// legitimate state the caller must handle, not a crash.
func PrioritizeZones(zones []models.FireZone, uavs []models.UAV) ([]PrioritizedZone, error) {
	if len(uavs) == 0 {
		return nil, &InputError{Op: "PrioritizeZones", Reason: "UAV set is empty"}
	}

	prioritized := make([]PrioritizedZone, 0, len(zones))
	for _, zone := range zones {
		_, dist := nearestUAV(uavs, zone)
		prioritized = append(prioritized, PrioritizedZone{
			Zone:  zone,
			Score: zone.Intensity / (dist + 1),
		})
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].Score > prioritized[j].Score
	})

	return prioritized, nil
}
