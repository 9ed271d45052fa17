package core

import (
	"sync"
)

// Observation radius bounds and starting value
const (
	MinObservationRadius     = 5.0
	MaxObservationRadius     = 15.0
	InitialObservationRadius = 8.0

	// fastSpreadThreshold is the fire spread speed above which the
	// fleet tightens its formation
	fastSpreadThreshold = 3.0
)

// RadiusController adapts the shared sensing radius to current fire
// dynamics. It is the only engine component carrying state across
// cycles; the caller must not run concurrent cycles, but the mutex
// keeps reads from other goroutines (status displays) safe.
type RadiusController struct {
	mu     sync.Mutex
	radius float64
}

// NewRadiusController creates a controller at the initial radius
func NewRadiusController() *RadiusController {
	return &RadiusController{radius: InitialObservationRadius}
}

// Adjust applies one transition step for the given fire spread speed
// and returns the new radius. Fast fire (speed > 3) tightens the
// formation by one unit down to the floor of 5; otherwise coverage
// widens by one unit up to the ceiling of 15. Repeated calls at a
// clamp leave the radius unchanged.
func (rc *RadiusController) Adjust(fireSpreadSpeed float64) float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if fireSpreadSpeed > fastSpreadThreshold {
		rc.radius--
		if rc.radius < MinObservationRadius {
			rc.radius = MinObservationRadius
		}
	} else {
		rc.radius++
		if rc.radius > MaxObservationRadius {
			rc.radius = MaxObservationRadius
		}
	}

	return rc.radius
}

// Current returns the radius without applying a transition
func (rc *RadiusController) Current() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.radius
}
