package core

import (
	"github.com/firewatch/wildfire-uav/pkg/models"
)

// PredictSpread projects each fire zone one unit step along the wind's
// cardinal direction: north y-1, south y+1, east x+1, west x-1. Wind
// velocity is accepted as input but does not scale the shift; this is
// a one-step predictor, not a physical spread model.
//
// Policy for calm conditions: when wind is inactive or the direction
// is "none" (or unrecognized), the prediction is a no-op and nothing
// is emitted.
func PredictSpread(wind models.Wind, zones []models.FireZone) []Position {
	if !wind.Active {
		return nil
	}

	var dx, dy float64
	switch wind.Direction {
	case models.DirectionNorth:
		dy = -1
	case models.DirectionSouth:
		dy = 1
	case models.DirectionEast:
		dx = 1
	case models.DirectionWest:
		dx = -1
	default:
		return nil
	}

	predicted := make([]Position, len(zones))
	for i, zone := range zones {
		predicted[i] = Position{X: zone.X + dx, Y: zone.Y + dy}
	}
	return predicted
}
