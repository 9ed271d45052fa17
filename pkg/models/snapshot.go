package models

import (
	"encoding/json"
	"fmt"
)

// UAV is one aircraft position report from the monitor endpoint
type UAV struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// FireZone is one burning cell with its observed intensity
type FireZone struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Intensity float64 `json:"intensity"`
}

// Direction is a wind direction as reported by the exemplar
type Direction string

// Cardinal wind directions. Anything else, including "none", means no
// usable wind vector.
const (
	DirectionNorth Direction = "north"
	DirectionSouth Direction = "south"
	DirectionEast  Direction = "east"
	DirectionWest  Direction = "west"
	DirectionNone  Direction = "none"
)

// Wind describes the wind conditions active for the current cycle
type Wind struct {
	Active    bool
	Direction Direction
	Velocity  float64
}

// Exemplar defaults applied when the monitor payload omits a constant
const (
	DefaultObservationRadius = 8.0
	DefaultSecurityDistance  = 10.0
	DefaultFireSpreadSpeed   = 2.0
)

// Snapshot is the normalized state for one adaptation cycle
type Snapshot struct {
	UAVs      []UAV
	FireZones []FireZone
	Wind      Wind

	SmokeActive bool

	// ObservationRadius is the exemplar's reported sensing radius.
	// The decision engine keeps its own adapted radius across cycles
	// (starting at the same default) and does not read this constant.
	ObservationRadius float64

	SecurityDistance float64
	FireSpreadSpeed  float64
}

// monitorResponse mirrors the raw monitor payload. Constants use
// pointers so absent fields can be told apart from zero values.
type monitorResponse struct {
	Constants struct {
		ActivateWind      *bool    `json:"activateWind"`
		WindDirection     *string  `json:"windDirection"`
		WindVelocity      *float64 `json:"windVelocity"`
		ActivateSmoke     *bool    `json:"activateSmoke"`
		ObservationRadius *float64 `json:"observationRadius"`
		SecurityDistance  *float64 `json:"securityDistance"`
		FireSpreadSpeed   *float64 `json:"fireSpreadSpeed"`
	} `json:"constants"`
	DynamicValues struct {
		UAVDetails []UAV      `json:"uavDetails"`
		FireZones  []FireZone `json:"fireZones"`
		// The exemplar has shipped both spellings of the zone list
		FireZonesAlt []FireZone `json:"fire_zones"`
	} `json:"dynamicValues"`
}

// ParseMonitorResponse decodes a raw monitor payload into a Snapshot,
// applying exemplar defaults for any omitted constant
func ParseMonitorResponse(data []byte) (*Snapshot, error) {
	var raw monitorResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse monitor response: %w", err)
	}

	zones := raw.DynamicValues.FireZones
	if len(zones) == 0 {
		zones = raw.DynamicValues.FireZonesAlt
	}

	snap := &Snapshot{
		UAVs:      raw.DynamicValues.UAVDetails,
		FireZones: zones,
		Wind: Wind{
			Direction: DirectionNone,
		},
		ObservationRadius: DefaultObservationRadius,
		SecurityDistance:  DefaultSecurityDistance,
		FireSpreadSpeed:   DefaultFireSpreadSpeed,
	}

	c := raw.Constants
	if c.ActivateWind != nil {
		snap.Wind.Active = *c.ActivateWind
	}
	if c.WindDirection != nil {
		snap.Wind.Direction = Direction(*c.WindDirection)
	}
	if c.WindVelocity != nil {
		snap.Wind.Velocity = *c.WindVelocity
	}
	if c.ActivateSmoke != nil {
		snap.SmokeActive = *c.ActivateSmoke
	}
	if c.ObservationRadius != nil {
		snap.ObservationRadius = *c.ObservationRadius
	}
	if c.SecurityDistance != nil {
		snap.SecurityDistance = *c.SecurityDistance
	}
	if c.FireSpreadSpeed != nil {
		snap.FireSpreadSpeed = *c.FireSpreadSpeed
	}

	return snap, nil
}
