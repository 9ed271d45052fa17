package models

// ActionMove is the only adjustment action the exemplar accepts today
const ActionMove = "move"

// Adjustment is one command sent to the execute endpoint
type Adjustment struct {
	ID     int        `json:"id"`
	Action string     `json:"action"`
	Target [2]float64 `json:"target"`
	Speed  float64    `json:"speed"`
}

// MoveAdjustment builds a move command for one UAV
func MoveAdjustment(id int, x, y, speed float64) Adjustment {
	return Adjustment{
		ID:     id,
		Action: ActionMove,
		Target: [2]float64{x, y},
		Speed:  speed,
	}
}
