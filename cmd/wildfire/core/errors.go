package core

import "fmt"

// InputError reports structurally invalid input to a core operation,
// such as an empty fleet where a nearest-neighbor computation is
// required. It is fatal for the operation; the caller decides whether
// the cycle can continue.
type InputError struct {
	Op     string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid input: %s", e.Op, e.Reason)
}
