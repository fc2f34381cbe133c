package errors

import "fmt"

var (
	ErrRejected      = fmt.Errorf("session rejected the viewer")
	ErrInvalidPoints = fmt.Errorf("points must be an integer, a boolean or null")
)
