package surface

import "errors"

var (
	ErrAlreadyAttached = errors.New("surface already attached")
	ErrNotAttached     = errors.New("surface not attached")
)
