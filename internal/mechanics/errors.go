package mechanics

import "errors"

// Domain errors for body construction and field assignment.
var (
	// ErrInvalidName indicates a body constructed without a usable name.
	ErrInvalidName = errors.New("mechanics: body name must be a non-empty string")

	// ErrNotAPoint indicates a mass center assignment that is not a point.
	ErrNotAPoint = errors.New("mechanics: mass center must be a Point")

	// ErrNoFrame indicates a body whose frame has not been established.
	ErrNoFrame = errors.New("mechanics: body frame has not been set")
)
