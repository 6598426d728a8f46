package vector

import "errors"

// Domain errors for frame, point, and vector queries.
var (
	// ErrDisconnectedFrames indicates two frames with no orientation path
	// between them.
	ErrDisconnectedFrames = errors.New("vector: frames are not connected by any orientation")

	// ErrDisconnectedPoints indicates two points with no position path
	// between them.
	ErrDisconnectedPoints = errors.New("vector: points are not connected by any position")

	// ErrNoVelocity indicates a point whose velocity was never defined in
	// the requested frame.
	ErrNoVelocity = errors.New("vector: velocity has not been defined in the requested frame")

	// ErrNoAngularVelocity indicates a frame pair with no known angular
	// velocity relation.
	ErrNoAngularVelocity = errors.New("vector: angular velocity has not been defined between the frames")

	// ErrInvalidAxis indicates a rotation axis outside x, y, z.
	ErrInvalidAxis = errors.New("vector: invalid rotation axis")

	// ErrCircularOrientation indicates an orientation that would make a
	// frame its own ancestor.
	ErrCircularOrientation = errors.New("vector: orientation would create a cycle between the frames")
)
