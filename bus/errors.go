package bus

import "errors"

// Endpoint errors.
var (
	// ErrEndpointType - An endpoint key was reused with a different
	// payload type than the one it was first constructed with.
	ErrEndpointType = errors.New("endpoint declared with a different type")

	// ErrAlreadyBound - A method already has a handler.
	ErrAlreadyBound = errors.New("method already bound")

	// ErrNoHandler - A method was called before a handler was bound.
	ErrNoHandler = errors.New("method has no handler")
)
