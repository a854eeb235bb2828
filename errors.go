package depscope

import "errors"

// Sentinel errors for metadata handed to the resolution core.
var (
	// ErrUnknownScope indicates a scope string outside the closed Maven
	// scope set.
	ErrUnknownScope = errors.New("unknown scope")
)
