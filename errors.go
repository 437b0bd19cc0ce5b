package motif

import (
	"errors"
	"fmt"
)

// Sentinel errors. Invalid geometry (degenerate shapes, empty selections)
// is absorbed as a no-op and never surfaces as an error; only numeric
// blow-ups and configuration mistakes are reported.
var (
	// ErrNonFinite reports that an operation produced NaN or infinite
	// coordinates. It is detected before geometry reaches the rendering
	// boundary and wraps the shape and operation that caused it.
	ErrNonFinite = errors.New("motif: non-finite coordinate")

	// ErrUnknownBlock reports a lookup of a quilt block name that is not
	// in the catalog. The message lists the valid names.
	ErrUnknownBlock = errors.New("motif: unknown block")

	// ErrBadConfig reports an invalid generation parameter passed to a
	// grid or tessellation constructor. Configuration mistakes are
	// surfaced at construction time, never deferred to generation.
	ErrBadConfig = errors.New("motif: invalid configuration")
)

// nonFiniteError wraps ErrNonFinite with enough context to diagnose which
// shape and operation blew up.
func nonFiniteError(op, group string, vertex int) error {
	if group == "" {
		group = "(untagged)"
	}
	return fmt.Errorf("%w: %s on shape %s, vertex %d", ErrNonFinite, op, group, vertex)
}

// badConfigError wraps ErrBadConfig with the constructor and the
// offending parameter.
func badConfigError(op, detail string) error {
	return fmt.Errorf("%w: %s: %s", ErrBadConfig, op, detail)
}
