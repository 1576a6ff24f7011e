package types

import "errors"

// Binding errors returned by the variant package.
var (
	ErrKindMismatch = errors.New("kind mismatch")
	ErrUnbound      = errors.New("variant is unbound")
	ErrInvalidKind  = errors.New("invalid kind")
	ErrInvalidValue = errors.New("invalid value")
	ErrOverflow     = errors.New("value out of range")
	ErrNilPointer   = errors.New("nil pointer")
)

// Slot arena errors returned by the slot package.
var (
	ErrStale         = errors.New("slot handle is stale")
	ErrForeignHandle = errors.New("slot handle belongs to another arena")
	ErrInvalidHandle = errors.New("invalid slot handle")
)
