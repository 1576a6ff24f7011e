package variant

import (
	"fmt"

	"github.com/mesh-intelligence/binder/pkg/types"
)

// Adapter is the contract every bound kind implements. A Variant forwards
// every operation to its Adapter without knowing the kind.
type Adapter interface {
	// Text renders the bound value.
	Text() string

	// Assign copies v into the bound storage. v must have exactly the
	// adapter's Go type; otherwise ErrKindMismatch is returned.
	Assign(v any) error

	// Parse converts s to the adapter's kind and assigns it.
	Parse(s string) error

	// Rebind returns an adapter of the same kind observing loc. No value is
	// copied and the receiver is left unchanged.
	Rebind(loc any) (Adapter, error)

	// Location returns the bound location: *T for pointer bindings,
	// slot.Handle for arena bindings, nil when unbound.
	Location() any

	// Kind returns the adapter's kind token.
	Kind() types.Kind

	// Precedes reports whether the bound value orders strictly before
	// other's. Callers compare Kind first; adapters of different kinds
	// never precede each other. An unreadable binding precedes every
	// readable one of its kind.
	Precedes(other Adapter) bool

	// Err reports whether the binding can be read and written.
	Err() error
}

// typed is implemented by the adapters bound to a T.
type typed[T types.Primitive] interface {
	Adapter
	pointer() (*T, error)
}

// none is the adapter of an unbound Variant.
type none struct{}

var _ Adapter = none{}

func (none) Text() string                  { return "" }
func (none) Assign(any) error              { return nil }
func (none) Parse(string) error            { return nil }
func (n none) Rebind(any) (Adapter, error) { return n, nil }
func (none) Location() any                 { return nil }
func (none) Kind() types.Kind              { return types.KindNone }
func (none) Precedes(Adapter) bool         { return false }
func (none) Err() error                    { return types.ErrUnbound }

func mismatch(bound types.Kind, got any) error {
	return fmt.Errorf("%w: bound %v, got %T", types.ErrKindMismatch, bound, got)
}

// precedes compares the values behind self and other, both bound to a T.
// An unreadable binding, such as a freed slot, orders before every readable
// one of its kind; two unreadable bindings are equivalent.
func precedes[T types.Primitive](self typed[T], other Adapter) bool {
	o, ok := other.(typed[T])
	if !ok {
		return false
	}
	x, errX := self.pointer()
	y, errY := o.pointer()
	switch {
	case errX != nil:
		return errY == nil
	case errY != nil:
		return false
	}
	return less(*x, *y)
}
