package variant

import (
	"fmt"
	"io"
	"slices"

	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/types"
)

// Variant stands in for one primitive value owned by the caller. The zero
// Variant is unbound. Copies share the bound Adapter.
type Variant struct {
	a Adapter
}

// Bind binds a Variant to *p. A nil p yields an unbound Variant.
func Bind[T types.Primitive](p *T) Variant {
	if p == nil {
		return Variant{}
	}
	return Variant{a: &pointerAdapter[T]{p: p}}
}

// BindText binds a Variant to a string. It behaves exactly like Bind(s).
func BindText(s *string) Variant {
	return Bind(s)
}

// BindAny binds to p, which must be a non-nil pointer to a Primitive type.
// Returns ErrInvalidKind for other types and ErrNilPointer for a nil pointer.
func BindAny(p any) (Variant, error) {
	for _, c := range registry {
		a, ok := c.pointer(p)
		if !ok {
			continue
		}
		if a == nil {
			return Variant{}, types.ErrNilPointer
		}
		return Variant{a: a}, nil
	}
	return Variant{}, fmt.Errorf("%w: cannot bind %T", types.ErrInvalidKind, p)
}

// BindSlot binds to a slot of arena. The slot's kind becomes the Variant's
// kind. Returns the arena's lookup error if h does not resolve.
func BindSlot(arena *slot.Arena, h slot.Handle) (Variant, error) {
	k, err := arena.Kind(h)
	if err != nil {
		return Variant{}, err
	}
	c, ok := registry[k]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %v", types.ErrInvalidKind, k)
	}
	return Variant{a: c.slot(arena, h)}, nil
}

func (v Variant) adapter() Adapter {
	if v.a == nil {
		return none{}
	}
	return v.a
}

// Adapter returns the bound adapter, or the unbound adapter for the zero
// Variant.
func (v Variant) Adapter() Adapter {
	return v.adapter()
}

// Kind returns the bound kind, or KindNone.
func (v Variant) Kind() types.Kind {
	return v.adapter().Kind()
}

// IsBound reports whether v has an adapter.
func (v Variant) IsBound() bool {
	return v.a != nil
}

// Err returns nil if the binding can be read and written, ErrUnbound for an
// unbound Variant and the arena error for a freed slot.
func (v Variant) Err() error {
	return v.adapter().Err()
}

// Location returns the bound location (see Adapter.Location).
func (v Variant) Location() any {
	return v.adapter().Location()
}

// String renders the bound value. Unbound Variants render as "".
func (v Variant) String() string {
	return v.adapter().Text()
}

// Equal reports whether v renders as s.
func (v Variant) Equal(s string) bool {
	return v.String() == s
}

// WriteTo writes the text of v to w.
func (v Variant) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}

// Less orders by value when both Variants have the same kind and by kind
// token otherwise.
func (v Variant) Less(other Variant) bool {
	k, ko := v.Kind(), other.Kind()
	if k == ko {
		return v.adapter().Precedes(other.adapter())
	}
	return k < ko
}

// Compare returns -1, 0 or +1 following Less. It is suitable for
// slices.SortFunc over Variants of mixed kinds.
func Compare(a, b Variant) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Sort sorts vs in place by Compare, keeping the order of equal elements.
func Sort(vs []Variant) {
	slices.SortStableFunc(vs, Compare)
}

// Same reports whether a and b share one adapter, which is the case for
// copies of one bound Variant.
func Same(a, b Variant) bool {
	return a.a != nil && a.a == b.a
}

// Release moves the adapter out of v, leaving v unbound.
func (v *Variant) Release() Variant {
	out := *v
	v.a = nil
	return out
}

// Reset unbinds v. Copies of v are not affected.
func (v *Variant) Reset() {
	v.a = nil
}

func expect[T types.Primitive](v Variant) error {
	if v.a == nil {
		return types.ErrUnbound
	}
	if want := types.KindOf[T](); v.a.Kind() != want {
		return fmt.Errorf("%w: bound %v, asked for %v", types.ErrKindMismatch, v.a.Kind(), want)
	}
	return nil
}

// Ref returns the bound storage as a *T.
func Ref[T types.Primitive](v Variant) (*T, error) {
	if err := expect[T](v); err != nil {
		return nil, err
	}
	t, ok := v.a.(typed[T])
	if !ok {
		return nil, mismatch(v.a.Kind(), *new(T))
	}
	return t.pointer()
}

// Get returns the bound value as a T.
func Get[T types.Primitive](v Variant) (T, error) {
	p, err := Ref[T](v)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set copies x into the bound storage and returns that storage.
// Returns ErrUnbound or ErrKindMismatch without writing anything.
func Set[T types.Primitive](v Variant, x T) (*T, error) {
	if err := expect[T](v); err != nil {
		return nil, err
	}
	if err := v.a.Assign(x); err != nil {
		return nil, err
	}
	return Ref[T](v)
}

// SetAny copies x into the bound storage. x must have the bound kind's Go
// type.
func (v Variant) SetAny(x any) error {
	if v.a == nil {
		return types.ErrUnbound
	}
	return v.a.Assign(x)
}

// SetText parses s as the bound kind and assigns it.
func (v Variant) SetText(s string) error {
	if v.a == nil {
		return types.ErrUnbound
	}
	return v.a.Parse(s)
}

// Rebind points v at *p without copying a value. An unbound v becomes bound.
// A bound v must already have T's kind; changing kind takes a fresh Bind.
// Only v observes the new location: copies made earlier keep the old one.
func Rebind[T types.Primitive](v *Variant, p *T) error {
	if p == nil {
		return types.ErrNilPointer
	}
	if v.a == nil {
		*v = Bind(p)
		return nil
	}
	if err := expect[T](*v); err != nil {
		return err
	}
	next, err := v.a.Rebind(p)
	if err != nil {
		return err
	}
	v.a = next
	return nil
}

// RebindAny is the dynamic form of Rebind. loc is a pointer to a Primitive
// type, or a slot.Handle for a Variant bound by BindSlot.
func (v *Variant) RebindAny(loc any) error {
	if v.a == nil {
		b, err := BindAny(loc)
		if err != nil {
			return err
		}
		*v = b
		return nil
	}
	next, err := v.a.Rebind(loc)
	if err != nil {
		return err
	}
	v.a = next
	return nil
}
