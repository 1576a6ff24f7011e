package variant

import (
	"database/sql/driver"

	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/types"
)

// slotAdapter binds a slot of an arena. Every operation resolves the handle,
// so a freed slot is reported instead of read.
type slotAdapter[T types.Primitive] struct {
	arena *slot.Arena
	h     slot.Handle
}

var _ typed[int8] = (*slotAdapter[int8])(nil)

func (a *slotAdapter[T]) Text() string {
	p, err := a.pointer()
	if err != nil {
		return ""
	}
	return format(*p)
}

func (a *slotAdapter[T]) Assign(v any) error {
	x, ok := v.(T)
	if !ok {
		return mismatch(a.Kind(), v)
	}
	p, err := a.pointer()
	if err != nil {
		return err
	}
	*p = x
	return nil
}

func (a *slotAdapter[T]) Parse(s string) error {
	p, err := a.pointer()
	if err != nil {
		return err
	}
	x, err := parse[T](s)
	if err != nil {
		return err
	}
	*p = x
	return nil
}

// Rebind accepts a handle of the same arena holding a T, or a *T, which
// moves the binding off the arena.
func (a *slotAdapter[T]) Rebind(loc any) (Adapter, error) {
	switch l := loc.(type) {
	case slot.Handle:
		if _, err := slot.Lookup[T](a.arena, l); err != nil {
			return nil, err
		}
		return &slotAdapter[T]{arena: a.arena, h: l}, nil
	case *T:
		if l == nil {
			return nil, types.ErrNilPointer
		}
		return &pointerAdapter[T]{p: l}, nil
	default:
		return nil, mismatch(a.Kind(), loc)
	}
}

func (a *slotAdapter[T]) Location() any {
	return a.h
}

func (a *slotAdapter[T]) Kind() types.Kind {
	return types.KindOf[T]()
}

func (a *slotAdapter[T]) Precedes(other Adapter) bool {
	return precedes[T](a, other)
}

func (a *slotAdapter[T]) Err() error {
	_, err := a.pointer()
	return err
}

func (a *slotAdapter[T]) pointer() (*T, error) {
	return slot.Lookup[T](a.arena, a.h)
}

func (a *slotAdapter[T]) value() (driver.Value, error) {
	p, err := a.pointer()
	if err != nil {
		return nil, err
	}
	return driverValue(*p)
}
