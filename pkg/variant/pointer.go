package variant

import (
	"database/sql/driver"

	"github.com/mesh-intelligence/binder/pkg/types"
)

// pointerAdapter binds a *T owned by the caller.
type pointerAdapter[T types.Primitive] struct {
	p *T
}

var _ typed[int8] = (*pointerAdapter[int8])(nil)

func (a *pointerAdapter[T]) Text() string {
	return format(*a.p)
}

func (a *pointerAdapter[T]) Assign(v any) error {
	x, ok := v.(T)
	if !ok {
		return mismatch(a.Kind(), v)
	}
	*a.p = x
	return nil
}

func (a *pointerAdapter[T]) Parse(s string) error {
	x, err := parse[T](s)
	if err != nil {
		return err
	}
	*a.p = x
	return nil
}

// Rebind accepts another *T. A nil *T is rejected.
func (a *pointerAdapter[T]) Rebind(loc any) (Adapter, error) {
	p, ok := loc.(*T)
	if !ok {
		return nil, mismatch(a.Kind(), loc)
	}
	if p == nil {
		return nil, types.ErrNilPointer
	}
	return &pointerAdapter[T]{p: p}, nil
}

func (a *pointerAdapter[T]) Location() any {
	return a.p
}

func (a *pointerAdapter[T]) Kind() types.Kind {
	return types.KindOf[T]()
}

func (a *pointerAdapter[T]) Precedes(other Adapter) bool {
	return precedes[T](a, other)
}

func (a *pointerAdapter[T]) Err() error {
	return nil
}

func (a *pointerAdapter[T]) pointer() (*T, error) {
	return a.p, nil
}

func (a *pointerAdapter[T]) value() (driver.Value, error) {
	return driverValue(*a.p)
}
