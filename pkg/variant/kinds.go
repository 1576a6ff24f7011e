package variant

import (
	"cmp"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/types"
)

// constructor builds the adapters of one kind.
type constructor struct {
	pointer func(p any) (Adapter, bool)
	slot    func(a *slot.Arena, h slot.Handle) Adapter
}

// registry holds one constructor per bindable kind.
var registry = make(map[types.Kind]constructor)

func register[T types.Primitive]() {
	registry[types.KindOf[T]()] = constructor{
		pointer: func(p any) (Adapter, bool) {
			t, ok := p.(*T)
			if !ok {
				return nil, false
			}
			if t == nil {
				return nil, true
			}
			return &pointerAdapter[T]{p: t}, true
		},
		slot: func(a *slot.Arena, h slot.Handle) Adapter {
			return &slotAdapter[T]{arena: a, h: h}
		},
	}
}

func init() {
	register[int8]()
	register[int16]()
	register[int32]()
	register[int64]()
	register[uint8]()
	register[uint16]()
	register[uint32]()
	register[uint64]()
	register[int]()
	register[float32]()
	register[float64]()
	register[bool]()
	register[types.Char]()
	register[string]()
}

// format renders v in its canonical text form. Floats use the shortest
// representation that round-trips, which is also what fmt's %v prints.
func format[T types.Primitive](v T) string {
	switch x := any(v).(type) {
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case int:
		return strconv.Itoa(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case types.Char:
		return strconv.FormatInt(int64(x), 10)
	case string:
		return x
	}
	return ""
}

// parse converts s to a T. Range errors wrap ErrOverflow, everything else
// ErrInvalidValue.
func parse[T types.Primitive](s string) (T, error) {
	var zero T
	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case int8:
		n, e := strconv.ParseInt(s, 10, 8)
		out, err = int8(n), e
	case int16:
		n, e := strconv.ParseInt(s, 10, 16)
		out, err = int16(n), e
	case int32:
		n, e := strconv.ParseInt(s, 10, 32)
		out, err = int32(n), e
	case int64:
		out, err = strconv.ParseInt(s, 10, 64)
	case uint8:
		n, e := strconv.ParseUint(s, 10, 8)
		out, err = uint8(n), e
	case uint16:
		n, e := strconv.ParseUint(s, 10, 16)
		out, err = uint16(n), e
	case uint32:
		n, e := strconv.ParseUint(s, 10, 32)
		out, err = uint32(n), e
	case uint64:
		out, err = strconv.ParseUint(s, 10, 64)
	case int:
		n, e := strconv.ParseInt(s, 10, strconv.IntSize)
		out, err = int(n), e
	case float32:
		f, e := strconv.ParseFloat(s, 32)
		out, err = float32(f), e
	case float64:
		out, err = strconv.ParseFloat(s, 64)
	case bool:
		out, err = strconv.ParseBool(s)
	case types.Char:
		out, err = parseChar(s)
	case string:
		out = s
	}
	if err != nil {
		sentinel := types.ErrInvalidValue
		if errors.Is(err, strconv.ErrRange) {
			sentinel = types.ErrOverflow
		}
		return zero, fmt.Errorf("%w: %q as %v", sentinel, s, types.KindOf[T]())
	}
	return out.(T), nil
}

// parseChar accepts a decimal code point (the form format produces) or a
// single UTF-8 character.
func parseChar(s string) (types.Char, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		if n < 0 || n > utf8.MaxRune {
			return 0, strconv.ErrRange
		}
		return types.Char(n), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r != utf8.RuneError {
			return types.Char(r), nil
		}
	}
	return 0, strconv.ErrSyntax
}

// less is the strict order of each kind: numeric order (NaN first, as in
// cmp.Less), false before true, and byte-wise order for text.
func less[T types.Primitive](a, b T) bool {
	switch x := any(a).(type) {
	case int8:
		return x < any(b).(int8)
	case int16:
		return x < any(b).(int16)
	case int32:
		return x < any(b).(int32)
	case int64:
		return x < any(b).(int64)
	case uint8:
		return x < any(b).(uint8)
	case uint16:
		return x < any(b).(uint16)
	case uint32:
		return x < any(b).(uint32)
	case uint64:
		return x < any(b).(uint64)
	case int:
		return x < any(b).(int)
	case float32:
		return cmp.Less(x, any(b).(float32))
	case float64:
		return cmp.Less(x, any(b).(float64))
	case bool:
		return !x && any(b).(bool)
	case types.Char:
		return x < any(b).(types.Char)
	case string:
		return x < any(b).(string)
	}
	return false
}

// driverValue converts v to one of the database/sql driver value types.
func driverValue[T types.Primitive](v T) (driver.Value, error) {
	switch x := any(v).(type) {
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d does not fit a SQL integer", types.ErrOverflow, x)
		}
		return int64(x), nil
	case int:
		return int64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case bool:
		return x, nil
	case types.Char:
		return int64(x), nil
	case string:
		return x, nil
	}
	return nil, fmt.Errorf("%w: %T", types.ErrInvalidKind, v)
}
