package variant

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"github.com/mesh-intelligence/binder/pkg/types"
)

var (
	_ sql.Scanner   = Variant{}
	_ driver.Valuer = Variant{}
)

// valuer is implemented by the adapters that can produce a driver value.
type valuer interface {
	value() (driver.Value, error)
}

// Scan implements sql.Scanner. The column value is converted to the bound
// kind and written through the binding, so scanning into a Variant updates
// the caller's variable. NULL is rejected.
func (v Variant) Scan(src any) error {
	if v.a == nil {
		return types.ErrUnbound
	}
	text, err := columnText(src)
	if err != nil {
		return err
	}
	return v.a.Parse(text)
}

// Value implements driver.Valuer. An unbound Variant is NULL.
func (v Variant) Value() (driver.Value, error) {
	if v.a == nil {
		return nil, nil
	}
	if err := v.a.Err(); err != nil {
		return nil, err
	}
	dv, ok := v.a.(valuer)
	if !ok {
		return nil, fmt.Errorf("%w: %v has no driver value", types.ErrInvalidKind, v.a.Kind())
	}
	return dv.value()
}

// columnText renders a driver value in the text form parse accepts.
func columnText(src any) (string, error) {
	switch s := src.(type) {
	case nil:
		return "", fmt.Errorf("%w: NULL", types.ErrInvalidValue)
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	case time.Time:
		return s.Format(time.RFC3339Nano), nil
	default:
		return "", fmt.Errorf("%w: unsupported column type %T", types.ErrInvalidValue, src)
	}
}
