package types

import "strings"

// Kind identifies one of the primitive value categories a variant can bind to.
// The numeric value of a Kind is its identity token: it is stable across
// builds and is what orders values of different kinds.
type Kind uint8

// Supported kinds. KindNone is the identity of an unbound variant.
const (
	KindNone Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindLong
	KindFloat
	KindDouble
	KindBool
	KindChar
	KindText
)

// Char is the single-character kind. It is a distinct type so that it does
// not collide with int32 (rune is an alias of int32).
type Char rune

// Primitive is the set of Go types a variant can bind to. The list is exact:
// named types with these underlying types are not accepted.
type Primitive interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		int | float32 | float64 | bool | Char | string
}

var kindNames = [...]string{
	KindNone:   "none",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
	KindLong:   "long",
	KindFloat:  "float",
	KindDouble: "double",
	KindBool:   "bool",
	KindChar:   "char",
	KindText:   "text",
}

// kindAliases maps alternate spellings accepted by ParseKind.
var kindAliases = map[string]Kind{
	"byte":    KindUint8,
	"int":     KindLong,
	"float32": KindFloat,
	"float64": KindDouble,
	"rune":    KindChar,
	"string":  KindText,
	"str":     KindText,
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a bindable kind. KindNone is not.
func (k Kind) Valid() bool {
	return k > KindNone && k <= KindText
}

// GoType returns the Go type name backing the kind.
func (k Kind) GoType() string {
	switch k {
	case KindLong:
		return "int"
	case KindFloat:
		return "float32"
	case KindDouble:
		return "float64"
	case KindChar:
		return "types.Char"
	case KindText:
		return "string"
	case KindNone:
		return ""
	default:
		return k.String()
	}
}

// New returns a pointer to a zero value of the kind's Go type, or nil if k is
// not a bindable kind.
func (k Kind) New() any {
	switch k {
	case KindInt8:
		return new(int8)
	case KindInt16:
		return new(int16)
	case KindInt32:
		return new(int32)
	case KindInt64:
		return new(int64)
	case KindUint8:
		return new(uint8)
	case KindUint16:
		return new(uint16)
	case KindUint32:
		return new(uint32)
	case KindUint64:
		return new(uint64)
	case KindLong:
		return new(int)
	case KindFloat:
		return new(float32)
	case KindDouble:
		return new(float64)
	case KindBool:
		return new(bool)
	case KindChar:
		return new(Char)
	case KindText:
		return new(string)
	default:
		return nil
	}
}

// Kinds returns every bindable kind in identity order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(KindText))
	for k := KindInt8; k <= KindText; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a kind by name. Names are case-insensitive and include
// the Go type aliases (int, float64, string, ...).
// Returns ErrInvalidKind for unknown names and for "none".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KindInt8; k <= KindText; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return KindNone, ErrInvalidKind
}

// KindOf returns the kind of T.
func KindOf[T Primitive]() Kind {
	var zero T
	return KindOfValue(zero)
}

// KindOfValue returns the kind of a primitive value, or KindNone if v is not
// of a supported type.
func KindOfValue(v any) Kind {
	switch v.(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case int:
		return KindLong
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	case bool:
		return KindBool
	case Char:
		return KindChar
	case string:
		return KindText
	default:
		return KindNone
	}
}
