package types

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		got  Kind
		want Kind
	}{
		{"int8", KindOf[int8](), KindInt8},
		{"int16", KindOf[int16](), KindInt16},
		{"int32", KindOf[int32](), KindInt32},
		{"int64", KindOf[int64](), KindInt64},
		{"uint8", KindOf[uint8](), KindUint8},
		{"uint16", KindOf[uint16](), KindUint16},
		{"uint32", KindOf[uint32](), KindUint32},
		{"uint64", KindOf[uint64](), KindUint64},
		{"int", KindOf[int](), KindLong},
		{"float32", KindOf[float32](), KindFloat},
		{"float64", KindOf[float64](), KindDouble},
		{"bool", KindOf[bool](), KindBool},
		{"Char", KindOf[Char](), KindChar},
		{"string", KindOf[string](), KindText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("KindOf[%s]() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestKindOfValueUnsupported(t *testing.T) {
	for _, v := range []any{nil, []byte("x"), struct{}{}, complex64(1)} {
		if k := KindOfValue(v); k != KindNone {
			t.Errorf("KindOfValue(%T) = %v, want none", v, k)
		}
	}
}

func TestKindsDistinct(t *testing.T) {
	seen := map[Kind]bool{KindNone: true}
	names := map[string]bool{KindNone.String(): true}
	for _, k := range Kinds() {
		if seen[k] {
			t.Fatalf("kind %d listed twice", k)
		}
		seen[k] = true
		if names[k.String()] {
			t.Errorf("kind name %q reused", k.String())
		}
		names[k.String()] = true
		if !k.Valid() {
			t.Errorf("%v.Valid() = false", k)
		}
	}
	if len(seen) != 15 {
		t.Errorf("got %d kinds including none, want 15", len(seen))
	}
	if KindNone.Valid() {
		t.Error("KindNone.Valid() = true")
	}
}

func TestKindNewMatchesKindOfValue(t *testing.T) {
	for _, k := range Kinds() {
		p := k.New()
		if p == nil {
			t.Fatalf("%v.New() = nil", k)
		}
		if got := kindOfPointer(p); got != k {
			t.Errorf("%v.New() points to kind %v", k, got)
		}
	}
	if KindNone.New() != nil {
		t.Error("KindNone.New() should be nil")
	}
}

// kindOfPointer dereferences the pointers returned by Kind.New.
func kindOfPointer(p any) Kind {
	switch v := p.(type) {
	case *int8:
		return KindOfValue(*v)
	case *int16:
		return KindOfValue(*v)
	case *int32:
		return KindOfValue(*v)
	case *int64:
		return KindOfValue(*v)
	case *uint8:
		return KindOfValue(*v)
	case *uint16:
		return KindOfValue(*v)
	case *uint32:
		return KindOfValue(*v)
	case *uint64:
		return KindOfValue(*v)
	case *int:
		return KindOfValue(*v)
	case *float32:
		return KindOfValue(*v)
	case *float64:
		return KindOfValue(*v)
	case *bool:
		return KindOfValue(*v)
	case *Char:
		return KindOfValue(*v)
	case *string:
		return KindOfValue(*v)
	}
	return KindNone
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr error
	}{
		{"uint8", KindUint8, nil},
		{"  Double ", KindDouble, nil},
		{"long", KindLong, nil},
		{"int", KindLong, nil},
		{"string", KindText, nil},
		{"rune", KindChar, nil},
		{"byte", KindUint8, nil},
		{"none", KindNone, ErrInvalidKind},
		{"", KindNone, ErrInvalidKind},
		{"complex128", KindNone, ErrInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if err != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := Kind(200).String(); got != "unknown" {
		t.Errorf("Kind(200).String() = %q, want unknown", got)
	}
	if got := KindChar.GoType(); got != "types.Char" {
		t.Errorf("KindChar.GoType() = %q", got)
	}
	if got := KindInt16.GoType(); got != "int16" {
		t.Errorf("KindInt16.GoType() = %q", got)
	}
}
