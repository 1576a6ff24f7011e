// Package check holds the named validation scenarios that exercise the
// variant API end to end. The CLI runs them with "binder check".
package check

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/types"
	"github.com/mesh-intelligence/binder/pkg/variant"
)

// Check is one named scenario. Run returns nil when the scenario holds.
type Check struct {
	Name        string
	Description string
	Run         func() error
}

// Result records the outcome of one Check.
type Result struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// All returns every check in a fixed order.
func All() []Check {
	return []Check{
		{"uint8", "writes flow through the variant and back", checkUint8},
		{"text", "text assignment copies content", checkText},
		{"stream", "text and floats render side by side", checkStream},
		{"equality", "a variant equals its canonical text only", checkEquality},
		{"scope", "bindings outlive the binding scope; freed slots are stale", checkScope},
		{"kind", "kind tokens are distinct per kind", checkKind},
		{"less", "same-kind values order by value", checkLess},
		{"mixed-order", "mixed kinds order by kind token", checkMixedOrder},
		{"copy", "copies share until rebound", checkCopy},
		{"mismatch", "typed access with the wrong kind is rejected", checkMismatch},
	}
}

// Select returns the checks whose names are listed. An empty list selects
// all checks. Unknown names are an error.
func Select(names []string) ([]Check, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Check, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}
	out := make([]Check, 0, len(names))
	for _, n := range names {
		c, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown check %q", n)
		}
		out = append(out, c)
	}
	return out, nil
}

// Run executes checks in order. A panicking check is recorded as failed.
func Run(checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, Result{Name: c.Name, Err: safeRun(c.Run)})
	}
	return results
}

// Failed counts failed results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

func safeRun(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func wantText(v variant.Variant, want string) error {
	if got := v.String(); got != want {
		return fmt.Errorf("text = %q, want %q", got, want)
	}
	return nil
}

func checkUint8() error {
	n := uint8(123)
	v := variant.Bind(&n)
	if err := wantText(v, "123"); err != nil {
		return err
	}
	if _, err := variant.Set(v, uint8(234)); err != nil {
		return err
	}
	if n != 234 {
		return fmt.Errorf("bound variable = %d after Set, want 234", n)
	}
	if err := wantText(v, "234"); err != nil {
		return err
	}
	n = 111
	return wantText(v, "111")
}

func checkText() error {
	s := "value"
	v := variant.BindText(&s)
	if err := wantText(v, "value"); err != nil {
		return err
	}
	next := "valueChanged"
	if _, err := variant.Set(v, next); err != nil {
		return err
	}
	next = "other"
	if s != "valueChanged" || s == next {
		return fmt.Errorf("bound variable = %q, want valueChanged", s)
	}
	return wantText(v, "valueChanged")
}

func checkStream() error {
	d := 123.456789
	f := float32(d)
	if err := streamPair(variant.Bind(&d), strconv.FormatFloat(d, 'g', -1, 64)); err != nil {
		return err
	}
	return streamPair(variant.Bind(&f), strconv.FormatFloat(float64(f), 'g', -1, 32))
}

// streamPair writes "value = " followed by num and compares with numText.
func streamPair(num variant.Variant, numText string) error {
	s := "value"
	var b strings.Builder
	if _, err := variant.BindText(&s).WriteTo(&b); err != nil {
		return err
	}
	b.WriteString(" = ")
	if _, err := num.WriteTo(&b); err != nil {
		return err
	}
	want := "value = " + numText
	if b.String() != want {
		return fmt.Errorf("stream = %q, want %q", b.String(), want)
	}
	return nil
}

func checkEquality() error {
	s := "value"
	v := variant.BindText(&s)
	if !v.Equal("value") {
		return errors.New(`variant does not equal "value"`)
	}
	if v.Equal("Value") || v.Equal("") {
		return errors.New("variant equals text other than its own")
	}
	return nil
}

func checkScope() error {
	outOfScope := func() variant.Variant {
		s := "value"
		return variant.Bind(&s)
	}
	if v := outOfScope(); !v.Equal("value") {
		return fmt.Errorf("escaped binding reads %q", v.String())
	}

	arena := slot.New()
	h := slot.Put(arena, "value")
	v, err := variant.BindSlot(arena, h)
	if err != nil {
		return err
	}
	if err := arena.Free(h); err != nil {
		return err
	}
	if !errors.Is(v.Err(), types.ErrStale) {
		return fmt.Errorf("freed slot reports %v, want %v", v.Err(), types.ErrStale)
	}
	if _, err := variant.Get[string](v); !errors.Is(err, types.ErrStale) {
		return fmt.Errorf("Get on freed slot returned %v", err)
	}
	return nil
}

func checkKind() error {
	a, b := uint8(1), uint16(1)
	if variant.Bind(&a).Kind() != types.KindUint8 {
		return fmt.Errorf("kind = %v, want uint8", variant.Bind(&a).Kind())
	}
	if variant.Bind(&a).Kind() == variant.Bind(&b).Kind() {
		return errors.New("uint8 and uint16 share a kind token")
	}
	seen := make(map[types.Kind]bool)
	for _, k := range types.Kinds() {
		v, err := variant.BindAny(k.New())
		if err != nil {
			return fmt.Errorf("bind %v: %w", k, err)
		}
		if v.Kind() != k || seen[k] {
			return fmt.Errorf("kind token %v is not unique", k)
		}
		seen[k] = true
	}
	return nil
}

func checkLess() error {
	small, big := uint8(1), uint8(100)
	rs, rb := variant.Bind(&small), variant.Bind(&big)
	if !rs.Less(rb) || rb.Less(rs) || rs.Less(rs) {
		return errors.New("uint8 1 and 100 are misordered")
	}
	return nil
}

func checkMixedOrder() error {
	text := "a"
	n := int64(99)
	flag := false
	vs := []variant.Variant{variant.Bind(&text), variant.Bind(&flag), variant.Bind(&n), {}}
	variant.Sort(vs)
	for i := 1; i < len(vs); i++ {
		if vs[i-1].Kind() >= vs[i].Kind() {
			return fmt.Errorf("kinds out of order: %v before %v", vs[i-1].Kind(), vs[i].Kind())
		}
	}
	return nil
}

func checkCopy() error {
	x, y := int32(1), int32(2)
	v := variant.Bind(&x)
	c := v
	if _, err := variant.Set(c, int32(10)); err != nil {
		return err
	}
	if err := wantText(v, "10"); err != nil {
		return fmt.Errorf("original after write through copy: %w", err)
	}
	if err := variant.Rebind(&c, &y); err != nil {
		return err
	}
	if err := wantText(v, "10"); err != nil {
		return fmt.Errorf("original after copy rebind: %w", err)
	}
	return wantText(c, "2")
}

func checkMismatch() error {
	n := int32(5)
	v := variant.Bind(&n)
	if _, err := variant.Set(v, int64(6)); !errors.Is(err, types.ErrKindMismatch) {
		return fmt.Errorf("Set int64 on int32 returned %v", err)
	}
	f := 1.0
	if err := variant.Rebind(&v, &f); !errors.Is(err, types.ErrKindMismatch) {
		return fmt.Errorf("Rebind float64 on int32 returned %v", err)
	}
	if n != 5 {
		return fmt.Errorf("bound variable = %d, want 5", n)
	}
	return nil
}
