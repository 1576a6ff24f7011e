// Package variant binds one facade type, Variant, to primitive values owned by
// the caller.
//
// A Variant holds a shared Adapter that reads and writes the caller's storage
// through a pointer. Assignments through the Variant land in the caller's
// variable, and changes to the variable are visible through the Variant
// without re-binding.
//
// # Quick Start
//
//	n := uint8(123)
//	v := variant.Bind(&n)
//	fmt.Println(v)              // 123
//	variant.Set(v, uint8(234))  // n == 234
//	n = 111
//	fmt.Println(v.Equal("111")) // true
//
// # Kinds
//
// The bindable kinds are the fixed set in types.Primitive: int8 to int64,
// uint8 to uint64, int ("long"), float32 ("float"), float64 ("double"), bool,
// types.Char and string ("text"). Each kind has a distinct types.Kind token;
// the zero Variant is unbound and reports types.KindNone.
//
// # Copies Share
//
// Copying a Variant copies the reference to its Adapter, not the bound value.
// Writes through either copy reach the same storage. Rebind gives the rebound
// copy a new Adapter, so other copies keep observing the old location.
//
// # Checked Access
//
// Set, Get, Ref and Rebind compare the caller's type with the bound kind and
// return types.ErrKindMismatch instead of reinterpreting storage.
//
// # Ordering
//
// Less orders two Variants of the same kind by value and Variants of
// different kinds by their Kind token, which makes Compare a total order that
// slices.SortFunc and ordered containers can use over mixed kinds.
//
// # Storage Lifetime
//
// A pointer binding keeps its target alive, so it can never dangle. Storage
// that is freed explicitly lives in a slot.Arena; BindSlot variants report
// types.ErrStale from Err, Get and Set once their slot is freed.
package variant
