// Package slot provides a generation-indexed arena of primitive values.
//
// A Handle names a slot by index and generation. Freeing a slot bumps its
// generation, so every handle issued before the free resolves to ErrStale
// instead of reading storage that now belongs to someone else.
package slot

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/binder/pkg/types"
)

// Handle addresses one slot of one Arena. The zero Handle is invalid.
type Handle struct {
	Arena uuid.UUID
	Index uint32
	Gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// String returns "index@gen".
func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Gen)
}

type entry struct {
	gen  uint32
	live bool
	kind types.Kind
	ptr  any // *T for the slot's kind
}

// Arena owns the storage of its slots. It is not safe for concurrent use.
type Arena struct {
	id    uuid.UUID
	slots []entry
	free  []uint32
	live  int
}

// New creates an empty arena with a fresh UUID v7 identity.
func New() *Arena {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Arena{id: id}
}

// ID returns the arena identity carried by its handles.
func (a *Arena) ID() uuid.UUID {
	return a.id
}

// Len returns the number of live slots.
func (a *Arena) Len() int {
	return a.live
}

// Alloc creates a zero-valued slot of kind k.
// Returns ErrInvalidKind if k is not bindable.
func (a *Arena) Alloc(k types.Kind) (Handle, error) {
	ptr := k.New()
	if ptr == nil {
		return Handle{}, fmt.Errorf("%w: %v", types.ErrInvalidKind, k)
	}
	return a.insert(k, ptr), nil
}

// Put stores a copy of v in a new slot.
func Put[T types.Primitive](a *Arena, v T) Handle {
	p := new(T)
	*p = v
	return a.insert(types.KindOf[T](), p)
}

func (a *Arena) insert(k types.Kind, ptr any) Handle {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		e := &a.slots[idx]
		e.live = true
		e.kind = k
		e.ptr = ptr
		return Handle{Arena: a.id, Index: idx, Gen: e.gen}
	}
	// Generations start at 1 so the zero Handle never resolves.
	a.slots = append(a.slots, entry{gen: 1, live: true, kind: k, ptr: ptr})
	return Handle{Arena: a.id, Index: uint32(len(a.slots) - 1), Gen: 1}
}

func (a *Arena) lookup(h Handle) (*entry, error) {
	if h.Arena != a.id {
		return nil, types.ErrForeignHandle
	}
	if int(h.Index) >= len(a.slots) || h.Gen == 0 {
		return nil, types.ErrInvalidHandle
	}
	e := &a.slots[h.Index]
	if !e.live || e.gen != h.Gen {
		return nil, types.ErrStale
	}
	return e, nil
}

// Resolve returns the pointer stored in the slot (*T for the slot's kind).
func (a *Arena) Resolve(h Handle) (any, error) {
	e, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	return e.ptr, nil
}

// Kind returns the kind stored in the slot.
func (a *Arena) Kind(h Handle) (types.Kind, error) {
	e, err := a.lookup(h)
	if err != nil {
		return types.KindNone, err
	}
	return e.kind, nil
}

// Lookup resolves h as a *T.
// Returns ErrKindMismatch if the slot holds a different kind.
func Lookup[T types.Primitive](a *Arena, h Handle) (*T, error) {
	e, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	p, ok := e.ptr.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: slot holds %v, want %v", types.ErrKindMismatch, e.kind, types.KindOf[T]())
	}
	return p, nil
}

// Free releases the slot. Handles to it become stale; the index is reused by
// a later Alloc or Put under a new generation, unless its generations are
// exhausted.
func (a *Arena) Free(h Handle) error {
	e, err := a.lookup(h)
	if err != nil {
		return err
	}
	e.live = false
	e.ptr = nil
	e.kind = types.KindNone
	a.live--
	// An index whose generation would wrap is retired instead of reused.
	if e.gen == math.MaxUint32 {
		return nil
	}
	e.gen++
	a.free = append(a.free, h.Index)
	return nil
}
