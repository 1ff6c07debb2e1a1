// Package arena implements the bump allocator that owns every AST, type,
// and symbol allocation made during one compilation (spec.md §4.1, C1).
//
// Nothing allocated through an Arena is ever freed individually; the whole
// slab set is dropped at once when the Arena goes out of scope. Pointers
// handed out by NewValue/AllocAligned/Strdup stay valid for the Arena's entire
// lifetime.
package arena

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrAllocationExhausted is returned when a configured byte ceiling
// (Arena.MaxBytes) would be exceeded by a requested allocation.
var ErrAllocationExhausted = errors.New("arena: allocation exhausted")

const defaultSlabSize = 64 * 1024

// Arena is a growable set of byte slabs. It is not safe for concurrent use
// (spec.md §5): one Arena belongs to exactly one compilation running on
// exactly one goroutine.
type Arena struct {
	// MaxBytes caps total allocation across all slabs. Zero means
	// unlimited. Set before any allocation to take effect.
	MaxBytes int

	slabs     [][]byte
	cur       []byte
	used      int
	allocated int
}

// New constructs an empty Arena. Slabs are grown lazily on first use.
func New() *Arena {
	return &Arena{}
}

// Alloc reserves nBytes of zeroed memory and returns a slice viewing it.
// The returned slice is valid for the Arena's lifetime.
func (a *Arena) Alloc(nBytes int) ([]byte, error) {
	return a.AllocAligned(nBytes, 1)
}

// AllocAligned reserves nBytes aligned to align (a power of two) within the
// current slab, growing a new slab if the current one cannot satisfy the
// request.
func (a *Arena) AllocAligned(nBytes, align int) ([]byte, error) {
	if nBytes < 0 {
		return nil, fmt.Errorf("arena: negative allocation size %d", nBytes)
	}
	if align <= 0 {
		align = 1
	}

	if a.MaxBytes > 0 && a.allocated+nBytes > a.MaxBytes {
		return nil, ErrAllocationExhausted
	}

	pad := alignPad(a.used, align)
	if a.cur == nil || a.used+pad+nBytes > len(a.cur) {
		size := defaultSlabSize
		if nBytes+align > size {
			size = nBytes + align
		}
		a.cur = make([]byte, size)
		a.slabs = append(a.slabs, a.cur)
		a.used = 0
		pad = 0
	}

	a.used += pad
	out := a.cur[a.used : a.used+nBytes : a.used+nBytes]
	a.used += nBytes
	a.allocated += nBytes
	return out, nil
}

func alignPad(used, align int) int {
	rem := used % align
	if rem == 0 {
		return 0
	}
	return align - rem
}

// Strdup copies s into arena-owned memory and returns the copy, so that the
// arena's lifetime (not the original buffer's) governs the string's
// validity — used whenever a token's lexeme or a diagnostic's message must
// outlive the original source buffer.
func (a *Arena) Strdup(s string) (string, error) {
	buf, err := a.Alloc(len(s))
	if err != nil {
		return "", err
	}
	copy(buf, s)
	return string(buf), nil
}

// Bytes reports total bytes handed out so far (across all slabs).
func (a *Arena) Bytes() int { return a.allocated }

// NewValue allocates and zero-values a T inside the arena. Go generics let
// this stand in for the arena "alloc(n_bytes) -> pointer" contract in §4.1
// without callers hand-computing sizes.
func NewValue[T any](a *Arena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T), nil
	}
	buf, err := a.AllocAligned(size, 8)
	if err != nil {
		return nil, err
	}
	p := (*T)(unsafe.Pointer(unsafe.SliceData(buf)))
	*p = zero
	return p, nil
}

// MustNew is NewValue, panicking on allocation failure. Used at call sites
// where the Arena has no configured MaxBytes, so failure can only mean a
// programming error (e.g. a negative size), not a reachable runtime
// condition the checker must diagnose.
func MustNew[T any](a *Arena) *T {
	p, err := NewValue[T](a)
	if err != nil {
		panic(err)
	}
	return p
}

// Track reserves sizeof(T) arena bytes to account for a conceptual
// allocation of a T without materializing it in arena memory, returning
// ErrAllocationExhausted once MaxBytes is reached. It exists for domain
// types that must stay on the regular Go heap because the garbage
// collector has to trace pointers embedded in them (a string header, a
// slice, an Expression/Statement interface value) — fields essentially
// every ast/types/symbols type carries. NewValue/MustNew's unsafe reinterpret
// of a []byte slab is only sound for pointer-free T (see arena_test.go's
// own point{X, Y int}); Track lets callers still charge those node,
// symbol, and type allocations against one Arena's §3.8 byte ceiling
// without risking the GC losing track of a pointer hidden inside a
// noscan slab.
func Track[T any](a *Arena) error {
	var zero T
	_, err := a.AllocAligned(int(unsafe.Sizeof(zero)), 8)
	return err
}
