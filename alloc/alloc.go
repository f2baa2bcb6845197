// This package contains the [Allocator] interface and the allocators used to obtain backing
// storage for vectors.
package alloc

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrExhausted is returned when an allocator can't satisfy a reservation.
	ErrExhausted = errors.New("allocator is exhausted")
)

// Allocator accounts for the backing storage of vectors, measured in slots.
//
// Implementations are not considered thread-safe.
type Allocator interface {
	// Reserve admits an allocation of the given number of slots.
	Reserve(slots int) error
	// Release returns slots previously admitted by Reserve.
	Release(slots int)
}

// Slice reserves capacity slots from the allocator and returns an empty slice with exactly that
// capacity. If the runtime refuses the allocation, the reservation is released and the returned
// error wraps [ErrExhausted].
func Slice[Item any](a Allocator, capacity int) (items []Item, err error) {
	if capacity < 0 {
		panic("slots can't be < 0")
	}

	if err := a.Reserve(capacity); err != nil {
		return nil, err
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rerr, ok := r.(runtime.Error)
		if !ok || !strings.Contains(rerr.Error(), "makeslice") {
			panic(r)
		}
		a.Release(capacity)
		items, err = nil, fmt.Errorf("%w: %w", ErrExhausted, rerr)
	}()

	return make([]Item, 0, capacity), nil
}
