// Package vec provides [Vector], a growable contiguous array with a doubling growth policy and an
// explicit lifecycle.
//
// A vector is created by [New], filled with [Vector.Push] and torn down by [Vector.Destroy]. Every
// operation on a vector that was never created or was already destroyed fails with an error
// wrapping [ErrInvalidState]. Vectors are not internally synchronized: a single owner performs
// all calls, or the caller serializes them.
package vec

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/go-kit/log/level"

	"github.com/teenjuna/vec/alloc"
	"github.com/teenjuna/vec/codec"
)

var (
	// ErrAllocation is returned when backing storage can't be obtained. The vector is left as it
	// was before the failed call.
	ErrAllocation = errors.New("allocation failed")
	// ErrInvalidState is returned when a vector is used outside of its lifecycle.
	ErrInvalidState = errors.New("invalid vector state")
	// ErrUninitialized is returned by operations on a vector that wasn't created by [New].
	ErrUninitialized = fmt.Errorf("%w: vector is not initialized", ErrInvalidState)
	// ErrDestroyed is returned by operations on a vector after [Vector.Destroy].
	ErrDestroyed = fmt.Errorf("%w: vector is destroyed", ErrInvalidState)
	// ErrIndexOutOfRange is returned by [Vector.Get] for an index outside of [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")
)

type state uint8

const (
	uninitialized state = iota
	initialized
	destroyed
)

// Vector is an owning, growable, contiguous sequence of items.
//
// The vector owns its backing storage, not the values the items refer to: pointers, strings and
// other handles stored in it stay the caller's responsibility. The zero value is uninitialized and
// every operation on it fails; use [New].
type Vector[Item any] struct {
	cfg     *Config
	metrics *metrics
	items   []Item
	state   state
}

// New creates a vector with the provided configuration functions.
//
// Default configuration:
//   - Capacity: [DefaultCapacity]
//   - Allocator: [alloc.Heap]
//   - Logger: no-op
//   - Prometheus: not registered
//
// Returns an error wrapping [ErrAllocation] if the initial storage can't be obtained.
func New[Item any](configFuncs ...ConfigFunc) (*Vector[Item], error) {
	cfg := newConfig(configFuncs...)

	metrics, err := cfg.prometheus.metrics()
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	items, err := alloc.Slice[Item](cfg.allocator, cfg.capacity)
	if err != nil {
		metrics.unregister(cfg.prometheus.registerer)
		_ = level.Warn(cfg.logger).Log(
			"msg", "failed to allocate vector",
			"capacity", cfg.capacity,
			"err", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	metrics.capacity.Set(float64(cap(items)))

	vector := Vector[Item]{
		cfg:     cfg,
		metrics: metrics,
		items:   items,
		state:   initialized,
	}

	return &vector, nil
}

// Push appends an item to the end of the vector.
//
// If the vector is full, its capacity is doubled first, which invalidates views returned by
// [Vector.Slice]. Push is all-or-nothing: when growth fails, the returned error wraps
// [ErrAllocation] and the vector keeps its previous length, capacity and items.
func (v *Vector[Item]) Push(item Item) error {
	if err := v.check(); err != nil {
		return err
	}

	if len(v.items) == cap(v.items) {
		if err := v.grow(); err != nil {
			return err
		}
	}

	v.items = append(v.items, item)
	v.metrics.items.Inc()

	return nil
}

// Destroy releases the backing storage of the vector. Items themselves are neither inspected nor
// released.
//
// Any later call on the vector, Destroy included, fails with [ErrDestroyed].
func (v *Vector[Item]) Destroy() error {
	if err := v.check(); err != nil {
		return err
	}

	v.cfg.allocator.Release(cap(v.items))
	v.items = nil
	v.state = destroyed

	v.metrics.items.Set(0)
	v.metrics.capacity.Set(0)
	v.metrics.unregister(v.cfg.prometheus.registerer)

	return nil
}

// Get returns the item at index.
func (v *Vector[Item]) Get(index int) (Item, error) {
	var zero Item
	if err := v.check(); err != nil {
		return zero, err
	}
	if index < 0 || index >= len(v.items) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(v.items))
	}
	return v.items[index], nil
}

// Len returns the number of items in the vector. It panics if the vector is not initialized or
// is destroyed.
func (v *Vector[Item]) Len() int {
	v.mustCheck()
	return len(v.items)
}

// Cap returns the number of allocated slots. It panics if the vector is not initialized or is
// destroyed.
func (v *Vector[Item]) Cap() int {
	v.mustCheck()
	return cap(v.items)
}

// Iter returns a sequence of the items in push order. It panics if the vector is not initialized
// or is destroyed.
func (v *Vector[Item]) Iter() iter.Seq[Item] {
	v.mustCheck()
	return slices.Values(v.items)
}

// Slice returns a view of the items. The view shares storage with the vector and must not be used
// after the next growth or after [Vector.Destroy].
func (v *Vector[Item]) Slice() ([]Item, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	return v.items[:len(v.items):len(v.items)], nil
}

// Reset removes all items while keeping the capacity.
func (v *Vector[Item]) Reset() error {
	if err := v.check(); err != nil {
		return err
	}
	clear(v.items)
	v.items = v.items[:0]
	v.metrics.items.Set(0)
	return nil
}

// Encode serializes the items of the vector with the codec.
func (v *Vector[Item]) Encode(c codec.Codec[Item]) ([]byte, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	data, err := c.Encode(slices.Values(v.items))
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return data, nil
}

// Decode deserializes items with the codec and pushes them to the vector.
//
// On error, the items pushed by this call are removed again. Capacity gained while decoding is
// kept.
func (v *Vector[Item]) Decode(c codec.Codec[Item], data []byte) error {
	if err := v.check(); err != nil {
		return err
	}

	length := len(v.items)
	if err := c.Decode(data, v.Push); err != nil {
		clear(v.items[length:])
		v.items = v.items[:length]
		v.metrics.items.Set(float64(length))
		return fmt.Errorf("decode items: %w", err)
	}

	return nil
}

func (v *Vector[Item]) grow() error {
	var (
		oldCap = cap(v.items)
		newCap = max(1, oldCap)
	)
	if newCap > math.MaxInt/2 {
		v.metrics.allocationFailures.Inc()
		return fmt.Errorf("%w: capacity %d can't be doubled", ErrAllocation, oldCap)
	}
	newCap *= 2

	items, err := alloc.Slice[Item](v.cfg.allocator, newCap)
	if err != nil {
		v.metrics.allocationFailures.Inc()
		_ = level.Warn(v.cfg.logger).Log(
			"msg", "failed to grow vector",
			"length", len(v.items),
			"capacity", oldCap,
			"new_capacity", newCap,
			"err", err,
		)
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	items = append(items, v.items...)
	v.cfg.allocator.Release(oldCap)
	v.items = items

	v.metrics.growths.Inc()
	v.metrics.capacity.Set(float64(newCap))
	_ = level.Debug(v.cfg.logger).Log(
		"msg", "grew vector",
		"length", len(v.items),
		"capacity", oldCap,
		"new_capacity", newCap,
	)

	return nil
}

func (v *Vector[Item]) check() error {
	if v == nil {
		return ErrUninitialized
	}
	switch v.state {
	case initialized:
		return nil
	case destroyed:
		return ErrDestroyed
	default:
		return ErrUninitialized
	}
}

func (v *Vector[Item]) mustCheck() {
	if err := v.check(); err != nil {
		panic(err)
	}
}
