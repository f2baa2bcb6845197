package alloc

import "fmt"

// LimitedAllocator admits reservations until a fixed slot budget is used up.
//
// A single budget may be shared by several vectors owned by the same goroutine.
type LimitedAllocator struct {
	limit    int
	reserved int
}

var _ Allocator = (*LimitedAllocator)(nil)

func Limited(slots int) *LimitedAllocator {
	if slots < 0 {
		panic("slots can't be < 0")
	}
	return &LimitedAllocator{
		limit: slots,
	}
}

func (a *LimitedAllocator) Reserve(slots int) error {
	if slots < 0 {
		panic("slots can't be < 0")
	}
	if slots > a.limit-a.reserved {
		return fmt.Errorf(
			"%w: %d slots requested, %d of %d available",
			ErrExhausted, slots, a.limit-a.reserved, a.limit,
		)
	}
	a.reserved += slots
	return nil
}

func (a *LimitedAllocator) Release(slots int) {
	if slots < 0 {
		panic("slots can't be < 0")
	}
	if slots > a.reserved {
		panic("released more slots than reserved")
	}
	a.reserved -= slots
}

// Reserved returns the number of slots currently held.
func (a *LimitedAllocator) Reserved() int {
	return a.reserved
}

// Limit returns the total slot budget.
func (a *LimitedAllocator) Limit() int {
	return a.limit
}
