package alloc

// HeapAllocator admits every reservation and leaves refusals to the Go runtime.
type HeapAllocator struct{}

var _ Allocator = (*HeapAllocator)(nil)

func Heap() *HeapAllocator {
	return &HeapAllocator{}
}

func (a *HeapAllocator) Reserve(slots int) error {
	if slots < 0 {
		panic("slots can't be < 0")
	}
	return nil
}

func (a *HeapAllocator) Release(slots int) {
	if slots < 0 {
		panic("slots can't be < 0")
	}
}
