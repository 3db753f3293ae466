package heap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap is returned by Pop and Peek on an empty heap.
// Seeing it from a search means the caller lost track of the frontier size.
var ErrEmptyHeap = errors.New("heap: empty heap")

// Order selects which element the root holds.
type Order int

const (
	// MinFirst keeps the smallest element at the root.
	MinFirst Order = iota
	// MaxFirst keeps the largest element at the root.
	MaxFirst
)

// Reverse returns the opposite order.
func (o Order) Reverse() Order {
	if o == MinFirst {
		return MaxFirst
	}
	return MinFirst
}

// String returns "min" or "max".
func (o Order) String() string {
	if o == MinFirst {
		return "min"
	}
	return "max"
}

// ahead reports whether a must sit above b in a heap of the given order.
func ahead[T any](a, b T, compare func(a, b T) int, order Order) bool {
	if order == MinFirst {
		return compare(a, b) < 0
	}
	return compare(a, b) > 0
}

// siftDown moves s[k] towards the leaves of the heap prefix s[:n],
// swapping with the better-ranked child until neither child outranks it.
func siftDown[T any](s []T, k, n int, compare func(a, b T) int, order Order) {
	for {
		best := k
		left, right := 2*k+1, 2*k+2
		if left < n && ahead(s[left], s[best], compare, order) {
			best = left
		}
		if right < n && ahead(s[right], s[best], compare, order) {
			best = right
		}
		if best == k {
			return
		}
		s[k], s[best] = s[best], s[k]
		k = best
	}
}

// siftUp moves s[k] towards the root while it outranks its parent.
func siftUp[T any](s []T, k int, compare func(a, b T) int, order Order) {
	for k > 0 {
		parent := (k - 1) / 2
		if !ahead(s[k], s[parent], compare, order) {
			return
		}
		s[k], s[parent] = s[parent], s[k]
		k = parent
	}
}

// Heapify rearranges s in place so that it satisfies the heap invariant
// for order, sifting down from the last internal node to the root.
// Complexity: O(n).
func Heapify[T any](s []T, compare func(a, b T) int, order Order) {
	n := len(s)
	for k := n/2 - 1; k >= 0; k-- {
		siftDown(s, k, n, compare, order)
	}
}

// IsHeap reports whether every parent in s compares ahead of, or equal to,
// both of its children under order.
func IsHeap[T any](s []T, compare func(a, b T) int, order Order) bool {
	n := len(s)
	for k := 0; k < n; k++ {
		for _, child := range [2]int{2*k + 1, 2*k + 2} {
			if child < n && ahead(s[child], s[k], compare, order) {
				return false
			}
		}
	}
	return true
}

// Sort orders s in place using heap sort. MinFirst yields ascending order,
// MaxFirst descending. The prefix is heapified in the reverse order and
// its root is repeatedly swapped to the end of the shrinking prefix.
// Complexity: O(n log n).
func Sort[T any](s []T, compare func(a, b T) int, order Order) {
	rev := order.Reverse()
	Heapify(s, compare, rev)
	for end := len(s) - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, compare, rev)
	}
}

// Heap is a binary heap backed by a slice.
// The zero value is not usable; construct with New, NewOrdered or From.
type Heap[T any] struct {
	items   []T
	compare func(a, b T) int
	order   Order
}

// New returns an empty heap ordered by compare.
func New[T any](compare func(a, b T) int, order Order) *Heap[T] {
	return &Heap[T]{compare: compare, order: order}
}

// NewOrdered returns an empty heap over a naturally ordered type.
func NewOrdered[T cmp.Ordered](order Order) *Heap[T] {
	return New(cmp.Compare[T], order)
}

// From takes ownership of items, heapifies them in place and wraps them.
func From[T any](items []T, compare func(a, b T) int, order Order) *Heap[T] {
	Heapify(items, compare, order)
	return &Heap[T]{items: items, compare: compare, order: order}
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// Order returns the configured order.
func (h *Heap[T]) Order() Order { return h.order }

// Items exposes the backing slice in heap order. Callers must not modify it.
func (h *Heap[T]) Items() []T { return h.items }

// Valid reports whether the heap invariant currently holds.
func (h *Heap[T]) Valid() bool { return IsHeap(h.items, h.compare, h.order) }

// Peek returns the root without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.items[0], nil
}

// Push appends x and sifts it up towards the root.
// Complexity: O(log n).
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	siftUp(h.items, len(h.items)-1, h.compare, h.order)
}

// Pop removes and returns the root. The last element takes its place
// and is sifted down. Returns ErrEmptyHeap if the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	root := h.items[0]
	h.items[0] = h.items[n-1]
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	siftDown(h.items, 0, n-1, h.compare, h.order)

	return root, nil
}

// Remove deletes the first element, in slice order, for which match
// returns true, and restores the heap invariant with a full Heapify.
// It returns the removed element and whether one was found.
// Complexity: O(n).
func (h *Heap[T]) Remove(match func(T) bool) (T, bool) {
	for i, it := range h.items {
		if !match(it) {
			continue
		}
		last := len(h.items) - 1
		h.items[i] = h.items[last]
		var zero T
		h.items[last] = zero
		h.items = h.items[:last]
		Heapify(h.items, h.compare, h.order)

		return it, true
	}
	var zero T
	return zero, false
}
