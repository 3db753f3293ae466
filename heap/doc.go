// Package heap implements a binary heap over a plain slice with a
// configurable ordering, and an in-place heap sort built on the same
// sift routines.
//
// The heap is stored densely: the children of index k live at 2k+1 and
// 2k+2, its parent at (k-1)/2. A single Order flag selects whether the
// root holds the smallest (MinFirst) or the largest (MaxFirst) element
// under the caller's comparison, so the search frontier and the sort
// share one implementation.
//
// Remove locates an element by linear scan and restores the invariant
// with a full Heapify. Search strategies use it as decrease-key:
// remove the stale entry, then Push the cheaper one.
//
// Complexity:
//
//   - Push, Pop:  O(log n)
//   - Heapify:    O(n)
//   - Remove:     O(n)
//   - Sort:       O(n log n), in place, not stable.
package heap
