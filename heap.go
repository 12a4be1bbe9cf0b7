// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

// A minHeap is an array-backed binary min-heap ordered by weight.
//
// All comparisons are strict, so among equal weights the element nearer the
// root of the array stays put. Tree shape depends on this: the compressor
// and the decompressor both go through buildTree, which is the only user.
type minHeap[T any] struct {
	items  []T
	weight func(T) uint64
}

// newMinHeap takes ownership of items and heapifies them bottom-up.
func newMinHeap[T any](items []T, weight func(T) uint64) *minHeap[T] {
	h := &minHeap[T]{items: items, weight: weight}
	for i := len(items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

func (h *minHeap[T]) len() int { return len(h.items) }

func (h *minHeap[T]) isSingleton() bool { return len(h.items) == 1 }

func (h *minHeap[T]) less(i, j int) bool {
	return h.weight(h.items[i]) < h.weight(h.items[j])
}

// insert adds x, moving larger parents down until x finds its place.
func (h *minHeap[T]) insert(x T) {
	var zero T
	h.items = append(h.items, zero)
	w := h.weight(x)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(w < h.weight(h.items[parent])) {
			break
		}
		h.items[i] = h.items[parent]
		i = parent
	}
	h.items[i] = x
}

// extractMin removes and returns the element of least weight.
// It panics if the heap is empty.
func (h *minHeap[T]) extractMin() T {
	if len(h.items) == 0 {
		panic("huff: extractMin on empty heap")
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	h.down(0)
	return top
}

func (h *minHeap[T]) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
