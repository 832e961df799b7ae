package huffman

import (
	"container/heap"
)

// Item is a single Queue entry: a reference to a Tree node, keyed by weight.
type Item struct {
	Node   NodeID
	Weight int64
}

// Queue is an array-backed binary min-heap of Items ordered by Weight.
//
// Items with equal weights come out in an unspecified order.  The order
// depends only on the sequence of operations, so it is reproducible, but no
// particular tie-break (e.g. insertion order) is promised.  Ties change which
// equally-weighted node ends up where in a Tree, never the Tree's Cost.
//
// The backing slice grows as needed, so the capacity passed to NewQueue is
// only a hint and there is no "queue full" condition.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	h itemHeap
}

// NewQueue returns an empty Queue with room for capacity entries.
func NewQueue(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{h: itemHeap{list: make([]Item, 0, capacity)}}
}

// Len returns the number of live entries.
func (q *Queue) Len() int {
	return q.h.Len()
}

// IsSingleton returns true iff exactly one entry remains.
func (q *Queue) IsSingleton() bool {
	return q.h.Len() == 1
}

// Insert adds an entry in O(log n), sifting it upward while its weight is
// strictly less than its parent's.
func (q *Queue) Insert(item Item) {
	heap.Push(&q.h, item)
}

// ExtractMin removes and returns the minimum-weight entry in O(log n).
func (q *Queue) ExtractMin() (Item, error) {
	if q.h.Len() == 0 {
		return Item{Node: NoNode}, ErrEmptyQueue
	}
	return heap.Pop(&q.h).(Item), nil
}

// type itemHeap {{{

type itemHeap struct {
	list []Item
}

func (h *itemHeap) Len() int {
	return len(h.list)
}

func (h *itemHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *itemHeap) Less(i, j int) bool {
	return h.list[i].Weight < h.list[j].Weight
}

func (h *itemHeap) Push(x interface{}) {
	h.list = append(h.list, x.(Item))
}

func (h *itemHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = Item{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*itemHeap)(nil)

// }}}
