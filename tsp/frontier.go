package tsp

import "container/heap"

// frontierItem is a queued node with its priority key and insertion order.
type frontierItem struct {
	id  NodeID
	key float64
	seq uint64
}

// frontier is a bounded min-heap of search nodes keyed by cost/depth.
// Equal keys pop in insertion (FIFO) order.
type frontier struct {
	items    []frontierItem
	capacity int
	seq      uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{capacity: capacity}
}

// heap.Interface

func (f *frontier) Len() int { return len(f.items) }
func (f *frontier) Less(i, j int) bool {
	if f.items[i].key == f.items[j].key {
		return f.items[i].seq < f.items[j].seq
	}

	return f.items[i].key < f.items[j].key
}
func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }
func (f *frontier) Push(x any)    { f.items = append(f.items, x.(frontierItem)) }
func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}

// full reports whether another node would exceed the capacity.
func (f *frontier) full() bool { return len(f.items) >= f.capacity }

// enqueue adds id with key cost/depth. Callers check full first.
func (f *frontier) enqueue(id NodeID, cost float64, depth int) {
	heap.Push(f, frontierItem{id: id, key: cost / float64(depth), seq: f.seq})
	f.seq++
}

// dequeue removes and returns the node with the smallest key.
func (f *frontier) dequeue() NodeID {
	return heap.Pop(f).(frontierItem).id
}
