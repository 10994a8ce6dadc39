package pathfinding

import (
	"container/heap"

	"navgrid/grid"
)

// nodeQueue is the open set of a search: a binary min-heap over grid nodes
// ordered by total cost F, with H as tie-break so that among equal-cost
// candidates the one closer to the goal is popped first. Each queued node
// stores its own heap slot, so improving a queued node's cost re-sifts from
// that slot in O(log n) and membership is an O(1) index check.
type nodeQueue struct {
	items []*grid.Node
}

func newNodeQueue(capacity int) *nodeQueue {
	q := &nodeQueue{items: make([]*grid.Node, 0, capacity)}
	heap.Init(q)
	return q
}

func (q *nodeQueue) Len() int { return len(q.items) }

func (q *nodeQueue) Less(i, j int) bool {
	if q.items[i].F != q.items[j].F {
		return q.items[i].F < q.items[j].F
	}
	return q.items[i].H < q.items[j].H
}

func (q *nodeQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].HeapIndex = i
	q.items[j].HeapIndex = j
}

func (q *nodeQueue) Push(x interface{}) {
	n := x.(*grid.Node)
	n.HeapIndex = len(q.items)
	q.items = append(q.items, n)
}

func (q *nodeQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // avoid memory leak
	node.HeapIndex = -1
	q.items = old[:n-1]
	return node
}

// push inserts a node into the queue.
func (q *nodeQueue) push(n *grid.Node) {
	heap.Push(q, n)
}

// popMin removes and returns the lowest-cost node.
func (q *nodeQueue) popMin() *grid.Node {
	return heap.Pop(q).(*grid.Node)
}

// update restores heap order after a queued node's cost improved.
func (q *nodeQueue) update(n *grid.Node) {
	heap.Fix(q, n.HeapIndex)
}

// contains reports whether the node is currently queued.
func (q *nodeQueue) contains(n *grid.Node) bool {
	return n.HeapIndex >= 0
}
