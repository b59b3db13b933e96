// Package tsp: search tree arena.
//
// Search nodes live in a flat arena and refer to their parent by handle, so
// path reconstruction is an iterative walk with no recursion and no pointer
// chains. A node owns its ReducedCostMatrix until it is expanded or
// released; the small arena record (depth, location, bound, parent) stays
// behind for descendants that still need to rebuild their path.
package tsp

import (
	"fmt"
	"math"
)

// NodeID is a handle into a SearchTree.
type NodeID int

// NoNode is the parent handle of the root.
const NoNode NodeID = -1

// SearchNode is one partial tour: the path root → … → Location of Depth
// locations, bounded below by Cost.
type SearchNode struct {
	Depth    int
	Location int
	Parent   NodeID
	Cost     float64

	matrix   *ReducedCostMatrix
	children []NodeID
	expanded bool
}

// SearchTree is the arena that owns every SearchNode of one run.
type SearchTree struct {
	nodes []SearchNode
}

// NewSearchTree returns an empty arena.
func NewSearchTree() *SearchTree { return &SearchTree{} }

// NewRoot adds a depth-1 node at location loc owning m.
func (t *SearchTree) NewRoot(m *ReducedCostMatrix, loc int) NodeID {
	return t.add(SearchNode{Depth: 1, Location: loc, Parent: NoNode, Cost: m.Cost(), matrix: m})
}

func (t *SearchTree) add(n SearchNode) NodeID {
	t.nodes = append(t.nodes, n)

	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of nodes ever created.
func (t *SearchTree) Len() int { return len(t.nodes) }

// Node returns a copy of the arena record for id.
func (t *SearchTree) Node(id NodeID) SearchNode { return t.nodes[id] }

// Cost returns the lower bound of id.
func (t *SearchTree) Cost(id NodeID) float64 { return t.nodes[id].Cost }

// Matrix returns the matrix owned by id, or nil once expanded or released.
func (t *SearchTree) Matrix(id NodeID) *ReducedCostMatrix { return t.nodes[id].matrix }

// Children returns the children generated by Expand (nil before).
func (t *SearchTree) Children(id NodeID) []NodeID { return t.nodes[id].children }

// Release drops the matrix of a node that will never be expanded.
func (t *SearchTree) Release(id NodeID) { t.nodes[id].matrix = nil }

// Expand generates one child per finite entry in the row of id's location:
// each child clones the matrix, selects that edge, reduces, and sits one
// level deeper at the column's location. The parent's matrix is released
// afterwards.
//
// Expanding a node twice, or a released node, panics.
// Complexity: O(N³) (N children × O(N²) clone+reduce).
func (t *SearchTree) Expand(id NodeID) []NodeID {
	var parent = t.nodes[id]
	if parent.expanded {
		panic(fmt.Sprintf("tsp: node %d expanded twice", id))
	}
	if parent.matrix == nil {
		panic(fmt.Sprintf("tsp: node %d has no matrix to expand", id))
	}

	var (
		m    = parent.matrix
		from = parent.Location
		kids []NodeID
		col  int
	)
	for col = 0; col < m.Len(); col++ {
		if math.IsInf(m.At(from, col), 1) {
			continue
		}
		child := m.Clone()
		child.Select(from, col)
		child.Reduce()
		kids = append(kids, t.add(SearchNode{
			Depth:    parent.Depth + 1,
			Location: col,
			Parent:   id,
			Cost:     child.Cost(),
			matrix:   child,
		}))
	}

	t.nodes[id].children = kids
	t.nodes[id].expanded = true
	t.nodes[id].matrix = nil

	return kids
}

// Path returns the locations from the root to id, root first.
// It walks parent handles iteratively and does not modify the tree.
// Complexity: O(depth) time and space.
func (t *SearchTree) Path(id NodeID) []int {
	path := make([]int, t.nodes[id].Depth)
	var (
		cur = id
		i   = len(path) - 1
	)
	for cur != NoNode {
		path[i] = t.nodes[cur].Location
		cur = t.nodes[cur].Parent
		i--
	}

	return path
}
