// Package progress holds the progress tree workers report into and the
// source adapter that feeds a HUD from it.
package progress

import (
	"errors"
	"sync"
)

// ErrHasParent is returned by AddChild when the child already belongs to
// another node.
var ErrHasParent = errors.New("progress: node already has a parent")

// ErrCycle is returned by AddChild when the child is already an ancestor
// of the parent.
var ErrCycle = errors.New("progress: node is an ancestor of its parent")

// Node is one unit of work in a progress tree. A node's fraction is its own
// completed units plus, for every child, the child's fraction weighted by
// the units the parent set aside for it, all divided by the node's total.
//
// Nodes are safe for concurrent use: workers write to leaves from their own
// goroutines while the UI thread samples the root.
type Node struct {
	mu        sync.Mutex
	total     int64
	completed int64
	parent    *Node
	children  []child
}

type child struct {
	node    *Node
	pending int64
}

// NewNode creates a node with the given total unit count.
func NewNode(total int64) *Node {
	return &Node{total: total}
}

func (n *Node) hasAncestor(c *Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == c {
			return true
		}
	}
	return false
}

// AddChild attaches c to n. pending is the number of n's units that c
// accounts for when it completes.
func (n *Node) AddChild(c *Node, pending int64) error {
	if c == nil || c == n {
		return errors.New("progress: invalid child")
	}
	if n.hasAncestor(c) {
		return ErrCycle
	}
	c.mu.Lock()
	if c.parent != nil {
		c.mu.Unlock()
		return ErrHasParent
	}
	c.parent = n
	c.mu.Unlock()

	n.mu.Lock()
	n.children = append(n.children, child{node: c, pending: pending})
	n.mu.Unlock()
	return nil
}

// NewChild creates a node with total units and attaches it to n.
func (n *Node) NewChild(total, pending int64) *Node {
	c := &Node{total: total, parent: n}
	n.mu.Lock()
	n.children = append(n.children, child{node: c, pending: pending})
	n.mu.Unlock()
	return c
}

// Parent returns the node n is attached to, or nil for a root.
func (n *Node) Parent() *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

// SetTotal replaces the total unit count.
func (n *Node) SetTotal(total int64) {
	n.mu.Lock()
	n.total = total
	n.mu.Unlock()
}

// SetCompleted replaces the completed unit count.
func (n *Node) SetCompleted(completed int64) {
	n.mu.Lock()
	n.completed = completed
	n.mu.Unlock()
}

// Add increments the completed unit count by delta.
func (n *Node) Add(delta int64) {
	n.mu.Lock()
	n.completed += delta
	n.mu.Unlock()
}

// Counts returns the completed and total unit counts of n itself,
// excluding children.
func (n *Node) Counts() (completed, total int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.completed, n.total
}

// FractionCompleted returns n's progress in [0, 1]. A node with no units
// reports 0.
func (n *Node) FractionCompleted() float64 {
	n.mu.Lock()
	total := n.total
	done := float64(n.completed)
	children := make([]child, len(n.children))
	copy(children, n.children)
	n.mu.Unlock()

	if total <= 0 {
		return 0
	}
	for _, c := range children {
		done += float64(c.pending) * c.node.FractionCompleted()
	}
	return clamp01(done / float64(total))
}

// Finished reports whether n has reached a fraction of 1.
func (n *Node) Finished() bool {
	return n.FractionCompleted() >= 1
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
