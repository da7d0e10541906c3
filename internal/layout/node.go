// Package layout implements the dockable layout tree: panels tabbed into
// groups, groups stacked into columns and rows, and free windows owned by a
// surface. The tree only knows about structure and bounding boxes; drop
// resolution lives in the dnd package.
package layout

import (
	"github.com/google/uuid"

	"github.com/marcusagm/FlexUi-sub004/internal/geometry"
)

// Node is a single element of the layout tree.
type Node interface {
	// ID returns the stable identity of the node.
	ID() string
	// Bounds returns the node's current bounding box in viewport cells.
	Bounds() geometry.Rect
	// SetBounds records the bounding box computed by the layout pass.
	SetBounds(geometry.Rect)
	// Parent returns the container currently holding the node, or nil for a
	// detached node or the tree root.
	Parent() Container

	// SizeHint returns the explicit cross-axis size the node is pinned to,
	// or 0 when it sizes naturally.
	SizeHint() int
	// SetSizeHint pins the node to an explicit cross-axis size.
	SetSizeHint(cells int)
	// ClearSizeHint lets the node size naturally again.
	ClearSizeHint()

	setParent(Container)
}

// Container is a node with an ordered sequence of children and the mutation
// surface consumed by the drop strategies.
type Container interface {
	Node

	// Children returns the current child order. The returned slice is shared;
	// callers must not mutate it.
	Children() []Node
	// AddChildAt inserts child at index, clamping index to [0, ChildCount()].
	// The child is detached from its previous parent first.
	AddChildAt(child Node, index int)
	// RemoveChild detaches child from this container. When detachOnly is
	// false the removal also collapses this container upward if it became
	// empty, so a committed drop never leaves hollow ancestors behind.
	RemoveChild(child Node, detachOnly bool)
	// IndexOf returns the child's position, or -1 when it is not a child.
	IndexOf(child Node) int
	// ChildCount returns the number of children.
	ChildCount() int
}

// node carries the state every tree element shares.
type node struct {
	id       string
	bounds   geometry.Rect
	parent   Container
	sizeHint int
}

func newNode() node {
	return node{id: uuid.NewString()}
}

func (n *node) ID() string                 { return n.id }
func (n *node) Bounds() geometry.Rect      { return n.bounds }
func (n *node) SetBounds(r geometry.Rect)  { n.bounds = r }
func (n *node) Parent() Container          { return n.parent }
func (n *node) setParent(parent Container) { n.parent = parent }
func (n *node) SizeHint() int              { return n.sizeHint }
func (n *node) SetSizeHint(cells int)      { n.sizeHint = cells }
func (n *node) ClearSizeHint()             { n.sizeHint = 0 }

// container implements the shared child bookkeeping. The self reference is
// the outer typed container, needed so children record the right parent and
// so empty-collapse removes the outer value from its own parent.
type container struct {
	node
	self     Container
	children []Node
}

func newContainer(self Container) container {
	return container{node: newNode(), self: self}
}

func (c *container) Children() []Node { return c.children }

func (c *container) ChildCount() int { return len(c.children) }

func (c *container) IndexOf(child Node) int {
	for i, n := range c.children {
		if n == child {
			return i
		}
	}
	return -1
}

func (c *container) AddChildAt(child Node, index int) {
	if child == nil {
		return
	}
	if prev := child.Parent(); prev != nil {
		prev.RemoveChild(child, true)
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.children) {
		index = len(c.children)
	}
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
	child.setParent(c.self)
}

func (c *container) RemoveChild(child Node, detachOnly bool) {
	i := c.IndexOf(child)
	if i < 0 {
		return
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
	child.setParent(nil)

	if !detachOnly && len(c.children) == 0 {
		if parent := c.Parent(); parent != nil {
			parent.RemoveChild(c.self, false)
		}
	}
}
