// Package dnd implements drop-target resolution for drag-and-drop layout
// restructuring: the per-zone drop strategies, the drag-session controller
// that routes pointer events between them, and the shared geometry cache and
// ghost detection they rely on.
package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// Kind identifies what is being dragged.
type Kind int

const (
	// KindPanel is a single tab dragged out of a group.
	KindPanel Kind = iota
	// KindGroup is a whole panel group.
	KindGroup
	// KindWindow is a free window.
	KindWindow
)

// String returns a short name for logging.
func (k Kind) String() string {
	switch k {
	case KindPanel:
		return "panel"
	case KindGroup:
		return "group"
	case KindWindow:
		return "window"
	}
	return "unknown"
}

// Payload describes the item being dragged. It is created when a drag starts
// and is immutable until the drag ends. Item is a non-owning reference into
// the layout tree.
type Payload struct {
	// Item is the dragged node: a Panel, Group or Window matching Kind.
	Item layout.Node
	Kind Kind

	// OffsetX and OffsetY record where inside the item the pointer grabbed
	// it, so free-surface drops land where the drag ghost was rendered.
	OffsetX int
	OffsetY int
}

// Point is a normalized pointer sample: viewport coordinates plus the
// innermost tree node under the pointer as resolved by hit-testing.
type Point struct {
	X      int
	Y      int
	Target layout.Node
}

// effectiveGroup resolves the panel-group-level entity actually being
// relocated: the payload's group, or the parent group when a lone panel tab
// is dragged. Returns nil for window payloads and detached panels.
func effectiveGroup(p *Payload) *layout.Group {
	if p == nil {
		return nil
	}
	switch p.Kind {
	case KindGroup:
		g, _ := p.Item.(*layout.Group)
		return g
	case KindPanel:
		panel, ok := p.Item.(*layout.Panel)
		if !ok {
			return nil
		}
		g, _ := panel.Parent().(*layout.Group)
		return g
	}
	return nil
}

// ghostSubject resolves the child of zone whose position decides whether the
// drop is a no-op. Dragging the payload away may hollow out a whole ancestor
// chain (the sole panel of the sole group of a column empties the column);
// the subject is the outermost node that would vacate and whose parent is the
// zone being probed. Returns nil when no zone child vacates, in which case no
// ghost is possible.
func ghostSubject(p *Payload, zone layout.Container) layout.Node {
	group := effectiveGroup(p)
	if group == nil {
		return nil
	}
	if p.Kind == KindPanel && group.ChildCount() > 1 {
		// The group keeps other tabs; nothing at zone level vacates.
		return nil
	}
	var n layout.Node = group
	for {
		parent := n.Parent()
		if parent == nil {
			return nil
		}
		if parent == zone {
			return n
		}
		if parent.ChildCount() != 1 {
			return nil
		}
		n = parent
	}
}
