package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// isGhost reports whether inserting item at candidate inside zone is a
// no-op. That is the case when the item already sits in zone at candidate,
// or immediately before candidate: once the item is notionally removed,
// "before index i" and "before index i+1" describe the same slot, so both
// must be suppressed.
func isGhost(item layout.Node, zone layout.Container, candidate int) bool {
	if item == nil || item.Parent() != zone {
		return false
	}
	current := zone.IndexOf(item)
	if current < 0 {
		return false
	}
	return candidate == current || candidate == current+1
}
