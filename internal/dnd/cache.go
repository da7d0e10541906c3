package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// cacheEntry is one sibling snapshot inside a zone: its axis midpoint and
// its index at snapshot time. Entries are built on zone entry and read-only
// for the rest of the pointer-move pass.
type cacheEntry struct {
	node          layout.Node
	midpoint      int
	originalIndex int
}

// buildCache snapshots the axis midpoints of the zone's children, excluding
// the dragged item when it is already a sibling. Original indices are
// preserved so an exclusion does not shift the insertion positions the
// midpoint scan produces.
func buildCache(zone layout.Container, axis layout.Axis, exclude layout.Node) []cacheEntry {
	children := zone.Children()
	entries := make([]cacheEntry, 0, len(children))
	for i, child := range children {
		if child == exclude {
			continue
		}
		mid := child.Bounds().MidY()
		if axis == layout.Horizontal {
			mid = child.Bounds().MidX()
		}
		entries = append(entries, cacheEntry{node: child, midpoint: mid, originalIndex: i})
	}
	return entries
}

// scanCache returns the insertion index and insert-before anchor for the
// given axis coordinate: the first entry whose midpoint exceeds the
// coordinate wins, otherwise the insertion appends at the zone's current
// child count with no anchor.
func scanCache(entries []cacheEntry, coord int, childCount int) (int, layout.Node) {
	for _, e := range entries {
		if e.midpoint > coord {
			return e.originalIndex, e.node
		}
	}
	return childCount, nil
}
