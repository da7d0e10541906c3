package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// axisStrategy resolves drops along one stacking axis. A Column instance
// compares vertical midpoints and previews with a horizontal marker; a Row
// instance does the transpose. Panel payloads are accepted too: their
// effective dragged entity is the parent group for geometry purposes, and a
// committed panel drop synthesizes a fresh group at the insertion point.
type axisStrategy struct {
	axis       layout.Axis
	cache      []cacheEntry
	dropIndex  int
	dropTarget layout.Node
}

func newAxisStrategy(axis layout.Axis) *axisStrategy {
	return &axisStrategy{axis: axis, dropIndex: -1}
}

// ClearCache drops the geometry snapshot and the pending decision.
func (a *axisStrategy) ClearCache() {
	a.cache = nil
	a.dropIndex = -1
	a.dropTarget = nil
}

func (a *axisStrategy) OnDragEnter(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	if payload == nil || (payload.Kind != KindGroup && payload.Kind != KindPanel) {
		return false
	}
	group := effectiveGroup(payload)
	if group == nil {
		return false
	}
	a.cache = buildCache(zone, a.axis, group)
	return true
}

func (a *axisStrategy) OnDragOver(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	if payload == nil || (payload.Kind != KindGroup && payload.Kind != KindPanel) {
		a.dropIndex = -1
		a.dropTarget = nil
		s.HidePlaceholder()
		return false
	}
	group := effectiveGroup(payload)
	if group == nil {
		a.dropIndex = -1
		a.dropTarget = nil
		s.HidePlaceholder()
		return false
	}

	// Only hovering the zone's own background or the shared marker counts.
	// Hovering a child's interior yields to that child's own strategy.
	if pt.Target != layout.Node(zone) && !s.placeholder.Contains(pt.X, pt.Y) {
		a.dropIndex = -1
		a.dropTarget = nil
		s.HidePlaceholder()
		return false
	}

	// A missed enter leaves the cache stale; rebuild before scanning.
	if len(a.cache) == 0 && zone.ChildCount() > 0 {
		a.cache = buildCache(zone, a.axis, group)
	}

	coord := pt.Y
	if a.axis == layout.Horizontal {
		coord = pt.X
	}
	index, target := scanCache(a.cache, coord, zone.ChildCount())

	if subject := ghostSubject(payload, zone); isGhost(subject, zone, index) {
		// Valid hover, no-op placement: keep the event but preview nothing.
		a.dropIndex = -1
		a.dropTarget = nil
		s.HidePlaceholder()
		return true
	}

	a.dropIndex = index
	a.dropTarget = target

	orientation := OrientationHorizontal
	size := group.Bounds().Width
	if a.axis == layout.Horizontal {
		orientation = OrientationVertical
		size = group.Bounds().Height
	}
	s.ShowPlaceholder(orientation, size)
	s.MovePlaceholder(zone, target)
	return true
}

func (a *axisStrategy) OnDragLeave(pt Point, zone layout.Container, payload *Payload, s *Session) {
	a.ClearCache()
}

// liveIndex resolves the decision into a position valid right now: the
// anchor's current index when it is still attached (detaching the source may
// have shifted positions since the preview), otherwise the decision index,
// degrading to append when the anchor vanished.
func (a *axisStrategy) liveIndex(zone layout.Container) int {
	if a.dropTarget != nil {
		if live := zone.IndexOf(a.dropTarget); live >= 0 {
			return live
		}
		return zone.ChildCount()
	}
	return a.dropIndex
}

func (a *axisStrategy) OnDrop(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	if payload == nil || (payload.Kind != KindGroup && payload.Kind != KindPanel) {
		return false
	}
	group := effectiveGroup(payload)
	if group == nil {
		return false
	}

	// Source-side cleanup: a floating group that moves wholesale, or loses
	// its last tab, leaves the floating layer before docking.
	if s.floatHost != nil && group.Floating() {
		if payload.Kind == KindGroup || group.ChildCount() <= 1 {
			s.floatHost.ReleaseFloating(group)
		}
	}

	if a.dropIndex < 0 {
		// Ghost or invalid decision: no structural change, just put the
		// source column back the way the preview left it.
		if src := group.Parent(); src != nil {
			s.requestRefresh(src)
		}
		return false
	}

	switch payload.Kind {
	case KindGroup:
		if src := group.Parent(); src != nil {
			src.RemoveChild(group, false)
		}
		group.ClearSizeHint()
		zone.AddChildAt(group, a.liveIndex(zone))
	case KindPanel:
		panel, ok := payload.Item.(*layout.Panel)
		if !ok {
			return false
		}
		fresh := layout.NewGroup(panel.Title)
		zone.AddChildAt(fresh, a.liveIndex(zone))
		if src := panel.Parent(); src != nil {
			src.RemoveChild(panel, false)
		}
		panel.ClearSizeHint()
		fresh.AddPanel(panel)
	}
	s.requestRefresh(zone)
	return true
}
