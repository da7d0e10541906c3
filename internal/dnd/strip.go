package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// stripStrategy reorders and docks windows along a horizontal strip of
// headers. Unlike the axis strategies it measures live geometry on every
// pass: header widths change as the marker is inserted and removed during
// the same drag, so a static snapshot would go stale immediately.
type stripStrategy struct {
	dropIndex int
}

func newStripStrategy() *stripStrategy {
	return &stripStrategy{dropIndex: -1}
}

// ClearCache resets the pending decision; the strip keeps no geometry cache.
func (st *stripStrategy) ClearCache() {
	st.dropIndex = -1
}

func (st *stripStrategy) OnDragEnter(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	strip, ok := zone.(*layout.Strip)
	if !ok || payload == nil || payload.Kind != KindWindow {
		return false
	}
	// Keep the strip visually stable while it is a live target, even when it
	// currently has no headers of its own.
	s.write(func() { strip.Active = true })
	return true
}

func (st *stripStrategy) OnDragOver(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	strip, ok := zone.(*layout.Strip)
	if !ok {
		return false
	}
	if payload == nil || payload.Kind != KindWindow {
		st.dropIndex = -1
		s.write(func() { strip.Active = false })
		s.HidePlaceholder()
		return false
	}

	index := strip.ChildCount()
	var target layout.Node
	for i, header := range strip.Children() {
		if header == payload.Item {
			continue
		}
		if header.Bounds().MidX() > pt.X {
			index = i
			target = header
			break
		}
	}

	st.dropIndex = index
	s.ShowPlaceholder(OrientationVertical, 0)
	s.MovePlaceholder(strip, target)
	return true
}

func (st *stripStrategy) OnDragLeave(pt Point, zone layout.Container, payload *Payload, s *Session) {
	if strip, ok := zone.(*layout.Strip); ok {
		s.write(func() { strip.Active = false })
	}
	st.ClearCache()
}

func (st *stripStrategy) OnDrop(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	strip, ok := zone.(*layout.Strip)
	if !ok {
		return false
	}
	strip.Active = false
	if payload == nil || payload.Kind != KindWindow || st.dropIndex < 0 {
		return false
	}
	window, ok := payload.Item.(*layout.Window)
	if !ok {
		return false
	}

	// A popped-out window returns to the layout before it can dock, and must
	// belong to the strip's viewport.
	if window.PoppedOut && s.popoutHost != nil {
		s.popoutHost.Restore(window)
	}
	if strip.Owner != nil {
		strip.Owner.Register(window)
	}

	// Reordering within the same strip: positions to the right of the
	// window's own slot shift down once it is pulled out, which also makes
	// a drop onto its own slot (index or index+1) land exactly where it was.
	index := st.dropIndex
	if current := strip.IndexOf(window); current >= 0 && index > current {
		index--
	}
	strip.DockAt(window, index)
	s.requestRefresh(strip)
	return true
}
