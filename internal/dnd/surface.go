package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/geometry"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// surfaceStrategy places windows freely on a surface. There is no insertion
// index and no marker to preview; the drag ghost rendered by the application
// is the whole preview, so the shared placeholder stays hidden while the
// surface is the active zone.
type surfaceStrategy struct{}

func newSurfaceStrategy() *surfaceStrategy {
	return &surfaceStrategy{}
}

// ClearCache is a no-op; the surface holds no state between events.
func (*surfaceStrategy) ClearCache() {}

func (*surfaceStrategy) OnDragEnter(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	if payload == nil || payload.Kind != KindWindow {
		return false
	}
	s.HidePlaceholder()
	return true
}

func (*surfaceStrategy) OnDragOver(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	if payload == nil || payload.Kind != KindWindow {
		return false
	}
	s.HidePlaceholder()
	return true
}

func (*surfaceStrategy) OnDragLeave(pt Point, zone layout.Container, payload *Payload, s *Session) {}

func (*surfaceStrategy) OnDrop(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	surface, ok := zone.(*layout.Surface)
	if !ok || payload == nil || payload.Kind != KindWindow {
		return false
	}
	window, ok := payload.Item.(*layout.Window)
	if !ok {
		return false
	}

	if window.PoppedOut && s.popoutHost != nil {
		s.popoutHost.Restore(window)
	}
	if window.Docked {
		surface.Strip.Undock(window)
	}
	surface.Register(window)

	// Land where the drag ghost was: pointer minus the grab offset, clamped
	// so the whole window stays on the surface. The same clamp drives the
	// ghost preview, so the final position never jumps at release.
	bounds := window.Bounds()
	pos := geometry.ClampInto(
		geometry.Point{X: pt.X - payload.OffsetX, Y: pt.Y - payload.OffsetY},
		bounds.Width, bounds.Height,
		surface.Bounds(),
	)
	window.SetBounds(geometry.Rect{X: pos.X, Y: pos.Y, Width: bounds.Width, Height: bounds.Height})
	s.requestRefresh(surface)
	return true
}
