package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/geometry"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// Orientation is the rendering direction of the placeholder marker.
type Orientation int

const (
	// OrientationHorizontal is a horizontal bar, previewing insertion into a
	// vertical stack.
	OrientationHorizontal Orientation = iota
	// OrientationVertical is a vertical bar, previewing insertion into a
	// horizontal sequence.
	OrientationVertical
)

// Placeholder is the single shared insertion-point marker. One instance
// exists per session; zones take it over by re-hosting rather than by
// creating their own, and only the active strategy mutates it.
type Placeholder struct {
	visible     bool
	orientation Orientation
	size        int
	host        layout.Container
	before      layout.Node
	bounds      geometry.Rect
}

// Visible reports whether the marker is currently shown.
func (p *Placeholder) Visible() bool { return p.visible }

// Orientation returns the current rendering direction.
func (p *Placeholder) Orientation() Orientation { return p.orientation }

// Size returns the cross-axis size hint in cells, 0 for the host's default.
func (p *Placeholder) Size() int { return p.size }

// Host returns the zone currently owning the marker, nil when hidden.
func (p *Placeholder) Host() layout.Container { return p.host }

// Before returns the child the marker sits in front of; nil means the marker
// is appended after the host's last child.
func (p *Placeholder) Before() layout.Node { return p.before }

// Bounds returns the marker's rendered box, recorded by the renderer so
// hit-testing can treat the marker itself as a valid hover target.
func (p *Placeholder) Bounds() geometry.Rect { return p.bounds }

// SetBounds records where the renderer drew the marker.
func (p *Placeholder) SetBounds(r geometry.Rect) { p.bounds = r }

// Contains reports whether the pointer is over the visible marker.
func (p *Placeholder) Contains(x, y int) bool {
	return p.visible && p.bounds.Contains(x, y)
}

func (p *Placeholder) show(o Orientation, size int) {
	p.visible = true
	p.orientation = o
	p.size = size
}

func (p *Placeholder) hide() {
	p.visible = false
	p.host = nil
	p.before = nil
	p.bounds = geometry.Rect{}
}

func (p *Placeholder) moveTo(host layout.Container, before layout.Node) {
	p.host = host
	p.before = before
}
