package dnd

import (
	"github.com/marcusagm/FlexUi-sub004/internal/frame"
	"github.com/marcusagm/FlexUi-sub004/internal/geometry"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

func rect(x, y, w, h int) geometry.Rect {
	return geometry.Rect{X: x, Y: y, Width: w, Height: h}
}

// newColumnWithGroups builds a column whose groups have the given vertical
// midpoints, each 10 cells tall and 40 wide.
func newColumnWithGroups(mids ...int) (*layout.Column, []*layout.Group) {
	col := layout.NewColumn()
	col.SetBounds(geometry.Rect{X: 0, Y: 0, Width: 40, Height: 600})
	groups := make([]*layout.Group, 0, len(mids))
	for _, mid := range mids {
		g := layout.NewGroup("g")
		g.SetBounds(geometry.Rect{X: 0, Y: mid - 5, Width: 40, Height: 10})
		col.AddChildAt(g, col.ChildCount())
		groups = append(groups, g)
	}
	return col, groups
}

// newStripWithWindows builds a strip of headers, each 10 cells wide starting
// at x=0, and the matching windows.
func newStripWithWindows(n int) (*layout.Strip, []*layout.Window) {
	strip := layout.NewStrip()
	strip.SetBounds(geometry.Rect{X: 0, Y: 0, Width: 200, Height: 1})
	wins := make([]*layout.Window, 0, n)
	for i := 0; i < n; i++ {
		w := layout.NewWindow("w")
		w.SetBounds(geometry.Rect{X: i * 10, Y: 0, Width: 10, Height: 1})
		strip.DockAt(w, strip.ChildCount())
		wins = append(wins, w)
	}
	return strip, wins
}

// sessionWithQueue wires a session to a flushable frame queue.
func sessionWithQueue() (*Session, *frame.Queue) {
	q := frame.NewQueue()
	return NewSession(q), q
}

// childOrder returns the container's children for order assertions.
func childOrder(c layout.Container) []layout.Node {
	return append([]layout.Node(nil), c.Children()...)
}

type fakeFloatHost struct {
	released []*layout.Group
}

func (f *fakeFloatHost) ReleaseFloating(g *layout.Group) {
	f.released = append(f.released, g)
}

type fakePopoutHost struct {
	restored []*layout.Window
}

func (f *fakePopoutHost) Restore(w *layout.Window) {
	f.restored = append(f.restored, w)
	w.PoppedOut = false
}
