package app

import (
	"charm.land/lipgloss/v2"

	"github.com/marcusagm/FlexUi-sub004/internal/config"
	"github.com/marcusagm/FlexUi-sub004/internal/dnd"
	"github.com/marcusagm/FlexUi-sub004/internal/geometry"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// PerformLayout recomputes the bounds of every node from the current
// viewport size. Hinted nodes keep their pinned size, the rest share the
// remainder, and the visible placeholder reserves its own slot so the
// preview shows the post-drop geometry.
func (w *Workbench) PerformLayout() {
	if w.Width <= 0 || w.Height <= 0 {
		return
	}
	full := geometry.Rect{Width: w.Width, Height: w.Height}
	w.Surface.SetBounds(full)

	stripY := 0
	dockY := config.StripHeight
	if w.Config.Appearance.StripPosition == "bottom" {
		stripY = w.Height - config.StripHeight
		dockY = 0
	}
	w.layoutStrip(stripY)
	w.layoutRow(w.Dock, geometry.Rect{
		X: 0, Y: dockY,
		Width:  w.Width,
		Height: w.Height - config.StripHeight,
	})

	for _, child := range w.Surface.Children() {
		win, ok := child.(*layout.Window)
		if !ok {
			continue
		}
		b := win.Bounds()
		if b.Width <= 0 || b.Height <= 0 {
			b.Width, b.Height = config.DefaultFloatWidth, config.DefaultFloatHeight
		}
		pos := geometry.ClampInto(geometry.Point{X: b.X, Y: b.Y}, b.Width, b.Height, full)
		win.SetBounds(geometry.Rect{X: pos.X, Y: pos.Y, Width: b.Width, Height: b.Height})
	}
	for _, g := range w.FloatingGroups {
		b := g.Bounds()
		if b.Width <= 0 || b.Height <= 0 {
			b.Width, b.Height = config.DefaultFloatWidth, config.DefaultFloatHeight
		}
		pos := geometry.ClampInto(geometry.Point{X: b.X, Y: b.Y}, b.Width, b.Height, full)
		g.SetBounds(geometry.Rect{X: pos.X, Y: pos.Y, Width: b.Width, Height: b.Height})
		w.layoutGroupInterior(g)
	}
}

// headerWidth is the strip header footprint for a window title.
func headerWidth(title string) int {
	return lipgloss.Width(title) + 4
}

// layoutStrip assigns each docked window's header rect left to right, with
// the placeholder widening the bar at its insertion point while visible.
func (w *Workbench) layoutStrip(y int) {
	strip := w.Surface.Strip
	strip.SetBounds(geometry.Rect{X: 0, Y: y, Width: w.Width, Height: config.StripHeight})

	ph := w.Session.Placeholder()
	phHere := ph.Visible() && ph.Host() == layout.Container(strip)
	thickness := w.Config.Drag.PlaceholderThickness

	x := 0
	for _, child := range strip.Children() {
		if phHere && ph.Before() == child {
			ph.SetBounds(geometry.Rect{X: x, Y: y, Width: thickness, Height: config.StripHeight})
			x += thickness
		}
		hw := config.DefaultFloatWidth
		if win, ok := child.(*layout.Window); ok {
			hw = headerWidth(win.Title)
		}
		child.SetBounds(geometry.Rect{X: x, Y: y, Width: hw, Height: config.StripHeight})
		x += hw
	}
	if phHere && ph.Before() == nil {
		ph.SetBounds(geometry.Rect{X: x, Y: y, Width: thickness, Height: config.StripHeight})
	}
}

// layoutRow splits the bounds horizontally across the row's children.
func (w *Workbench) layoutRow(row *layout.Row, bounds geometry.Rect) {
	row.SetBounds(bounds)
	children := row.Children()
	if len(children) == 0 {
		return
	}

	ph := w.Session.Placeholder()
	phHere := ph.Visible() && ph.Host() == layout.Container(row) && ph.Orientation() == dnd.OrientationVertical
	thickness := w.Config.Drag.PlaceholderThickness

	avail := bounds.Width
	if phHere {
		avail -= thickness
	}
	fixed, flex := 0, 0
	for _, c := range children {
		if h := c.SizeHint(); h > 0 {
			fixed += h
		} else {
			flex++
		}
	}
	share := 0
	if flex > 0 {
		share = (avail - fixed) / flex
		if share < config.MinColumnWidth {
			share = config.MinColumnWidth
		}
	}

	x := bounds.X
	for i, c := range children {
		if phHere && ph.Before() == c {
			ph.SetBounds(geometry.Rect{X: x, Y: bounds.Y, Width: thickness, Height: bounds.Height})
			x += thickness
		}
		cw := c.SizeHint()
		if cw <= 0 {
			cw = share
		}
		// The last child absorbs rounding slack unless the marker sits after it.
		if i == len(children)-1 && !(phHere && ph.Before() == nil) {
			if slack := bounds.X + bounds.Width - x; slack > 0 {
				cw = slack
			}
		}
		c.SetBounds(geometry.Rect{X: x, Y: bounds.Y, Width: cw, Height: bounds.Height})
		if col, ok := c.(*layout.Column); ok {
			w.layoutColumn(col, c.Bounds())
		}
		x += cw
	}
	if phHere && ph.Before() == nil {
		ph.SetBounds(geometry.Rect{X: x, Y: bounds.Y, Width: thickness, Height: bounds.Height})
	}
}

// layoutColumn splits the bounds vertically across the column's groups.
func (w *Workbench) layoutColumn(col *layout.Column, bounds geometry.Rect) {
	children := col.Children()
	if len(children) == 0 {
		return
	}

	ph := w.Session.Placeholder()
	phHere := ph.Visible() && ph.Host() == layout.Container(col) && ph.Orientation() == dnd.OrientationHorizontal
	thickness := w.Config.Drag.PlaceholderThickness

	avail := bounds.Height
	if phHere {
		avail -= thickness
	}
	fixed, flex := 0, 0
	for _, c := range children {
		if h := c.SizeHint(); h > 0 {
			fixed += h
		} else {
			flex++
		}
	}
	share := 0
	if flex > 0 {
		share = (avail - fixed) / flex
		if share < config.MinGroupHeight {
			share = config.MinGroupHeight
		}
	}

	y := bounds.Y
	for i, c := range children {
		if phHere && ph.Before() == c {
			ph.SetBounds(geometry.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: thickness})
			y += thickness
		}
		ch := c.SizeHint()
		if ch <= 0 {
			ch = share
		}
		if i == len(children)-1 && !(phHere && ph.Before() == nil) {
			if slack := bounds.Y + bounds.Height - y; slack > 0 {
				ch = slack
			}
		}
		c.SetBounds(geometry.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: ch})
		if g, ok := c.(*layout.Group); ok {
			w.layoutGroupInterior(g)
		}
		y += ch
	}
	if phHere && ph.Before() == nil {
		ph.SetBounds(geometry.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: thickness})
	}
}

// layoutGroupInterior assigns every tab the content rect inside the group's
// border and tab row. Tabs share one rect; only the active one renders.
func (w *Workbench) layoutGroupInterior(g *layout.Group) {
	b := g.Bounds()
	interior := geometry.Rect{
		X:      b.X + 1,
		Y:      b.Y + 2,
		Width:  max(b.Width-2, 0),
		Height: max(b.Height-3, 0),
	}
	for _, child := range g.Children() {
		child.SetBounds(interior)
	}
}
