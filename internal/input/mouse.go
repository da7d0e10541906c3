// Package input implements mouse and keyboard event handling for the
// FlexUI workbench. A press arms a potential drag; motion past the
// threshold starts the drag session; release either commits the drop or
// resolves the press as a click.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/marcusagm/FlexUi-sub004/internal/app"
	"github.com/marcusagm/FlexUi-sub004/internal/config"
	"github.com/marcusagm/FlexUi-sub004/internal/dnd"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// HandleInput is the message entry point registered with the workbench.
func HandleInput(msg tea.Msg, w *app.Workbench) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return handleKey(msg, w)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, w)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, w)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, w)
	}
	return w, nil
}

// handleMouseClick arms a drag candidate under the pointer.
func handleMouseClick(msg tea.MouseClickMsg, w *app.Workbench) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return w, nil
	}

	w.LastMouseX = mouse.X
	w.LastMouseY = mouse.Y

	item, kind := findDraggable(w, mouse.X, mouse.Y)
	w.Pressed = true
	w.PressX = mouse.X
	w.PressY = mouse.Y
	w.PressItem = item
	w.PressKind = kind
	return w, nil
}

// handleMouseMotion promotes an armed press to a drag and feeds the session.
func handleMouseMotion(msg tea.MouseMotionMsg, w *app.Workbench) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	w.LastMouseX = mouse.X
	w.LastMouseY = mouse.Y

	if w.Session.Dragging() {
		w.Session.DragOver(dnd.Point{
			X:      mouse.X,
			Y:      mouse.Y,
			Target: hitNode(w, mouse.X, mouse.Y),
		})
		return w, nil
	}

	if !w.Pressed || w.PressItem == nil {
		return w, nil
	}
	if abs(mouse.X-w.PressX) < config.DragThreshold && abs(mouse.Y-w.PressY) < config.DragThreshold {
		return w, nil
	}

	b := w.PressItem.Bounds()
	w.Session.DragStart(dnd.Payload{
		Item:    w.PressItem,
		Kind:    w.PressKind,
		OffsetX: w.PressX - b.X,
		OffsetY: w.PressY - b.Y,
	})
	w.Session.DragOver(dnd.Point{
		X:      mouse.X,
		Y:      mouse.Y,
		Target: hitNode(w, mouse.X, mouse.Y),
	})
	return w, nil
}

// handleMouseRelease commits a drop or resolves the press as a click.
func handleMouseRelease(msg tea.MouseReleaseMsg, w *app.Workbench) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	defer func() {
		w.Pressed = false
		w.PressItem = nil
	}()

	if w.Session.Dragging() {
		// Settle queued route and preview work before the drop reads it.
		w.FlushFrame()
		w.Session.Drop(dnd.Point{
			X:      mouse.X,
			Y:      mouse.Y,
			Target: hitNode(w, mouse.X, mouse.Y),
		})
		return w, nil
	}

	if w.Pressed {
		resolveClick(w, w.PressItem)
	}
	return w, nil
}

// resolveClick applies the non-drag meaning of a press: tab selection,
// group focus, window raise.
func resolveClick(w *app.Workbench, item layout.Node) {
	switch item := item.(type) {
	case *layout.Panel:
		if g, ok := item.Parent().(*layout.Group); ok {
			g.SelectTab(g.IndexOf(item))
			w.FocusedGroup = g
		}
	case *layout.Group:
		w.FocusedGroup = item
	case *layout.Window:
		if !item.Docked {
			// Raise the window above its free siblings.
			w.Surface.AddChildAt(item, w.Surface.ChildCount())
		}
	}
}

// findDraggable identifies the drag candidate under a press, topmost layer
// first: floating groups, free window title bars, strip headers, then the
// tab rows of docked groups.
func findDraggable(w *app.Workbench, x, y int) (layout.Node, dnd.Kind) {
	for i := len(w.FloatingGroups) - 1; i >= 0; i-- {
		g := w.FloatingGroups[i]
		b := g.Bounds()
		if !b.Contains(x, y) {
			continue
		}
		if item, kind := groupGrab(g, x, y); item != nil {
			return item, kind
		}
		return nil, 0
	}

	for i := len(w.Surface.Children()) - 1; i >= 0; i-- {
		win, ok := w.Surface.Children()[i].(*layout.Window)
		if !ok {
			continue
		}
		b := win.Bounds()
		if !b.Contains(x, y) {
			continue
		}
		if y <= b.Y+1 {
			return win, dnd.KindWindow
		}
		return nil, 0
	}

	for _, win := range w.Surface.Strip.Windows() {
		if win.Bounds().Contains(x, y) {
			return win, dnd.KindWindow
		}
	}

	for _, g := range dockGroups(w) {
		b := g.Bounds()
		if !b.Contains(x, y) {
			continue
		}
		if item, kind := groupGrab(g, x, y); item != nil {
			return item, kind
		}
		return nil, 0
	}

	return nil, 0
}

// groupGrab resolves a press inside a group: a tab label grabs that panel,
// the rest of the tab row or the top border grabs the whole group.
func groupGrab(g *layout.Group, x, y int) (layout.Node, dnd.Kind) {
	b := g.Bounds()
	if y == b.Y {
		return g, dnd.KindGroup
	}
	if y != b.Y+1 {
		return nil, 0
	}
	if panel := tabAt(g, x); panel != nil {
		return panel, dnd.KindPanel
	}
	return g, dnd.KindGroup
}

// tabAt returns the panel whose tab label covers column x, mirroring the
// label widths the renderer draws.
func tabAt(g *layout.Group, x int) *layout.Panel {
	b := g.Bounds()
	cursor := b.X + 1
	for _, panel := range g.Panels() {
		width := len(panel.Title) + 2
		if x >= cursor && x < cursor+width {
			return panel
		}
		cursor += width
	}
	return nil
}

// hitNode resolves the raw node under the pointer for drop routing. Border
// cells between groups map to the enclosing column or row so hovering a
// seam previews insertion there, while panel interiors target the panel
// itself and yield.
func hitNode(w *app.Workbench, x, y int) layout.Node {
	for i := len(w.FloatingGroups) - 1; i >= 0; i-- {
		g := w.FloatingGroups[i]
		if g.Bounds().Contains(x, y) {
			return g
		}
	}

	for i := len(w.Surface.Children()) - 1; i >= 0; i-- {
		if win, ok := w.Surface.Children()[i].(*layout.Window); ok && win.Bounds().Contains(x, y) {
			return win
		}
	}

	strip := w.Surface.Strip
	if strip.Bounds().Contains(x, y) {
		for _, win := range strip.Windows() {
			if win.Bounds().Contains(x, y) {
				return win
			}
		}
		return strip
	}

	for _, child := range w.Dock.Children() {
		col, ok := child.(*layout.Column)
		if !ok || !col.Bounds().Contains(x, y) {
			continue
		}
		for _, member := range col.Children() {
			g, ok := member.(*layout.Group)
			if !ok || !g.Bounds().Contains(x, y) {
				continue
			}
			b := g.Bounds()
			if panels := g.Panels(); len(panels) > 0 {
				if active := g.ActiveTab(); active >= 0 && active < len(panels) {
					if panels[active].Bounds().Contains(x, y) {
						return panels[active]
					}
				}
			}
			if y == b.Y+1 && x > b.X && x < b.Right()-1 {
				return g
			}
			if x == b.X || x == b.Right()-1 {
				// Vertical seam between columns.
				return w.Dock
			}
			return col
		}
		return col
	}

	if w.Dock.Bounds().Contains(x, y) {
		return w.Dock
	}
	return w.Surface
}

func dockGroups(w *app.Workbench) []*layout.Group {
	var groups []*layout.Group
	for _, child := range w.Dock.Children() {
		col, ok := child.(*layout.Column)
		if !ok {
			continue
		}
		for _, member := range col.Children() {
			if g, ok := member.(*layout.Group); ok {
				groups = append(groups, g)
			}
		}
	}
	return groups
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
