package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/marcusagm/FlexUi-sub004/internal/app"
	"github.com/marcusagm/FlexUi-sub004/internal/geometry"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// handleKey handles keyboard input for the workbench.
func handleKey(msg tea.KeyPressMsg, w *app.Workbench) (tea.Model, tea.Cmd) {
	key := msg.String()

	if w.ShowHelp {
		switch key {
		case "esc", "?", "q":
			w.ShowHelp = false
		}
		return w, nil
	}

	switch key {
	case "ctrl+c", "q":
		return w, tea.Quit

	case "esc":
		if w.Session.Dragging() {
			w.Session.Cancel()
			w.Pressed = false
			w.PressItem = nil
		}
		return w, nil

	case "?":
		w.ShowHelp = true
		return w, nil

	case "tab":
		cycleFocus(w)
		return w, nil

	case "f":
		// Lift the focused group out of the dock.
		if g := w.FocusedGroup; g != nil && !g.Floating() && g.Parent() != nil {
			b := g.Bounds()
			w.FloatGroup(g, geometry.Rect{
				X: b.X + 2, Y: b.Y + 1,
				Width: b.Width, Height: b.Height,
			})
		}
		return w, nil

	case "ctrl+d":
		w.DumpTree()
		return w, nil
	}

	return w, nil
}

// cycleFocus moves focus to the next docked group in tree order.
func cycleFocus(w *app.Workbench) {
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
	if len(groups) == 0 {
		return
	}
	for i, g := range groups {
		if g == w.FocusedGroup {
			w.FocusedGroup = groups[(i+1)%len(groups)]
			return
		}
	}
	w.FocusedGroup = groups[0]
}
