package layout

// Panel is a leaf tab: a titled content pane that lives inside a Group.
type Panel struct {
	node
	Title   string
	Content string
}

// NewPanel creates a detached panel.
func NewPanel(title string) *Panel {
	return &Panel{node: newNode(), Title: title}
}

// Group is a tabbed set of panels. A group can be part of a column or row,
// or float freely above the docked layout.
type Group struct {
	container
	Title    string
	floating bool
	active   int
}

// NewGroup creates an empty detached group.
func NewGroup(title string) *Group {
	g := &Group{Title: title}
	g.container = newContainer(g)
	return g
}

// Panels returns the group's tabs in order.
func (g *Group) Panels() []*Panel {
	panels := make([]*Panel, 0, len(g.children))
	for _, child := range g.children {
		if p, ok := child.(*Panel); ok {
			panels = append(panels, p)
		}
	}
	return panels
}

// AddPanel appends a panel as the last tab.
func (g *Group) AddPanel(p *Panel) {
	g.AddChildAt(p, g.ChildCount())
}

// Floating reports whether the group floats above the docked layout.
func (g *Group) Floating() bool { return g.floating }

// SetFloating marks the group as floating or docked.
func (g *Group) SetFloating(floating bool) { g.floating = floating }

// ActiveTab returns the index of the currently selected tab.
func (g *Group) ActiveTab() int {
	if g.active >= len(g.children) {
		return max(len(g.children)-1, 0)
	}
	return g.active
}

// SelectTab changes the selected tab, ignoring out-of-range indices.
func (g *Group) SelectTab(i int) {
	if i >= 0 && i < len(g.children) {
		g.active = i
	}
}
