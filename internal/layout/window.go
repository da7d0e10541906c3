package layout

// Window is a free window: a titled box that either floats on a surface at
// its own position or is docked as a tab in the surface's strip.
type Window struct {
	node
	Title string

	// Docked is true while the window is a member of a strip.
	Docked bool
	// PoppedOut is true while the window lives in a detached native window
	// managed by the popout host rather than in the layout.
	PoppedOut bool
}

// NewWindow creates a detached window.
func NewWindow(title string) *Window {
	return &Window{node: newNode(), Title: title}
}

// Strip is the horizontal sequence of docked window headers at the edge of a
// surface. Its children are the docked windows themselves, in header order.
type Strip struct {
	container

	// Active marks the strip as a live drop target so the renderer keeps its
	// width and visibility stable during a drag.
	Active bool
	// Owner is the surface whose edge this strip lives on, nil for a strip
	// that has not been attached to a viewport yet.
	Owner *Surface
}

// NewStrip creates an empty detached strip.
func NewStrip() *Strip {
	s := &Strip{}
	s.container = newContainer(s)
	return s
}

// Windows returns the docked windows in header order.
func (s *Strip) Windows() []*Window {
	wins := make([]*Window, 0, len(s.children))
	for _, child := range s.children {
		if w, ok := child.(*Window); ok {
			wins = append(wins, w)
		}
	}
	return wins
}

// DockAt inserts the window into the strip at index and marks it docked.
func (s *Strip) DockAt(w *Window, index int) {
	s.AddChildAt(w, index)
	w.Docked = true
}

// Undock removes the window from the strip without collapsing the strip.
func (s *Strip) Undock(w *Window) {
	s.RemoveChild(w, true)
	w.Docked = false
}

// Surface is a free-floating viewport: it owns undocked windows positioned
// by coordinates and hosts the strip of docked ones.
type Surface struct {
	container
	Strip *Strip
}

// NewSurface creates a surface with an empty strip.
func NewSurface() *Surface {
	s := &Surface{Strip: NewStrip()}
	s.container = newContainer(s)
	s.Strip.Owner = s
	return s
}

// Register makes the window a free child of this surface if it is not
// already part of it, leaving its position untouched.
func (s *Surface) Register(w *Window) {
	if s.IndexOf(w) >= 0 || s.Strip.IndexOf(w) >= 0 {
		return
	}
	s.AddChildAt(w, s.ChildCount())
}
