package dnd

import (
	"testing"

	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// recordingStrategy captures the callback order the session produces.
type recordingStrategy struct {
	name        string
	log         *[]string
	handleEnter bool
	handleOver  bool
}

func (r *recordingStrategy) OnDragEnter(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	*r.log = append(*r.log, r.name+":enter")
	return r.handleEnter
}

func (r *recordingStrategy) OnDragOver(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	*r.log = append(*r.log, r.name+":over")
	return r.handleOver
}

func (r *recordingStrategy) OnDragLeave(pt Point, zone layout.Container, payload *Payload, s *Session) {
	*r.log = append(*r.log, r.name+":leave")
}

func (r *recordingStrategy) OnDrop(pt Point, zone layout.Container, payload *Payload, s *Session) bool {
	*r.log = append(*r.log, r.name+":drop")
	return true
}

func (r *recordingStrategy) ClearCache() {
	*r.log = append(*r.log, r.name+":clear")
}

func zoneAt(x, y, w, h int) *layout.Column {
	col := layout.NewColumn()
	col.SetBounds(rect(x, y, w, h))
	return col
}

func assertOrder(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("callback log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("callback log = %v, want %v", got, want)
		}
	}
}

func TestSessionLeaveFiresBeforeEnter(t *testing.T) {
	s, q := sessionWithQueue()
	var log []string
	left := zoneAt(0, 0, 50, 100)
	right := zoneAt(50, 0, 50, 100)
	s.zones = append(s.zones,
		&zoneBinding{zone: left, strategy: &recordingStrategy{name: "left", log: &log, handleEnter: true, handleOver: true}},
		&zoneBinding{zone: right, strategy: &recordingStrategy{name: "right", log: &log, handleEnter: true, handleOver: true}},
	)

	s.DragStart(Payload{Item: layout.NewGroup("g"), Kind: KindGroup})
	s.DragOver(Point{X: 10, Y: 10})
	q.Flush()
	s.DragOver(Point{X: 60, Y: 10})
	q.Flush()

	assertOrder(t, log,
		"left:enter", "left:over",
		"left:leave", "right:enter", "right:over",
	)
}

func TestSessionFallsBackToEnclosingZone(t *testing.T) {
	s, q := sessionWithQueue()
	var log []string
	inner := zoneAt(10, 10, 20, 20)
	outer := zoneAt(0, 0, 100, 100)
	s.zones = append(s.zones,
		&zoneBinding{zone: outer, strategy: &recordingStrategy{name: "outer", log: &log, handleEnter: true, handleOver: true}},
		&zoneBinding{zone: inner, strategy: &recordingStrategy{name: "inner", log: &log, handleEnter: false}},
	)

	s.DragStart(Payload{Item: layout.NewGroup("g"), Kind: KindGroup})
	s.DragOver(Point{X: 15, Y: 15})
	q.Flush()

	// The inner zone is tried first (smaller), declines, and the outer zone
	// takes over.
	assertOrder(t, log, "inner:enter", "outer:enter", "outer:over")
}

func TestSessionDropGoesToActiveZoneAndClearsAll(t *testing.T) {
	s, q := sessionWithQueue()
	var log []string
	zone := zoneAt(0, 0, 100, 100)
	other := zoneAt(200, 0, 100, 100)
	s.zones = append(s.zones,
		&zoneBinding{zone: zone, strategy: &recordingStrategy{name: "zone", log: &log, handleEnter: true, handleOver: true}},
		&zoneBinding{zone: other, strategy: &recordingStrategy{name: "other", log: &log, handleEnter: true, handleOver: true}},
	)

	s.DragStart(Payload{Item: layout.NewGroup("g"), Kind: KindGroup})
	s.DragOver(Point{X: 10, Y: 10})
	q.Flush()
	if !s.Drop(Point{X: 10, Y: 10}) {
		t.Fatal("Drop did not report the strategy's commit")
	}
	q.Flush()

	assertOrder(t, log, "zone:enter", "zone:over", "zone:drop", "zone:clear", "other:clear")
	if s.Dragging() {
		t.Error("session still dragging after drop")
	}
	if s.Placeholder().Visible() {
		t.Error("placeholder visible after drop")
	}
}

func TestSessionCancelLeavesTreeUntouched(t *testing.T) {
	s, q := sessionWithQueue()
	col, groups := newColumnWithGroups(100, 300, 500)
	if err := s.RegisterZone(col); err != nil {
		t.Fatal(err)
	}
	before := childOrder(col)

	s.DragStart(Payload{Item: groups[0], Kind: KindGroup})
	s.DragOver(Point{X: 20, Y: 400, Target: col})
	q.Flush()
	if !s.Placeholder().Visible() {
		t.Fatal("placeholder not shown mid-drag")
	}

	s.Cancel()
	q.Flush()

	after := childOrder(col)
	for i := range before {
		if after[i] != before[i] {
			t.Fatal("cancel changed the tree")
		}
	}
	if s.Placeholder().Visible() {
		t.Error("placeholder visible after cancel")
	}
	if s.Dragging() {
		t.Error("session still dragging after cancel")
	}
}

func TestSessionEndToEndGroupMove(t *testing.T) {
	s, q := sessionWithQueue()
	src, srcGroups := newColumnWithGroups(100, 300)
	dst := layout.NewColumn()
	dst.SetBounds(rect(100, 0, 40, 600))
	dstA := layout.NewGroup("a")
	dstA.SetBounds(rect(100, 95, 40, 10))
	dstB := layout.NewGroup("b")
	dstB.SetBounds(rect(100, 295, 40, 10))
	dst.AddChildAt(dstA, 0)
	dst.AddChildAt(dstB, 1)
	if err := s.RegisterZones(src, dst); err != nil {
		t.Fatal(err)
	}
	moving := srcGroups[1]

	s.DragStart(Payload{Item: moving, Kind: KindGroup})
	s.DragOver(Point{X: 120, Y: 250, Target: dst})
	q.Flush()
	if !s.Drop(Point{X: 120, Y: 250, Target: dst}) {
		t.Fatal("Drop reported no commit for a valid move")
	}

	if dst.IndexOf(moving) != 1 {
		t.Errorf("moved group at index %d in target, want 1", dst.IndexOf(moving))
	}
	if src.IndexOf(moving) != -1 {
		t.Error("moved group still in source column")
	}
}

func TestSessionSoleChildGhostDropFails(t *testing.T) {
	s, q := sessionWithQueue()
	col, groups := newColumnWithGroups(100)
	if err := s.RegisterZone(col); err != nil {
		t.Fatal(err)
	}

	s.DragStart(Payload{Item: groups[0], Kind: KindGroup})
	s.DragOver(Point{X: 20, Y: 300, Target: col})
	q.Flush()
	if s.Drop(Point{X: 20, Y: 300, Target: col}) {
		t.Error("Drop committed a ghost placement")
	}
	if col.ChildCount() != 1 || col.Children()[0] != layout.Node(groups[0]) {
		t.Error("ghost drop changed the column")
	}
}

func TestSessionStripWinsOverSurface(t *testing.T) {
	s, q := sessionWithQueue()
	surface := layout.NewSurface()
	surface.SetBounds(rect(0, 0, 1000, 800))
	surface.Strip.SetBounds(rect(0, 0, 1000, 1))
	if err := s.RegisterZones(surface, surface.Strip); err != nil {
		t.Fatal(err)
	}
	window := layout.NewWindow("w")
	window.SetBounds(rect(10, 10, 300, 200))
	surface.Register(window)

	s.DragStart(Payload{Item: window, Kind: KindWindow})
	s.DragOver(Point{X: 500, Y: 0, Target: surface.Strip})
	q.Flush()

	if !s.Placeholder().Visible() {
		t.Fatal("strip placeholder not shown")
	}
	if s.Placeholder().Host() != layout.Container(surface.Strip) {
		t.Errorf("placeholder hosted by %v, want the strip", s.Placeholder().Host())
	}

	if !s.Drop(Point{X: 500, Y: 0, Target: surface.Strip}) {
		t.Fatal("Drop reported no commit")
	}
	if surface.Strip.IndexOf(window) != 0 || !window.Docked {
		t.Error("window not docked via the strip strategy")
	}
}

func TestSessionRegisterZoneRejectsUnboundTypes(t *testing.T) {
	s, _ := sessionWithQueue()
	if err := s.RegisterZone(layout.NewGroup("g")); err == nil {
		t.Error("RegisterZone accepted a node type with no strategy binding")
	}
}

func TestSessionRestartCancelsPreviousDrag(t *testing.T) {
	s, q := sessionWithQueue()
	col, groups := newColumnWithGroups(100, 300)
	if err := s.RegisterZone(col); err != nil {
		t.Fatal(err)
	}

	s.DragStart(Payload{Item: groups[0], Kind: KindGroup})
	s.DragOver(Point{X: 20, Y: 400, Target: col})
	q.Flush()

	s.DragStart(Payload{Item: groups[1], Kind: KindGroup})
	q.Flush()

	if p := s.Payload(); p == nil || p.Item != layout.Node(groups[1]) {
		t.Fatal("second drag did not replace the payload")
	}
	if s.Placeholder().Visible() {
		t.Error("placeholder from the first drag survived the restart")
	}
}

func TestSessionUnregisterZone(t *testing.T) {
	s, q := sessionWithQueue()
	col, groups := newColumnWithGroups(100, 300)
	other, _ := newColumnWithGroups(100)
	other.SetBounds(rect(100, 0, 40, 600))
	if err := s.RegisterZones(col, other); err != nil {
		t.Fatal(err)
	}

	if !s.Registered(col) || !s.Registered(other) {
		t.Fatal("zones not registered")
	}
	if got := len(s.Zones()); got != 2 {
		t.Fatalf("Zones() returned %d zones, want 2", got)
	}

	// Unregistering the active zone also clears the activation.
	s.DragStart(Payload{Item: groups[0], Kind: KindGroup})
	s.DragOver(Point{X: 20, Y: 400, Target: col})
	q.Flush()

	s.UnregisterZone(col)
	if s.Registered(col) {
		t.Error("zone still registered after unregister")
	}
	if !s.Registered(other) {
		t.Error("unrelated zone lost its binding")
	}

	// Routing after the unregister must not deliver to the stale zone.
	s.DragOver(Point{X: 20, Y: 100, Target: col})
	q.Flush()
	if s.Placeholder().Visible() && s.Placeholder().Host() == layout.Container(col) {
		t.Error("placeholder still hosted by an unregistered zone")
	}
	s.Cancel()
	q.Flush()
}
