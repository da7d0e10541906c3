package dnd

import (
	"testing"

	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

func TestAxisEnterRejectsWindowPayload(t *testing.T) {
	col, _ := newColumnWithGroups(100)
	a := newAxisStrategy(layout.Vertical)
	s, _ := sessionWithQueue()

	payload := &Payload{Item: layout.NewWindow("w"), Kind: KindWindow}
	if a.OnDragEnter(Point{}, col, payload, s) {
		t.Error("OnDragEnter accepted a window payload")
	}
	if len(a.cache) != 0 {
		t.Error("cache built for rejected payload")
	}
}

func TestAxisOverComputesMidpointIndex(t *testing.T) {
	// Column with groups at vertical midpoints 100, 300, 500; an incoming
	// group hovering at Y=250 must target index 1.
	col, groups := newColumnWithGroups(100, 300, 500)
	incoming := layout.NewGroup("incoming")
	incoming.SetBounds(rect(0, 0, 40, 10))

	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	payload := &Payload{Item: incoming, Kind: KindGroup}

	if !a.OnDragEnter(Point{}, col, payload, s) {
		t.Fatal("OnDragEnter rejected a group payload")
	}
	pt := Point{X: 20, Y: 250, Target: col}
	if !a.OnDragOver(pt, col, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()

	if a.dropIndex != 1 || a.dropTarget != layout.Node(groups[1]) {
		t.Errorf("decision = (%d, %v), want (1, groups[1])", a.dropIndex, a.dropTarget)
	}
	ph := s.Placeholder()
	if !ph.Visible() {
		t.Fatal("placeholder hidden for a valid placement")
	}
	if ph.Orientation() != OrientationHorizontal {
		t.Errorf("orientation = %v, want horizontal for a vertical stack", ph.Orientation())
	}
	if ph.Size() != incoming.Bounds().Width {
		t.Errorf("size hint = %d, want the dragged group's width %d", ph.Size(), incoming.Bounds().Width)
	}
	if ph.Host() != layout.Container(col) || ph.Before() != layout.Node(groups[1]) {
		t.Errorf("placeholder at (%v, %v), want before groups[1] in the column", ph.Host(), ph.Before())
	}
}

func TestAxisOverYieldsWhenHoveringChildInterior(t *testing.T) {
	col, groups := newColumnWithGroups(100, 300)
	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	incoming := layout.NewGroup("incoming")
	payload := &Payload{Item: incoming, Kind: KindGroup}

	a.OnDragEnter(Point{}, col, payload, s)
	// Raw target is a child group, not the column background.
	pt := Point{X: 20, Y: 100, Target: groups[0]}
	if a.OnDragOver(pt, col, payload, s) {
		t.Error("OnDragOver handled a pointer owned by a child zone")
	}
	q.Flush()

	if a.dropIndex != -1 {
		t.Errorf("dropIndex = %d, want -1", a.dropIndex)
	}
	if s.Placeholder().Visible() {
		t.Error("placeholder visible after yielding")
	}
}

func TestAxisOverAcceptsPointerOnPlaceholder(t *testing.T) {
	col, _ := newColumnWithGroups(100, 300)
	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	incoming := layout.NewGroup("incoming")
	payload := &Payload{Item: incoming, Kind: KindGroup}

	a.OnDragEnter(Point{}, col, payload, s)
	s.ShowPlaceholder(OrientationHorizontal, 40)
	q.Flush()
	s.Placeholder().SetBounds(rect(0, 200, 40, 1))

	// Target resolution found the marker itself under the pointer.
	pt := Point{X: 20, Y: 200, Target: nil}
	if !a.OnDragOver(pt, col, payload, s) {
		t.Error("OnDragOver rejected a pointer over the shared placeholder")
	}
}

func TestAxisOverLazyCacheRebuild(t *testing.T) {
	col, groups := newColumnWithGroups(100, 300)
	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	incoming := layout.NewGroup("incoming")
	payload := &Payload{Item: incoming, Kind: KindGroup}

	// No enter: simulates a missed zone entry with stale empty cache.
	pt := Point{X: 20, Y: 50, Target: col}
	if !a.OnDragOver(pt, col, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()

	if a.dropIndex != 0 || a.dropTarget != layout.Node(groups[0]) {
		t.Errorf("decision = (%d, %v), want (0, groups[0]) after lazy rebuild", a.dropIndex, a.dropTarget)
	}
}

func TestAxisGhostSoleChildAnywhereInOwnColumn(t *testing.T) {
	col, groups := newColumnWithGroups(100)
	sole := groups[0]
	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	payload := &Payload{Item: sole, Kind: KindGroup}

	a.OnDragEnter(Point{}, col, payload, s)
	for _, y := range []int{10, 100, 550} {
		if !a.OnDragOver(Point{X: 20, Y: y, Target: col}, col, payload, s) {
			t.Errorf("OnDragOver at y=%d not handled; a ghost is handled, just a no-op", y)
		}
		q.Flush()
		if a.dropIndex != -1 {
			t.Errorf("dropIndex at y=%d = %d, want -1 (ghost)", y, a.dropIndex)
		}
		if s.Placeholder().Visible() {
			t.Errorf("placeholder visible for ghost at y=%d", y)
		}
	}

	if a.OnDrop(Point{X: 20, Y: 100, Target: col}, col, payload, s) {
		t.Error("OnDrop committed a ghost placement")
	}
	if col.ChildCount() != 1 || col.Children()[0] != layout.Node(sole) {
		t.Error("ghost drop changed the column's children")
	}
}

func TestAxisDropMovesGroupBetweenColumns(t *testing.T) {
	src, srcGroups := newColumnWithGroups(100, 300)
	dst, dstGroups := newColumnWithGroups(100, 300, 500)
	moving := srcGroups[0]
	moving.SetSizeHint(14)

	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	payload := &Payload{Item: moving, Kind: KindGroup}

	a.OnDragEnter(Point{}, dst, payload, s)
	if !a.OnDragOver(Point{X: 20, Y: 250, Target: dst}, dst, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()
	if !a.OnDrop(Point{X: 20, Y: 250, Target: dst}, dst, payload, s) {
		t.Fatal("OnDrop reported failure for a valid move")
	}

	if dst.IndexOf(moving) != 1 {
		t.Errorf("moved group at index %d in target, want 1", dst.IndexOf(moving))
	}
	if src.IndexOf(moving) != -1 {
		t.Error("moved group still present in source column")
	}
	if moving.SizeHint() != 0 {
		t.Errorf("size hint = %d, want cleared on move", moving.SizeHint())
	}
	if dst.Children()[2] != layout.Node(dstGroups[1]) {
		t.Error("target column order corrupted around the insertion point")
	}
}

func TestAxisDropReorderWithinColumnUsesLiveAnchor(t *testing.T) {
	col, groups := newColumnWithGroups(100, 300, 500)
	moving := groups[0]

	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	payload := &Payload{Item: moving, Kind: KindGroup}

	a.OnDragEnter(Point{}, col, payload, s)
	// Hover just above the last group: insert before groups[2].
	if !a.OnDragOver(Point{X: 20, Y: 400, Target: col}, col, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()
	if !a.OnDrop(Point{X: 20, Y: 400, Target: col}, col, payload, s) {
		t.Fatal("OnDrop reported failure")
	}

	want := []layout.Node{groups[1], moving, groups[2]}
	got := childOrder(col)
	if len(got) != len(want) {
		t.Fatalf("child count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAxisDropPanelSynthesizesGroup(t *testing.T) {
	col, groups := newColumnWithGroups(100, 300)
	srcGroup := groups[0]
	extra := layout.NewPanel("stays")
	moving := layout.NewPanel("moves")
	moving.SetSizeHint(9)
	srcGroup.AddPanel(extra)
	srcGroup.AddPanel(moving)

	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	payload := &Payload{Item: moving, Kind: KindPanel}

	a.OnDragEnter(Point{}, col, payload, s)
	if !a.OnDragOver(Point{X: 20, Y: 600, Target: col}, col, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()
	if !a.OnDrop(Point{X: 20, Y: 600, Target: col}, col, payload, s) {
		t.Fatal("OnDrop reported failure")
	}

	if col.ChildCount() != 3 {
		t.Fatalf("col.ChildCount() = %d, want 3 after group synthesis", col.ChildCount())
	}
	fresh, ok := col.Children()[2].(*layout.Group)
	if !ok {
		t.Fatalf("appended child is %T, want a new group", col.Children()[2])
	}
	if fresh.IndexOf(moving) != 0 {
		t.Error("moved panel not inside the synthesized group")
	}
	if srcGroup.IndexOf(moving) != -1 {
		t.Error("moved panel still in its old group")
	}
	if srcGroup.IndexOf(extra) != 0 {
		t.Error("remaining tab disturbed by the move")
	}
	if moving.SizeHint() != 0 {
		t.Errorf("panel size hint = %d, want cleared", moving.SizeHint())
	}
}

func TestAxisDropLastPanelCollapsesSourceChain(t *testing.T) {
	row := layout.NewRow()
	row.SetBounds(rect(0, 0, 100, 100))
	srcCol := layout.NewColumn()
	srcCol.SetBounds(rect(0, 0, 48, 100))
	dstCol := layout.NewColumn()
	dstCol.SetBounds(rect(52, 0, 48, 100))
	row.AddChildAt(srcCol, 0)
	row.AddChildAt(dstCol, 1)
	group := layout.NewGroup("g")
	group.SetBounds(rect(0, 0, 48, 100))
	srcCol.AddChildAt(group, 0)
	sole := layout.NewPanel("sole")
	group.AddPanel(sole)
	dstGroup := layout.NewGroup("existing")
	dstGroup.SetBounds(rect(52, 0, 48, 20))
	dstCol.AddChildAt(dstGroup, 0)

	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	payload := &Payload{Item: sole, Kind: KindPanel}

	a.OnDragEnter(Point{}, dstCol, payload, s)
	if !a.OnDragOver(Point{X: 70, Y: 90, Target: dstCol}, dstCol, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()
	if !a.OnDrop(Point{X: 70, Y: 90, Target: dstCol}, dstCol, payload, s) {
		t.Fatal("OnDrop reported failure")
	}

	// The emptied group and its column must both be gone.
	if row.IndexOf(srcCol) != -1 {
		t.Error("emptied source column not collapsed out of the row")
	}
	if dstCol.ChildCount() != 2 {
		t.Errorf("dstCol.ChildCount() = %d, want 2", dstCol.ChildCount())
	}
}

func TestAxisRowGapNextToOwnColumnIsGhost(t *testing.T) {
	// Row with two columns; the dragged panel is the only panel of the only
	// group of the first column. The gap just right of that column resolves
	// to index 1 == own index + 1: a ghost, so no new column may appear.
	row := layout.NewRow()
	row.SetBounds(rect(0, 0, 100, 100))
	colA := layout.NewColumn()
	colA.SetBounds(rect(0, 0, 48, 100))
	colB := layout.NewColumn()
	colB.SetBounds(rect(52, 0, 48, 100))
	row.AddChildAt(colA, 0)
	row.AddChildAt(colB, 1)
	group := layout.NewGroup("g")
	group.SetBounds(rect(0, 0, 48, 100))
	colA.AddChildAt(group, 0)
	panel := layout.NewPanel("p")
	group.AddPanel(panel)

	a := newAxisStrategy(layout.Horizontal)
	s, q := sessionWithQueue()
	payload := &Payload{Item: panel, Kind: KindPanel}

	a.OnDragEnter(Point{}, row, payload, s)
	if !a.OnDragOver(Point{X: 50, Y: 50, Target: row}, row, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()

	if a.dropIndex != -1 {
		t.Errorf("dropIndex = %d, want -1 (ghost)", a.dropIndex)
	}
	if a.OnDrop(Point{X: 50, Y: 50, Target: row}, row, payload, s) {
		t.Error("OnDrop committed a ghost placement")
	}
	if row.ChildCount() != 2 {
		t.Errorf("row.ChildCount() = %d, want 2 (no new column)", row.ChildCount())
	}
	if colA.IndexOf(group) != 0 || group.IndexOf(panel) != 0 {
		t.Error("ghost drop disturbed the source column")
	}
}

func TestAxisDropReleasesFloatingSource(t *testing.T) {
	col, _ := newColumnWithGroups(100)
	floating := layout.NewGroup("floating")
	floating.SetBounds(rect(10, 10, 30, 8))
	floating.SetFloating(true)

	a := newAxisStrategy(layout.Vertical)
	s, q := sessionWithQueue()
	host := &fakeFloatHost{}
	s.SetHosts(host, nil)
	payload := &Payload{Item: floating, Kind: KindGroup}

	a.OnDragEnter(Point{}, col, payload, s)
	if !a.OnDragOver(Point{X: 20, Y: 50, Target: col}, col, payload, s) {
		t.Fatal("OnDragOver not handled")
	}
	q.Flush()
	if !a.OnDrop(Point{X: 20, Y: 50, Target: col}, col, payload, s) {
		t.Fatal("OnDrop reported failure")
	}

	if len(host.released) != 1 || host.released[0] != floating {
		t.Errorf("released = %v, want the floating group", host.released)
	}
	if col.IndexOf(floating) != 0 {
		t.Errorf("floating group docked at %d, want 0", col.IndexOf(floating))
	}
}

func TestAxisDropRefreshesSourceOnNullDecision(t *testing.T) {
	col, groups := newColumnWithGroups(100)
	a := newAxisStrategy(layout.Vertical)
	s, _ := sessionWithQueue()
	var refreshed []layout.Container
	s.OnRefresh(func(zone layout.Container) { refreshed = append(refreshed, zone) })
	payload := &Payload{Item: groups[0], Kind: KindGroup}

	// Drop with no decision computed at all.
	if a.OnDrop(Point{X: 20, Y: 50, Target: col}, col, payload, s) {
		t.Fatal("OnDrop committed without a decision")
	}
	if len(refreshed) != 1 || refreshed[0] != layout.Container(col) {
		t.Errorf("refreshed = %v, want the source column", refreshed)
	}
}
