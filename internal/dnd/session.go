package dnd

import (
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/marcusagm/FlexUi-sub004/internal/frame"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// Package-level logger
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "dnd",
})

// SetLogLevel sets the logging level for the dnd package.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// FloatHost owns floating groups. The engine notifies it when a floating
// group (or the last tab of one) docks, so the host can tear the floating
// state down; the engine never manages that state itself.
type FloatHost interface {
	ReleaseFloating(group *layout.Group)
}

// PopoutHost owns windows living in detached native windows. Restore returns
// a popped-out window to the in-process layout before it docks or floats.
type PopoutHost interface {
	Restore(window *layout.Window)
}

// zoneBinding pairs a registered zone with its strategy instance. The
// binding is made once at registration and never changes.
type zoneBinding struct {
	zone     layout.Container
	strategy Strategy
}

// Session is the drag-session controller. It owns the single shared
// placeholder and the current payload, resolves which zone is under the
// pointer, and routes enter/over/leave/drop callbacks so that exactly one
// strategy is active at a time.
//
// All pointer-move work is funneled through the frame scheduler: geometry is
// read in the read pass and the placeholder mutated in the write pass.
// Callers must flush pending frames before delivering a release, so Drop and
// Cancel run against settled state. Session is single-threaded, like the
// event loop that drives it.
type Session struct {
	sched       frame.Scheduler
	zones       []*zoneBinding
	placeholder *Placeholder

	payload *Payload
	active  *zoneBinding

	floatHost  FloatHost
	popoutHost PopoutHost
	refresh    func(layout.Container)
}

// NewSession creates a controller that batches its work on sched.
func NewSession(sched frame.Scheduler) *Session {
	return &Session{
		sched:       sched,
		placeholder: &Placeholder{},
	}
}

// SetHosts wires the floating and popout lifecycle owners. Either may be nil
// when the application has no such layer.
func (s *Session) SetHosts(float FloatHost, popout PopoutHost) {
	s.floatHost = float
	s.popoutHost = popout
}

// OnRefresh registers the callback invoked after a commit, or after a
// rejected drop that still needs the source zone re-laid-out.
func (s *Session) OnRefresh(fn func(layout.Container)) {
	s.refresh = fn
}

// RegisterZone binds the zone to the strategy for its node type. The
// binding is static; registering an unsupported node type is an error.
func (s *Session) RegisterZone(zone layout.Container) error {
	strategy, err := strategyFor(zone)
	if err != nil {
		return err
	}
	s.zones = append(s.zones, &zoneBinding{zone: zone, strategy: strategy})
	return nil
}

// Registered reports whether the zone currently has a binding.
func (s *Session) Registered(zone layout.Container) bool {
	for _, b := range s.zones {
		if b.zone == zone {
			return true
		}
	}
	return false
}

// Zones returns the registered zones in registration order.
func (s *Session) Zones() []layout.Container {
	out := make([]layout.Container, len(s.zones))
	for i, b := range s.zones {
		out[i] = b.zone
	}
	return out
}

// UnregisterZone removes the zone's binding. Callers drop zones whose
// containers collapsed out of the tree so stale bounds never win a hit test.
func (s *Session) UnregisterZone(zone layout.Container) {
	for i, b := range s.zones {
		if b.zone == zone {
			if s.active == b {
				s.active = nil
			}
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			return
		}
	}
}

// RegisterZones binds several zones, stopping at the first failure.
func (s *Session) RegisterZones(zones ...layout.Container) error {
	for _, zone := range zones {
		if err := s.RegisterZone(zone); err != nil {
			return err
		}
	}
	return nil
}

// Placeholder returns the shared insertion marker for rendering.
func (s *Session) Placeholder() *Placeholder { return s.placeholder }

// Payload returns the live payload, nil outside a drag.
func (s *Session) Payload() *Payload { return s.payload }

// Dragging reports whether a drag session is in progress.
func (s *Session) Dragging() bool { return s.payload != nil }

// DragStart begins a session with the given payload. A drag already in
// progress is cancelled first; there is one session system-wide.
func (s *Session) DragStart(payload Payload) {
	if s.payload != nil {
		logger.Warn("drag started while another was active, cancelling previous")
		s.Cancel()
	}
	p := payload
	s.payload = &p
	logger.Debug("drag start", "kind", p.Kind, "item", p.Item.ID())
}

// DragOver feeds a pointer sample into the session. The zone resolution and
// strategy work run in the next read pass; placeholder changes land in the
// write pass of the same frame.
func (s *Session) DragOver(pt Point) {
	if s.payload == nil {
		return
	}
	s.sched.Read(func() {
		if s.payload == nil {
			return
		}
		s.route(pt)
	})
}

// Drop delivers the release to the zone active at release time and ends the
// session. It reports whether a structural change was committed; ghost and
// invalid decisions end the drag with the tree untouched.
func (s *Session) Drop(pt Point) bool {
	if s.payload == nil {
		return false
	}
	committed := false
	if s.active != nil {
		committed = s.active.strategy.OnDrop(pt, s.active.zone, s.payload, s)
		logger.Debug("drop", "kind", s.payload.Kind, "committed", committed)
	}
	s.finish()
	return committed
}

// Cancel aborts the session, leaving the tree exactly as it was when the
// drag started.
func (s *Session) Cancel() {
	if s.payload == nil {
		return
	}
	logger.Debug("drag cancelled", "kind", s.payload.Kind)
	if s.active != nil {
		b := s.active
		s.active = nil
		b.strategy.OnDragLeave(Point{}, b.zone, s.payload, s)
	}
	s.finish()
}

// finish clears every zone's cache, hides the placeholder and discards the
// payload. Safe to call with no active zone.
func (s *Session) finish() {
	for _, b := range s.zones {
		b.strategy.ClearCache()
	}
	s.HidePlaceholder()
	s.active = nil
	s.payload = nil
}

// route resolves the innermost zone willing to handle the pointer. A
// strategy returning false from enter or over passes the pointer outward to
// the next enclosing candidate.
func (s *Session) route(pt Point) {
	for _, b := range s.hitTest(pt) {
		if b != s.active {
			s.leaveActive(pt)
			if !b.strategy.OnDragEnter(pt, b.zone, s.payload, s) {
				continue
			}
			s.active = b
		}
		if b.strategy.OnDragOver(pt, b.zone, s.payload, s) {
			return
		}
		s.leaveActive(pt)
	}
	s.leaveActive(pt)
	s.HidePlaceholder()
}

// leaveActive fires OnDragLeave on the active zone, if any. The previous
// zone always sees its leave before any new zone sees an enter.
func (s *Session) leaveActive(pt Point) {
	if s.active == nil {
		return
	}
	b := s.active
	s.active = nil
	b.strategy.OnDragLeave(pt, b.zone, s.payload, s)
}

// hitTest returns the registered zones containing the point, innermost
// first: smallest bounding box wins, deeper tree position breaking ties.
func (s *Session) hitTest(pt Point) []*zoneBinding {
	var hits []*zoneBinding
	for _, b := range s.zones {
		bounds := b.zone.Bounds()
		if !bounds.Empty() && bounds.Contains(pt.X, pt.Y) {
			hits = append(hits, b)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		bi, bj := hits[i].zone.Bounds(), hits[j].zone.Bounds()
		ai, aj := bi.Width*bi.Height, bj.Width*bj.Height
		if ai != aj {
			return ai < aj
		}
		return depth(hits[i].zone) > depth(hits[j].zone)
	})
	return hits
}

func depth(n layout.Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// ShowPlaceholder makes the marker visible with the given orientation and
// cross-axis size hint, in the next write pass.
func (s *Session) ShowPlaceholder(o Orientation, size int) {
	s.write(func() { s.placeholder.show(o, size) })
}

// HidePlaceholder hides the marker in the next write pass.
func (s *Session) HidePlaceholder() {
	s.write(func() { s.placeholder.hide() })
}

// MovePlaceholder re-hosts the marker inside zone, in front of before, or at
// the end when before is nil.
func (s *Session) MovePlaceholder(host layout.Container, before layout.Node) {
	s.write(func() { s.placeholder.moveTo(host, before) })
}

func (s *Session) write(fn func()) {
	if s.sched != nil {
		s.sched.Write(fn)
		return
	}
	fn()
}

func (s *Session) requestRefresh(zone layout.Container) {
	if s.refresh != nil {
		s.refresh(zone)
	}
}
