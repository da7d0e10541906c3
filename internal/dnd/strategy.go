package dnd

import (
	"fmt"

	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

// Strategy is the per-zone drop policy. One instance is bound to each
// registered zone at registration time; the binding is static per node type.
//
// OnDragEnter and OnDragOver return false to signal "not handled here",
// letting the session try an enclosing zone instead. OnDrop returns false
// when nothing was committed: wrong payload type, or a ghost/invalid
// decision. No strategy call ever mutates the tree except OnDrop.
type Strategy interface {
	OnDragEnter(pt Point, zone layout.Container, payload *Payload, s *Session) bool
	OnDragOver(pt Point, zone layout.Container, payload *Payload, s *Session) bool
	OnDragLeave(pt Point, zone layout.Container, payload *Payload, s *Session)
	OnDrop(pt Point, zone layout.Container, payload *Payload, s *Session) bool
	// ClearCache resets cached geometry and the pending drop decision.
	// Calling it on an already clear strategy is a no-op.
	ClearCache()
}

// strategyFor binds a zone node type to its drop strategy.
func strategyFor(zone layout.Container) (Strategy, error) {
	switch zone.(type) {
	case *layout.Column:
		return newAxisStrategy(layout.Vertical), nil
	case *layout.Row:
		return newAxisStrategy(layout.Horizontal), nil
	case *layout.Strip:
		return newStripStrategy(), nil
	case *layout.Surface:
		return newSurfaceStrategy(), nil
	}
	return nil, fmt.Errorf("dnd: no drop strategy for zone type %T", zone)
}
