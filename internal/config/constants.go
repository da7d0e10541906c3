package config

import "time"

// Workbench constants.
const (
	// NormalFPS is the refresh rate driving the frame queue.
	NormalFPS = 60

	// NotificationDuration is how long a notification stays on screen.
	NotificationDuration = 2 * time.Second

	// MinColumnWidth is the narrowest a dock column is laid out.
	MinColumnWidth = 16

	// MinGroupHeight is the shortest a group is laid out, one tab row plus
	// one content row inside the border.
	MinGroupHeight = 4

	// StripHeight is the height of the docked window strip in rows.
	StripHeight = 1

	// DefaultFloatWidth is the size given to a window or group that floats
	// without a remembered size.
	DefaultFloatWidth  = 40
	DefaultFloatHeight = 12

	// DragThreshold is how far the pointer must travel from the press cell
	// before a press becomes a drag instead of a click.
	DragThreshold = 2
)
