// Package app provides the FlexUI workbench: the bubbletea model owning the
// layout tree, the drag session, and the frame queue that batches geometry
// work between renders.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/marcusagm/FlexUi-sub004/internal/config"
	"github.com/marcusagm/FlexUi-sub004/internal/dnd"
	"github.com/marcusagm/FlexUi-sub004/internal/frame"
	"github.com/marcusagm/FlexUi-sub004/internal/geometry"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "app",
})

// SetLogLevel adjusts the package log level.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// TickerMsg represents a periodic tick event for updating the UI.
// This is exported so it can be used by the input package.
type TickerMsg time.Time

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without
// creating a circular dependency.
type InputHandler func(msg tea.Msg, w *Workbench) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// ConfigReloadedMsg carries a validated configuration picked up from disk
// by the config watcher.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// Workbench is the main application state: a surface hosting a docked region
// of columns, a strip of docked windows, free windows, and floating groups.
type Workbench struct {
	Config  *config.UserConfig
	Queue   *frame.Queue
	Session *dnd.Session

	Surface *layout.Surface
	Dock    *layout.Row

	// FloatingGroups are groups lifted above the docked layout, owned here
	// as the session's float host.
	FloatingGroups []*layout.Group
	// PoppedOut are windows living outside the layout, owned here as the
	// session's popout host.
	PoppedOut []*layout.Window

	Width  int
	Height int

	FocusedGroup *layout.Group

	// Press tracking, driven by the input package. A press becomes a drag
	// once the pointer travels past the threshold, or a click on release.
	Pressed    bool
	PressX     int
	PressY     int
	PressItem  layout.Node
	PressKind  dnd.Kind
	LastMouseX int
	LastMouseY int

	Notifications []Notification
	ShowHelp      bool

	// SSH mode fields
	SSHSession ssh.Session // SSH session reference (nil in local mode)
	IsSSHMode  bool        // True when running over SSH

	needsLayout bool
}

// NewWorkbench builds a workbench with the starter layout: two dock columns
// of tabbed groups, a docked log window in the strip, and one free window.
func NewWorkbench(cfg *config.UserConfig) *Workbench {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	w := &Workbench{
		Config: cfg,
		Queue:  frame.NewQueue(),
	}
	w.Session = dnd.NewSession(w.Queue)
	w.Session.SetHosts(w, w)
	w.Session.OnRefresh(func(zone layout.Container) {
		w.needsLayout = true
	})

	w.Surface = layout.NewSurface()
	w.Dock = layout.NewRow()

	explorer := layout.NewGroup("Explorer")
	explorer.AddPanel(layout.NewPanel("Files"))
	explorer.AddPanel(layout.NewPanel("Search"))
	outline := layout.NewGroup("Outline")
	outline.AddPanel(layout.NewPanel("Outline"))

	side := layout.NewColumn()
	side.AddChildAt(explorer, 0)
	side.AddChildAt(outline, 1)
	side.SetSizeHint(28)

	editor := layout.NewGroup("Editor")
	editor.AddPanel(layout.NewPanel("main.go"))
	editor.AddPanel(layout.NewPanel("README.md"))
	console := layout.NewGroup("Console")
	console.AddPanel(layout.NewPanel("Terminal"))
	console.AddPanel(layout.NewPanel("Problems"))

	main := layout.NewColumn()
	main.AddChildAt(editor, 0)
	main.AddChildAt(console, 1)

	w.Dock.AddChildAt(side, 0)
	w.Dock.AddChildAt(main, 1)

	logs := layout.NewWindow("Logs")
	w.Surface.Strip.DockAt(logs, 0)

	scratch := layout.NewWindow("Scratch")
	scratch.SetBounds(geometry.Rect{X: 10, Y: 4, Width: config.DefaultFloatWidth, Height: config.DefaultFloatHeight})
	w.Surface.Register(scratch)

	w.FocusedGroup = editor

	if err := w.Session.RegisterZones(w.Dock, side, main, w.Surface.Strip, w.Surface); err != nil {
		logger.Error("zone registration failed", "err", err)
	}

	return w
}

func createID() string {
	return uuid.New().String()
}

// ReleaseFloating tears down the floating state of a group that docked, or
// whose last tab docked. Part of the session's float host contract.
func (w *Workbench) ReleaseFloating(group *layout.Group) {
	group.SetFloating(false)
	for i, g := range w.FloatingGroups {
		if g == group {
			w.FloatingGroups = append(w.FloatingGroups[:i], w.FloatingGroups[i+1:]...)
			break
		}
	}
	w.needsLayout = true
}

// Restore returns a popped-out window to the in-process layout before it
// docks or floats. Part of the session's popout host contract.
func (w *Workbench) Restore(window *layout.Window) {
	window.PoppedOut = false
	for i, p := range w.PoppedOut {
		if p == window {
			w.PoppedOut = append(w.PoppedOut[:i], w.PoppedOut[i+1:]...)
			break
		}
	}
	w.needsLayout = true
}

// FloatGroup lifts a docked group above the layout at the given bounds. The
// group leaves its column, collapsing it if it was the last member.
func (w *Workbench) FloatGroup(group *layout.Group, bounds geometry.Rect) {
	if group.Floating() {
		return
	}
	if src := group.Parent(); src != nil {
		src.RemoveChild(group, false)
	}
	group.ClearSizeHint()
	group.SetFloating(true)
	group.SetBounds(bounds)
	w.FloatingGroups = append(w.FloatingGroups, group)
	w.needsLayout = true
}

// Popout hands a window to the detached-window layer. The window leaves the
// strip or the surface; only Restore brings it back.
func (w *Workbench) Popout(window *layout.Window) {
	if window.PoppedOut {
		return
	}
	if window.Docked {
		w.Surface.Strip.Undock(window)
	} else if parent := window.Parent(); parent != nil {
		parent.RemoveChild(window, true)
	}
	window.PoppedOut = true
	w.PoppedOut = append(w.PoppedOut, window)
	w.needsLayout = true
}

// ShowNotification adds a transient message to the notification stack.
func (w *Workbench) ShowNotification(message, notifType string, duration time.Duration) {
	w.Notifications = append(w.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		logger.Error(message)
	case "warning":
		logger.Warn(message)
	default:
		logger.Info(message)
	}
}

// UpdateNotifications drops notifications whose duration has elapsed.
func (w *Workbench) UpdateNotifications() {
	now := time.Now()
	kept := w.Notifications[:0]
	for _, n := range w.Notifications {
		if n.Duration == 0 || now.Sub(n.StartTime) < n.Duration {
			kept = append(kept, n)
		}
	}
	w.Notifications = kept
}

// FlushFrame drains the frame queue and re-runs the layout pass when any
// queued work or structural change made the current geometry stale.
func (w *Workbench) FlushFrame() {
	if !w.Queue.Pending() && !w.needsLayout {
		return
	}
	w.Queue.Flush()
	w.PerformLayout()
	w.needsLayout = false
}

// syncZones reconciles the session's zone set with the live tree: groups
// committed directly to the dock row get boxed into fresh columns, columns
// created by drops get registered, collapsed ones get unregistered.
func (w *Workbench) syncZones() {
	if w.wrapDockGroups() {
		w.PerformLayout()
	}
	for _, child := range w.Dock.Children() {
		col, ok := child.(*layout.Column)
		if !ok {
			continue
		}
		if !w.Session.Registered(col) {
			if err := w.Session.RegisterZone(col); err != nil {
				logger.Error("column registration failed", "err", err)
			}
		}
	}
	for _, zone := range w.Session.Zones() {
		if col, ok := zone.(*layout.Column); ok && col.Parent() == nil {
			w.Session.UnregisterZone(col)
		}
	}
}

// wrapDockGroups boxes any group sitting directly in the dock row into its
// own column. Dropping a group on the seam between columns lands it as a row
// child; the rest of the workbench only ever stacks columns in the row.
func (w *Workbench) wrapDockGroups() bool {
	var stray []*layout.Group
	for _, child := range w.Dock.Children() {
		if group, ok := child.(*layout.Group); ok {
			stray = append(stray, group)
		}
	}
	for _, group := range stray {
		col := layout.NewColumn()
		w.Dock.AddChildAt(col, w.Dock.IndexOf(group))
		col.AddChildAt(group, 0)
	}
	return len(stray) > 0
}

// TickCmd creates a command that generates tick messages at the frame rate.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Init initializes the workbench and returns the initial tick command.
func (w *Workbench) Init() tea.Cmd {
	return TickCmd()
}

// Update handles all incoming messages and updates the application state.
func (w *Workbench) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		w.UpdateNotifications()
		w.FlushFrame()
		return w, TickCmd()

	case ConfigReloadedMsg:
		if msg.Config != nil {
			w.Config = msg.Config
			w.needsLayout = true
			w.ShowNotification("Configuration reloaded", "success", config.NotificationDuration)
			w.FlushFrame()
		}
		return w, nil

	case tea.WindowSizeMsg:
		w.Width = msg.Width
		w.Height = msg.Height
		w.needsLayout = true
		w.FlushFrame()
		return w, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		// Delegate to the registered input handler
		if inputHandler != nil {
			model, cmd := inputHandler(msg, w)
			w.FlushFrame()
			w.syncZones()
			return model, cmd
		}
		return w, nil

	case tea.MouseMsg:
		// Catch-all for any other mouse events
		return w, nil

	case tea.FocusMsg, tea.BlurMsg:
		return w, nil
	}

	return w, nil
}

// DumpTree logs the dock structure, used by the debug key.
func (w *Workbench) DumpTree() {
	for i, child := range w.Dock.Children() {
		col, ok := child.(*layout.Column)
		if !ok {
			continue
		}
		for j, member := range col.Children() {
			if g, ok := member.(*layout.Group); ok {
				logger.Debug(fmt.Sprintf("dock[%d][%d] %s tabs=%d", i, j, g.Title, g.ChildCount()))
			}
		}
	}
}
