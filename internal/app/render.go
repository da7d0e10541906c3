package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marcusagm/FlexUi-sub004/internal/dnd"
	"github.com/marcusagm/FlexUi-sub004/internal/layout"
	"github.com/marcusagm/FlexUi-sub004/internal/theme"
)

const (
	zDock          = 1
	zStrip         = 10
	zFreeWindow    = 20
	zFloatingGroup = 100
	zPlaceholder   = 150
	zDragGhost     = 160
	zNotification  = 200
	zHelp          = 300
)

func (w *Workbench) border() lipgloss.Border {
	switch w.Config.Appearance.BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// View returns the rendered view as a string.
func (w *Workbench) View() tea.View {
	canvas := lipgloss.NewCanvas()
	var layers []*lipgloss.Layer

	for _, child := range w.Dock.Children() {
		col, ok := child.(*layout.Column)
		if !ok {
			continue
		}
		for _, member := range col.Children() {
			if g, ok := member.(*layout.Group); ok {
				if layer := w.renderGroup(g, zDock); layer != nil {
					layers = append(layers, layer)
				}
			}
		}
	}

	layers = append(layers, w.renderStrip()...)

	for i, child := range w.Surface.Children() {
		if win, ok := child.(*layout.Window); ok {
			if layer := w.renderWindow(win, zFreeWindow+i); layer != nil {
				layers = append(layers, layer)
			}
		}
	}

	for i, g := range w.FloatingGroups {
		if layer := w.renderGroup(g, zFloatingGroup+i); layer != nil {
			layers = append(layers, layer)
		}
	}

	if layer := w.renderPlaceholder(); layer != nil {
		layers = append(layers, layer)
	}
	if layer := w.renderDragGhost(); layer != nil {
		layers = append(layers, layer)
	}
	layers = append(layers, w.renderNotifications()...)
	if w.ShowHelp {
		if layer := w.renderHelp(); layer != nil {
			layers = append(layers, layer)
		}
	}

	canvas.AddLayers(layers...)

	var view tea.View
	view.SetContent(lipgloss.Sprint(canvas.Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}

func (w *Workbench) renderGroup(g *layout.Group, z int) *lipgloss.Layer {
	b := g.Bounds()
	if b.Empty() || b.Width < 4 || b.Height < 3 {
		return nil
	}

	borderColor := theme.BorderUnfocused()
	if g == w.FocusedGroup {
		borderColor = theme.BorderFocused()
	}
	if g.Floating() {
		borderColor = theme.FloatBorder()
	}

	innerWidth := b.Width - 2

	var tabs strings.Builder
	active := g.ActiveTab()
	for i, panel := range g.Panels() {
		label := " " + panel.Title + " "
		if i == active {
			tabs.WriteString(lipgloss.NewStyle().
				Foreground(theme.TabActiveFg()).
				Background(theme.TabActiveBg()).
				Render(label))
		} else {
			tabs.WriteString(lipgloss.NewStyle().
				Foreground(theme.TabInactiveFg()).
				Background(theme.TabInactiveBg()).
				Render(label))
		}
	}
	tabRow := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Render(tabs.String())

	content := ""
	if panels := g.Panels(); active >= 0 && active < len(panels) {
		content = panels[active].Content
		if content == "" {
			content = panels[active].Title
		}
	}
	dimmed := w.isDragSource(g)
	bodyStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Height(b.Height - 3).
		MaxWidth(innerWidth).
		Foreground(theme.PanelFg())
	if dimmed {
		bodyStyle = bodyStyle.Foreground(theme.DragSourceDimmed())
	}
	body := bodyStyle.Render(content)

	box := lipgloss.NewStyle().
		Border(w.border()).
		BorderForeground(borderColor).
		Render(lipgloss.JoinVertical(lipgloss.Left, tabRow, body))

	return lipgloss.NewLayer(box).X(b.X).Y(b.Y).Z(z).ID(g.ID())
}

// isDragSource reports whether the group is the dragged item or holds it.
func (w *Workbench) isDragSource(g *layout.Group) bool {
	payload := w.Session.Payload()
	if payload == nil {
		return false
	}
	if payload.Item == layout.Node(g) {
		return true
	}
	if p, ok := payload.Item.(*layout.Panel); ok {
		return p.Parent() == layout.Container(g)
	}
	return false
}

func (w *Workbench) renderWindow(win *layout.Window, z int) *lipgloss.Layer {
	b := win.Bounds()
	if b.Empty() || b.Width < 4 || b.Height < 3 {
		return nil
	}

	borderColor := theme.BorderUnfocused()
	payload := w.Session.Payload()
	if payload != nil && payload.Item == layout.Node(win) {
		borderColor = theme.DragGhostOutline()
	}

	innerWidth := b.Width - 2
	title := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Foreground(theme.PanelFg()).
		Bold(true).
		Render(" " + win.Title)
	body := lipgloss.NewStyle().
		Width(innerWidth).
		Height(b.Height-3).
		MaxWidth(innerWidth).
		Foreground(theme.PanelFg()).
		Render("")

	box := lipgloss.NewStyle().
		Border(w.border()).
		BorderForeground(borderColor).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))

	return lipgloss.NewLayer(box).X(b.X).Y(b.Y).Z(z).ID(win.ID())
}

// renderStrip draws the strip bar and one layer per docked header.
func (w *Workbench) renderStrip() []*lipgloss.Layer {
	strip := w.Surface.Strip
	b := strip.Bounds()
	if b.Empty() {
		return nil
	}

	barBg := theme.StripBg()
	if strip.Active {
		barBg = theme.StripSeparator()
	}
	bar := lipgloss.NewStyle().
		Width(b.Width).
		Height(b.Height).
		Background(barBg).
		Render("")
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(bar).X(b.X).Y(b.Y).Z(zStrip).ID(strip.ID()),
	}

	for _, win := range strip.Windows() {
		hb := win.Bounds()
		fg := theme.StripFg()
		payload := w.Session.Payload()
		if payload != nil && payload.Item == layout.Node(win) {
			fg = theme.StripDimmed()
		}
		header := lipgloss.NewStyle().
			Width(hb.Width).
			MaxWidth(hb.Width).
			Foreground(fg).
			Background(barBg).
			Render(" ◈ " + win.Title)
		layers = append(layers, lipgloss.NewLayer(header).X(hb.X).Y(hb.Y).Z(zStrip+1).ID(win.ID()))
	}
	return layers
}

func (w *Workbench) renderPlaceholder() *lipgloss.Layer {
	ph := w.Session.Placeholder()
	if !ph.Visible() {
		return nil
	}
	b := ph.Bounds()
	if b.Empty() {
		return nil
	}
	bar := lipgloss.NewStyle().
		Width(b.Width).
		Height(b.Height).
		Background(theme.PlaceholderColor()).
		Render("")
	return lipgloss.NewLayer(bar).X(b.X).Y(b.Y).Z(zPlaceholder).ID("placeholder")
}

// renderDragGhost shows an outline of a dragged window at the pointer. Group
// and panel drags preview through the placeholder instead.
func (w *Workbench) renderDragGhost() *lipgloss.Layer {
	payload := w.Session.Payload()
	if payload == nil || payload.Kind != dnd.KindWindow {
		return nil
	}
	win, ok := payload.Item.(*layout.Window)
	if !ok {
		return nil
	}
	b := win.Bounds()
	width, height := b.Width, b.Height
	if width < 4 || height < 3 {
		width, height = 20, 5
	}
	ghost := lipgloss.NewStyle().
		Border(w.border()).
		BorderForeground(theme.DragGhostOutline()).
		Width(width - 2).
		Height(height - 2).
		Render("")
	x := w.LastMouseX - payload.OffsetX
	y := w.LastMouseY - payload.OffsetY
	return lipgloss.NewLayer(ghost).X(x).Y(y).Z(zDragGhost).ID("drag-ghost")
}

func (w *Workbench) renderNotifications() []*lipgloss.Layer {
	if len(w.Notifications) == 0 {
		return nil
	}
	var layers []*lipgloss.Layer
	y := 1
	now := time.Now()
	for i, n := range w.Notifications {
		if n.Duration > 0 && now.Sub(n.StartTime) >= n.Duration {
			continue
		}
		var accent = theme.NotificationInfo()
		switch n.Type {
		case "error":
			accent = theme.NotificationError()
		case "warning":
			accent = theme.NotificationWarning()
		case "success":
			accent = theme.NotificationSuccess()
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(theme.NotificationFg()).
			Background(theme.NotificationBg()).
			Padding(0, 1).
			Render(n.Message)
		x := w.Width - lipgloss.Width(box) - 2
		if x < 0 {
			x = 0
		}
		layers = append(layers, lipgloss.NewLayer(box).X(x).Y(y).Z(zNotification+i).ID(n.ID))
		y += lipgloss.Height(box)
	}
	return layers
}

func (w *Workbench) renderHelp() *lipgloss.Layer {
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.WelcomeTitle()).Bold(true).Render("FlexUI"),
		"",
		"drag a tab        move a panel",
		"drag a tab row    move a group",
		"drag a header     move a window",
		"esc               cancel drag",
		"?                 toggle this help",
		"ctrl+c            quit",
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.WelcomeSubtitle()).
		Foreground(theme.WelcomeText()).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
	x := max((w.Width-lipgloss.Width(box))/2, 0)
	y := max((w.Height-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(zHelp).ID("help")
}
