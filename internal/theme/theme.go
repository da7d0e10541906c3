// Package theme provides color themes and styling for the FlexUI workbench.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize selects the named tint at startup. An empty name leaves theming
// off and every accessor falls back to its fixed color.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		// Unknown name, fall back rather than fail startup.
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled reports whether a tint is active.
func IsEnabled() bool {
	return enabled
}

// Current returns the active tint, or nil when theming is off.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Panel chrome colors
func PanelFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

func PanelBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	// Light cyan for the focused group
	return t.BrightCyan
}

// Placeholder colors for the drop indicator bar
func PlaceholderColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cdcd")
	}
	return t.Cyan
}

func PlaceholderDimmed() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#008080")
	}
	return t.Blue
}

// Drag feedback colors
func DragSourceDimmed() color.Color {
	return lipgloss.Color("#606070")
}

func DragGhostOutline() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// Tab colors for group headers
func TabActiveFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Black
}

func TabActiveBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cdcd")
	}
	return t.Cyan
}

func TabInactiveFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

func TabInactiveBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// Window strip colors
func StripBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

func StripFg() color.Color {
	return lipgloss.Color("#a0a0b0")
}

func StripActiveWindow() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

func StripDimmed() color.Color {
	return lipgloss.Color("#808090")
}

func StripSeparator() color.Color {
	return lipgloss.Color("#303040")
}

// Floating window colors
func FloatBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd00cd")
	}
	return t.Purple
}

func FloatShadow() color.Color {
	return lipgloss.Color("#101018")
}

// Notification colors
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

func NotificationSuccess() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0000ee")
	}
	return t.Blue
}

func NotificationBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

func NotificationFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Welcome screen colors
func WelcomeTitle() color.Color {
	return lipgloss.Color("14") // Bright cyan
}

func WelcomeSubtitle() color.Color {
	return lipgloss.Color("11") // Bright yellow
}

func WelcomeText() color.Color {
	return lipgloss.Color("7") // White
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}
