package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// The browser must stay readable on both light and dark backgrounds, so
// colors are adaptive and "faint" is used sparingly.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")
	colorError lipgloss.TerminalColor = ac("160", "203")
)
