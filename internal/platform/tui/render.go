package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/desk-pro/dino-qube/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells sharing the same colors to minimize ANSI escape
// sequences; the day/night sky makes long same-color runs the common case.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same fg/bg pair.
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(start.Fg.Hex())).
				Background(lipgloss.Color(start.Bg.Hex()))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
