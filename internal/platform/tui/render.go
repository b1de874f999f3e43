package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ansiCodes maps the palette to terminal colour numbers.
var ansiCodes = map[core.Color]string{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightRed:   "9",
	core.ColorBrightGreen: "10",
	core.ColorBrightBlue:  "12",
	core.ColorGray:        "245",
}

// colorStyles holds one lipgloss style per palette entry.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one colour share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
