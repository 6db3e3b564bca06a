package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette maps core.Color to ANSI 256 colour codes. Bright colours are
// also drawn bold so clearing rows stand out on 16-colour terminals.
var palette = map[core.Color]struct {
	code string
	bold bool
}{
	core.ColorRed:           {"1", false},
	core.ColorGreen:         {"2", false},
	core.ColorYellow:        {"3", false},
	core.ColorBlue:          {"4", false},
	core.ColorMagenta:       {"5", false},
	core.ColorCyan:          {"6", false},
	core.ColorWhite:         {"7", false},
	core.ColorBrightRed:     {"9", true},
	core.ColorBrightGreen:   {"10", true},
	core.ColorBrightYellow:  {"11", true},
	core.ColorBrightBlue:    {"12", true},
	core.ColorBrightMagenta: {"13", true},
	core.ColorBrightCyan:    {"14", true},
	core.ColorBrightWhite:   {"15", true},
	core.ColorOrange:        {"208", false},
	core.ColorGray:          {"245", false},
}

// colorStyles is built once from palette.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, p := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.code)).Bold(p.bold)
	}
	return styles
}

// styleFor returns the style of a colour, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
