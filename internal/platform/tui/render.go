package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/campus-runner/internal/core"
)

// styleFor returns the lipgloss style of a palette colour.
func styleFor(c core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	return style
}

// RenderScreen turns a screen into styled terminal text. Each run of equal
// colour is styled once.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var sb strings.Builder
	for y := range rows {
		sb.Reset()
		for _, span := range s.Spans(y) {
			if span.Color == core.ColorDefault {
				sb.WriteString(span.Text)
				continue
			}
			sb.WriteString(styleFor(span.Color).Render(span.Text))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
