package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/mandelterm/internal/grid"
)

// Braille dot-to-bit mapping
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func header(sb *strings.Builder, width, height float64) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
}

// GridToSVG lays the grid out as monospace text, one <text> per row.
// scale is the font size in pixels.
func GridToSVG(g *grid.Grid, scale float64, fill string) string {
	if g == nil {
		return ""
	}

	charW := scale * 0.6
	width := float64(g.Cols()) * charW
	height := float64(g.Rows()) * scale

	var sb strings.Builder
	header(&sb, width, height)
	sb.WriteString(fmt.Sprintf(`<g font-family="monospace" font-size="%.1f" fill="%s" xml:space="preserve">
`, scale, fill))
	for r := 0; r < g.Rows(); r++ {
		y := float64(r+1)*scale - scale*0.2
		sb.WriteString(fmt.Sprintf(`<text x="0" y="%.1f" textLength="%.1f">%s</text>
`, y, width, html.EscapeString(g.Line(r))))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// BrailleToSVG draws every lit dot of a braille grid as a circle. Cells
// outside the braille block are skipped.
func BrailleToSVG(g *grid.Grid, scale float64, fill string) string {
	if g == nil {
		return ""
	}

	width := float64(g.Cols()) * scale * 2  // 2 sub-pixels per char
	height := float64(g.Rows()) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	header(&sb, width, height)
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fill))

	dotRadius := scale * 0.4
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			r := g.At(row, col)
			if r < 0x2800 || r > 0x28ff {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
