package styles

import (
	"bytes"
	"fmt"
)

// Simple draws plain outlines with dark sans-serif text on a white canvas.
type Simple struct{}

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderBackground(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <rect class="background" x="0" y="0" width="%.2f" height="%.2f" fill="white"/>`+"\n", w, h)
}

func (Simple) RenderShape(buf *bytes.Buffer, s Shape) {
	fmt.Fprintf(buf, `  <rect id="%s" class="shape" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
		EscapeXML(s.ID), s.X, s.Y, s.W, s.H, hexColor(s.Fill, "none"), hexColor(s.Line, "#333"), s.LineWidth)
}

func (Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	renderText(buf, l.ID, "label", l.Box, l.Text, "#222", false)
}

func (Simple) RenderTable(buf *bytes.Buffer, t Table) {
	fmt.Fprintf(buf, `  <g id="%s" class="table">`+"\n", EscapeXML(t.ID))
	for i, row := range t.Cells() {
		for j, cell := range row {
			fill := "white"
			if i == 0 {
				fill = "#e8e8e8"
			}
			fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#999" stroke-width="0.75"/>`+"\n",
				cell.X, cell.Y, cell.W, cell.H, fill)
			renderText(buf, "", "cell", cell, t.Rows[i][j], "#222", i == 0)
		}
	}
	buf.WriteString("  </g>\n")
}

// renderText writes text centered in box, sized and truncated to fit.
func renderText(buf *bytes.Buffer, id, class string, box Box, text, color string, bold bool) {
	if text == "" {
		return
	}
	size := FontSize(box.W, box.H, len([]rune(text)))
	cx, cy := box.Center()
	weight := "normal"
	if bold {
		weight = "bold"
	}
	idAttr := ""
	if id != "" {
		idAttr = fmt.Sprintf(` id="%s"`, EscapeXML(id))
	}
	fmt.Fprintf(buf, `    <text%s class="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" font-weight="%s" fill="%s">%s</text>`+"\n",
		idAttr, class, cx, cy, size, weight, color, EscapeXML(TruncateLabel(text, box.W, size)))
}
