package styles

import (
	"bytes"
	"fmt"
)

// Blueprint draws light dashed outlines over a dark blue grid, useful for
// inspecting layouts rather than presenting them.
type Blueprint struct{}

const blueprintDefs = `  <defs>
    <pattern id="bp-grid" width="24" height="24" patternUnits="userSpaceOnUse">
      <path d="M 24 0 L 0 0 0 24" fill="none" stroke="#2b5c8a" stroke-width="0.5"/>
    </pattern>
  </defs>
`

func (Blueprint) RenderDefs(buf *bytes.Buffer) { buf.WriteString(blueprintDefs) }

func (Blueprint) RenderBackground(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <rect class="background" x="0" y="0" width="%.2f" height="%.2f" fill="#123a5e"/>`+"\n", w, h)
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="url(#bp-grid)"/>`+"\n", w, h)
}

func (Blueprint) RenderShape(buf *bytes.Buffer, s Shape) {
	fmt.Fprintf(buf, `  <rect id="%s" class="shape" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="0.25" stroke="%s" stroke-width="%.2f" stroke-dasharray="6,3"/>`+"\n",
		EscapeXML(s.ID), s.X, s.Y, s.W, s.H, hexColor(s.Fill, "none"), hexColor(s.Line, "#e0f0ff"), s.LineWidth)
}

func (Blueprint) RenderLabel(buf *bytes.Buffer, l Label) {
	renderText(buf, l.ID, "label", l.Box, l.Text, "#e0f0ff", false)
}

func (Blueprint) RenderTable(buf *bytes.Buffer, t Table) {
	fmt.Fprintf(buf, `  <g id="%s" class="table">`+"\n", EscapeXML(t.ID))
	for i, row := range t.Cells() {
		for j, cell := range row {
			fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#e0f0ff" stroke-width="0.5"/>`+"\n",
				cell.X, cell.Y, cell.W, cell.H)
			renderText(buf, "", "cell", cell, t.Rows[i][j], "#e0f0ff", i == 0)
		}
	}
	buf.WriteString("  </g>\n")
}
