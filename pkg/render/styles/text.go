package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 24.0
)

// FontSize picks a font size for text of textLen characters in a box of
// w x h pixels. It is an estimate from average glyph width; no text is
// measured.
func FontSize(w, h float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := h * fontHeightRatio
	byWidth := (w * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// TruncateLabel shortens text so that it fits w pixels at fontSize, ending
// it with ".." when cut. At least three characters are always kept.
func TruncateLabel(text string, w, fontSize float64) string {
	runes := []rune(text)
	maxChars := int(w*fontWidthRatio/(fontSize*fontCharWidth) + 1e-9)
	if maxChars < 3 {
		maxChars = 3
	}
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// hexColor returns "#RRGGBB", or fallback when hex is empty.
func hexColor(hex, fallback string) string {
	if hex == "" {
		return fallback
	}
	return "#" + hex
}
