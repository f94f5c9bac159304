package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// lengthSuffixes maps absolute unit suffixes to EMU per unit.
var lengthSuffixes = []struct {
	suffix string
	emu    float64
}{
	{"emu", 1},
	{"in", EMUPerInch},
	{"cm", EMUPerCentimeter},
	{"mm", EMUPerMillimeter},
	{"pt", EMUPerPoint},
	{"px", EMUPerPixel},
}

// ParseUnit parses the textual form of a unit as used in layout documents.
//
// Accepted forms:
//
//	auto        Weight(1)
//	2fr         Weight(2)
//	25%         Ratio(0.25), the number must lie in [0, 100]
//	1.5in       absolute length; likewise cm, mm, pt, px and emu
//
// Surrounding whitespace is ignored and suffixes are case-insensitive.
// Malformed or out-of-range text fails with INVALID_UNIT.
func ParseUnit(s string) (Unit, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	switch {
	case text == "":
		return nil, errors.New(errors.ErrCodeInvalidUnit, "empty unit")
	case text == "auto":
		return Auto(), nil
	case strings.HasSuffix(text, "fr"):
		v, err := parseNumber(s, strings.TrimSuffix(text, "fr"))
		if err != nil {
			return nil, err
		}
		return NewWeight(v)
	case strings.HasSuffix(text, "%"):
		v, err := parseNumber(s, strings.TrimSuffix(text, "%"))
		if err != nil {
			return nil, err
		}
		return NewRatio(v / 100)
	}
	return ParseLength(s)
}

// ParseLength parses an absolute length such as "2in" or "450000emu".
// Relative forms, negative lengths and lengths beyond the int64 EMU range are
// rejected with INVALID_UNIT.
func ParseLength(s string) (Length, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	for _, ls := range lengthSuffixes {
		if !strings.HasSuffix(text, ls.suffix) {
			continue
		}
		v, err := parseNumber(s, strings.TrimSuffix(text, ls.suffix))
		if err != nil {
			return Length{}, err
		}
		emu := v * ls.emu
		switch {
		case emu < 0:
			return Length{}, errors.New(errors.ErrCodeInvalidUnit, "negative length %q", s)
		case emu >= math.MaxInt64:
			return Length{}, errors.New(errors.ErrCodeInvalidUnit, "length %q out of range", s)
		}
		return Length{emu: int64(emu)}, nil
	}
	return Length{}, errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q", s)
}

func parseNumber(orig, num string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidUnit, err, "invalid number in unit %q", orig)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "non-finite number in unit %q", orig)
	}
	return v, nil
}
