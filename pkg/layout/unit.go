package layout

import (
	"math"
	"math/big"
	"strconv"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// Conversion factors into EMU (English Metric Units), the integer length unit
// used for every coordinate in this package.
const (
	EMUPerInch       = 914400
	EMUPerCentimeter = 360000
	EMUPerMillimeter = 36000
	EMUPerPoint      = 12700
	EMUPerPixel      = 9525 // CSS pixel at 96 DPI
)

// Unit is a sizing strategy for one child along its parent's split axis.
//
// The set of units is closed: [Length], [Ratio] and [Weight]. Resolve returns
// the concrete length for the child given the parent's extent along the axis,
// the space left after all fixed siblings were subtracted, and the sum of all
// sibling weights. Fixed units ignore the last two arguments.
type Unit interface {
	Resolve(parent, available int64, totalWeight float64) (int64, error)
	String() string
	unit()
}

// Length is an absolute size, independent of the parent.
type Length struct {
	emu int64
}

// EMU returns a Length of n English Metric Units.
func EMU(n int64) Length { return Length{emu: n} }

// Inch returns a Length of f inches, truncated to whole EMU.
func Inch(f float64) Length { return Length{emu: int64(f * EMUPerInch)} }

// Centimeter returns a Length of f centimetres, truncated to whole EMU.
func Centimeter(f float64) Length { return Length{emu: int64(f * EMUPerCentimeter)} }

// Millimeter returns a Length of f millimetres, truncated to whole EMU.
func Millimeter(f float64) Length { return Length{emu: int64(f * EMUPerMillimeter)} }

// Point returns a Length of f typographic points, truncated to whole EMU.
func Point(f float64) Length { return Length{emu: int64(f * EMUPerPoint)} }

// Pixel returns a Length of f CSS pixels, truncated to whole EMU.
func Pixel(f float64) Length { return Length{emu: int64(f * EMUPerPixel)} }

// EMU returns the length in English Metric Units.
func (l Length) EMU() int64 { return l.emu }

// Resolve returns the fixed length.
func (l Length) Resolve(int64, int64, float64) (int64, error) { return l.emu, nil }

func (l Length) String() string {
	if l.emu%(EMUPerInch/100) == 0 {
		return formatFloat(float64(l.emu)/EMUPerInch) + "in"
	}
	if l.emu%(EMUPerCentimeter/10) == 0 {
		return formatFloat(float64(l.emu)/EMUPerCentimeter) + "cm"
	}
	return strconv.FormatInt(l.emu, 10) + "emu"
}

func (Length) unit() {}

// Ratio is a fraction in [0, 1] of the parent's own extent.
type Ratio struct {
	v float64
}

// NewRatio returns a Ratio, failing with INVALID_UNIT when v is outside [0, 1].
func NewRatio(v float64) (Ratio, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return Ratio{}, errors.New(errors.ErrCodeInvalidUnit, "ratio must be between 0 and 1, got %v", v)
	}
	return Ratio{v: v}, nil
}

// MustRatio is like [NewRatio] but panics on an invalid value. It is meant for
// literal values in code.
func MustRatio(v float64) Ratio {
	r, err := NewRatio(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Value returns the fraction.
func (r Ratio) Value() float64 { return r.v }

// Resolve returns the parent extent scaled by the ratio, truncated.
func (r Ratio) Resolve(parent, _ int64, _ float64) (int64, error) {
	return int64(float64(parent) * r.v), nil
}

func (r Ratio) String() string { return formatFloat(math.Round(r.v*1e8)/1e6) + "%" }

func (Ratio) unit() {}

// Weight is a flexible size. Weighted siblings share the space that is left
// after fixed siblings were subtracted, in proportion to their weights.
type Weight struct {
	w float64
}

// NewWeight returns a Weight, failing with INVALID_UNIT unless w > 0.
func NewWeight(w float64) (Weight, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return Weight{}, errors.New(errors.ErrCodeInvalidUnit, "weight must be positive, got %v", w)
	}
	return Weight{w: w}, nil
}

// MustWeight is like [NewWeight] but panics on an invalid value.
func MustWeight(w float64) Weight {
	wt, err := NewWeight(w)
	if err != nil {
		panic(err)
	}
	return wt
}

// Auto returns Weight(1), the unit assumed for children that declare none.
func Auto() Weight { return Weight{w: 1} }

// Value returns the weight.
func (w Weight) Value() float64 { return w.w }

// Resolve returns floor(available * weight / totalWeight), computed exactly.
func (w Weight) Resolve(_, available int64, totalWeight float64) (int64, error) {
	if math.IsNaN(totalWeight) || math.IsInf(totalWeight, 0) || totalWeight <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "total weight must be positive and finite, got %v", totalWeight)
	}
	return w.share(available, new(big.Rat).SetFloat64(totalWeight))
}

// share floors available * w / total in exact rational arithmetic, so a lone
// weight receives all of available however its value rounds in binary.
func (w Weight) share(available int64, total *big.Rat) (int64, error) {
	q := new(big.Rat).SetFloat64(w.w)
	q.Mul(q, new(big.Rat).SetInt64(available))
	q.Quo(q, total)
	n := new(big.Int).Div(q.Num(), q.Denom())
	if !n.IsInt64() {
		return 0, errors.New(errors.ErrCodeOverflow, "weight %v of %d exceeds the length range", w.w, available)
	}
	return n.Int64(), nil
}

func (w Weight) String() string { return formatFloat(w.w) + "fr" }

func (Weight) unit() {}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
