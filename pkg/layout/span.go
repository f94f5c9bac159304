package layout

import (
	"math"
	"math/big"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// ResolveSpan turns an ordered list of units into concrete lengths that share
// total. The result has the same length and order as units.
//
// Resolution runs in two passes. The first pass sums the values of all
// [Weight] units and resolves every other unit against total, summing those
// fixed sizes. Whatever is left over is available to the weights. If the fixed
// sizes alone exceed total the call fails with LAYOUT_OVERFLOW and returns no
// lengths. The second pass resolves each unit again with the available space
// and total weight, so a weight w receives floor(available*w/totalWeight).
//
// Weight shares are computed in exact rational arithmetic, so they never sum
// to more than the available space and a single weight fills it completely.
// Each share is still floored independently. The remainder left by flooring
// is not redistributed, so several weights may sum to slightly less than the
// available space.
//
// A fixed unit that resolves to a negative length fails with INVALID_UNIT.
// An empty units list yields an empty, non-nil result for any total.
func ResolveSpan(units []Unit, total int64) ([]int64, error) {
	if len(units) == 0 {
		return []int64{}, nil
	}

	var (
		totalWeight = new(big.Rat)
		totalFixed  int64
		hasWeight   bool
	)
	plain := make([]Unit, len(units))
	for i, raw := range units {
		u, err := deref(raw, i)
		if err != nil {
			return nil, err
		}
		plain[i] = u
		if w, ok := u.(Weight); ok {
			totalWeight.Add(totalWeight, new(big.Rat).SetFloat64(w.w))
			hasWeight = true
			continue
		}
		n, err := u.Resolve(total, 0, 0)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.New(errors.ErrCodeInvalidUnit, "unit %d (%s) resolves to negative length %d", i, u, n)
		}
		if totalFixed > math.MaxInt64-n {
			return nil, errors.New(errors.ErrCodeOverflow, "fixed sizes exceed the length range")
		}
		totalFixed += n
	}

	available := total - totalFixed
	if available < 0 {
		return nil, errors.New(errors.ErrCodeOverflow,
			"fixed sizes %d exceed available extent %d", totalFixed, total)
	}
	if hasWeight && totalWeight.Sign() <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidUnit, "total weight must be positive, got %s", totalWeight.FloatString(3))
	}

	lengths := make([]int64, len(units))
	for i, u := range plain {
		var (
			n   int64
			err error
		)
		if w, ok := u.(Weight); ok {
			n, err = w.share(available, totalWeight)
		} else {
			n, err = u.Resolve(total, available, 0)
		}
		if err != nil {
			return nil, err
		}
		lengths[i] = n
	}
	return lengths, nil
}

// deref turns pointer units into their values so that *Weight is treated as
// a weight and a nil pointer is reported instead of dereferenced.
func deref(u Unit, i int) (Unit, error) {
	switch v := u.(type) {
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidUnit, "unit %d is nil", i)
	case *Weight:
		if v == nil {
			return nil, errors.New(errors.ErrCodeInvalidUnit, "unit %d is nil", i)
		}
		return *v, nil
	case *Length:
		if v == nil {
			return nil, errors.New(errors.ErrCodeInvalidUnit, "unit %d is nil", i)
		}
		return *v, nil
	case *Ratio:
		if v == nil {
			return nil, errors.New(errors.ErrCodeInvalidUnit, "unit %d is nil", i)
		}
		return *v, nil
	}
	return u, nil
}
