package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

func TestResolveSpan(t *testing.T) {
	tests := []struct {
		name  string
		units []Unit
		total int64
		want  []int64
	}{
		{
			name:  "fixed then weights",
			units: []Unit{EMU(200), Auto(), Auto()},
			total: 1000,
			want:  []int64{200, 400, 400},
		},
		{
			name:  "unequal weights",
			units: []Unit{MustWeight(2), MustWeight(1)},
			total: 300,
			want:  []int64{200, 100},
		},
		{
			name:  "weights truncate",
			units: []Unit{Auto(), Auto(), Auto()},
			total: 100,
			want:  []int64{33, 33, 33},
		},
		{
			name:  "ratio and length",
			units: []Unit{MustRatio(0.25), EMU(100)},
			total: 1000,
			want:  []int64{250, 100},
		},
		{
			name:  "ratio of parent not of remainder",
			units: []Unit{EMU(500), MustRatio(0.5), Auto()},
			total: 1000,
			want:  []int64{500, 500, 0},
		},
		{
			name:  "weight between fixed siblings",
			units: []Unit{EMU(100), Auto(), MustRatio(0.1)},
			total: 1000,
			want:  []int64{100, 800, 100},
		},
		{
			name:  "exact fill",
			units: []Unit{EMU(600), EMU(400)},
			total: 1000,
			want:  []int64{600, 400},
		},
		{
			name:  "lone fractional weight fills 1000",
			units: []Unit{MustWeight(1.1)},
			total: 1000,
			want:  []int64{1000},
		},
		{
			name:  "lone fractional weight fills an inch",
			units: []Unit{MustWeight(2.7)},
			total: 914400,
			want:  []int64{914400},
		},
		{
			name:  "fractional weight after fixed sibling",
			units: []Unit{Inch(1), MustWeight(1.1)},
			total: 2 * EMUPerInch,
			want:  []int64{914400, 914400},
		},
		{
			name:  "huge weights",
			units: []Unit{MustWeight(1e308), MustWeight(1e308)},
			total: 300,
			want:  []int64{150, 150},
		},
		{
			name:  "huge and tiny weight",
			units: []Unit{MustWeight(1e308), MustWeight(1e-300)},
			total: 300,
			want:  []int64{299, 0},
		},
		{
			name:  "pointer units",
			units: []Unit{ptr(EMU(100)), ptr(MustWeight(1)), ptr(MustRatio(0.1))},
			total: 1000,
			want:  []int64{100, 800, 100},
		},
		{
			name:  "zero total",
			units: []Unit{Auto(), MustRatio(0.5)},
			total: 0,
			want:  []int64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSpan(tt.units, tt.total)
			if err != nil {
				t.Fatalf("ResolveSpan() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveSpan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveSpanEmpty(t *testing.T) {
	for _, total := range []int64{0, 1, 900, -5} {
		got, err := ResolveSpan(nil, total)
		if err != nil {
			t.Fatalf("ResolveSpan(nil, %d) error: %v", total, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("ResolveSpan(nil, %d) = %#v, want empty non-nil slice", total, got)
		}
	}
}

func TestResolveSpanOverflow(t *testing.T) {
	tests := []struct {
		name  string
		units []Unit
		total int64
	}{
		{"ratios", []Unit{MustRatio(0.5), MustRatio(0.6)}, 900},
		{"lengths", []Unit{EMU(600), EMU(401)}, 1000},
		{"lengths with weight", []Unit{EMU(1001), Auto()}, 1000},
		{"negative total", []Unit{EMU(1)}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSpan(tt.units, tt.total)
			if !errors.Is(err, errors.ErrCodeOverflow) {
				t.Fatalf("ResolveSpan() error = %v, want %s", err, errors.ErrCodeOverflow)
			}
			if got != nil {
				t.Errorf("ResolveSpan() = %v, want nil on overflow", got)
			}
		})
	}
}

func ptr[T Unit](u T) *T { return &u }

func TestResolveSpanInvalidUnits(t *testing.T) {
	tests := []struct {
		name  string
		units []Unit
	}{
		{"nil", []Unit{Auto(), nil}},
		{"nil weight pointer", []Unit{(*Weight)(nil)}},
		{"nil length pointer", []Unit{Auto(), (*Length)(nil)}},
		{"zero weight", []Unit{Weight{}}},
		{"negative length", []Unit{EMU(-500), Auto()}},
		{"negative inches", []Unit{Inch(-1), EMU(100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSpan(tt.units, 1000)
			if !errors.Is(err, errors.ErrCodeInvalidUnit) {
				t.Errorf("ResolveSpan() error = %v, want %s", err, errors.ErrCodeInvalidUnit)
			}
			if got != nil {
				t.Errorf("ResolveSpan() = %v, want nil", got)
			}
		})
	}
}

func TestResolveSpanFixedSumOutOfRange(t *testing.T) {
	_, err := ResolveSpan([]Unit{EMU(math.MaxInt64), EMU(math.MaxInt64)}, math.MaxInt64)
	if !errors.Is(err, errors.ErrCodeOverflow) {
		t.Errorf("ResolveSpan() error = %v, want %s", err, errors.ErrCodeOverflow)
	}
}

func TestResolveSpanWeightsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(8)
		total := rng.Int63n(20_000_000)
		units := make([]Unit, n)
		weights := make([]float64, n)
		var sum float64
		for j := range units {
			weights[j] = 0.1 + rng.Float64()*10
			units[j] = MustWeight(weights[j])
			sum += weights[j]
		}

		got, err := ResolveSpan(units, total)
		if err != nil {
			t.Fatalf("ResolveSpan() error: %v", err)
		}
		var acc int64
		for j, l := range got {
			// l is floor(total*w/sum): l*sum <= total*w < (l+1)*sum
			share := float64(total) * weights[j] / sum
			if float64(l) > share+1e-6 || float64(l+1) < share-1e-6 {
				t.Errorf("case %d: length[%d] = %d, want floor(%v)", i, j, l, share)
			}
			acc += l
		}
		if acc > total {
			t.Errorf("case %d: sum %d exceeds total %d", i, acc, total)
		}
	}
}

func TestResolveSpanFixedProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(6)
		units := make([]Unit, n)
		var concrete int64
		for j := range units {
			l := rng.Int63n(1000)
			units[j] = EMU(l)
			concrete += l
		}
		total := concrete + rng.Int63n(1000)

		got, err := ResolveSpan(units, total)
		if err != nil {
			t.Fatalf("ResolveSpan() error: %v", err)
		}
		var acc int64
		for _, l := range got {
			acc += l
		}
		if acc != concrete {
			t.Errorf("case %d: sum = %d, want %d", i, acc, concrete)
		}
	}
}
