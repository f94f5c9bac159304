package layout

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

func mustRoot(t *testing.T, w, h int64) *Root {
	t.Helper()
	root, err := NewRoot(w, h, nil)
	if err != nil {
		t.Fatalf("NewRoot(%d, %d) error: %v", w, h, err)
	}
	return root
}

func mustRect(t *testing.T, a *Area) Rect {
	t.Helper()
	r, err := a.Rect()
	if err != nil {
		t.Fatalf("Rect() at %v error: %v", a.Path(), err)
	}
	return r
}

// buildSample returns a resolved tree:
//
//	root (row)
//	├── [0] left
//	└── [1] right (column)
//	    ├── [1 0] top
//	    ├── [1 1] middle (box)
//	    │   └── [1 1 0] inner
//	    └── [1 2] bottom
func buildSample(t *testing.T) *Root {
	t.Helper()
	root := mustRoot(t, 1200, 900)
	cols, err := root.SplitVertical(EMU(300), Auto())
	if err != nil {
		t.Fatal(err)
	}
	rows, err := cols[1].SplitHorizontal(MustRatio(0.2), Auto(), EMU(100))
	if err != nil {
		t.Fatal(err)
	}
	inner, err := rows[1].AddBox(nil)
	if err != nil {
		t.Fatal(err)
	}
	for a, name := range map[*Area]string{
		root.Area: "root", cols[0]: "left", cols[1]: "right",
		rows[0]: "top", rows[1]: "middle", rows[2]: "bottom", inner: "inner",
	} {
		if err := a.SetName(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := root.Resolve(); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	return root
}

func TestResolveColumnsFixedAndWeighted(t *testing.T) {
	root := mustRoot(t, 1000, 1000)
	cols, err := root.SplitVertical(EMU(200), Auto(), Auto())
	if err != nil {
		t.Fatalf("SplitVertical() error: %v", err)
	}
	if err := root.Resolve(); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	var got []Rect
	for _, c := range cols {
		got = append(got, mustRect(t, c))
	}
	want := []Rect{
		{X: 0, Y: 0, Width: 200, Height: 1000},
		{X: 200, Y: 0, Width: 400, Height: 1000},
		{X: 600, Y: 0, Width: 400, Height: 1000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("column rects mismatch (-want +got):\n%s", diff)
	}
	if r := mustRect(t, root.Area); r != root.Bounds() {
		t.Errorf("root Rect() = %v, want %v", r, root.Bounds())
	}
}

func TestResolveOverflowingRows(t *testing.T) {
	root := mustRoot(t, 900, 900)
	rows, err := root.SplitHorizontal(MustRatio(0.5), MustRatio(0.6))
	if err != nil {
		t.Fatalf("SplitHorizontal() error: %v", err)
	}

	err = root.Resolve()
	if !errors.Is(err, errors.ErrCodeOverflow) {
		t.Fatalf("Resolve() error = %v, want %s", err, errors.ErrCodeOverflow)
	}
	if root.Resolved() {
		t.Error("root resolved despite overflowing split")
	}
	for _, r := range rows {
		if r.Resolved() {
			t.Errorf("row %v resolved despite overflowing parent", r.Path())
		}
	}
}

func TestResolveBoxForwardsToSplitChild(t *testing.T) {
	root := mustRoot(t, 300, 50)
	child, err := root.AddBox(nil)
	if err != nil {
		t.Fatalf("AddBox() error: %v", err)
	}
	cols, err := child.SplitVertical(MustWeight(2), MustWeight(1))
	if err != nil {
		t.Fatalf("SplitVertical() error: %v", err)
	}
	if err := root.Resolve(); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if r := mustRect(t, child); r != root.Bounds() {
		t.Errorf("box child Rect() = %v, want %v", r, root.Bounds())
	}
	var widths []int64
	for _, c := range cols {
		widths = append(widths, mustRect(t, c).Width)
	}
	if diff := cmp.Diff([]int64{200, 100}, widths); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveDefaultsMissingUnitToWeight(t *testing.T) {
	root := mustRoot(t, 400, 100)
	row := NewRow(nil)
	if _, err := root.Add(row); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	a, _ := row.Add(NewBox(nil))
	b, _ := row.Add(NewBox(MustWeight(3)))
	if err := root.Resolve(); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got := mustRect(t, a).Width; got != 100 {
		t.Errorf("unitless child width = %d, want 100", got)
	}
	if got := mustRect(t, b).Width; got != 300 {
		t.Errorf("weighted child width = %d, want 300", got)
	}
	if a.HasUnit() || !b.HasUnit() {
		t.Errorf("HasUnit() = %v, %v, want false, true", a.HasUnit(), b.HasUnit())
	}
}

func TestResolveKeepsEarlierSiblings(t *testing.T) {
	root := mustRoot(t, 1000, 1000)
	cols, _ := root.SplitVertical(Auto(), Auto())
	if _, err := cols[1].SplitHorizontal(EMU(2000)); err != nil {
		t.Fatal(err)
	}

	err := root.Resolve()
	if !errors.Is(err, errors.ErrCodeOverflow) {
		t.Fatalf("Resolve() error = %v, want %s", err, errors.ErrCodeOverflow)
	}
	if !root.Resolved() || !cols[0].Resolved() {
		t.Error("areas laid out before the failure lost their rects")
	}
	if cols[1].Resolved() {
		t.Error("failing area was resolved")
	}
}

func TestBoxRejectsSecondChild(t *testing.T) {
	root := mustRoot(t, 100, 100)
	if _, err := root.AddBox(nil); err != nil {
		t.Fatalf("first AddBox() error: %v", err)
	}
	_, err := root.AddBox(nil)
	if !errors.Is(err, errors.ErrCodeStructure) {
		t.Errorf("second AddBox() error = %v, want %s", err, errors.ErrCodeStructure)
	}
	if root.Len() != 1 {
		t.Errorf("Len() = %d, want 1", root.Len())
	}
}

func TestBoxWithManyChildrenFailsLayout(t *testing.T) {
	root := mustRoot(t, 100, 100)
	root.attach(NewBox(nil))
	root.attach(NewBox(nil))

	err := root.Resolve()
	if !errors.Is(err, errors.ErrCodeStructure) {
		t.Errorf("Resolve() error = %v, want %s", err, errors.ErrCodeStructure)
	}
}

func TestAddRejections(t *testing.T) {
	root := mustRoot(t, 100, 100)
	row, _ := root.Add(NewRow(nil))
	leaf, _ := row.Add(NewBox(nil))
	other := mustRoot(t, 100, 100)

	detached := NewColumn(nil)
	child, _ := detached.Add(NewBox(nil))

	tests := []struct {
		name   string
		target *Area
		child  *Area
		code   errors.Code
	}{
		{"nil", row, nil, errors.ErrCodeStructure},
		{"self", row, row, errors.ErrCodeStructure},
		{"already parented", row, leaf, errors.ErrCodeStructure},
		{"ancestor", child, detached, errors.ErrCodeStructure},
		{"root area", row, other.Area, errors.ErrCodeStructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.target.Len()
			_, err := tt.target.Add(tt.child)
			if !errors.Is(err, tt.code) {
				t.Errorf("Add() error = %v, want %s", err, tt.code)
			}
			if tt.target.Len() != before {
				t.Errorf("Len() = %d after rejected Add, want %d", tt.target.Len(), before)
			}
		})
	}
}

func TestSplitReplacesChildren(t *testing.T) {
	root := mustRoot(t, 100, 100)
	old, _ := root.SplitVertical(Auto(), Auto())

	rows, err := root.SplitHorizontal(EMU(10), Auto(), Auto())
	if err != nil {
		t.Fatalf("SplitHorizontal() error: %v", err)
	}
	if root.Kind() != KindColumn {
		t.Errorf("Kind() = %v, want %v", root.Kind(), KindColumn)
	}
	if root.Len() != 3 {
		t.Errorf("Len() = %d, want 3", root.Len())
	}
	for i, r := range rows {
		if r.Kind() != KindBox {
			t.Errorf("child %d Kind() = %v, want %v", i, r.Kind(), KindBox)
		}
		if p, _ := r.Parent(); p != root.Area {
			t.Errorf("child %d has wrong parent", i)
		}
	}
	for _, o := range old {
		if _, err := o.Parent(); err == nil {
			t.Error("replaced child still has a parent")
		}
	}
	if got := rows[0].Unit(); got != EMU(10) {
		t.Errorf("Unit() = %v, want %v", got, EMU(10))
	}
}

func TestSplitEmptyUnits(t *testing.T) {
	root := mustRoot(t, 100, 100)
	if _, err := root.SplitVertical(); !errors.Is(err, errors.ErrCodeStructure) {
		t.Errorf("SplitVertical() error = %v, want %s", err, errors.ErrCodeStructure)
	}
	if _, err := root.SplitHorizontal(); !errors.Is(err, errors.ErrCodeStructure) {
		t.Errorf("SplitHorizontal() error = %v, want %s", err, errors.ErrCodeStructure)
	}
}

func TestRectBeforeResolve(t *testing.T) {
	root := mustRoot(t, 100, 100)
	if _, err := root.Rect(); !errors.Is(err, errors.ErrCodeState) {
		t.Errorf("Rect() error = %v, want %s", err, errors.ErrCodeState)
	}
}

func TestResolveTwice(t *testing.T) {
	root := mustRoot(t, 100, 100)
	if err := root.Resolve(); err != nil {
		t.Fatalf("first Resolve() error: %v", err)
	}
	if err := root.Resolve(); !errors.Is(err, errors.ErrCodeState) {
		t.Errorf("second Resolve() error = %v, want %s", err, errors.ErrCodeState)
	}
}

func TestBuildersAfterResolve(t *testing.T) {
	root := buildSample(t)
	leaf, _ := root.At(0)

	tests := []struct {
		name string
		call func() error
	}{
		{"Add", func() error { _, err := leaf.Add(NewBox(nil)); return err }},
		{"AddBox", func() error { _, err := leaf.AddBox(nil); return err }},
		{"SplitVertical", func() error { _, err := leaf.SplitVertical(Auto()); return err }},
		{"SplitHorizontal", func() error { _, err := leaf.SplitHorizontal(Auto()); return err }},
		{"SetUnit", func() error { return leaf.SetUnit(Auto()) }},
		{"SetName", func() error { return leaf.SetName("x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, errors.ErrCodeState) {
				t.Errorf("%s() error = %v, want %s", tt.name, err, errors.ErrCodeState)
			}
		})
	}
}

func TestAddResolvedArea(t *testing.T) {
	resolved := buildSample(t)
	sub, _ := resolved.At(0)
	sub.parent = nil

	target := NewRow(nil)
	if _, err := target.Add(sub); !errors.Is(err, errors.ErrCodeState) {
		t.Errorf("Add(resolved) error = %v, want %s", err, errors.ErrCodeState)
	}
}

func TestWalkOrder(t *testing.T) {
	root := buildSample(t)
	var got []string
	for a := range root.Walk() {
		got = append(got, a.Name())
	}
	want := []string{"root", "left", "right", "top", "middle", "inner", "bottom"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk() order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkIdempotent(t *testing.T) {
	root := buildSample(t)
	first := slices.Collect(root.Walk())
	second := slices.Collect(root.Walk())
	if !slices.Equal(first, second) {
		t.Error("Walk() yielded different sequences on repeated calls")
	}
}

func TestWalkStopsEarly(t *testing.T) {
	root := buildSample(t)
	n := 0
	for range root.Walk() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d areas, want 3", n)
	}
}

func TestWalkSubtree(t *testing.T) {
	root := buildSample(t)
	right, _ := root.At(1)
	if got := len(slices.Collect(right.Walk())); got != 5 {
		t.Errorf("len(Walk()) = %d, want 5", got)
	}
}

func TestPathRoundTrip(t *testing.T) {
	root := buildSample(t)
	for a := range root.Walk() {
		got, err := root.At(a.Path()...)
		if err != nil {
			t.Fatalf("At(%v) error: %v", a.Path(), err)
		}
		if got != a {
			t.Errorf("At(%v) returned %q, want %q", a.Path(), got.Name(), a.Name())
		}
		if got.Depth() != len(a.Path()) {
			t.Errorf("Depth() = %d, want %d", got.Depth(), len(a.Path()))
		}
	}
}

func TestPath(t *testing.T) {
	root := buildSample(t)
	inner, err := root.At(1, 1, 0)
	if err != nil {
		t.Fatalf("At() error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 1, 0}, inner.Path()); diff != "" {
		t.Errorf("Path() mismatch (-want +got):\n%s", diff)
	}
	if p := root.Path(); p == nil || len(p) != 0 {
		t.Errorf("root Path() = %#v, want empty", p)
	}
}

func TestAtOutOfRange(t *testing.T) {
	root := buildSample(t)
	for _, path := range [][]int{{2}, {-1}, {1, 3}, {0, 0}, {1, 1, 0, 0}} {
		if _, err := root.At(path...); !errors.Is(err, errors.ErrCodeIndex) {
			t.Errorf("At(%v) error = %v, want %s", path, err, errors.ErrCodeIndex)
		}
	}
	if _, err := root.Child(5); !errors.Is(err, errors.ErrCodeIndex) {
		t.Errorf("Child(5) error = %v, want %s", err, errors.ErrCodeIndex)
	}
}

func TestParentAndRoot(t *testing.T) {
	root := buildSample(t)
	inner, _ := root.At(1, 1, 0)

	p, err := inner.Parent()
	if err != nil || p.Name() != "middle" {
		t.Errorf("Parent() = %v, %v, want middle", p, err)
	}
	if _, err := root.Parent(); !errors.Is(err, errors.ErrCodeState) {
		t.Errorf("root Parent() error = %v, want %s", err, errors.ErrCodeState)
	}
	got, err := inner.Root()
	if err != nil || got != root {
		t.Errorf("Root() = %p, %v, want %p", got, err, root)
	}

	detached := NewRow(nil)
	leaf, _ := detached.AddBox(nil)
	if _, err := leaf.Root(); !errors.Is(err, errors.ErrCodeState) {
		t.Errorf("detached Root() error = %v, want %s", err, errors.ErrCodeState)
	}
}

func TestSampleGeometry(t *testing.T) {
	root := buildSample(t)
	tests := []struct {
		path []int
		want Rect
	}{
		{[]int{0}, Rect{X: 0, Y: 0, Width: 300, Height: 900}},
		{[]int{1}, Rect{X: 300, Y: 0, Width: 900, Height: 900}},
		{[]int{1, 0}, Rect{X: 300, Y: 0, Width: 900, Height: 180}},
		{[]int{1, 1}, Rect{X: 300, Y: 180, Width: 900, Height: 620}},
		{[]int{1, 1, 0}, Rect{X: 300, Y: 180, Width: 900, Height: 620}},
		{[]int{1, 2}, Rect{X: 300, Y: 800, Width: 900, Height: 100}},
	}

	for _, tt := range tests {
		a, err := root.At(tt.path...)
		if err != nil {
			t.Fatalf("At(%v) error: %v", tt.path, err)
		}
		if got := mustRect(t, a); got != tt.want {
			t.Errorf("At(%v).Rect() = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBox, "box"},
		{KindRow, "row"},
		{KindColumn, "column"},
		{Kind(9), "kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
