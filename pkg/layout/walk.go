package layout

import (
	"iter"
	"slices"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// Walk returns a depth-first, pre-order sequence over the subtree rooted at
// a: the area itself, then the walk of each child in order. Each call starts
// a fresh traversal.
func (a *Area) Walk() iter.Seq[*Area] {
	return func(yield func(*Area) bool) {
		a.walk(yield)
	}
}

func (a *Area) walk(yield func(*Area) bool) bool {
	if !yield(a) {
		return false
	}
	for _, c := range a.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Path returns the child indices leading from the topmost ancestor down to a.
// The topmost ancestor has an empty, non-nil path.
func (a *Area) Path() []int {
	path := []int{}
	for n := a; n.parent != nil; n = n.parent {
		path = append(path, n.index)
	}
	slices.Reverse(path)
	return path
}

// Depth returns the number of ancestors of a.
func (a *Area) Depth() int {
	d := 0
	for p := a.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Child returns the i-th child, failing with INDEX_OUT_OF_RANGE if there is
// none.
func (a *Area) Child(i int) (*Area, error) {
	if i < 0 || i >= len(a.children) {
		return nil, errors.New(errors.ErrCodeIndex,
			"child index %d out of range at %v (%d children)", i, a.Path(), len(a.children))
	}
	return a.children[i], nil
}

// At descends from a along path, one child index per level. An empty path
// returns a itself. An invalid index fails with INDEX_OUT_OF_RANGE naming the
// level at which the lookup missed.
func (a *Area) At(path ...int) (*Area, error) {
	n := a
	for level, i := range path {
		if i < 0 || i >= len(n.children) {
			return nil, errors.New(errors.ErrCodeIndex,
				"index %d out of range at level %d of path %v (%d children)", i, level, path, len(n.children))
		}
		n = n.children[i]
	}
	return n, nil
}

// Parent returns the parent area. It fails with LAYOUT_STATE for a top area.
func (a *Area) Parent() (*Area, error) {
	if a.parent == nil {
		return nil, errors.New(errors.ErrCodeState, "area has no parent")
	}
	return a.parent, nil
}

// Root returns the [Root] that owns the tree containing a. It fails with
// LAYOUT_STATE if the tree is not attached to a root.
func (a *Area) Root() (*Root, error) {
	top := a
	for top.parent != nil {
		top = top.parent
	}
	if top.root == nil {
		return nil, errors.New(errors.ErrCodeState, "area %v is not part of a rooted tree", a.Path())
	}
	return top.root, nil
}
