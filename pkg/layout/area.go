package layout

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// Kind selects how an [Area] places its children.
type Kind int

const (
	// KindBox forwards its whole rect to at most one child.
	KindBox Kind = iota
	// KindRow places its children side by side, dividing the width.
	KindRow
	// KindColumn stacks its children top to bottom, dividing the height.
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Area is a node in a layout tree.
//
// An area owns its children; each child keeps a back-pointer to its parent
// that is used only for addressing. The area's [Unit] is its size contract
// relative to its siblings and defaults to [Auto] when unset.
//
// Areas are built top-down with [Area.Add], [Area.AddBox],
// [Area.SplitVertical] and [Area.SplitHorizontal], then resolved exactly once
// through [Root.Resolve]. After resolution every builder call fails with
// LAYOUT_STATE. Areas are not safe for concurrent use.
type Area struct {
	kind     Kind
	children []*Area
	parent   *Area
	index    int // position in parent.children
	unit     Unit
	name     string

	rect     Rect
	resolved bool

	root *Root // set on a root's top area only
}

// NewBox returns an empty box sized by unit. A nil unit means [Auto].
func NewBox(unit Unit) *Area { return &Area{kind: KindBox, unit: unit} }

// NewRow returns an empty row sized by unit. Children added to it are placed
// side by side.
func NewRow(unit Unit) *Area { return &Area{kind: KindRow, unit: unit} }

// NewColumn returns an empty column sized by unit. Children added to it are
// stacked.
func NewColumn(unit Unit) *Area { return &Area{kind: KindColumn, unit: unit} }

// Kind returns how the area places its children.
func (a *Area) Kind() Kind { return a.kind }

// Unit returns the area's size contract, or [Auto] if none was set.
func (a *Area) Unit() Unit {
	if a.unit == nil {
		return Auto()
	}
	return a.unit
}

// HasUnit reports whether a unit was set explicitly.
func (a *Area) HasUnit() bool { return a.unit != nil }

// Name returns the diagnostic name, if any.
func (a *Area) Name() string { return a.name }

// Children returns a copy of the area's children in order.
func (a *Area) Children() []*Area { return slices.Clone(a.children) }

// Len returns the number of children.
func (a *Area) Len() int { return len(a.children) }

// Resolved reports whether the area has been laid out.
func (a *Area) Resolved() bool { return a.resolved }

// Rect returns the resolved rectangle. It fails with LAYOUT_STATE if the
// area has not been laid out yet.
func (a *Area) Rect() (Rect, error) {
	if !a.resolved {
		return Rect{}, errors.New(errors.ErrCodeState, "area %v is not resolved", a.Path())
	}
	return a.rect, nil
}

// SetUnit replaces the area's size contract. A nil unit means [Auto].
func (a *Area) SetUnit(u Unit) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	a.unit = u
	return nil
}

// SetName sets the diagnostic name.
func (a *Area) SetName(name string) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	a.name = name
	return nil
}

// Add appends child to the area and returns it.
//
// Add fails with STRUCTURAL_MISMATCH if child is nil, is the receiver, already
// has a parent, is an ancestor of the receiver or is the top area of a
// [Root], or if the receiver is a box that already holds a child.
func (a *Area) Add(child *Area) (*Area, error) {
	if err := a.checkMutable(); err != nil {
		return nil, err
	}
	switch {
	case child == nil:
		return nil, errors.New(errors.ErrCodeStructure, "cannot add nil area")
	case child == a:
		return nil, errors.New(errors.ErrCodeStructure, "area cannot contain itself")
	case child.parent != nil:
		return nil, errors.New(errors.ErrCodeStructure, "area already has a parent at %v", child.Path())
	case child.root != nil:
		return nil, errors.New(errors.ErrCodeStructure, "root area cannot be nested")
	case child.resolved:
		return nil, errors.New(errors.ErrCodeState, "cannot add a resolved area")
	case a.isDescendantOf(child):
		return nil, errors.New(errors.ErrCodeStructure, "adding area would create a cycle")
	case a.kind == KindBox && len(a.children) > 0:
		return nil, errors.New(errors.ErrCodeStructure, "box at %v already holds a child", a.Path())
	}
	a.attach(child)
	return child, nil
}

// AddBox appends a new empty box sized by unit and returns it.
func (a *Area) AddBox(unit Unit) (*Area, error) {
	return a.Add(NewBox(unit))
}

// SplitVertical turns the area into a row of len(units) fresh boxes, one per
// unit, placed side by side. Existing children are detached. It fails with
// STRUCTURAL_MISMATCH when units is empty.
func (a *Area) SplitVertical(units ...Unit) ([]*Area, error) {
	return a.split(KindRow, units)
}

// SplitHorizontal turns the area into a column of len(units) fresh boxes, one
// per unit, stacked top to bottom. Existing children are detached. It fails
// with STRUCTURAL_MISMATCH when units is empty.
func (a *Area) SplitHorizontal(units ...Unit) ([]*Area, error) {
	return a.split(KindColumn, units)
}

func (a *Area) split(kind Kind, units []Unit) ([]*Area, error) {
	if err := a.checkMutable(); err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errors.New(errors.ErrCodeStructure, "%s split needs at least one unit", kind)
	}
	for _, c := range a.children {
		c.parent, c.index = nil, 0
	}
	a.children = make([]*Area, 0, len(units))
	a.kind = kind
	for _, u := range units {
		a.attach(NewBox(u))
	}
	return slices.Clone(a.children), nil
}

func (a *Area) attach(child *Area) {
	child.parent = a
	child.index = len(a.children)
	a.children = append(a.children, child)
}

func (a *Area) checkMutable() error {
	if a.resolved {
		return errors.New(errors.ErrCodeState, "area %v is already resolved", a.Path())
	}
	return nil
}

func (a *Area) isDescendantOf(other *Area) bool {
	for p := a.parent; p != nil; p = p.parent {
		if p == other {
			return true
		}
	}
	return false
}

// layout assigns r to the area and lays out its children. The area's rect is
// set only once its own split succeeded; child errors are returned as is.
func (a *Area) layout(r Rect, logger *log.Logger) error {
	if a.resolved {
		return errors.New(errors.ErrCodeState, "area %v is already resolved", a.Path())
	}
	rects, err := a.place(r)
	if err != nil {
		return err
	}
	a.rect = r
	a.resolved = true
	if logger != nil {
		logger.Debug("layout", "path", a.Path(), "kind", a.kind, "rect", r)
	}
	for i, child := range a.children {
		if err := child.layout(rects[i], logger); err != nil {
			return err
		}
	}
	return nil
}

// place computes the children's rects for the area's kind.
func (a *Area) place(r Rect) ([]Rect, error) {
	switch a.kind {
	case KindBox:
		return a.placeBox(r)
	case KindRow:
		return r.SplitVertical(a.childUnits())
	case KindColumn:
		return r.SplitHorizontal(a.childUnits())
	default:
		return nil, errors.New(errors.ErrCodeStructure, "unknown area kind %d", int(a.kind))
	}
}

func (a *Area) placeBox(r Rect) ([]Rect, error) {
	switch len(a.children) {
	case 0:
		return nil, nil
	case 1:
		return []Rect{r}, nil
	default:
		return nil, errors.New(errors.ErrCodeStructure,
			"box at %v holds %d children, want at most 1", a.Path(), len(a.children))
	}
}

func (a *Area) childUnits() []Unit {
	units := make([]Unit, len(a.children))
	for i, c := range a.children {
		units[i] = c.Unit()
	}
	return units
}
