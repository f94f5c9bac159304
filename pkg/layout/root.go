package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// Size is a canvas extent in EMU.
type Size struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Canvas presets.
var (
	Widescreen = Size{Width: 12192000, Height: 6858000} // 13.333in x 7.5in, 16:9
	Standard   = Size{Width: 9144000, Height: 6858000}  // 10in x 7.5in, 4:3
)

// Preset returns the canvas preset with the given name ("widescreen" or
// "standard", case-insensitive).
func Preset(name string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "widescreen", "16:9":
		return Widescreen, true
	case "standard", "4:3":
		return Standard, true
	}
	return Size{}, false
}

// Root is the top of a layout tree. It binds the tree to a fixed canvas
// extent and to the [Surface] that receives annotations.
//
// Root embeds its top [Area], which starts as an empty box and may be split
// or given a child directly:
//
//	root, _ := layout.NewRoot(w, h, surface)
//	cols, _ := root.SplitVertical(layout.Inch(2), layout.Auto())
//	_ = root.Resolve()
//	r, _ := cols[1].Rect()
type Root struct {
	*Area

	size    Size
	surface Surface
	logger  *log.Logger
}

// RootOption configures a [Root].
type RootOption func(*Root)

// WithLogger makes [Root.Resolve] log one debug line per laid-out area.
func WithLogger(l *log.Logger) RootOption {
	return func(r *Root) { r.logger = l }
}

// NewRoot returns a root for a canvas of width x height EMU. Both sides must
// be positive. surface may be nil when only geometry is needed; annotation
// calls then fail with LAYOUT_STATE.
func NewRoot(width, height int64, surface Surface, opts ...RootOption) (*Root, error) {
	if err := errors.ValidateExtent(width, height); err != nil {
		return nil, err
	}
	r := &Root{
		Area:    NewBox(nil),
		size:    Size{Width: width, Height: height},
		surface: surface,
	}
	r.Area.root = r
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Size returns the canvas extent.
func (r *Root) Size() Size { return r.size }

// Bounds returns the rectangle covering the whole canvas.
func (r *Root) Bounds() Rect {
	return Rect{Width: r.size.Width, Height: r.size.Height}
}

// Surface returns the surface bound to the root, which may be nil.
func (r *Root) Surface() Surface { return r.surface }

// Resolve lays out the whole tree within [Root.Bounds].
//
// A tree is resolved exactly once; a second call fails with LAYOUT_STATE.
// On failure the tree is left partially resolved and must be discarded.
func (r *Root) Resolve() error {
	return r.Area.layout(r.Bounds(), r.logger)
}

// DrawRect outlines rect on the surface. Without options the outline is a
// 1pt red line with no fill.
func (r *Root) DrawRect(rect Rect, opts ...RectOption) error {
	if r.surface == nil {
		return errors.New(errors.ErrCodeState, "root has no surface")
	}
	style, err := NewRectStyle(opts...)
	if err != nil {
		return err
	}
	r.surface.DrawRect(rect, style)
	return nil
}

// Label places text at rect on the surface.
func (r *Root) Label(rect Rect, text string) error {
	if r.surface == nil {
		return errors.New(errors.ErrCodeState, "root has no surface")
	}
	r.surface.DrawLabel(rect, text)
	return nil
}

// Table places tabular content at rect on the surface. The first row is the
// header. rows must be non-empty and rectangular.
func (r *Root) Table(rect Rect, rows [][]string) error {
	if r.surface == nil {
		return errors.New(errors.ErrCodeState, "root has no surface")
	}
	if err := errors.ValidateTable(rows); err != nil {
		return err
	}
	r.surface.DrawTable(rect, rows)
	return nil
}

// DrawLayout outlines every resolved area of the tree.
func (r *Root) DrawLayout(opts ...RectOption) error {
	for a := range r.Walk() {
		if !a.resolved {
			continue
		}
		if err := r.DrawRect(a.rect, opts...); err != nil {
			return err
		}
	}
	return nil
}

// Outline draws the area's rect on the owning root's surface.
func (a *Area) Outline(opts ...RectOption) error {
	rect, root, err := a.annotationTarget()
	if err != nil {
		return err
	}
	return root.DrawRect(rect, opts...)
}

// Debug outlines the area and labels it with its path, followed by
// " - text" when text is non-empty.
func (a *Area) Debug(text string) error {
	rect, root, err := a.annotationTarget()
	if err != nil {
		return err
	}
	if err := root.DrawRect(rect); err != nil {
		return err
	}
	label := fmt.Sprint(a.Path())
	if text != "" {
		label += " - " + text
	}
	return root.Label(rect, label)
}

// AddTable places tabular content at the area's rect. The first row is the
// header.
func (a *Area) AddTable(rows [][]string) error {
	rect, root, err := a.annotationTarget()
	if err != nil {
		return err
	}
	return root.Table(rect, rows)
}

func (a *Area) annotationTarget() (Rect, *Root, error) {
	rect, err := a.Rect()
	if err != nil {
		return Rect{}, nil, err
	}
	root, err := a.Root()
	if err != nil {
		return Rect{}, nil, err
	}
	return rect, root, nil
}
