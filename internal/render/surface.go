package render

import (
	"image/color"
	"sort"
)

// Surface is the drawing capability the host provides for one persistent
// layer. Higher depths are presented on top.
type Surface interface {
	Fill(r Rect, c color.NRGBA, alpha float64)
	DrawRect(r Rect, c color.NRGBA)
	Clear()
	SetDepth(depth int)
	Depth() int
}

// OpKind distinguishes recorded drawing requests.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpRect
)

// Op is one recorded filled rectangle.
type Op struct {
	Kind  OpKind
	Rect  Rect
	Color color.NRGBA
	Alpha float64
}

// Recorder is a Surface that keeps the filled rectangles painted since its
// last Clear. It is the headless draw list used by tests and offline tools.
type Recorder struct {
	Name   string
	Bounds Rect

	ops    []Op
	depth  int
	clears int
}

// NewRecorder creates an empty recorder covering bounds.
func NewRecorder(name string, bounds Rect) *Recorder {
	return &Recorder{Name: name, Bounds: bounds}
}

// Fill records a rectangle painted at the given opacity. An opaque fill that
// covers the whole surface hides everything below it, so earlier ops are
// dropped.
func (r *Recorder) Fill(rect Rect, c color.NRGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		alpha = 1
		if c.A == 0xff && rect.Contains(r.Bounds) {
			r.ops = r.ops[:0]
		}
	}
	r.ops = append(r.ops, Op{Kind: OpFill, Rect: rect, Color: c, Alpha: alpha})
}

// DrawRect records an opaque rectangle.
func (r *Recorder) DrawRect(rect Rect, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpRect, Rect: rect, Color: c, Alpha: 1})
}

// Clear drops every recorded op.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.clears++
}

// SetDepth sets the presentation order.
func (r *Recorder) SetDepth(depth int) { r.depth = depth }

// Depth reports the presentation order.
func (r *Recorder) Depth() int { return r.depth }

// Ops returns the draw list accumulated since the last Clear.
func (r *Recorder) Ops() []Op { return r.ops }

// Clears reports how many times the surface has been cleared.
func (r *Recorder) Clears() int { return r.clears }

// SortByDepth orders surfaces back to front.
func SortByDepth[S Surface](surfaces []S) {
	sort.SliceStable(surfaces, func(i, j int) bool {
		return surfaces[i].Depth() < surfaces[j].Depth()
	})
}
