package turtls

import "math"

type PrimitiveKind uint8

const (
	LinePrimitive PrimitiveKind = iota
	DotPrimitive
	PolygonPrimitive
)

// Primitive is one recorded drawing operation. Which fields are
// meaningful depends on Kind: From/To/Thickness for lines,
// Center/Radius for dots, Points for polygons.
type Primitive struct {
	Kind      PrimitiveKind
	From, To  Point
	Center    Point
	Radius    float64
	Points    []Point
	Thickness float64
	Color     RGB
}

// Recorder is a Surface that captures primitives into a display list
// so they can be replayed, measured and rasterized after the run.
type Recorder struct {
	prims []Primitive
}

func (r *Recorder) Line(from, to Point, thickness float64, c RGB) {
	r.prims = append(r.prims, Primitive{
		Kind:      LinePrimitive,
		From:      from,
		To:        to,
		Thickness: thickness,
		Color:     c,
	})
}

func (r *Recorder) Dot(center Point, radius float64, c RGB) {
	r.prims = append(r.prims, Primitive{
		Kind:   DotPrimitive,
		Center: center,
		Radius: radius,
		Color:  c,
	})
}

func (r *Recorder) Polygon(points []Point, c RGB) {
	r.prims = append(r.prims, Primitive{
		Kind:   PolygonPrimitive,
		Points: points,
		Color:  c,
	})
}

// Primitives returns the display list recorded so far.
func (r *Recorder) Primitives() []Primitive {
	return r.prims
}

// Mark returns the current display-list length. Frame capture stores
// marks and later renders each prefix of the display list as a frame.
func (r *Recorder) Mark() int {
	return len(r.prims)
}

// Bounds returns the rectangle enclosing all recorded ink, including
// line thickness and dot radius. ok is false when nothing was drawn.
func (r *Recorder) Bounds() (min, max Point, ok bool) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(p Point, pad float64) {
		min.X = math.Min(min.X, p.X-pad)
		min.Y = math.Min(min.Y, p.Y-pad)
		max.X = math.Max(max.X, p.X+pad)
		max.Y = math.Max(max.Y, p.Y+pad)
		ok = true
	}
	for _, prim := range r.prims {
		switch prim.Kind {
		case LinePrimitive:
			grow(prim.From, prim.Thickness/2)
			grow(prim.To, prim.Thickness/2)
		case DotPrimitive:
			grow(prim.Center, prim.Radius)
		case PolygonPrimitive:
			for _, p := range prim.Points {
				grow(p, 0)
			}
		}
	}
	return min, max, ok
}
