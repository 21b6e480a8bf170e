package turtls

// Surface is the drawing capability the execution engine emits to.
// Polygon receives a freshly allocated slice that the implementation
// may keep.
type Surface interface {
	Line(from, to Point, thickness float64, c RGB)
	Dot(center Point, radius float64, c RGB)
	Polygon(points []Point, c RGB)
}

// NopSurface discards all drawing.
type NopSurface struct{}

func (NopSurface) Line(from, to Point, thickness float64, c RGB) {}
func (NopSurface) Dot(center Point, radius float64, c RGB)       {}
func (NopSurface) Polygon(points []Point, c RGB)                 {}

// Tee fans drawing out to two surfaces.
func Tee(a, b Surface) Surface {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return teeSurface{a, b}
}

type teeSurface struct {
	a, b Surface
}

func (t teeSurface) Line(from, to Point, thickness float64, c RGB) {
	t.a.Line(from, to, thickness, c)
	t.b.Line(from, to, thickness, c)
}

func (t teeSurface) Dot(center Point, radius float64, c RGB) {
	t.a.Dot(center, radius, c)
	t.b.Dot(center, radius, c)
}

func (t teeSurface) Polygon(points []Point, c RGB) {
	t.a.Polygon(points, c)
	t.b.Polygon(points, c)
}
