package turtls

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// RenderOptions controls rasterization of a display list.
type RenderOptions struct {
	// Width and Height give the canvas size, centered on the origin,
	// when Padding is nil. Defaults to 800x600.
	Width, Height int
	// Padding, when non-nil, crops the canvas to the drawn content
	// padded by this many pixels on all sides. May be negative.
	Padding *int
	// Transparent leaves the background at alpha zero instead of
	// filling it with Background.
	Transparent bool
	Background  RGB
	// Antialias is the supersampling factor: 1, 2 or 4 (0 means 4).
	// The image is rendered at this multiple of the output size and
	// downsampled.
	Antialias int
	// OutputScale scales the output dimensions. 0 means 1.
	OutputScale float64
}

// Pad is a convenience for filling RenderOptions.Padding.
func Pad(pixels int) *int {
	return &pixels
}

func (o *RenderOptions) normalize() error {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Antialias == 0 {
		o.Antialias = 4
	}
	if o.Antialias != 1 && o.Antialias != 2 && o.Antialias != 4 {
		return fmt.Errorf("turtls: Antialias must be 1, 2 or 4, got %d", o.Antialias)
	}
	if o.OutputScale == 0 {
		o.OutputScale = 1
	}
	return nil
}

// frameRect picks the world-space rectangle a rendering covers: the
// padded content bounds, or the fixed origin-centered canvas when no
// padding is requested. An empty drawing pads around the origin.
func frameRect(rec *Recorder, o *RenderOptions) (min, max Point) {
	if o.Padding == nil {
		w, h := float64(o.Width), float64(o.Height)
		return Point{X: -w / 2, Y: -h / 2}, Point{X: w / 2, Y: h / 2}
	}
	min, max, ok := rec.Bounds()
	if !ok {
		min, max = Point{}, Point{}
	}
	pad := float64(*o.Padding)
	min.X -= pad
	min.Y -= pad
	max.X += pad
	max.Y += pad
	if max.X <= min.X {
		max.X = min.X + 1
	}
	if max.Y <= min.Y {
		max.Y = min.Y + 1
	}
	return min, max
}

// renderPrims rasterizes a display list onto the world rectangle
// [min,max]. Turtle coordinates have y growing upward, so y flips here.
func renderPrims(prims []Primitive, min, max Point, o *RenderOptions) image.Image {
	scale := o.OutputScale * float64(o.Antialias)
	w := int(math.Ceil((max.X - min.X) * scale))
	h := int(math.Ceil((max.Y - min.Y) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	if !o.Transparent {
		dc.SetColor(o.Background.NRGBA())
		dc.Clear()
	}
	dc.SetLineCap(gg.LineCapRound)

	tx := func(p Point) (float64, float64) {
		return (p.X - min.X) * scale, (max.Y - p.Y) * scale
	}
	for _, prim := range prims {
		dc.SetColor(prim.Color.NRGBA())
		switch prim.Kind {
		case LinePrimitive:
			x0, y0 := tx(prim.From)
			x1, y1 := tx(prim.To)
			dc.SetLineWidth(prim.Thickness * scale)
			dc.DrawLine(x0, y0, x1, y1)
			dc.Stroke()
		case DotPrimitive:
			x, y := tx(prim.Center)
			dc.DrawCircle(x, y, prim.Radius*scale)
			dc.Fill()
		case PolygonPrimitive:
			if len(prim.Points) < 3 {
				continue
			}
			x, y := tx(prim.Points[0])
			dc.MoveTo(x, y)
			for _, p := range prim.Points[1:] {
				x, y = tx(p)
				dc.LineTo(x, y)
			}
			dc.ClosePath()
			dc.Fill()
		}
	}

	img := dc.Image()
	if o.Antialias > 1 {
		img = downsample(img, o.Antialias)
	}
	return img
}

func downsample(src image.Image, factor int) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Render rasterizes everything the recorder captured.
func Render(rec *Recorder, o RenderOptions) (image.Image, error) {
	if err := o.normalize(); err != nil {
		return nil, err
	}
	min, max := frameRect(rec, &o)
	return renderPrims(rec.Primitives(), min, max, &o), nil
}
