// Command view replays an L-system drawing in a window, adding a few
// primitives per tick so the pattern grows in front of you. Press R to
// restart the replay and Escape to quit.
package main

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lindenmayer/turtls"
)

var (
	axiom  = flag.String("axiom", "F+G+G", "starting string of the L-system")
	rules  = flag.String("rules", "F F+G-F-G+F G GG", "whitespace-separated token/replacement pairs")
	level  = flag.Int("level", 5, "number of expansion steps")
	angle  = flag.Float64("angle", 120, "turn angle for + and -")
	length = flag.Float64("length", 5, "step length in pixels")
	speed  = flag.Int("speed", 20, "primitives revealed per tick")
)

const (
	windowW = 960
	windowH = 720
	margin  = 24
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type game struct {
	prims []turtls.Primitive
	shown int

	// World-to-screen transform fitted to the drawing's bounds.
	scale      float64
	offX, offY float64
}

func newGame(rec *turtls.Recorder) *game {
	g := &game{prims: rec.Primitives()}
	min, max, ok := rec.Bounds()
	if !ok {
		g.scale = 1
		g.offX, g.offY = windowW/2, windowH/2
		return g
	}
	w := max.X - min.X
	h := max.Y - min.Y
	g.scale = math.Min(float64(windowW-2*margin)/math.Max(w, 1), float64(windowH-2*margin)/math.Max(h, 1))
	g.offX = windowW/2 - g.scale*(min.X+max.X)/2
	g.offY = windowH/2 + g.scale*(min.Y+max.Y)/2
	return g
}

func (g *game) at(p turtls.Point) (float32, float32) {
	return float32(g.offX + g.scale*p.X), float32(g.offY - g.scale*p.Y)
}

var errQuit = errors.New("quit")

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.shown = 0
	}
	g.shown += *speed
	if g.shown > len(g.prims) {
		g.shown = len(g.prims)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for _, prim := range g.prims[:g.shown] {
		clr := prim.Color.NRGBA()
		switch prim.Kind {
		case turtls.LinePrimitive:
			x0, y0 := g.at(prim.From)
			x1, y1 := g.at(prim.To)
			width := float32(math.Max(prim.Thickness*g.scale, 1))
			vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
		case turtls.DotPrimitive:
			x, y := g.at(prim.Center)
			vector.DrawFilledCircle(screen, x, y, float32(prim.Radius*g.scale), clr, true)
		case turtls.PolygonPrimitive:
			g.fillPolygon(screen, prim.Points, clr)
		}
	}
}

func (g *game) fillPolygon(screen *ebiten.Image, points []turtls.Point, clr color.NRGBA) {
	var path vector.Path
	x, y := g.at(points[0])
	path.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = g.at(p)
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = 1
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.EvenOdd,
	}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowW, windowH
}

func main() {
	flag.Parse()

	opts := turtls.DefaultOptions()
	opts.Angle = *angle
	opts.Length = *length

	rec := &turtls.Recorder{}
	expanded := turtls.Expand(*axiom, turtls.ParseRules(*rules), *level)
	if _, err := turtls.Run(expanded, opts, rec); err != nil {
		log.Fatal(err)
	}
	log.Println("replaying", len(rec.Primitives()), "primitives")

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("turtls")
	if err := ebiten.RunGame(newGame(rec)); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
