package turtls

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderBounds(t *testing.T) {
	rec := &Recorder{}
	_, _, ok := rec.Bounds()
	assert.False(t, ok)

	rec.Line(Point{0, 0}, Point{10, 0}, 2, RGB{})
	min, max, ok := rec.Bounds()
	require.True(t, ok)
	assert.InDelta(t, -1, min.X, 1e-9)
	assert.InDelta(t, -1, min.Y, 1e-9)
	assert.InDelta(t, 11, max.X, 1e-9)
	assert.InDelta(t, 1, max.Y, 1e-9)

	rec.Dot(Point{0, 20}, 5, RGB{})
	_, max, _ = rec.Bounds()
	assert.InDelta(t, 25, max.Y, 1e-9)
}

func TestRenderFixedCanvasSize(t *testing.T) {
	rec := &Recorder{}
	rec.Line(Point{0, 0}, Point{10, 0}, 1, RGB{255, 255, 255})
	img, err := Render(rec, RenderOptions{Width: 100, Height: 60, Antialias: 1})
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 100, b.Dx())
	assert.Equal(t, 60, b.Dy())
}

func TestRenderPaddedToContent(t *testing.T) {
	rec := &Recorder{}
	rec.Line(Point{0, 0}, Point{10, 0}, 2, RGB{255, 255, 255})
	img, err := Render(rec, RenderOptions{Padding: Pad(5), Antialias: 1})
	require.NoError(t, err)
	b := img.Bounds()
	// Content is 12x2 including thickness, plus 5 on each side.
	assert.Equal(t, 22, b.Dx())
	assert.Equal(t, 12, b.Dy())
}

func TestRenderEmptyWithPadding(t *testing.T) {
	rec := &Recorder{}
	img, err := Render(rec, RenderOptions{Padding: Pad(10), Antialias: 1})
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
}

func TestRenderOutputScale(t *testing.T) {
	rec := &Recorder{}
	rec.Line(Point{0, 0}, Point{10, 0}, 2, RGB{255, 255, 255})
	img, err := Render(rec, RenderOptions{Padding: Pad(4), Antialias: 1, OutputScale: 2})
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestRenderAntialiasKeepsOutputSize(t *testing.T) {
	rec := &Recorder{}
	rec.Line(Point{0, 0}, Point{10, 0}, 2, RGB{255, 255, 255})
	img, err := Render(rec, RenderOptions{Padding: Pad(5), Antialias: 4})
	require.NoError(t, err)
	assert.Equal(t, 22, img.Bounds().Dx())
}

func TestRenderBackground(t *testing.T) {
	rec := &Recorder{}
	img, err := Render(rec, RenderOptions{
		Width: 10, Height: 10, Antialias: 1,
		Background: RGB{255, 0, 0},
	})
	require.NoError(t, err)
	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestRenderTransparentBackground(t *testing.T) {
	rec := &Recorder{}
	img, err := Render(rec, RenderOptions{
		Width: 10, Height: 10, Antialias: 1,
		Transparent: true,
		Background:  RGB{255, 0, 0},
	})
	require.NoError(t, err)
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestRenderLineInk(t *testing.T) {
	rec := &Recorder{}
	rec.Line(Point{-5, 0}, Point{5, 0}, 4, RGB{0, 255, 0})
	img, err := Render(rec, RenderOptions{Width: 20, Height: 20, Antialias: 1})
	require.NoError(t, err)
	// The line crosses the canvas center.
	_, g, _, _ := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), g)
}

func TestRenderBadAntialias(t *testing.T) {
	_, err := Render(&Recorder{}, RenderOptions{Antialias: 3})
	assert.Error(t, err)
}

func TestTeeSurface(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	tee := Tee(a, b)
	tee.Line(Point{}, Point{1, 0}, 1, RGB{})
	tee.Dot(Point{}, 1, RGB{})
	tee.Polygon([]Point{{}, {1, 0}, {0, 1}}, RGB{})
	assert.Len(t, a.Primitives(), 3)
	assert.Len(t, b.Primitives(), 3)

	assert.Equal(t, Surface(a), Tee(a, nil))
	assert.Equal(t, Surface(b), Tee(nil, b))
}

func TestRenderTransparentCorner(t *testing.T) {
	rec := &Recorder{}
	rec.Dot(Point{0, 0}, 2, RGB{0, 0, 255})
	img, err := Render(rec, RenderOptions{Width: 40, Height: 40, Antialias: 2, Transparent: true})
	require.NoError(t, err)
	_, _, _, a := img.At(1, 1).RGBA()
	assert.Zero(t, a)
	c := color.NRGBAModel.Convert(img.At(20, 20)).(color.NRGBA)
	assert.NotZero(t, c.A)
}
