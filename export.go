package turtls

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"strings"
)

// PNGOptions requests a still image of the finished drawing.
type PNGOptions struct {
	Path   string
	Render RenderOptions
}

// GIFOptions requests an animated replay of the drawing. Frames are
// keyed to draw operations, not raw characters: by default one frame
// per FrameEvery draw operations, or on specific trigger characters
// when FrameChars is non-nil. Growth mode instead renders one frame
// per expansion level, from 0 to level inclusive, ignoring the frame
// policy and MaxFrames.
type GIFOptions struct {
	Path       string
	FrameEvery int
	FrameChars CharSet
	// MaxFrames caps the number of captured frames, 0 for no cap.
	MaxFrames int
	// Duration is the time per frame in milliseconds. Pause is added
	// to the last frame and Defer to the first.
	Duration int
	Pause    int
	Defer    int
	// Loops is the animation loop count, 0 to loop forever.
	Loops     int
	Reverse   bool
	Alternate bool
	Growth    bool
	Render    RenderOptions
}

// NewGIFOptions returns GIF options with the usual timing defaults.
func NewGIFOptions(path string) *GIFOptions {
	return &GIFOptions{
		Path:       path,
		FrameEvery: 1,
		MaxFrames:  100,
		Duration:   20,
		Pause:      500,
	}
}

func (g *GIFOptions) normalize() error {
	if g.FrameEvery <= 0 {
		g.FrameEvery = 1
	}
	if g.Duration <= 0 {
		g.Duration = 20
	}
	if g.MaxFrames < 0 {
		return fmt.Errorf("turtls: MaxFrames must be non-negative, got %d", g.MaxFrames)
	}
	if g.Pause < 0 || g.Defer < 0 {
		return fmt.Errorf("turtls: Pause and Defer must be non-negative")
	}
	if g.Loops < 0 {
		return fmt.Errorf("turtls: Loops must be non-negative, got %d", g.Loops)
	}
	return g.Render.normalize()
}

// DrawOptions bundles the interpreter options with the optional export
// requests and an optional extra surface to draw onto.
type DrawOptions struct {
	Options
	PNG     *PNGOptions
	GIF     *GIFOptions
	Surface Surface
}

// DrawResult reports what a Draw call produced. PNGPath and GIFPath
// are empty when the corresponding output was not requested or failed;
// export failures are logged, not returned as errors.
type DrawResult struct {
	Expanded string
	State    State
	Draws    int
	Recorder *Recorder
	PNGPath  string
	GIFPath  string
}

// Draw expands the axiom, runs the interpreter and writes any
// requested image outputs. Configuration errors are returned before
// any drawing happens; collaborator failures such as an unwritable
// output file only log a warning and leave the matching path empty.
func Draw(axiom string, rules Rules, level int, o DrawOptions) (DrawResult, error) {
	if err := o.Options.validate(); err != nil {
		return DrawResult{}, err
	}
	if o.PNG != nil {
		if err := o.PNG.Render.normalize(); err != nil {
			return DrawResult{}, err
		}
	}
	if o.GIF != nil {
		if err := o.GIF.normalize(); err != nil {
			return DrawResult{}, err
		}
		if o.GIF.Growth {
			return drawGrowth(axiom, rules, level, o)
		}
	}

	full := o.Prefix + Expand(axiom, rules, level) + o.Suffix
	rec := &Recorder{}

	runOpts := o.Options
	var marks []int
	if o.GIF != nil {
		marks = append(marks, 0)
		runOpts.Callback = frameCallback(o.GIF, &o.Options, rec, &marks)
	}

	res, err := Run(full, runOpts, Tee(rec, o.Surface))
	if err != nil {
		return DrawResult{}, err
	}
	if o.GIF != nil && (len(marks) == 0 || marks[len(marks)-1] != rec.Mark()) {
		// Frame of the final changes.
		marks = appendMark(marks, rec.Mark(), o.GIF.MaxFrames)
	}

	result := DrawResult{
		Expanded: full,
		State:    res.State,
		Draws:    res.Draws,
		Recorder: rec,
	}
	if o.PNG != nil {
		img := renderWhole(rec, &o.PNG.Render)
		result.PNGPath = writeImage(&o.Options, o.PNG.Path, pngExt, func(f *os.File) error {
			return png.Encode(f, img)
		})
	}
	if o.GIF != nil {
		min, max := frameRect(rec, &o.GIF.Render)
		frames := make([]image.Image, len(marks))
		for i, m := range marks {
			frames[i] = renderPrims(rec.Primitives()[:m], min, max, &o.GIF.Render)
		}
		result.GIFPath = saveGIF(&o.Options, o.GIF, frames)
	}
	return result, nil
}

// frameCallback counts draw operations the same way the engine does
// and records a display-list mark whenever the frame policy fires. The
// caller's own callback still runs afterwards.
func frameCallback(g *GIFOptions, opts *Options, rec *Recorder, marks *[]int) Callback {
	user := opts.Callback
	draws := 0
	return func(c byte, s *State) bool {
		isDraw := c >= 'A' && c <= 'Z' || c == '}' || c == '@' ||
			c == '{' && opts.PolygonStartDraws
		if isDraw {
			draws++
		}
		if g.FrameChars != nil {
			if g.FrameChars.Contains(c) {
				*marks = appendMark(*marks, rec.Mark(), g.MaxFrames)
			}
		} else if isDraw && draws%g.FrameEvery == 0 {
			*marks = appendMark(*marks, rec.Mark(), g.MaxFrames)
		}
		if user != nil {
			return user(c, s)
		}
		return false
	}
}

func appendMark(marks []int, mark, maxFrames int) []int {
	if maxFrames > 0 && len(marks) >= maxFrames {
		return marks
	}
	return append(marks, mark)
}

// drawGrowth runs every expansion level from 0 up and makes one frame
// per level, all cropped to the final level's rectangle so the
// animation does not shift between frames.
func drawGrowth(axiom string, rules Rules, level int, o DrawOptions) (DrawResult, error) {
	levels := ExpandLevels(axiom, rules, level)
	recorders := make([]*Recorder, len(levels))
	var result DrawResult
	for i, expanded := range levels {
		full := o.Prefix + expanded + o.Suffix
		rec := &Recorder{}
		surf := Surface(rec)
		if i == len(levels)-1 {
			surf = Tee(rec, o.Surface)
		}
		res, err := Run(full, o.Options, surf)
		if err != nil {
			return DrawResult{}, err
		}
		recorders[i] = rec
		result = DrawResult{
			Expanded: full,
			State:    res.State,
			Draws:    res.Draws,
			Recorder: rec,
		}
	}

	last := recorders[len(recorders)-1]
	min, max := frameRect(last, &o.GIF.Render)
	frames := make([]image.Image, len(recorders))
	for i, rec := range recorders {
		frames[i] = renderPrims(rec.Primitives(), min, max, &o.GIF.Render)
	}
	if o.PNG != nil {
		img := renderWhole(last, &o.PNG.Render)
		result.PNGPath = writeImage(&o.Options, o.PNG.Path, pngExt, func(f *os.File) error {
			return png.Encode(f, img)
		})
	}
	result.GIFPath = saveGIF(&o.Options, o.GIF, frames)
	return result, nil
}

func renderWhole(rec *Recorder, o *RenderOptions) image.Image {
	min, max := frameRect(rec, o)
	return renderPrims(rec.Primitives(), min, max, o)
}

const (
	pngExt = ".png"
	gifExt = ".gif"
)

func withExt(path, ext string) string {
	if strings.HasSuffix(strings.ToLower(path), ext) {
		return path
	}
	return path + ext
}

func writeImage(opts *Options, path, ext string, encode func(*os.File) error) string {
	path = withExt(path, ext)
	f, err := os.Create(path)
	if err != nil {
		opts.message("Unable to save "+ext[1:]+":", err)
		return ""
	}
	defer f.Close()
	if err := encode(f); err != nil {
		opts.message("Unable to save "+ext[1:]+":", err)
		return ""
	}
	opts.message("Saved " + ext[1:] + " \"" + path + "\".")
	return path
}

// saveGIF assembles frames into an animated GIF. Defer and Pause are
// folded into the first and last frame delays rather than duplicating
// frames. GIF delays tick in centiseconds, so all timings round down
// to a multiple of 10ms.
func saveGIF(opts *Options, g *GIFOptions, frames []image.Image) string {
	if len(frames) == 0 {
		return ""
	}
	if g.Reverse {
		for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
			frames[i], frames[j] = frames[j], frames[i]
		}
	}
	if g.Alternate {
		for i := len(frames) - 2; i > 0; i-- {
			frames = append(frames, frames[i])
		}
	}

	pal := palette.Plan9
	if g.Render.Transparent {
		pal = append([]color.Color{color.RGBA{}}, palette.WebSafe...)
	}
	anim := &gif.GIF{LoopCount: g.Loops}
	for i, frame := range frames {
		b := frame.Bounds()
		paletted := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), frame, b.Min)
		delay := g.Duration / 10
		if i == 0 {
			delay += g.Defer / 10
		}
		if i == len(frames)-1 {
			delay += g.Pause / 10
		}
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	return writeImage(opts, g.Path, gifExt, func(f *os.File) error {
		return gif.EncodeAll(f, anim)
	})
}
