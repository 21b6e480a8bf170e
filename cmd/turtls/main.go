package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/lindenmayer/turtls"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

	axiom  = flag.String("axiom", "F+G+G", "starting string of the L-system")
	rules  = flag.String("rules", "F F+G-F-G+F G GG", "whitespace-separated token/replacement pairs")
	level  = flag.Int("level", 4, "number of expansion steps")
	angle  = flag.Float64("angle", 120, "turn angle for + and -")
	length = flag.Float64("length", 20, "step length in pixels")

	pngOut   = flag.String("png", "", "write the drawing to this png file")
	gifOut   = flag.String("gif", "", "write an animated gif to this file")
	growth   = flag.Bool("growth", false, "gif shows one frame per expansion level")
	padding  = flag.Int("padding", 10, "pixels of padding around the drawing")
	maxChars = flag.Int("maxchars", 0, "stop after this many characters, 0 for no limit")

	serve = flag.String("serve", "", "serve a growth-analysis chart on this address, e.g. :8081")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	parsed := turtls.ParseRules(*rules)

	if *serve != "" {
		analysis := turtls.AnalyseGrowth(*axiom, parsed, *level)
		log.Fatal(analysis.Serve(*serve))
	}

	opts := turtls.DrawOptions{Options: turtls.DefaultOptions()}
	opts.Angle = *angle
	opts.Length = *length
	opts.MaxChars = *maxChars
	if *pngOut != "" {
		opts.PNG = &turtls.PNGOptions{
			Path:   *pngOut,
			Render: turtls.RenderOptions{Padding: turtls.Pad(*padding)},
		}
	}
	if *gifOut != "" {
		gif := turtls.NewGIFOptions(*gifOut)
		gif.Growth = *growth
		gif.Render.Padding = turtls.Pad(*padding)
		opts.GIF = gif
	}

	result, err := turtls.Draw(*axiom, parsed, *level, opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("expanded to", len(result.Expanded), "characters,", result.Draws, "draw operations")
	fmt.Printf("final position (%.2f, %.2f) heading %.2f\n",
		result.State.Position.X, result.State.Position.Y, result.State.Heading)
}
