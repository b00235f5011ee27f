// ringsketch - compile radial ring patterns to plotter-ready SVG
//
// Usage:
//
//	ringsketch [flags]
//
// With -pattern or -pattern-file, the given ring grammar is compiled.
// Otherwise random patterns are generated on a grid of cells, using the
// symbol weights given by -weights, e.g.
//
//	ringsketch -nx 3 -ny 2 -layers 2 -weights "dot=0.3,ringsep=0.05" -o out.svg
//
// Output goes to stdout unless -o is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/rings/finish"
	"github.com/npillmayer/rings/generator"
	"github.com/npillmayer/rings/grammar"
	"github.com/npillmayer/rings/svgplot"
	"github.com/npillmayer/schuko/tracing"
)

var traceKeys = []string{
	"rings", "rings.element", "rings.grammar", "rings.generator",
	"rings.finish", "rings.svgplot",
}

func main() {
	cfg := generator.DefaultConfig()
	plot := svgplot.DefaultOptions()
	fin := finish.DefaultOptions()

	pattern := flag.String("pattern", "", "ring grammar to compile, rings separated by '\\n'")
	patternFile := flag.String("pattern-file", "", "file containing a ring grammar ('-' for stdin)")
	output := flag.String("o", "", "output SVG file (default stdout)")
	weights := flag.String("weights", "", "symbol weights, e.g. \"dot=0.3,bar=0\"")
	verbose := flag.Bool("v", false, "verbose tracing")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "random seed")
	flag.IntVar(&cfg.NX, "nx", cfg.NX, "number of cells in x direction")
	flag.IntVar(&cfg.NY, "ny", cfg.NY, "number of cells in y direction")
	flag.IntVar(&cfg.Layers, "layers", cfg.Layers, "number of layers")
	flag.Float64Var(&cfg.DX, "dx", cfg.DX, "cell distance in x direction")
	flag.Float64Var(&cfg.DY, "dy", cfg.DY, "cell distance in y direction")
	flag.IntVar(&cfg.LetterCount, "letters", cfg.LetterCount, "number of symbols per cell")
	flag.BoolVar(&cfg.Parallel, "parallel", false, "compute cells concurrently (changes output)")
	flag.StringVar(&cfg.Params.Text, "text", cfg.Params.Text, "text drawn by text elements")
	flag.StringVar(&plot.Page, "page", plot.Page, "page size: "+strings.Join(svgplot.PageNames(), ", "))
	flag.BoolVar(&plot.Landscape, "landscape", false, "landscape page orientation")
	flag.Float64Var(&plot.Scale, "scale", plot.Scale, "scale factor")
	flag.Float64Var(&fin.MergeTolerance, "merge", 0, "merge tolerance in drawing units (0 = off)")
	flag.Float64Var(&fin.SimplifyTolerance, "simplify", fin.SimplifyTolerance, "simplify tolerance in drawing units (0 = off)")
	flag.BoolVar(&fin.Sort, "sort", fin.Sort, "sort polylines to reduce pen travel")
	flag.Parse()

	if *verbose {
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}
	if *weights != "" {
		if err := cfg.ParseWeights(*weights); err != nil {
			fatal("%v", err)
		}
	}
	text := strings.ReplaceAll(*pattern, `\n`, "\n")
	if *patternFile != "" {
		b, err := readInput(*patternFile)
		if err != nil {
			fatal("read pattern: %v", err)
		}
		text = string(b)
	}

	var drawing *rings.Drawing
	if text != "" {
		lines, err := grammar.Compile(text, cfg.Params, generator.NewSource(cfg.Seed))
		if err != nil {
			fatal("%v", err)
		}
		drawing = rings.NewDrawing()
		drawing.Add(1, lines)
	} else {
		res, err := generator.Generate(cfg)
		if err != nil {
			fatal("%v", err)
		}
		for _, c := range res.Cells {
			tracing.Select("rings").Infof("cell (%d,%d): %q", c.I, c.J, c.Pattern)
		}
		drawing = res.Drawing
	}
	finish.ApplyToDrawing(drawing, fin)

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatal("create output: %v", err)
		}
		defer f.Close()
		out = f
	}
	if err := svgplot.Write(out, drawing, plot); err != nil {
		fatal("%v", err)
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ringsketch: "+format+"\n", args...)
	os.Exit(1)
}
