package generator

import (
	"math/rand/v2"
	"sync"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/rings/grammar"
)

// Cell is one compiled grid cell.
type Cell struct {
	I, J    int             // grid position
	Layer   int             // output layer, starting at 1
	Pattern string          // sampled grammar text
	Lines   rings.Polylines // geometry, translated to the cell's position
}

// Result of a generator run.
type Result struct {
	Cells   []Cell // row by row
	Drawing *rings.Drawing
}

// LayerOf returns the layer of grid cell (i,j): cells cycle through the
// layers in row-major order.
func LayerOf(i, j, nx, layers int) int {
	return (i+j*nx)%layers + 1
}

// NewSource creates the random source for a seed. Sequential runs use it
// as their single shared stream.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// cellSource creates an independent random stream for cell k of a
// parallel run.
func cellSource(seed uint64, k int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(k)+1))
}

// Generate runs the generator. Without cfg.Parallel, cells are computed
// one after the other, drawing from one random stream seeded with
// cfg.Seed. With cfg.Parallel, every cell gets its own stream; output is
// deterministic for a given seed, but differs from the sequential one.
func Generate(cfg Config) (*Result, error) {
	if cfg.Parallel {
		return generateParallel(cfg)
	}
	return GenerateWith(cfg, NewSource(cfg.Seed))
}

// GenerateWith runs the generator sequentially, drawing from rnd. For
// every cell, the grammar symbols are drawn first, then the ring phases.
func GenerateWith(cfg Config, rnd grammar.Source) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		tracer().Errorf("rejecting generator configuration: %v", err)
		return nil, err
	}
	sampler := NewSampler(cfg.Symbols)
	res := &Result{Cells: make([]Cell, 0, cfg.NX*cfg.NY)}
	for j := 0; j < cfg.NY; j++ {
		for i := 0; i < cfg.NX; i++ {
			cell, err := compileCell(cfg, sampler, i, j, rnd)
			if err != nil {
				return nil, err
			}
			res.Cells = append(res.Cells, cell)
		}
	}
	res.Drawing = collect(res.Cells)
	return res, nil
}

func generateParallel(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		tracer().Errorf("rejecting generator configuration: %v", err)
		return nil, err
	}
	sampler := NewSampler(cfg.Symbols)
	cells := make([]Cell, cfg.NX*cfg.NY)
	errs := make([]error, len(cells))
	var wg sync.WaitGroup
	for k := range cells {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			i, j := k%cfg.NX, k/cfg.NX
			cells[k], errs[k] = compileCell(cfg, sampler, i, j, cellSource(cfg.Seed, k))
		}(k)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Result{Cells: cells, Drawing: collect(cells)}, nil
}

func compileCell(cfg Config, sampler *Sampler, i, j int, rnd grammar.Source) (Cell, error) {
	cell := Cell{I: i, J: j, Layer: LayerOf(i, j, cfg.NX, cfg.Layers)}
	cell.Pattern = sampler.Sample(cfg.LetterCount, rnd)
	lines, err := grammar.Compile(cell.Pattern, cfg.Params, rnd)
	if err != nil {
		return cell, err
	}
	cell.Lines = lines.Translated(rings.P(float64(i)*cfg.DX, float64(j)*cfg.DY))
	tracer().Infof("cell (%d,%d) on layer %d: %d polylines", i, j, cell.Layer, len(cell.Lines))
	return cell, nil
}

func collect(cells []Cell) *rings.Drawing {
	d := rings.NewDrawing()
	for _, c := range cells {
		d.Add(c.Layer, c.Lines)
	}
	return d
}
