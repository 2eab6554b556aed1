// Package chart renders the multi-panel player comparison image.
package chart

import (
	"context"
	"fmt"
	"image"
	stddraw "image/draw"
	"image/png"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/afthonia/elo-dashboard/internal/platform/logging"
	"github.com/afthonia/elo-dashboard/internal/platform/metrics"
)

const (
	gridRows = 2
	gridCols = 4

	panelWidth  = 4 * vg.Inch
	panelHeight = 4 * vg.Inch
)

// Point is one plotted value; SeasonIndex addresses Input.SeasonLabels.
type Point struct {
	SeasonIndex int
	Value       float64
}

// Line is one player's series within a panel.
type Line struct {
	Label  string
	Points []Point
}

// Panel is one statistic's subplot.
type Panel struct {
	Title string
	Lines []Line
}

// Input describes a full comparison grid. Panels fill the fixed 2x4 grid
// row by row; cells beyond the last panel stay blank.
type Input struct {
	SeasonLabels []string
	Panels       []Panel
}

// Renderer draws comparison grids to PNG. Panels are independent plots, so
// they render concurrently on a bounded worker pool before being
// composited into one image.
type Renderer struct {
	workers int
	logger  *logging.Logger
	metrics *metrics.Manager
}

func NewRenderer(workers int, logger *logging.Logger, m *metrics.Manager) *Renderer {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Renderer{
		workers: workers,
		logger:  logger,
		metrics: m,
	}
}

// RenderGrid renders the panels into a single PNG image.
func (r *Renderer) RenderGrid(ctx context.Context, in Input) ([]byte, error) {
	started := time.Now()
	out, err := r.renderGrid(ctx, in)
	r.metrics.ObserveChartRender(time.Since(started), err)
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "comparison chart rendered",
		"panels", len(in.Panels),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return out, nil
}

func (r *Renderer) renderGrid(_ context.Context, in Input) ([]byte, error) {
	if len(in.Panels) == 0 {
		return nil, fmt.Errorf("render grid: no panels")
	}
	if len(in.Panels) > gridRows*gridCols {
		return nil, fmt.Errorf("render grid: %d panels exceed the %dx%d grid", len(in.Panels), gridRows, gridCols)
	}

	images := make([]image.Image, len(in.Panels))
	errs := make([]error, len(in.Panels))

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return nil, fmt.Errorf("create render pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, panel := range in.Panels {
		i, panel := i, panel
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			images[i], errs[i] = renderPanel(in.SeasonLabels, panel)
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit panel render: %w", err)
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("render panel %q: %w", in.Panels[i].Title, err)
		}
	}

	return encodeGrid(images)
}

func renderPanel(seasonLabels []string, panel Panel) (image.Image, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = "Season"
	p.Y.Label.Text = panel.Title
	p.Add(plotter.NewGrid())
	p.NominalX(seasonLabels...)

	args := make([]any, 0, 2*len(panel.Lines))
	for _, line := range panel.Lines {
		xys := make(plotter.XYs, len(line.Points))
		for i, pt := range line.Points {
			xys[i] = plotter.XY{X: float64(pt.SeasonIndex), Y: pt.Value}
		}
		args = append(args, line.Label, xys)
	}
	if len(args) > 0 {
		if err := plotutil.AddLinePoints(p, args...); err != nil {
			return nil, err
		}
	}
	p.Legend.Top = true

	canvas := vgimg.New(panelWidth, panelHeight)
	p.Draw(vgdraw.New(canvas))

	return canvas.Image(), nil
}

func encodeGrid(images []image.Image) ([]byte, error) {
	bounds := images[0].Bounds()
	pw, ph := bounds.Dx(), bounds.Dy()

	grid := image.NewRGBA(image.Rect(0, 0, gridCols*pw, gridRows*ph))
	stddraw.Draw(grid, grid.Bounds(), image.White, image.Point{}, stddraw.Src)

	for i, img := range images {
		row, col := i/gridCols, i%gridCols
		target := image.Rect(col*pw, row*ph, (col+1)*pw, (row+1)*ph)
		stddraw.Draw(grid, target, img, img.Bounds().Min, stddraw.Src)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := png.Encode(buf, grid); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
