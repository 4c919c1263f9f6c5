// Command scatter demonstrates the poisson point sampler.
//
// It scatters one or more layers of points over a region, optionally
// restricted by a mask image, and writes the points as CSV and a preview
// scatter plot.
//
//	scatter -width 1024 -height 768 -radius 24,12 -parallel -plot points.png
//	scatter -mask forest.png -radius 6 -csv trees.csv
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/poisson"
)

// layer is one generated point set.
type layer struct {
	radius float64
	points []poisson.Point
}

func main() {
	var (
		width     = flag.Int("width", 512, "region width")
		height    = flag.Int("height", 512, "region height")
		radii     = flag.String("radius", "16", "comma-separated minimum distances, one layer each")
		attempts  = flag.Int("attempts", poisson.DefaultAttempts, "candidates tried per origin")
		parallel  = flag.Bool("parallel", false, "sample tiles concurrently")
		tileSize  = flag.Int("tile", poisson.DefaultTileSize, "tile size for parallel sampling")
		workers   = flag.Int("workers", 0, "worker count for parallel sampling (0 = GOMAXPROCS)")
		border    = flag.String("border", "approximate", "tile border policy: approximate, shrink, reconcile")
		selection = flag.String("select", "fifo", "active list selection: fifo, random")
		seeding   = flag.String("seeding", "center", "initial seed placement: center, corner")
		seed      = flag.Uint64("seed", 0, "random seed (0 = from entropy)")
		maskFile  = flag.String("mask", "", "mask image; non-zero luminance allows points")
		csvFile   = flag.String("csv", "", "write points as CSV to this file (- for stdout)")
		plotFile  = flag.String("plot", "", "write a scatter plot PNG to this file")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		poisson.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rs, err := parseRadii(*radii)
	if err != nil {
		log.Fatal(err)
	}

	opts := []poisson.Option{
		poisson.WithAttempts(*attempts),
		poisson.WithParallel(*parallel),
		poisson.WithTileSize(*tileSize),
		poisson.WithWorkers(*workers),
	}

	b, err := parseBorder(*border)
	if err != nil {
		log.Fatal(err)
	}
	opts = append(opts, poisson.WithBorder(b))

	sel, err := parseSelection(*selection)
	if err != nil {
		log.Fatal(err)
	}
	opts = append(opts, poisson.WithSelection(sel))

	sd, err := parseSeeding(*seeding)
	if err != nil {
		log.Fatal(err)
	}
	opts = append(opts, poisson.WithSeeding(sd))

	region := poisson.Rect(0, 0, *width, *height)
	if *maskFile != "" {
		mask, err := loadMask(*maskFile)
		if err != nil {
			log.Fatalf("Failed to load mask: %v", err)
		}
		// The mask image defines the region.
		mb := mask.Bounds()
		region = poisson.Rect(mb.Min.X, mb.Min.Y, mb.Dx(), mb.Dy())
		opts = append(opts, poisson.WithMask(mask))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	layers, err := generate(ctx, region, rs, *seed, opts)
	if err != nil {
		log.Fatalf("Failed to generate points: %v", err)
	}

	for _, l := range layers {
		s := poisson.Analyze(l.points, region)
		fmt.Printf("radius %-6g %6d points  density %.5f  min %.3f  nearest %.3f ± %.3f\n",
			l.radius, s.Count, s.Density, s.MinDistance, s.MeanNearest, s.StdNearest)
	}

	if *csvFile != "" {
		if err := writeCSVFile(*csvFile, layers); err != nil {
			log.Fatalf("Failed to write CSV: %v", err)
		}
	}

	if *plotFile != "" {
		if err := savePlot(*plotFile, region, layers); err != nil {
			log.Fatalf("Failed to save plot: %v", err)
		}
		fmt.Printf("Saved plot to %s\n", *plotFile)
	}
}

// generate samples up to GOMAXPROCS layers concurrently. The first failing
// layer cancels ctx and layers not yet started are skipped. A zero seed draws
// each layer from entropy; otherwise layer i uses seed+i.
func generate(ctx context.Context, region poisson.Region, radii []float64, seed uint64, opts []poisson.Option) ([]layer, error) {
	layers := make([]layer, len(radii))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range radii {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			lopts := opts
			if seed != 0 {
				lopts = append(lopts[:len(lopts):len(lopts)], poisson.WithSeed(seed+uint64(i)))
			}

			start := time.Now()
			points, err := poisson.NewSampler(lopts...).Sample(r, region)
			if err != nil {
				return fmt.Errorf("layer %d (radius %g): %w", i, r, err)
			}
			poisson.Logger().Debug("scatter: layer done", "layer", i, "points", len(points), "elapsed", time.Since(start))

			layers[i] = layer{radius: r, points: points}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return layers, nil
}

// loadMask decodes an image file into a single-channel mask.
func loadMask(path string) (*poisson.Bitmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return poisson.BitmapFromImage(img), nil
}

func writeCSVFile(path string, layers []layer) error {
	if path == "-" {
		return writeCSV(os.Stdout, layers)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := writeCSV(f, layers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeCSV writes one "layer,x,y" row per point.
func writeCSV(w io.Writer, layers []layer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"layer", "x", "y"}); err != nil {
		return err
	}
	for i, l := range layers {
		id := strconv.Itoa(i)
		for _, p := range l.points {
			row := []string{
				id,
				strconv.FormatFloat(p.X, 'f', 3, 64),
				strconv.FormatFloat(p.Y, 'f', 3, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// savePlot renders every layer as a scatter series. The Y axis is flipped
// so the plot matches image orientation.
func savePlot(path string, region poisson.Region, layers []layer) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("poisson %s", region)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min = float64(region.X)
	p.X.Max = float64(region.X + region.Width)
	p.Y.Min = -float64(region.Y + region.Height)
	p.Y.Max = -float64(region.Y)

	for i, l := range layers {
		xys := make(plotter.XYs, len(l.points))
		for j, pt := range l.points {
			xys[j] = plotter.XY{X: pt.X, Y: -pt.Y}
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Radius = vg.Points(1.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(s)
		p.Legend.Add(fmt.Sprintf("r=%g (%d)", l.radius, len(l.points)), s)
	}

	// Keep the plot aspect close to the region aspect.
	w := 8 * vg.Inch
	h := w * vg.Length(float64(region.Height)/float64(region.Width))
	return p.Save(w, h, path)
}

var errFlag = errors.New("scatter: invalid flag")

func parseRadii(s string) ([]float64, error) {
	var radii []float64
	for f := range strings.SplitSeq(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		r, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: radius %q: %v", errFlag, f, err)
		}
		radii = append(radii, r)
	}
	if len(radii) == 0 {
		return nil, fmt.Errorf("%w: no radius given", errFlag)
	}
	return radii, nil
}

func parseBorder(s string) (poisson.BorderPolicy, error) {
	for _, b := range []poisson.BorderPolicy{
		poisson.BorderApproximate, poisson.BorderShrink, poisson.BorderReconcile,
	} {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: border %q", errFlag, s)
}

func parseSelection(s string) (poisson.Selection, error) {
	switch s {
	case "fifo":
		return poisson.FIFO, nil
	case "random":
		return poisson.RandomPick, nil
	}
	return nil, fmt.Errorf("%w: selection %q", errFlag, s)
}

func parseSeeding(s string) (poisson.Seeding, error) {
	for _, sd := range []poisson.Seeding{poisson.SeedCenter, poisson.SeedCorner} {
		if sd.String() == s {
			return sd, nil
		}
	}
	return 0, fmt.Errorf("%w: seeding %q", errFlag, s)
}
