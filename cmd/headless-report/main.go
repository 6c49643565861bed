package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kadewils/slashrush/internal/gesture"
)

// shapeGen produces one synthetic trail of a known category.
type shapeGen struct {
	name string
	want gesture.Category
	gen  func(rng *rand.Rand, jitter float64) []gesture.Point
}

// shapeGenerators covers every category the recognizer ships with. The
// free-angle stroke is aimed into the 20-25 degree gap between the
// horizontal and diagonal windows so only the fallback classifier accepts.
func shapeGenerators() []shapeGen {
	return []shapeGen{
		{"circle", gesture.Circle, func(rng *rand.Rand, jitter float64) []gesture.Point {
			r := 80 + rng.Float64()*80
			n := 24 + rng.Intn(16)
			return gesture.SynthCircle(gesture.Point{X: 640, Y: 360}, r, n, jitter, rng)
		}},
		{"horizontal", gesture.Horizontal, func(rng *rand.Rand, jitter float64) []gesture.Point {
			y := 100 + rng.Float64()*500
			length := 200 + rng.Float64()*250
			return gesture.SynthLine(gesture.Point{X: 100, Y: y}, gesture.Point{X: 100 + length, Y: y}, 18, jitter, rng)
		}},
		{"vertical", gesture.Vertical, func(rng *rand.Rand, jitter float64) []gesture.Point {
			x := 100 + rng.Float64()*1000
			length := 200 + rng.Float64()*250
			return gesture.SynthLine(gesture.Point{X: x, Y: 100}, gesture.Point{X: x, Y: 100 + length}, 18, jitter, rng)
		}},
		{"slash_down", gesture.SlashDown, func(rng *rand.Rand, jitter float64) []gesture.Point {
			d := 150 + rng.Float64()*150
			return gesture.SynthLine(gesture.Point{X: 200, Y: 120}, gesture.Point{X: 200 + d, Y: 120 + d}, 16, jitter, rng)
		}},
		{"slash_up", gesture.SlashUp, func(rng *rand.Rand, jitter float64) []gesture.Point {
			d := 150 + rng.Float64()*150
			return gesture.SynthLine(gesture.Point{X: 200, Y: 600}, gesture.Point{X: 200 + d, Y: 600 - d}, 16, jitter, rng)
		}},
		{"zigzag", gesture.Zigzag, func(rng *rand.Rand, jitter float64) []gesture.Point {
			segs := 5 + rng.Intn(4)
			segLen := 70 + rng.Float64()*40
			swing := 55 + rng.Float64()*15
			return gesture.SynthZigzag(gesture.Point{X: 120, Y: 360}, segs, segLen, swing, 4, jitter, rng)
		}},
		{"straight", gesture.Straight, func(rng *rand.Rand, jitter float64) []gesture.Point {
			length := 200 + rng.Float64()*150
			// 22.5 degrees: inside no axis or diagonal window.
			return gesture.SynthLine(gesture.Point{X: 150, Y: 150},
				gesture.Point{X: 150 + length*0.9239, Y: 150 + length*0.3827}, 16, jitter, rng)
		}},
	}
}

// shapeStats accumulates results for one expected shape.
type shapeStats struct {
	attempts  int
	correct   int
	confs     []float64
	confusion map[gesture.Category]int
}

func newShapeStats() *shapeStats {
	return &shapeStats{confusion: make(map[gesture.Category]int)}
}

func (s *shapeStats) record(want gesture.Category, got gesture.Result) {
	s.attempts++
	s.confusion[got.Category]++
	if got.Category == want {
		s.correct++
		s.confs = append(s.confs, got.Confidence)
	}
}

func (s *shapeStats) accuracy() float64 {
	if s.attempts == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.attempts)
}

// summarize returns the mean and standard deviation of confidences; a single
// sample has zero deviation by convention.
func summarize(confs []float64) (mean, std float64) {
	if len(confs) == 0 {
		return 0, 0
	}
	if len(confs) == 1 {
		return confs[0], 0
	}
	return stat.MeanStdDev(confs, nil)
}

func main() {
	var runs int
	var trails int
	var seedBase int64
	var seedStep int64
	var jitter float64
	var plotDir string

	flag.IntVar(&runs, "runs", 5, "number of report runs")
	flag.IntVar(&trails, "trails", 200, "synthetic trails per shape per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&jitter, "jitter", 4.0, "max per-point displacement in px")
	flag.StringVar(&plotDir, "plot-dir", "", "write one example trail plot per shape to this directory")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if trails <= 0 {
		fmt.Println("error: -trails must be > 0")
		return
	}
	if jitter < 0 {
		fmt.Println("error: -jitter must be >= 0")
		return
	}

	th := gesture.DefaultThresholds()
	if err := th.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	rec := gesture.New(gesture.WithThresholds(th))
	gens := shapeGenerators()

	fmt.Printf("=== Headless Recognition Report ===\n")
	fmt.Printf("runs=%d trails_per_shape=%d jitter=%.1f seed_base=%d seed_step=%d\n\n",
		runs, trails, jitter, seedBase, seedStep)

	total := make(map[string]*shapeStats)
	for _, g := range gens {
		total[g.name] = newShapeStats()
	}

	for run := 0; run < runs; run++ {
		seed := seedBase + int64(run)*seedStep
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- synthetic trails
		perRun := make(map[string]*shapeStats)

		for _, g := range gens {
			perRun[g.name] = newShapeStats()
			for i := 0; i < trails; i++ {
				pts := g.gen(rng, jitter)
				res := rec.Recognize(pts)
				perRun[g.name].record(g.want, res)
				total[g.name].record(g.want, res)
			}
		}
		printRun(run+1, seed, gens, perRun)
	}

	printAggregate(gens, total)

	if plotDir != "" {
		rng := rand.New(rand.NewSource(seedBase)) // #nosec G404 -- example plots
		examples := make(map[string][]gesture.Point, len(gens))
		for _, g := range gens {
			examples[g.name] = g.gen(rng, jitter)
		}
		if err := writePlots(plotDir, examples); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nexample trail plots written to %s\n", plotDir)
	}
}

func printRun(run int, seed int64, gens []shapeGen, stats map[string]*shapeStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", run, seed)
	for _, g := range gens {
		s := stats[g.name]
		mean, std := summarize(s.confs)
		fmt.Printf("shape=%-11s acc=%.3f conf_mean=%.3f conf_std=%.3f\n",
			g.name, s.accuracy(), mean, std)
	}
	fmt.Println()
}

func printAggregate(gens []shapeGen, total map[string]*shapeStats) {
	fmt.Printf("=== Aggregate ===\n")
	for _, g := range gens {
		s := total[g.name]
		mean, std := summarize(s.confs)
		fmt.Printf("shape=%-11s attempts=%d acc=%.3f conf_mean=%.3f conf_std=%.3f\n",
			g.name, s.attempts, s.accuracy(), mean, std)
	}

	fmt.Printf("\nconfusion (expected -> predicted:count):\n")
	for _, g := range gens {
		fmt.Printf("%-11s -> %s\n", g.name, confusionLine(total[g.name].confusion))
	}
}

// confusionLine renders a confusion row in a stable order.
func confusionLine(m map[gesture.Category]int) string {
	cats := make([]gesture.Category, 0, len(m))
	for c := range m {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	out := ""
	for i, c := range cats {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s:%d", c, m[c])
	}
	if out == "" {
		out = "(none)"
	}
	return out
}

// writePlots renders one example trail per shape. The y axis is flipped so
// the plots read the way the screen does.
func writePlots(dir string, examples map[string][]gesture.Point) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("plot dir: %w", err)
	}
	for name, pts := range examples {
		p := plot.New()
		p.Title.Text = "trail: " + name
		p.X.Label.Text = "x (px)"
		p.Y.Label.Text = "y (px, flipped)"

		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i].X = pt.X
			xys[i].Y = -pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plot %s: %w", name, err)
		}
		p.Add(line)

		out := filepath.Join(dir, name+".png")
		if err := p.Save(5*vg.Inch, 5*vg.Inch, out); err != nil {
			return fmt.Errorf("save %s: %w", out, err)
		}
	}
	return nil
}
