package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"fade-life/internal/core"
	"fade-life/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

type seeding struct {
	name      string
	noise     bool
	threshold float64
}

func (s seeding) String() string {
	if !s.noise {
		return s.name
	}
	return fmt.Sprintf("%s(t=%.2f)", s.name, s.threshold)
}

type scenario struct {
	seed    int64
	seeding seeding
}

type scenarioResult struct {
	scenario
	initialPop int
	finalPop   int
	peakPop    int
	extinctAt  int
	settledAt  int
	stepsRun   int
	perGen     time.Duration
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 16, "number of seeds per seeding mode")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 160, "visible grid width")
	height := flag.Int("h", 90, "visible grid height")
	margin := flag.Int("margin", 6, "hidden margin cells")
	window := flag.Int("window", 30, "generations of unchanged population that count as settled")
	noiseScale := flag.Float64("noise-scale", 0.12, "noise sampling scale")
	timeout := flag.Duration("timeout", 5*time.Minute, "abort the sweep after this long")
	flag.Parse()

	cfg := life.Config{VisibleWidth: *width, VisibleHeight: *height, Margin: *margin}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("life-sweep: %v", err)
	}
	if *steps <= 0 || *seeds <= 0 {
		log.Fatalf("life-sweep: -steps and -seeds must be positive")
	}
	if *workers <= 0 {
		*workers = 1
	}

	modes := []seeding{
		{name: "random"},
		{name: "noise", noise: true, threshold: -0.1},
		{name: "noise", noise: true, threshold: 0.0},
		{name: "noise", noise: true, threshold: 0.1},
	}
	var jobs []scenario
	for _, m := range modes {
		for s := 0; s < *seeds; s++ {
			jobs = append(jobs, scenario{seed: int64(s + 1), seeding: m})
		}
	}

	log.Printf("sweeping %d scenarios (%d workers, %d steps, grid %dx%d+%d)", len(jobs), *workers, *steps, cfg.VisibleWidth, cfg.VisibleHeight, cfg.Margin)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	results := make([]scenarioResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	start := time.Now()
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			res, err := runScenario(ctx, cfg, job, *steps, *window, *noiseScale)
			if err != nil {
				return fmt.Errorf("seed %d %s: %w", job.seed, job.seeding, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("life-sweep: %v", err)
	}
	elapsed := time.Since(start)

	summarize(results, modes)

	sort.Slice(results, func(i, j int) bool { return results[i].peakPop > results[j].peakPop })
	fmt.Printf("\nTop 5 by peak population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		printResult(i+1, results[i])
	}
}

func runScenario(ctx context.Context, cfg life.Config, sc scenario, steps, window int, noiseScale float64) (scenarioResult, error) {
	grid, err := life.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	if sc.seeding.noise {
		grid.SeedNoise(sc.seed, noiseScale, sc.seeding.threshold)
	} else {
		grid.Randomize(core.NewRNG(sc.seed))
	}

	res := scenarioResult{scenario: sc, extinctAt: -1, settledAt: -1}
	res.initialPop = grid.Population()
	res.peakPop = res.initialPop
	prev := res.initialPop
	unchanged := 0
	start := time.Now()

	for step := 1; step <= steps; step++ {
		if (step-1)%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		grid.Step()
		res.stepsRun = step
		pop := grid.Population()
		if pop > res.peakPop {
			res.peakPop = pop
		}
		if pop == 0 {
			res.extinctAt = step
			res.finalPop = 0
			break
		}
		if pop == prev {
			unchanged++
			if unchanged >= window && res.settledAt < 0 {
				res.settledAt = step - window
			}
		} else {
			unchanged = 0
			res.settledAt = -1
		}
		prev = pop
		res.finalPop = pop
	}
	if res.stepsRun > 0 {
		res.perGen = time.Since(start) / time.Duration(res.stepsRun)
	}
	return res, nil
}

func summarize(results []scenarioResult, modes []seeding) {
	fmt.Printf("%-16s %8s %8s %8s %8s %8s\n", "seeding", "runs", "init", "final", "peak", "extinct")
	for _, m := range modes {
		var runs, initSum, finalSum, peakSum, extinct int
		for _, r := range results {
			if r.seeding != m {
				continue
			}
			runs++
			initSum += r.initialPop
			finalSum += r.finalPop
			peakSum += r.peakPop
			if r.extinctAt >= 0 {
				extinct++
			}
		}
		if runs == 0 {
			continue
		}
		fmt.Printf("%-16s %8d %8d %8d %8d %8d\n", m, runs, initSum/runs, finalSum/runs, peakSum/runs, extinct)
	}
}

func printResult(rank int, r scenarioResult) {
	settled := "no"
	if r.settledAt >= 0 {
		settled = fmt.Sprintf("gen %d", r.settledAt)
	}
	fmt.Printf("%2d) seed=%d seeding=%s init=%d peak=%d final=%d settled=%s steps=%d per-gen=%s\n",
		rank, r.seed, r.seeding, r.initialPop, r.peakPop, r.finalPop, settled, r.stepsRun, r.perGen)
}
