package main

import (
	"math"
	"slices"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/grayscott/config"
	"github.com/pthm-cable/grayscott/sim"
	"github.com/pthm-cable/grayscott/telemetry"
)

// FitnessEvaluator runs headless simulations and scores how well the final
// pattern matches the target coverage.
type FitnessEvaluator struct {
	params      *ParamVector
	ticks       int
	seeds       []int64
	baseConfig  *config.Config
	target      float64 // desired share of cells above the coverage threshold
	gridW       int
	gridH       int
	statsWindow int

	mu           sync.Mutex
	lastCoverage float64 // mean coverage from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, ticks int, seeds []int64, baseCfg *config.Config, target float64, gridW, gridH int) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		ticks:       ticks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		target:      target,
		gridW:       gridW,
		gridH:       gridH,
		statsWindow: max(ticks/20, 1),
	}
}

// LastCoverage returns the mean coverage from the most recent evaluation.
func (fe *FitnessEvaluator) LastCoverage() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastCoverage
}

// Fitness penalty weights.
const (
	stabilityWeight = 0.5 // coverage wobble across late windows
	warmupFraction  = 0.5 // ignore the first half of the windows
)

// runResult holds the results from a single simulation run.
type runResult struct {
	windowStats []telemetry.WindowStats // collected via the stats callback
	final       telemetry.FieldSummary
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Invalid vectors score +Inf.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return math.Inf(1)
	}

	fitness := make([]float64, len(fe.seeds))
	coverage := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			r, err := fe.runSimulation(cfg, s)
			if err != nil {
				fitness[idx] = math.Inf(1)
				return
			}
			fitness[idx] = fe.computeFitness(r)
			coverage[idx] = r.final.Coverage
		}(i, seed)
	}
	wg.Wait()

	fe.mu.Lock()
	fe.lastCoverage = stat.Mean(coverage, nil)
	fe.mu.Unlock()

	return stat.Mean(fitness, nil)
}

// runSimulation executes a single headless run on its own grid.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) (*runResult, error) {
	local := *cfg
	local.Telemetry.StatsWindow = fe.statsWindow
	local.Workers.Count = 1 // seeds already run in parallel

	result := &runResult{}
	s, err := sim.New(&local, sim.Options{
		Seed:   seed,
		Width:  fe.gridW,
		Height: fe.gridH,
	})
	if err != nil {
		return nil, err
	}
	defer s.Close()

	s.SetStatsCallback(func(ws telemetry.WindowStats) {
		result.windowStats = append(result.windowStats, ws)
	})
	s.Run(fe.ticks)
	result.final = telemetry.SummarizeField(s.Current())
	return result, nil
}

// copyConfig creates a copy of the base config that ApplyToConfig may edit.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Reaction.Presets = slices.Clone(fe.baseConfig.Reaction.Presets)
	cfg.Derived.Presets = slices.Clone(fe.baseConfig.Derived.Presets)
	return &cfg
}

// computeFitness is the squared distance of the final coverage from the
// target plus a penalty for coverage still moving in the late windows. A
// field that died out or filled completely scores 1 or more.
func (fe *FitnessEvaluator) computeFitness(r *runResult) float64 {
	errCov := r.final.Coverage - fe.target
	fitness := errCov * errCov
	if r.final.Coverage == 0 || r.final.Coverage == 1 {
		fitness += 1
	}

	late := r.windowStats[int(float64(len(r.windowStats))*warmupFraction):]
	if len(late) >= 2 {
		cov := make([]float64, len(late))
		for i, w := range late {
			cov[i] = w.Coverage
		}
		fitness += stabilityWeight * stat.StdDev(cov, nil)
	}
	return fitness
}
