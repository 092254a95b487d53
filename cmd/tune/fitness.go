package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/absorb/config"
	"github.com/pthm-cable/absorb/game"
)

// FitnessEvaluator runs autopilot games and scores how close their length is
// to the target.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config
	targetSec  float64

	mu          sync.Mutex
	lastSurvive float64 // mean survival seconds from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, targetSec float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
		targetSec:  targetSec,
	}
}

// LastSurvival returns the mean survival time from the most recent evaluation.
func (fe *FitnessEvaluator) LastSurvival() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSurvive
}

// runResult holds the results from a single game.
type runResult struct {
	survivalTicks int32 // ticks until game over, or maxTicks
	rounds        int   // rounds cleared
	valid         bool  // config passed validation
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runGame(x, s)
		}(i, seed)
	}
	wg.Wait()

	var total, survive float64
	for _, r := range results {
		total += fe.computeFitness(r)
		survive += float64(r.survivalTicks) * float64(fe.baseConfig.Derived.DT32)
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastSurvive = survive / n
	fe.mu.Unlock()

	return total / n
}

// runGame plays one autopilot game until game over or maxTicks.
func (fe *FitnessEvaluator) runGame(x []float64, seed int64) runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	if err := cfg.Validate(); err != nil {
		return runResult{}
	}

	g := game.NewGameWithConfig(cfg, game.Options{
		Seed:      seed,
		Headless:  true,
		Autopilot: true,
	})
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		if g.UpdateHeadless() == game.GameOver {
			break
		}
	}

	return runResult{
		survivalTicks: g.Tick(),
		rounds:        g.Round() - 1,
		valid:         true,
	}
}

// copyConfig creates a copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness scores one game: squared log-ratio of survival time to the
// target, minus a small bonus per cleared round. Invalid configs score worst.
func (fe *FitnessEvaluator) computeFitness(r runResult) float64 {
	if !r.valid {
		return 1e6
	}
	sec := math.Max(float64(r.survivalTicks)*float64(fe.baseConfig.Derived.DT32), 1)
	logErr := math.Log(sec / fe.targetSec)
	return logErr*logErr - 0.05*float64(r.rounds)
}
