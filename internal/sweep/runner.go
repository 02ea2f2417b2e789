package sweep

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/daccost/internal/model"
	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
)

// Result is the outcome of one scenario evaluation. Err is set when the
// scenario could not be assembled (e.g. an invalid technology name); a failed
// scenario never aborts the rest of the sweep.
type Result struct {
	ID       uuid.UUID
	Name     string
	Values   *model.Record[numeric.Float]
	Err      error
	Duration time.Duration
}

// TotalCost returns the scenario's blended cost, or NaN when unavailable.
func (r Result) TotalCost() float64 {
	if r.Values == nil {
		return numeric.NaN[numeric.Float]().Float()
	}
	return r.Values.Get(model.KeyTotalCost).Float()
}

// Runner evaluates scenarios concurrently over one shared parameter table.
// The table is read-only during a run and is cloned per evaluation before any
// override is applied, so a single Runner is safe for arbitrary sweeps.
type Runner struct {
	Params *params.Set[numeric.Float]

	// Workers caps evaluation concurrency. Zero or negative means one
	// worker per CPU.
	Workers int

	Logger zerolog.Logger
}

// Run evaluates all scenarios and returns results in input order. A canceled
// context stops dispatching new scenarios; results for scenarios never
// started carry the context error.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) []Result {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(scenarios) {
		workers = len(scenarios)
	}

	results := make([]Result, len(scenarios))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.evaluate(scenarios[i])
			}
		}()
	}

dispatch:
	for i := range scenarios {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].ID == uuid.Nil && results[i].Err == nil {
				results[i].Err = err
			}
		}
	}
	return results
}

func (r *Runner) evaluate(sc Scenario) Result {
	start := time.Now()
	res := Result{ID: uuid.New(), Name: sc.Name}

	values, err := Evaluate(r.Params, sc)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		r.Logger.Error().
			Str("evaluation_id", res.ID.String()).
			Str("scenario", sc.Name).
			Err(err).
			Msg("scenario evaluation failed")
		return res
	}

	res.Values = values
	r.Logger.Info().
		Str("evaluation_id", res.ID.String()).
		Str("scenario", sc.Name).
		Float64("total_cost_per_tco2", res.TotalCost()).
		Int64("duration_ms", res.Duration.Milliseconds()).
		Msg("scenario evaluated")
	return res
}
