package calibration

import (
	"fmt"

	"github.com/ja7ad/sensorcal/pkg/dist"
	"github.com/ja7ad/sensorcal/pkg/stats"
)

// Runner executes a configured calibration run. The execution strategy
// (native distributional vs. Monte Carlo) is fixed when the Runner is built,
// so the pipeline itself has no mode branching.
type Runner struct {
	cfg      Config
	provider dist.Provider
}

// Outcome is the result of one run, consumed by reporting and emission.
type Outcome struct {
	// Values holds the distribution of every computed channel. In Monte
	// Carlo mode it contains the single tracked channel, rebuilt
	// empirically from the retained samples.
	Values map[OutputChannel]dist.Value

	// Primary is the single representative value of the run.
	Primary dist.Value

	// Samples is the raw N-length sample sequence, Monte Carlo mode only.
	Samples []float64

	Mean     float64
	Variance float64
}

// NewRunner merges cfg with defaults, validates it, and binds the provider
// for the selected mode. Every configuration error surfaces here, before any
// sampling or calibration work.
func NewRunner(cfg *Config) (*Runner, error) {
	merged := merge(cfg)
	if err := merged.validate(); err != nil {
		return nil, err
	}

	var provider dist.Provider
	if merged.MonteCarlo {
		provider = dist.MonteCarlo(merged.Seed)
	} else {
		p, err := dist.Native(merged.Resolution, merged.Seed)
		if err != nil {
			return nil, err
		}
		provider = p
	}

	return &Runner{cfg: merged, provider: provider}, nil
}

// Config returns the merged, validated configuration of the run.
func (r *Runner) Config() Config { return r.cfg }

// Run executes the pipeline: native mode performs one distributional
// evaluation; Monte Carlo mode performs N sequential independent iterations
// and aggregates the retained primary samples.
func (r *Runner) Run() (*Outcome, error) {
	if !r.cfg.MonteCarlo {
		return r.runNative()
	}
	return r.runMonteCarlo()
}

func (r *Runner) runNative() (*Outcome, error) {
	in, err := r.draw()
	if err != nil {
		return nil, err
	}
	values, primary, err := Evaluate(in, r.cfg.Output)
	if err != nil {
		return nil, err
	}

	mean, variance := primary.Mean(), primary.Variance()
	return &Outcome{
		Values:   values,
		Primary:  primary,
		Mean:     mean,
		Variance: variance,
	}, nil
}

func (r *Runner) runMonteCarlo() (*Outcome, error) {
	// The whole buffer up front; the loop only indexes into it.
	samples := make([]float64, r.cfg.Iterations)

	for i := range samples {
		in, err := r.draw()
		if err != nil {
			return nil, err
		}
		_, primary, err := Evaluate(in, r.cfg.Output)
		if err != nil {
			return nil, err
		}
		samples[i] = primary.Mean()
	}

	mean, variance := stats.MeanAndVariance(samples)
	empirical, err := dist.FromSamples(samples)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	return &Outcome{
		Values:   map[OutputChannel]dist.Value{r.cfg.Output: empirical},
		Primary:  empirical,
		Samples:  samples,
		Mean:     mean,
		Variance: variance,
	}, nil
}

// draw produces one fresh input triple from the bound provider.
func (r *Runner) draw() (Inputs, error) {
	vrh, err := r.provider.Uniform(r.cfg.Vrh.Low, r.cfg.Vrh.High)
	if err != nil {
		return Inputs{}, fmt.Errorf("draw vrh: %w", err)
	}
	vt, err := r.provider.Uniform(r.cfg.Vt.Low, r.cfg.Vt.High)
	if err != nil {
		return Inputs{}, fmt.Errorf("draw vt: %w", err)
	}
	vsupply, err := r.provider.Uniform(r.cfg.Vsupply.Low, r.cfg.Vsupply.High)
	if err != nil {
		return Inputs{}, fmt.Errorf("draw vsupply: %w", err)
	}
	return Inputs{Vrh: vrh, Vt: vt, Vsupply: vsupply}, nil
}
