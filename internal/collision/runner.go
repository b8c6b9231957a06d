package collision

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tinyid-go/tinyid/tinyid"
)

const (
	resultCollision = "collision"
	resultLimit     = "limit"

	// ctxCheckEvery is how many draws pass between context checks.
	ctxCheckEvery = 1 << 12
)

// Options configures a set of trials.
type Options struct {
	Runs          int    // independent trials
	Workers       int    // trials run at once, 0 means one per run
	Bits          int    // low bits of each ID that take part in the comparison
	MaxIterations int    // draws per trial before giving up, 0 means no limit
	Seed          uint64 // base seed, 0 picks a random one per trial
}

// Trial is the outcome of one run.
type Trial struct {
	Run        int
	Iterations int
	Collided   bool
	Duration   time.Duration
}

// Report summarises all trials of one Run call.
type Report struct {
	Trials     []Trial
	Collisions int
	// Mean is the average draw count over trials that hit a collision.
	Mean float64
	// Expected is the birthday-bound estimate sqrt(pi/2 * 2^bits).
	Expected float64
	Elapsed  time.Duration
}

// Runner runs collision trials.
type Runner struct {
	metrics *Metrics
}

// New returns a Runner. metrics may be nil.
func New(metrics *Metrics) *Runner {
	return &Runner{metrics: metrics}
}

// Expected returns the mean number of uniform draws from 2^bits values
// before the first repeat.
func Expected(bits int) float64 {
	return math.Sqrt(math.Pi / 2 * math.Exp2(float64(bits)))
}

// Run executes opts.Runs trials on a worker pool and waits for all of them.
// Each trial owns its generator, so trials share no random state.
func (r *Runner) Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Bits < 1 || opts.Bits > 64 {
		return Report{}, ErrInvalidBits
	}

	if opts.Runs < 1 {
		return Report{}, ErrInvalidRuns
	}

	workers := opts.Workers
	if workers < 1 || workers > opts.Runs {
		workers = opts.Runs
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return Report{}, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var (
		start    = time.Now()
		wg       sync.WaitGroup
		mu       sync.Mutex
		trials   = make([]Trial, 0, opts.Runs)
		firstErr error
	)

	for run := range opts.Runs {
		wg.Add(1)

		if err := pool.Submit(func() {
			defer wg.Done()

			gen := tinyid.NewGenerator(tinyid.NewSeededSource(trialSeed(opts.Seed, run)))

			trial, err := r.trial(ctx, gen, opts.Bits, opts.MaxIterations)
			trial.Run = run

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = err
				}

				return
			}

			trials = append(trials, trial)

			log.Debug().
				Int("run", run).
				Int("iterations", trial.Iterations).
				Bool("collided", trial.Collided).
				Dur("duration", trial.Duration).
				Msg("collision trial finished")
		}); err != nil {
			wg.Done()

			return Report{}, errors.Wrap(err, "submit trial to worker pool")
		}
	}

	wg.Wait()

	if firstErr != nil {
		return Report{}, firstErr
	}

	sort.Slice(trials, func(i, j int) bool { return trials[i].Run < trials[j].Run })

	report := Report{
		Trials:   trials,
		Expected: Expected(opts.Bits),
		Elapsed:  time.Since(start),
	}

	var total int

	for _, t := range trials {
		if t.Collided {
			report.Collisions++
			total += t.Iterations
		}
	}

	if report.Collisions > 0 {
		report.Mean = float64(total) / float64(report.Collisions)
	}

	return report, nil
}

// trial draws from gen until the truncated value repeats, the limit is hit,
// or ctx is done. Iterations counts every draw including the repeating one.
func (r *Runner) trial(ctx context.Context, gen *tinyid.Generator, bits, limit int) (Trial, error) {
	var (
		start = time.Now()
		mask  = uint64(math.MaxUint64)
		seen  = make(map[uint64]struct{})
		t     Trial
	)

	if bits < 64 {
		mask = 1<<uint(bits) - 1
	}

	for limit <= 0 || t.Iterations < limit {
		if t.Iterations%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return t, errors.Wrap(err, "collision trial")
			}
		}

		id, err := gen.Random()
		if err != nil {
			return t, errors.Wrap(err, "collision trial")
		}

		t.Iterations++
		r.countDraw()

		key := id.Uint64() & mask
		if _, dup := seen[key]; dup {
			t.Collided = true
			t.Duration = time.Since(start)
			r.countTrial(resultCollision)

			return t, nil
		}

		seen[key] = struct{}{}
	}

	t.Duration = time.Since(start)
	r.countTrial(resultLimit)

	return t, nil
}

func (r *Runner) countDraw() {
	if r.metrics != nil {
		r.metrics.Generated.Inc()
	}
}

func (r *Runner) countTrial(result string) {
	if r.metrics != nil {
		r.metrics.Trials.WithLabelValues(result).Inc()
	}
}

func trialSeed(base uint64, run int) uint64 {
	if base == 0 {
		return rand.Uint64() //nolint:gosec
	}

	return base + uint64(run) //nolint:gosec
}
