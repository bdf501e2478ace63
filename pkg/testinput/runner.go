package testinput

import (
	"log/slog"

	"github.com/ClusterLabs/striker-testinput/pkg/logger"
	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

// Option configures a run.
type Option func(*config)

type config struct {
	hooks  Hooks
	logger *slog.Logger
}

// WithHooks sets the hooks notified after evaluation.
func WithHooks(h Hooks) Option {
	return func(c *config) { c.hooks = h }
}

// WithLogger sets a logger receiving one debug record per executed batch.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// TestInputFunc validates the batches it was created with.
type TestInputFunc func(req Request) bool

// NewTestInputFunction binds batches and options into a reusable runner.
func NewTestInputFunction(batches *Batches, opts ...Option) TestInputFunc {
	return func(req Request) bool {
		return TestInput(batches, req, opts...)
	}
}

// TestInput runs req against batches, notifies hooks unless the request
// ignores callbacks, and reports whether every required test passed.
func TestInput(batches *Batches, req Request, opts ...Option) bool {
	return Run(batches, req, opts...).OK
}

// Run is TestInput returning the full result.
func Run(batches *Batches, req Request, opts ...Option) Result {
	cfg := newConfig(opts)

	res := Evaluate(batches, req)
	for _, b := range res.Batches {
		cfg.logger.Debug("input test batch finished",
			logger.BatchID(b.ID),
			slog.Bool("ok", b.OK),
			slog.Int("tests", len(b.Tests)),
			slog.Bool("skipped_blank", b.SkippedBlank),
		)
	}

	if !req.IsIgnoreOnCallbacks {
		res.Notify(cfg.hooks)
	}
	return res
}

// Evaluate runs req against batches without side effects.
//
// Batches run in insertion order. Inside a batch, optional tests run first
// and never affect the outcome; required tests run in declaration order and
// stop at the first failure unless req.IsContinueOnFailure. A failing batch
// never stops the batches after it.
func Evaluate(batches *Batches, req Request) Result {
	res := Result{OK: true}

	for _, id := range batches.IDs() {
		if !req.selects(id) {
			continue
		}
		batch, _ := batches.Get(id)
		if batch == nil {
			continue
		}

		br := evaluateBatch(id, batch, req.Inputs[id], req.IsContinueOnFailure)
		if !br.OK {
			res.OK = false
		}
		res.Batches = append(res.Batches, br)
	}

	return res
}

func evaluateBatch(id string, batch *Batch, in Input, continueOnFailure bool) BatchResult {
	args := batch.resolve(in)
	br := BatchResult{
		ID:          id,
		Label:       batch.Label,
		OK:          true,
		Tests:       []TestResult{},
		Args:        args,
		ignoreHooks: in.IsIgnoreOnCallbacks,
	}

	for _, t := range batch.OptionalTests {
		br.Optional = append(br.Optional, t.run(args))
	}

	if batch.IsOptional && !validator.NotBlank(args) {
		br.SkippedBlank = true
		return br
	}

	for _, t := range batch.Tests {
		tr := t.run(args)
		br.Tests = append(br.Tests, tr)
		if tr.Passed {
			continue
		}
		br.OK = false
		if !continueOnFailure {
			break
		}
	}

	return br
}
