package rpn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-state/logger"
	"github.com/amp-labs/amp-state/optional"
)

const defaultWorkers = 4

var (
	ErrRuntime = errors.New("rpn: runtime failure")
	ErrNotRun  = errors.New("rpn: program not run")
)

type options struct {
	logger  *slog.Logger
	workers int
}

// Option configures an Evaluator.
type Option func(*options)

// WithLogger sets the logger used for evaluation events. By default the
// evaluator uses logger.Get(ctx) at the time of each call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWorkers sets how many programs EvaluateAll runs at once.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Evaluator compiles and runs expressions, logging each evaluation.
type Evaluator struct {
	opts options
}

// NewEvaluator returns an Evaluator configured by opts.
func NewEvaluator(opts ...Option) *Evaluator {
	o := options{workers: defaultWorkers}

	for _, opt := range opts {
		opt(&o)
	}

	return &Evaluator{opts: o}
}

// Result is the outcome of evaluating one expression.
type Result struct {
	Name  string                `yaml:"name,omitempty"`
	Expr  string                `yaml:"expr"`
	Stack Machine               `yaml:"stack"`
	Top   optional.Value[int64] `yaml:"top"`
	Error string                `yaml:"error,omitempty"`

	Err error `yaml:"-"`
}

func (e *Evaluator) log(ctx context.Context) *slog.Logger {
	if e.opts.logger != nil {
		return logger.From(e.opts.logger, ctx)
	}

	return logger.Get(ctx)
}

// Evaluate compiles expr and runs it against initial. A panic raised while
// the program runs (integer division by zero) is reported as ErrRuntime.
func (e *Evaluator) Evaluate(ctx context.Context, expr string, initial Machine) (Result, error) {
	res := e.evaluate(ctx, Definition{Expr: expr, Stack: initial})

	return res, res.Err
}

func (e *Evaluator) evaluate(ctx context.Context, def Definition) (res Result) {
	ctx = logger.With(ctx, "expr", def.Expr)
	if def.Name != "" {
		ctx = logger.With(ctx, "program", def.Name)
	}

	log := e.log(ctx)

	res = Result{Name: def.Name, Expr: def.Expr}

	defer func() {
		if res.Err != nil {
			res.Error = res.Err.Error()

			log.Warn("Evaluation failed", "error", res.Err)
		}
	}()

	prog, err := Compile(def.Expr)
	if err != nil {
		res.Err = err

		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res.Stack = nil
			res.Top = optional.None[int64]()
			res.Err = logger.AnnotateError(fmt.Errorf("%w: %v", ErrRuntime, r), "panic", fmt.Sprint(r))
		}
	}()

	top, rest, err := prog.Result(Machine(def.Stack))
	if err != nil {
		res.Err = err

		return res
	}

	res.Top = top
	res.Stack = finalStack(top, rest)

	log.Debug("Evaluated program", "needs", prog.Needs, "leaves", prog.Leaves, "top", top.String())

	return res
}

func finalStack(top optional.Value[int64], rest Machine) Machine {
	value, ok := top.Get()
	if !ok {
		return append(Machine{}, rest...)
	}

	out := make(Machine, 0, len(rest)+1)
	out = append(out, value)

	return append(out, rest...)
}

// EvaluateAll evaluates the definitions concurrently on a worker pool and
// returns their results in input order. Programs are independent: each one
// runs against its own initial stack. Definitions that never ran because ctx
// was cancelled report ErrNotRun joined with the context error.
func (e *Evaluator) EvaluateAll(ctx context.Context, defs []Definition) []Result {
	results := make([]Result, len(defs))
	for i, def := range defs {
		results[i] = Result{Name: def.Name, Expr: def.Expr, Err: ErrNotRun}
	}

	if len(defs) == 0 {
		return results
	}

	pool := pond.NewPool(min(e.opts.workers, len(defs)))
	group := pool.NewGroupContext(ctx)

	for i, def := range defs {
		group.Submit(func() {
			results[i] = e.evaluate(ctx, def)
		})
	}

	waitErr := group.Wait()

	// Running tasks must finish before results are read.
	pool.StopAndWait()

	e.log(ctx).Debug("Evaluated batch", "programs", len(defs), "workers", e.opts.workers)

	for i := range results {
		if errors.Is(results[i].Err, ErrNotRun) {
			if waitErr != nil {
				results[i].Err = errors.Join(ErrNotRun, waitErr)
			}

			results[i].Error = results[i].Err.Error()
		}
	}

	return results
}
