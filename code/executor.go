package code

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/toolscript/catalog"
)

// Executor is the main entry point for executing code snippets. It
// orchestrates catalog construction, binding generation, limits, and
// result collection.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines; the deadline is the snippet's time budget.
// - Errors: configuration, catalog, and model failures return wrapped sentinels; snippet failures land in Result.
// - Ownership: params are read-only; the returned Result is caller-owned.
type Executor interface {
	// Execute runs a code snippet within the given execution context.
	Execute(ctx context.Context, ec Context, params ExecuteParams) (Result, error)
}

// DefaultExecutor is the standard implementation of Executor.
type DefaultExecutor struct {
	cfg Config
}

var _ Executor = (*DefaultExecutor)(nil)

// NewDefaultExecutor creates a new DefaultExecutor with the given
// configuration. Returns ErrConfiguration if any required field is missing.
func NewDefaultExecutor(cfg Config) (*DefaultExecutor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &DefaultExecutor{cfg: cfg}, nil
}

// Execute runs a code snippet within the given execution context. The
// catalog is rebuilt fresh on every call; nothing is cached across
// requests. Snippet failures (throws, timeouts) are reported inside the
// Result; the error return is reserved for configuration, catalog, and
// model-resolution failures, which abort before any code runs.
func (e *DefaultExecutor) Execute(ctx context.Context, ec Context, params ExecuteParams) (Result, error) {
	if ec.Client == nil {
		return Result{}, fmt.Errorf("%w: missing required fields: Context.Client", ErrConfiguration)
	}

	// Apply defaults from config
	if params.Timeout == 0 {
		params.Timeout = e.cfg.Timeout
	}

	// Resolve MaxToolCalls (params capped by config)
	maxCalls := params.MaxToolCalls
	if e.cfg.MaxToolCalls > 0 {
		if maxCalls == 0 || maxCalls > e.cfg.MaxToolCalls {
			maxCalls = e.cfg.MaxToolCalls
		}
	}
	params.MaxToolCalls = maxCalls

	// Resolve the model when the request does not pin one
	if ec.ProviderID == "" || ec.ModelID == "" {
		ref, err := ec.Client.ResolveDefaultModel(ctx, ec.Directory)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrModelResolution, err)
		}
		if ec.ProviderID == "" {
			ec.ProviderID = ref.ProviderID
		}
		if ec.ModelID == "" {
			ec.ModelID = ref.ModelID
		}
	}

	cat, err := catalog.Build(ctx, ec.Client, ec.ProviderID, ec.ModelID, ec.Directory)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrCatalog, err)
	}

	recorder := NewRecorder(maxCalls)
	env := Env{
		Context:  ec,
		Bindings: NewBindings(cat, ec, recorder),
		Recorder: recorder,
	}

	// Create context with timeout
	runCtx := ctx
	var cancel context.CancelFunc
	if params.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, params.Timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := e.cfg.Engine.Execute(runCtx, params, env)
	duration := time.Since(start).Milliseconds()

	// Collect captured data from the recorder
	result.Logs = recorder.Logs()
	result.ToolCalls = recorder.ToolCalls()
	result.DurationMs = duration

	// Log execution summary if logger present
	if e.cfg.Logger != nil {
		e.cfg.Logger.Logf("executed %d tool calls in %dms", len(result.ToolCalls), duration)
	}

	return result, err
}
