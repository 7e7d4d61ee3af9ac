package code

import "context"

// Env is the execution environment assembled for one request: the
// read-only execution context, the generated capability bindings, and the
// shared recorder for logs and call records.
type Env struct {
	Context  Context
	Bindings *Bindings
	Recorder *Recorder
}

// Engine is the pluggable execution engine that compiles and runs a code
// snippet against an Env.
//
// The Engine should:
//   - Run the snippet as an asynchronous unit whose only free variables
//     are the tools, agents, and skills namespaces, the log function, and
//     the context value
//   - Report snippet outcomes (return, throw, timeout) inside Result,
//     reserving the error return for engine-internal failures
//   - Wrap snippet compilation errors in CodeError with line/column info
//     when available
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines; expiry becomes a failed Result.
// - Errors: snippet failures never surface as Go errors; callers gate on Result.Success.
// - Ownership: params and env are read-only; the returned Result is caller-owned.
type Engine interface {
	// Execute runs a code snippet against the environment and returns the
	// outcome. The executor fills in logs, call records, and duration
	// afterward from the shared recorder.
	Execute(ctx context.Context, params ExecuteParams, env Env) (Result, error)
}
