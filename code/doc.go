// Package code provides the orchestration layer for running caller-supplied
// script snippets against a catalog of host capabilities (tools, agents,
// and skills).
//
// code sits on top of the host and catalog packages: the host client
// supplies the raw capability lists and executes individual tools, catalog
// normalizes them into descriptors, and this package generates per-request
// bindings, runs the snippet through a pluggable Engine, and collects the
// outcome into a structured Result.
//
// # Architecture
//
// The package defines three main surfaces:
//
//   - [Bindings]: the capability namespaces exposed to the executing
//     snippet. Each [Binding] bridges one sanitized capability name to an
//     invocation against the host and records every attempt on the shared
//     [Recorder].
//
//   - [Engine]: the pluggable execution engine that compiles and runs the
//     snippet with the bindings, a log function, and the execution context
//     as its only free variables.
//
//   - [Executor]: the main entry point that builds the catalog, applies
//     defaults, enforces limits, and assembles the final [Result].
//
// # Execution Limits
//
// The executor enforces two limits:
//
//   - Timeout: applied via context deadline; the engine reports expiry as
//     a failed [Result] with a timeout message, not as a Go error.
//   - MaxToolCalls: tracked by the [Recorder], which rejects invocations
//     past the ceiling with [ErrLimitExceeded]. Rejected attempts are
//     still recorded.
//
// # Call Tracing
//
// Every capability invocation is recorded in a [CallRecord] containing:
//   - Tool: the capability name (tools record their original catalog
//     name; agents and skills record as "agent:<name>" / "skill:<name>")
//   - Args: the arguments passed to the capability
//   - Result/Error: the textual output or the failure message
//   - DurationMs: wall-clock invocation time in milliseconds
//
// Records append in settlement order: invocations issued concurrently may
// settle in any order, and each appends its record when it completes.
//
// # Result Convention
//
// Snippets produce a value only through an explicit return statement; the
// engine injects no implicit return. Snippet failures (throws, uncaught
// rejections, timeouts) are reported inside [Result] with Success false,
// so [Executor.Execute] returns a non-nil error only for configuration,
// catalog, or model-resolution failures.
package code
