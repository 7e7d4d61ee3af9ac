package code

import (
	"time"

	"github.com/jonwraymond/toolscript/host"
)

// Context is the immutable per-request execution context. It carries the
// identifiers threaded through every capability invocation of one request
// plus the host client handle, and is shared read-only by all bindings
// generated for that request.
type Context struct {
	// SessionID identifies the host session issuing the request.
	SessionID string `json:"sessionID,omitempty"`

	// MessageID identifies the message that carried the code snippet.
	MessageID string `json:"messageID,omitempty"`

	// ProviderID selects the provider whose tool catalog applies. If
	// empty, the executor resolves the host's default model.
	ProviderID string `json:"providerID,omitempty"`

	// ModelID selects the model whose tool catalog applies. If empty,
	// the executor resolves the host's default model.
	ModelID string `json:"modelID,omitempty"`

	// Agent is the name of the agent driving this execution, if any.
	Agent string `json:"agent,omitempty"`

	// Directory is the working directory for the request. Optional.
	Directory string `json:"directory,omitempty"`

	// Client is the host client used to fetch the catalog and execute
	// tools. Required.
	Client host.Client `json:"-"`
}

// CallRecord captures one capability invocation attempt made during code
// execution. At most one of Result/Error is set once the attempt settles.
type CallRecord struct {
	// Tool is the capability name. Tools record their original catalog
	// name; agents and skills record as "agent:<name>" / "skill:<name>".
	Tool string `json:"tool"`

	// Args contains the arguments passed to the capability.
	Args map[string]any `json:"args,omitempty"`

	// Result is the textual output of a successful invocation.
	Result string `json:"result,omitempty"`

	// Error is the failure message if the invocation raised.
	Error string `json:"error,omitempty"`

	// DurationMs is the wall-clock invocation time in milliseconds.
	DurationMs int64 `json:"durationMs"`
}

// ExecuteParams specifies the parameters for one code execution request.
type ExecuteParams struct {
	// Code is the script source to execute. It runs as the body of an
	// asynchronous unit; a value is produced only by an explicit return
	// statement within the snippet.
	Code string `json:"code"`

	// Timeout is the wall-clock budget for the run. Zero applies the
	// executor's configured timeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxToolCalls limits capability invocations for this run. Zero
	// applies the executor's configured ceiling, which also caps any
	// larger request.
	MaxToolCalls int `json:"maxToolCalls,omitempty"`
}

// Result is the terminal outcome of one code execution request. Exactly
// one of Value/Error is meaningful, gated by Success. Logs and ToolCalls
// are populated even when Success is false.
type Result struct {
	// Success reports whether the snippet ran to completion.
	Success bool `json:"success"`

	// Value is the snippet's return value, if any. JSON-serializable.
	Value any `json:"result,omitempty"`

	// Error is the normalized failure message when Success is false.
	Error string `json:"error,omitempty"`

	// Logs holds the lines captured from the snippet's log function, in
	// call order.
	Logs []string `json:"logs"`

	// ToolCalls records every capability invocation, in settlement order.
	ToolCalls []CallRecord `json:"toolCalls"`

	// DurationMs is the total execution time in milliseconds.
	DurationMs int64 `json:"durationMs"`
}
