package exec

import (
	"errors"
	"time"

	"github.com/jonwraymond/toolscript/code"
	"github.com/jonwraymond/toolscript/host"
	"github.com/jonwraymond/toolscript/jsengine"
)

// Errors returned by Options validation.
var (
	ErrClientRequired = errors.New("exec: Client is required")
)

// Options configures an Exec instance.
type Options struct {
	// Client is the host capability surface used for catalog fetches,
	// tool execution, and model resolution.
	// Required.
	Client host.Client

	// Engine compiles and runs the snippets.
	// Default: the goja engine.
	Engine code.Engine

	// Logger receives one-line execution summaries.
	// Optional; if nil, nothing is logged.
	Logger code.Logger

	// Timeout is the default execution budget.
	// Default: code.DefaultTimeout.
	Timeout time.Duration

	// MaxToolCalls is the default capability-call ceiling per run.
	// Default: code.DefaultMaxToolCalls.
	MaxToolCalls int

	// Agent is the agent name stamped on every request.
	// Optional.
	Agent string

	// Directory is the working directory used for catalog fetches and
	// model resolution.
	// Optional.
	Directory string

	// SessionID pins the session identifier for every run. When empty a
	// fresh ses_<uuid> is minted per request.
	SessionID string
}

// validate checks that required fields are set.
func (o *Options) validate() error {
	if o.Client == nil {
		return ErrClientRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.Engine == nil {
		o.Engine = jsengine.New()
	}
	if o.Timeout == 0 {
		o.Timeout = code.DefaultTimeout
	}
	if o.MaxToolCalls == 0 {
		o.MaxToolCalls = code.DefaultMaxToolCalls
	}
}

// Params configures a single execution request.
type Params struct {
	// Code is the snippet to execute. It runs as the body of an async
	// function, so top-level await and return are available.
	Code string

	// Timeout overrides Options.Timeout for this run.
	// If zero, the configured timeout is used.
	Timeout time.Duration

	// MaxToolCalls overrides Options.MaxToolCalls for this run, capped
	// by the configured ceiling. If zero, the configured ceiling is used.
	MaxToolCalls int

	// Directory overrides Options.Directory for this run.
	Directory string

	// ListAvailable renders the capability listing instead of executing
	// Code. The listing becomes the response Report; no code runs and
	// the response carries no Result.
	ListAvailable bool
}
