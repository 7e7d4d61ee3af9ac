package exec

import (
	"github.com/jonwraymond/toolscript/code"
	"github.com/jonwraymond/toolscript/host"
)

// Response represents the outcome of a single facade request.
type Response struct {
	// SessionID identifies the session the request ran under.
	SessionID string

	// MessageID identifies the message within the session.
	MessageID string

	// Model is the provider/model pair the request ran against.
	Model host.ModelRef

	// Result is the structured execution outcome. Nil for listing-only
	// requests, which produce a Report but run no code.
	Result *code.Result

	// Report is the rendered human-readable report: the formatted result
	// for executions, or the capability listing for listing requests.
	Report string
}

// Succeeded returns true if the request produced a successful outcome.
// Listing-only responses always succeed.
func (r *Response) Succeeded() bool {
	return r.Result == nil || r.Result.Success
}

// ErrorMessage returns the snippet's failure message, or the empty
// string when the request succeeded.
func (r *Response) ErrorMessage() string {
	if r.Result == nil || r.Result.Success {
		return ""
	}
	if r.Result.Error == "" {
		return "unknown error"
	}
	return r.Result.Error
}
