package code

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Recorder is the shared bookkeeping handle for one execution request. It
// collects capability call records and log lines and enforces the
// invocation ceiling. A fresh Recorder is created per request and handed
// to every binding generated for it; no state survives across requests.
//
// Contract:
// - Concurrency: safe for concurrent use; appends are serialized.
// - Errors: Reserve returns ErrLimitExceeded past the ceiling.
// - Ownership: recorded args are deep-copied; accessors return snapshots.
type Recorder struct {
	mu       sync.Mutex
	maxCalls int
	attempts int
	calls    []CallRecord
	logs     []string
}

// NewRecorder creates a Recorder enforcing the given invocation ceiling.
// A non-positive maxCalls means unlimited.
func NewRecorder(maxCalls int) *Recorder {
	return &Recorder{maxCalls: maxCalls}
}

// Reserve claims one invocation slot. Every attempt counts against the
// ceiling; once it is exhausted Reserve fails with ErrLimitExceeded and
// keeps failing for the remainder of the request.
func (r *Recorder) Reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts++
	if r.maxCalls > 0 && r.attempts > r.maxCalls {
		return fmt.Errorf("%w: max tool calls (%d) exceeded", ErrLimitExceeded, r.maxCalls)
	}
	return nil
}

// Record appends one settled call record. Args are deep-copied so later
// mutation by the executing code cannot alter the trace.
func (r *Recorder) Record(rec CallRecord) {
	rec.Args = deepCopyArgs(rec.Args)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, rec)
}

// AppendLog appends one captured log line.
func (r *Recorder) AppendLog(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, line)
}

// ToolCalls returns a snapshot of all recorded calls in settlement order.
// The snapshot is never nil.
func (r *Recorder) ToolCalls() []CallRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CallRecord, len(r.calls))
	copy(out, r.calls)
	return out
}

// Logs returns a snapshot of all captured log lines in call order.
// The snapshot is never nil.
func (r *Recorder) Logs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.logs))
	copy(out, r.logs)
	return out
}

// CallCount returns the number of settled call records.
func (r *Recorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// deepCopyArgs performs a deep copy of an args map, normalizing nested
// values into JSON-native shapes (map[string]any, []any).
func deepCopyArgs(args map[string]any) map[string]any {
	if args == nil {
		return nil
	}
	result := make(map[string]any, len(args))
	for k, v := range args {
		result[k] = deepCopyValue(v)
	}
	return result
}

// deepCopyValue recursively copies a value into JSON-native shapes.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return deepCopyArgs(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	case string, bool, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return val
	case json.Number:
		return val
	default:
		if out, ok := deepCopyViaJSON(val); ok {
			return out
		}
		return val
	}
}

func deepCopyViaJSON(v any) (any, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}
