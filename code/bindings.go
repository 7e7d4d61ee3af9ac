package code

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/toolscript/catalog"
	"github.com/jonwraymond/toolscript/host"
)

// Binding is one callable capability generated for a single execution
// request. It bridges a sanitized binding name to an invocation against
// the host, dispatching on the capability kind, and records every attempt
// on the shared Recorder.
//
// Contract:
// - Concurrency: safe for concurrent use; records append in settlement order.
// - Context: Invoke honors cancellation and propagates the host's error.
// - Errors: failed invocations return the error after recording it.
type Binding struct {
	// Kind discriminates the invocation behavior.
	Kind catalog.Kind

	// Name is the sanitized identifier exposed to the executing code.
	Name string

	// Target is the original capability name forwarded to the host.
	Target string

	ec       Context
	recorder *Recorder
}

// Invoke runs the capability with the given arguments and returns its
// textual output. Every attempt appends exactly one CallRecord to the
// shared Recorder, whether it succeeds, fails, or is rejected by the
// invocation ceiling.
func (b *Binding) Invoke(ctx context.Context, args map[string]any) (string, error) {
	rec := CallRecord{Tool: b.RecordName(), Args: args}

	if err := b.recorder.Reserve(); err != nil {
		rec.Error = err.Error()
		b.recorder.Record(rec)
		return "", err
	}

	start := time.Now()
	out, err := b.call(ctx, args)
	rec.DurationMs = time.Since(start).Milliseconds()

	if err != nil {
		rec.Error = err.Error()
	} else {
		rec.Result = out
	}
	b.recorder.Record(rec)

	return out, err
}

// RecordName returns the capability name written into call records: the
// original catalog name for tools, "agent:<name>" for agents, and
// "skill:<name>" for skills.
func (b *Binding) RecordName() string {
	switch b.Kind {
	case catalog.KindAgent:
		return "agent:" + b.Target
	case catalog.KindSkill:
		return "skill:" + b.Target
	default:
		return b.Target
	}
}

// call dispatches on the capability kind. Agents and skills are deliberate
// placeholders that always fail; the failures still record so the trace
// shows the attempt.
func (b *Binding) call(ctx context.Context, args map[string]any) (string, error) {
	switch b.Kind {
	case catalog.KindTool:
		return b.callTool(ctx, args)
	case catalog.KindAgent:
		return "", fmt.Errorf("%w: agents cannot be called directly from executing code; use the task delegation mechanism instead", ErrUnsupported)
	case catalog.KindSkill:
		return "", fmt.Errorf("%w: skill calls are not yet supported", ErrUnsupported)
	default:
		return "", fmt.Errorf("%w: unknown capability kind %q", ErrUnsupported, b.Kind)
	}
}

func (b *Binding) callTool(ctx context.Context, args map[string]any) (string, error) {
	res, err := b.ec.Client.ExecuteTool(ctx, host.ToolRequest{
		SessionID:  b.ec.SessionID,
		MessageID:  b.ec.MessageID,
		ProviderID: b.ec.ProviderID,
		ModelID:    b.ec.ModelID,
		Agent:      b.ec.Agent,
		ToolID:     b.Target,
		Args:       args,
	})
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Bindings holds the three capability namespaces generated for one
// execution request, keyed by sanitized binding name.
type Bindings struct {
	Tools  map[string]*Binding
	Agents map[string]*Binding
	Skills map[string]*Binding
}

// NewBindings generates the capability namespaces for one request. Names
// are sanitized with catalog.SanitizeName; when two distinct names
// sanitize to the same key, the later catalog entry wins.
func NewBindings(cat catalog.Catalog, ec Context, rec *Recorder) *Bindings {
	b := &Bindings{
		Tools:  make(map[string]*Binding, len(cat.Tools)),
		Agents: make(map[string]*Binding, len(cat.Agents)),
		Skills: make(map[string]*Binding, len(cat.Skills)),
	}
	for _, d := range cat.Tools {
		bind := newBinding(d, ec, rec)
		b.Tools[bind.Name] = bind
	}
	for _, d := range cat.Agents {
		bind := newBinding(d, ec, rec)
		b.Agents[bind.Name] = bind
	}
	for _, d := range cat.Skills {
		bind := newBinding(d, ec, rec)
		b.Skills[bind.Name] = bind
	}
	return b
}

func newBinding(d catalog.Descriptor, ec Context, rec *Recorder) *Binding {
	return &Binding{
		Kind:     d.Kind,
		Name:     catalog.SanitizeName(d.Name),
		Target:   d.Name,
		ec:       ec,
		recorder: rec,
	}
}
