package exec

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonwraymond/toolscript/catalog"
	"github.com/jonwraymond/toolscript/code"
	"github.com/jonwraymond/toolscript/host"
)

// Exec is the unified facade for code execution against a host client.
// It combines model resolution, catalog construction, snippet execution,
// and report rendering into a single API.
type Exec struct {
	client   host.Client
	executor code.Executor
	opts     Options
}

// New creates a new Exec instance with the given options.
func New(opts Options) (*Exec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	executor, err := code.NewDefaultExecutor(code.Config{
		Engine:       opts.Engine,
		Timeout:      opts.Timeout,
		MaxToolCalls: opts.MaxToolCalls,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Exec{
		client:   opts.Client,
		executor: executor,
		opts:     opts,
	}, nil
}

// Execute runs one snippet and returns its structured outcome together
// with the rendered report. The host's default model is resolved per
// request; session and message identifiers are minted unless the Options
// pin a session.
//
// Snippet failures land inside the Response; the error return is
// reserved for configuration, catalog, and model-resolution failures.
func (e *Exec) Execute(ctx context.Context, params Params) (*Response, error) {
	directory := e.opts.Directory
	if params.Directory != "" {
		directory = params.Directory
	}

	model, err := e.resolveModel(ctx, directory)
	if err != nil {
		return nil, err
	}

	sessionID := e.opts.SessionID
	if sessionID == "" {
		sessionID = "ses_" + uuid.New().String()
	}
	messageID := "msg_" + uuid.New().String()

	if params.ListAvailable {
		listing, err := e.listing(ctx, model, directory)
		if err != nil {
			return nil, err
		}
		return &Response{
			SessionID: sessionID,
			MessageID: messageID,
			Model:     model,
			Report:    listing,
		}, nil
	}

	ec := code.Context{
		SessionID:  sessionID,
		MessageID:  messageID,
		ProviderID: model.ProviderID,
		ModelID:    model.ModelID,
		Agent:      e.opts.Agent,
		Directory:  directory,
		Client:     e.client,
	}

	result, err := e.executor.Execute(ctx, ec, code.ExecuteParams{
		Code:         params.Code,
		Timeout:      params.Timeout,
		MaxToolCalls: params.MaxToolCalls,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		SessionID: sessionID,
		MessageID: messageID,
		Model:     model,
		Result:    &result,
		Report:    code.FormatResult(result),
	}, nil
}

// Capabilities builds a fresh catalog and renders the capability listing:
// every tool signature, the agents, and the skills currently visible to
// the configured client.
func (e *Exec) Capabilities(ctx context.Context) (string, error) {
	model, err := e.resolveModel(ctx, e.opts.Directory)
	if err != nil {
		return "", err
	}
	return e.listing(ctx, model, e.opts.Directory)
}

func (e *Exec) resolveModel(ctx context.Context, directory string) (host.ModelRef, error) {
	ref, err := e.client.ResolveDefaultModel(ctx, directory)
	if err != nil {
		return host.ModelRef{}, fmt.Errorf("%w: %v", code.ErrModelResolution, err)
	}
	return ref, nil
}

func (e *Exec) listing(ctx context.Context, model host.ModelRef, directory string) (string, error) {
	cat, err := catalog.Build(ctx, e.client, model.ProviderID, model.ModelID, directory)
	if err != nil {
		return "", fmt.Errorf("%w: %v", code.ErrCatalog, err)
	}
	return catalog.Listing(cat), nil
}
