package jsengine

import (
	"context"
	"sync"

	"github.com/jonwraymond/toolscript/catalog"
	"github.com/jonwraymond/toolscript/code"
	"github.com/jonwraymond/toolscript/host"
)

// mockClient implements host.Client for engine tests. Only ExecuteTool
// matters here; the fetchers return empty sets.
type mockClient struct {
	mu sync.Mutex

	// Configurable returns
	execOutput string
	execErr    error
	execFn     func(req host.ToolRequest) (host.ToolResult, error)

	// Call tracking
	execCalls []host.ToolRequest
}

func (m *mockClient) FetchTools(_ context.Context, _, _, _ string) ([]host.Tool, error) {
	return nil, nil
}

func (m *mockClient) FetchAgents(_ context.Context) ([]host.Agent, error) {
	return nil, nil
}

func (m *mockClient) FetchSkills(_ context.Context) ([]host.Skill, error) {
	return nil, nil
}

func (m *mockClient) ExecuteTool(_ context.Context, req host.ToolRequest) (host.ToolResult, error) {
	m.mu.Lock()
	m.execCalls = append(m.execCalls, req)
	m.mu.Unlock()
	if m.execFn != nil {
		return m.execFn(req)
	}
	if m.execErr != nil {
		return host.ToolResult{}, m.execErr
	}
	return host.ToolResult{Output: m.execOutput}, nil
}

func (m *mockClient) ResolveDefaultModel(_ context.Context, _ string) (host.ModelRef, error) {
	return host.ModelRef{ProviderID: "prov", ModelID: "model"}, nil
}

func toolDescriptor(name string) catalog.Descriptor {
	return catalog.Descriptor{Kind: catalog.KindTool, Name: name}
}

func agentDescriptor(name string) catalog.Descriptor {
	return catalog.Descriptor{Kind: catalog.KindAgent, Name: name}
}

func skillDescriptor(name string) catalog.Descriptor {
	return catalog.Descriptor{Kind: catalog.KindSkill, Name: name}
}

// testEnv assembles an execution environment over the given catalog with
// a fixed request identity.
func testEnv(client host.Client, cat catalog.Catalog, maxCalls int) code.Env {
	ec := code.Context{
		SessionID:  "ses_1",
		MessageID:  "msg_1",
		ProviderID: "anthropic",
		ModelID:    "claude-sonnet",
		Agent:      "builder",
		Directory:  "/work",
		Client:     client,
	}
	rec := code.NewRecorder(maxCalls)
	return code.Env{Context: ec, Bindings: code.NewBindings(cat, ec, rec), Recorder: rec}
}

// emptyEnv is an environment with no capabilities at all.
func emptyEnv() code.Env {
	return testEnv(&mockClient{}, catalog.Catalog{}, 0)
}
