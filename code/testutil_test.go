package code

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/toolscript/host"
)

// mockClient implements host.Client for testing.
type mockClient struct {
	mu sync.Mutex

	// Configurable returns
	tools      []host.Tool
	toolsErr   error
	agents     []host.Agent
	agentsErr  error
	skills     []host.Skill
	skillsErr  error
	execOutput string
	execErr    error
	execFn     func(req host.ToolRequest) (host.ToolResult, error)
	model      host.ModelRef
	modelErr   error

	// Call tracking
	execCalls  []host.ToolRequest
	modelCalls []string
}

func (m *mockClient) FetchTools(_ context.Context, _, _, _ string) ([]host.Tool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tools, m.toolsErr
}

func (m *mockClient) FetchAgents(_ context.Context) ([]host.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.agents, m.agentsErr
}

func (m *mockClient) FetchSkills(_ context.Context) ([]host.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.skills, m.skillsErr
}

func (m *mockClient) ExecuteTool(_ context.Context, req host.ToolRequest) (host.ToolResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.execCalls = append(m.execCalls, req)
	if m.execFn != nil {
		return m.execFn(req)
	}
	return host.ToolResult{Output: m.execOutput}, m.execErr
}

func (m *mockClient) ResolveDefaultModel(_ context.Context, directory string) (host.ModelRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modelCalls = append(m.modelCalls, directory)
	return m.model, m.modelErr
}

// namedTool builds a minimal host tool for catalog fixtures.
func namedTool(name string) host.Tool {
	return host.Tool{Tool: mcp.Tool{Name: name}}
}

// mockEngine implements Engine for testing.
type mockEngine struct {
	mu sync.Mutex

	// Configurable returns
	executeResult Result
	executeErr    error

	// Call tracking
	executeCalls []engineCall
}

type engineCall struct {
	ctx    context.Context
	params ExecuteParams
	env    Env
}

func (m *mockEngine) Execute(ctx context.Context, params ExecuteParams, env Env) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executeCalls = append(m.executeCalls, engineCall{ctx, params, env})
	return m.executeResult, m.executeErr
}

// mockLogger implements Logger for testing.
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *mockLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}
