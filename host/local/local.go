// Package local provides an in-process host client backed by registered
// handler functions. It is the client used by tests, examples, and the CLI's
// built-in demo toolset.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/toolscript/host"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandlerFunc is the function signature for tool handlers.
type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// ToolDef defines a local tool with its handler.
type ToolDef struct {
	Name         string
	Title        string
	Description  string
	InputSchema  map[string]any
	OutputSchema map[string]any
	Annotations  *mcp.ToolAnnotations
	Handler      HandlerFunc
}

// Client implements the host.Client interface over in-process handlers.
type Client struct {
	mu               sync.RWMutex
	tools            map[string]ToolDef
	agents           []host.Agent
	skills           []host.Skill
	model            host.ModelRef
	modelSet         bool
	providerDefaults []host.ModelRef
}

// New creates a new local client with no registered capabilities.
func New() *Client {
	return &Client{
		tools: make(map[string]ToolDef),
	}
}

var _ host.Client = (*Client)(nil)

// RegisterTool registers a tool handler under the given name.
func (c *Client) RegisterTool(name string, def ToolDef) {
	if def.Name == "" {
		def.Name = name
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tools[name] = def
}

// UnregisterTool removes a tool handler.
func (c *Client) UnregisterTool(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tools, name)
}

// RegisterAgent adds an agent descriptor.
func (c *Client) RegisterAgent(a host.Agent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agents = append(c.agents, a)
}

// RegisterSkill adds a skill descriptor. Skills have no invocation path;
// registration exists so the listing surface can be exercised.
func (c *Client) RegisterSkill(s host.Skill) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skills = append(c.skills, s)
}

// SetDefaultModel sets the configured default provider/model pair.
func (c *Client) SetDefaultModel(ref host.ModelRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = ref
	c.modelSet = true
}

// AddProviderDefault appends an entry to the provider-default table used as
// a fallback when no default model is configured.
func (c *Client) AddProviderDefault(ref host.ModelRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providerDefaults = append(c.providerDefaults, ref)
}

// FetchTools returns the registered tools sorted by name.
func (c *Client) FetchTools(_ context.Context, _, _, _ string) ([]host.Tool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]host.Tool, 0, len(names))
	for _, name := range names {
		def := c.tools[name]
		out = append(out, host.Tool{
			Tool: mcp.Tool{
				Name:         def.Name,
				Title:        def.Title,
				Description:  def.Description,
				InputSchema:  def.InputSchema,
				OutputSchema: def.OutputSchema,
				Annotations:  def.Annotations,
			},
		})
	}
	return out, nil
}

// FetchAgents returns the registered agents.
func (c *Client) FetchAgents(_ context.Context) ([]host.Agent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]host.Agent, len(c.agents))
	copy(out, c.agents)
	return out, nil
}

// FetchSkills returns the registered skills. Empty unless skills were
// explicitly registered.
func (c *Client) FetchSkills(_ context.Context) ([]host.Skill, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]host.Skill, len(c.skills))
	copy(out, c.skills)
	return out, nil
}

// ExecuteTool invokes a registered tool handler. Non-string handler results
// are JSON-encoded into the output.
func (c *Client) ExecuteTool(ctx context.Context, req host.ToolRequest) (host.ToolResult, error) {
	c.mu.RLock()
	def, ok := c.tools[req.ToolID]
	c.mu.RUnlock()

	if !ok || def.Handler == nil {
		return host.ToolResult{}, fmt.Errorf("%w: %s", host.ErrToolNotFound, req.ToolID)
	}

	value, err := def.Handler(ctx, req.Args)
	if err != nil {
		return host.ToolResult{}, err
	}
	return host.ToolResult{Output: renderOutput(value)}, nil
}

// ResolveDefaultModel returns the configured default model, falling back to
// the first entry of the provider-default table.
func (c *Client) ResolveDefaultModel(_ context.Context, _ string) (host.ModelRef, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.modelSet {
		return c.model, nil
	}
	if len(c.providerDefaults) > 0 {
		return c.providerDefaults[0], nil
	}
	return host.ModelRef{}, host.ErrNoDefaultModel
}

func renderOutput(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
