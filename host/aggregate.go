package host

import (
	"context"
	"fmt"
	"strings"
)

// Aggregator is a Client that merges the catalogs of every client in a
// Registry. Tool names are prefixed with the owning client's name so that
// execution can be routed back to it.
type Aggregator struct {
	registry *Registry
}

// NewAggregator creates a new aggregating client over the registry.
func NewAggregator(registry *Registry) *Aggregator {
	return &Aggregator{registry: registry}
}

var _ Client = (*Aggregator)(nil)

// FetchTools returns the tools of every registered client, with each tool's
// name prefixed by the client name and its Namespace stamped. Any fetch
// failure aborts the whole operation.
func (a *Aggregator) FetchTools(ctx context.Context, providerID, modelID, directory string) ([]Tool, error) {
	all := make([]Tool, 0)
	for _, name := range a.registry.Names() {
		c, ok := a.registry.Get(name)
		if !ok {
			continue
		}
		tools, err := c.FetchTools(ctx, providerID, modelID, directory)
		if err != nil {
			return nil, fmt.Errorf("fetching tools from %q: %w", name, err)
		}
		for _, t := range tools {
			t.Name = FormatToolID(name, t.Name)
			if t.Namespace == "" {
				t.Namespace = name
			}
			all = append(all, t)
		}
	}
	return all, nil
}

// FetchAgents returns the agents of every registered client.
func (a *Aggregator) FetchAgents(ctx context.Context) ([]Agent, error) {
	all := make([]Agent, 0)
	for _, name := range a.registry.Names() {
		c, ok := a.registry.Get(name)
		if !ok {
			continue
		}
		agents, err := c.FetchAgents(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching agents from %q: %w", name, err)
		}
		all = append(all, agents...)
	}
	return all, nil
}

// FetchSkills returns the skills of every registered client.
func (a *Aggregator) FetchSkills(ctx context.Context) ([]Skill, error) {
	all := make([]Skill, 0)
	for _, name := range a.registry.Names() {
		c, ok := a.registry.Get(name)
		if !ok {
			continue
		}
		skills, err := c.FetchSkills(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching skills from %q: %w", name, err)
		}
		all = append(all, skills...)
	}
	return all, nil
}

// ExecuteTool routes a tool invocation to the client named by the tool ID
// prefix. The request forwarded to the owning client carries the bare tool
// name.
func (a *Aggregator) ExecuteTool(ctx context.Context, req ToolRequest) (ToolResult, error) {
	clientName, tool, err := ParseToolID(req.ToolID)
	if err != nil {
		return ToolResult{}, err
	}
	if clientName == "" {
		return ToolResult{}, fmt.Errorf("%w: %q has no client prefix", ErrInvalidToolID, req.ToolID)
	}

	c, ok := a.registry.Get(clientName)
	if !ok {
		return ToolResult{}, fmt.Errorf("%w: no client %q", ErrToolNotFound, clientName)
	}
	req.ToolID = tool
	return c.ExecuteTool(ctx, req)
}

// ResolveDefaultModel asks each client in sorted name order and returns the
// first successful resolution.
func (a *Aggregator) ResolveDefaultModel(ctx context.Context, directory string) (ModelRef, error) {
	for _, name := range a.registry.Names() {
		c, ok := a.registry.Get(name)
		if !ok {
			continue
		}
		ref, err := c.ResolveDefaultModel(ctx, directory)
		if err == nil {
			return ref, nil
		}
	}
	return ModelRef{}, ErrNoDefaultModel
}

// ParseToolID splits an aggregated tool ID into client name and tool name.
// IDs without a separator yield an empty client name.
func ParseToolID(id string) (clientName, tool string, err error) {
	if id == "" {
		return "", "", ErrInvalidToolID
	}
	before, after, found := strings.Cut(id, ":")
	if !found {
		return "", id, nil
	}
	if before == "" || after == "" {
		return "", "", ErrInvalidToolID
	}
	return before, after, nil
}

// FormatToolID builds an aggregated tool ID from client and tool name.
func FormatToolID(clientName, tool string) string {
	if clientName == "" {
		return tool
	}
	return fmt.Sprintf("%s:%s", clientName, tool)
}
