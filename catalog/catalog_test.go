package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jonwraymond/toolscript/host"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// fakeClient implements host.Client with canned responses.
type fakeClient struct {
	tools     []host.Tool
	agents    []host.Agent
	skills    []host.Skill
	toolsErr  error
	agentsErr error
	skillsErr error
}

func (f *fakeClient) FetchTools(_ context.Context, _, _, _ string) ([]host.Tool, error) {
	return f.tools, f.toolsErr
}

func (f *fakeClient) FetchAgents(_ context.Context) ([]host.Agent, error) {
	return f.agents, f.agentsErr
}

func (f *fakeClient) FetchSkills(_ context.Context) ([]host.Skill, error) {
	return f.skills, f.skillsErr
}

func (f *fakeClient) ExecuteTool(_ context.Context, _ host.ToolRequest) (host.ToolResult, error) {
	return host.ToolResult{}, nil
}

func (f *fakeClient) ResolveDefaultModel(_ context.Context, _ string) (host.ModelRef, error) {
	return host.ModelRef{}, nil
}

func schemaTool(name, description string, schema map[string]any) host.Tool {
	return host.Tool{Tool: mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}}
}

func TestBuild_NormalizesTools(t *testing.T) {
	client := &fakeClient{
		tools: []host.Tool{
			schemaTool("read-file", "Read the contents of a file", map[string]any{
				"type": "object",
				"properties": map[string]any{
					"filePath": map[string]any{
						"type":        "string",
						"description": "Path to read",
					},
				},
				"required": []any{"filePath"},
			}),
		},
	}

	cat, err := Build(context.Background(), client, "anthropic", "claude", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cat.Tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(cat.Tools))
	}

	d := cat.Tools[0]
	if d.Kind != KindTool {
		t.Errorf("expected kind %q, got %q", KindTool, d.Kind)
	}
	if d.Name != "read-file" {
		t.Errorf("expected original name read-file, got %q", d.Name)
	}
	if len(d.Parameters) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(d.Parameters))
	}
	p := d.Parameters[0]
	if p.Name != "filePath" || p.Type != "string" || !p.Required {
		t.Errorf("unexpected parameter: %+v", p)
	}
	if p.Description != "Path to read" {
		t.Errorf("expected description to carry over, got %q", p.Description)
	}
}

func TestBuild_ExcludesPrimaryAgents(t *testing.T) {
	client := &fakeClient{
		agents: []host.Agent{
			{Name: "build", Mode: host.ModePrimary},
			{Name: "review", Description: "Reviews changes", Mode: "subagent"},
			{Name: "explain", Mode: "all"},
		},
	}

	cat, err := Build(context.Background(), client, "p", "m", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cat.Agents) != 2 {
		t.Fatalf("expected 2 agents after excluding primary, got %d", len(cat.Agents))
	}
	for _, a := range cat.Agents {
		if a.Mode == host.ModePrimary {
			t.Errorf("primary agent %q leaked into catalog", a.Name)
		}
		if a.Kind != KindAgent {
			t.Errorf("expected kind %q, got %q", KindAgent, a.Kind)
		}
	}
	if cat.Agents[0].Name != "review" || cat.Agents[1].Name != "explain" {
		t.Errorf("unexpected agent order: %+v", cat.Agents)
	}
}

func TestBuild_EmptySkillSource(t *testing.T) {
	cat, err := Build(context.Background(), &fakeClient{}, "p", "m", "")
	if err != nil {
		t.Fatalf("expected no error for empty skill source, got %v", err)
	}
	if len(cat.Skills) != 0 {
		t.Errorf("expected no skills, got %d", len(cat.Skills))
	}
}

func TestBuild_SkillsPassThrough(t *testing.T) {
	client := &fakeClient{
		skills: []host.Skill{{Name: "changelog", Description: "Summarize changes"}},
	}
	cat, err := Build(context.Background(), client, "p", "m", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cat.Skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(cat.Skills))
	}
	if cat.Skills[0].Kind != KindSkill || cat.Skills[0].Name != "changelog" {
		t.Errorf("unexpected skill descriptor: %+v", cat.Skills[0])
	}
}

func TestBuild_FetchFailureAborts(t *testing.T) {
	fetchErr := errors.New("transport down")

	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"tools", &fakeClient{toolsErr: fetchErr}},
		{"agents", &fakeClient{agentsErr: fetchErr}},
		{"skills", &fakeClient{skillsErr: fetchErr}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Build(context.Background(), tt.client, "p", "m", "")
			if err == nil {
				t.Fatal("expected fetch failure to abort the build")
			}
			if !errors.Is(err, fetchErr) {
				t.Errorf("expected wrapped fetch error, got %v", err)
			}
			if len(cat.Tools) != 0 || len(cat.Agents) != 0 || len(cat.Skills) != 0 {
				t.Errorf("expected no partial catalog, got %+v", cat)
			}
		})
	}
}

func TestBuild_ToolWithoutSchema(t *testing.T) {
	client := &fakeClient{
		tools: []host.Tool{schemaTool("ping", "", nil)},
	}
	cat, err := Build(context.Background(), client, "p", "m", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cat.Tools[0].Parameters) != 0 {
		t.Errorf("expected no parameters for schemaless tool, got %d", len(cat.Tools[0].Parameters))
	}
}
