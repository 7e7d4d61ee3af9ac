// Package catalog normalizes the host's raw tool, agent, and skill
// descriptions into uniform capability descriptors and renders the
// human-readable capability listing.
package catalog

import (
	"context"
	"fmt"

	"github.com/jonwraymond/toolscript/host"
)

// Kind tags the capability kind of a Descriptor.
type Kind string

// Capability kinds.
const (
	KindTool  Kind = "tool"
	KindAgent Kind = "agent"
	KindSkill Kind = "skill"
)

// Parameter describes one parameter of a tool. Object and array parameters
// nest further Parameters.
type Parameter struct {
	// Name is the parameter name. Empty for array item specs.
	Name string

	// Type is the schema type: string, number, integer, boolean, array,
	// object, or anything else (rendered as unknown).
	Type string

	// Description documents the parameter, when the schema provides one.
	Description string

	// Required reports whether the schema lists the parameter as required.
	Required bool

	// Enum holds the allowed string values, when the schema declares them.
	Enum []string

	// Items describes array elements.
	Items *Parameter

	// Properties describes object members, ordered by name.
	Properties []Parameter
}

// Descriptor is the uniform description of one capability. Immutable once
// built; catalogs are rebuilt fresh on every execution request.
type Descriptor struct {
	// Kind is the capability kind.
	Kind Kind

	// Name is the capability's original name, exactly as the host supplied
	// it. It may contain characters illegal in a binding name; see
	// SanitizeName.
	Name string

	// Description summarizes the capability.
	Description string

	// Parameters are the tool's parameters, ordered by name.
	// Empty for agents and skills.
	Parameters []Parameter

	// Mode is the agent's invocation mode. Empty for tools and skills.
	Mode string
}

// Catalog holds the normalized capability descriptors of one request.
type Catalog struct {
	Tools  []Descriptor
	Agents []Descriptor
	Skills []Descriptor
}

// Build fetches the raw catalogs from the host client and normalizes them.
// Any fetch failure aborts the whole build; there is no partial catalog.
// Agents in primary mode are excluded so scripts cannot re-target the
// top-level orchestrator.
func Build(ctx context.Context, client host.Client, providerID, modelID, directory string) (Catalog, error) {
	rawTools, err := client.FetchTools(ctx, providerID, modelID, directory)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetching tools: %w", err)
	}
	rawAgents, err := client.FetchAgents(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetching agents: %w", err)
	}
	rawSkills, err := client.FetchSkills(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetching skills: %w", err)
	}

	c := Catalog{
		Tools:  make([]Descriptor, 0, len(rawTools)),
		Agents: make([]Descriptor, 0, len(rawAgents)),
		Skills: make([]Descriptor, 0, len(rawSkills)),
	}
	for _, t := range rawTools {
		c.Tools = append(c.Tools, NormalizeTool(t))
	}
	for _, a := range rawAgents {
		if a.Mode == host.ModePrimary {
			continue
		}
		c.Agents = append(c.Agents, Descriptor{
			Kind:        KindAgent,
			Name:        a.Name,
			Description: a.Description,
			Mode:        a.Mode,
		})
	}
	for _, s := range rawSkills {
		c.Skills = append(c.Skills, Descriptor{
			Kind:        KindSkill,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return c, nil
}

// NormalizeTool converts one raw tool into a Descriptor, reading its
// JSON-schema-like input schema into Parameters.
func NormalizeTool(t host.Tool) Descriptor {
	return Descriptor{
		Kind:        KindTool,
		Name:        t.Name,
		Description: t.Description,
		Parameters:  ParametersFromSchema(t.InputSchema),
	}
}
