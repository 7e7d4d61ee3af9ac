package host

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ModePrimary is the agent mode of the top-level orchestrator.
const ModePrimary = "primary"

// Tool is a raw tool descriptor as supplied by the host. It embeds the MCP
// tool definition (name, description, JSON schemas) and adds the namespace
// stamped by aggregation.
type Tool struct {
	mcp.Tool

	// Namespace identifies the client that contributed this tool.
	// Empty for tools fetched from a single client.
	Namespace string `json:"namespace,omitempty"`
}

// Agent is a raw agent descriptor as supplied by the host.
type Agent struct {
	// Name is the agent's identifier.
	Name string `json:"name"`

	// Description summarizes what the agent does.
	Description string `json:"description,omitempty"`

	// Mode is the agent's invocation mode. The mode "primary" marks the
	// top-level orchestrator, which must not be re-targeted from scripts.
	Mode string `json:"mode,omitempty"`
}

// Skill is a raw skill descriptor as supplied by the host.
type Skill struct {
	// Name is the skill's identifier.
	Name string `json:"name"`

	// Description summarizes what the skill does.
	Description string `json:"description,omitempty"`
}

// ToolRequest identifies one tool invocation: the session it belongs to and
// the tool's original name with its argument mapping.
type ToolRequest struct {
	// SessionID identifies the host session issuing the call.
	SessionID string `json:"sessionID"`

	// MessageID identifies the message within the session.
	MessageID string `json:"messageID"`

	// ProviderID and ModelID identify the model the session runs against.
	ProviderID string `json:"providerID"`
	ModelID    string `json:"modelID"`

	// Agent is the active agent name for the session.
	Agent string `json:"agent,omitempty"`

	// ToolID is the tool's original name, exactly as fetched.
	ToolID string `json:"toolID"`

	// Args is the argument mapping passed to the tool.
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the host's response to a single tool invocation.
type ToolResult struct {
	// Output is the textual output of the tool. Empty when the tool
	// produced none.
	Output string `json:"output"`
}

// ModelRef identifies a provider/model pair.
type ModelRef struct {
	ProviderID string `json:"providerID"`
	ModelID    string `json:"modelID"`
}
