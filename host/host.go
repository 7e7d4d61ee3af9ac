package host

import (
	"context"
	"errors"
)

// Common errors for host client operations.
var (
	// ErrUnavailable is returned when the host cannot be reached.
	ErrUnavailable = errors.New("host unavailable")

	// ErrToolNotFound is returned when a tool ID does not resolve to a tool.
	ErrToolNotFound = errors.New("tool not found")

	// ErrNoDefaultModel is returned when no usable provider/model pair exists.
	ErrNoDefaultModel = errors.New("no default model configured")

	// ErrClientExists is returned when registering a duplicate client name.
	ErrClientExists = errors.New("client already registered")

	// ErrInvalidToolID is returned for malformed aggregated tool IDs.
	ErrInvalidToolID = errors.New("invalid tool ID format")
)

// Client is the host application's capability surface. It supplies the raw
// tool, agent, and skill catalogs and executes a single tool by name.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods must honor cancellation/deadlines.
// - Errors: use ErrUnavailable/ErrToolNotFound/ErrNoDefaultModel where applicable.
// - Catalog fetches are all-or-nothing: a failure means no partial catalog.
type Client interface {
	// FetchTools returns the raw tool descriptors available for the given
	// provider/model pair. The directory narrows the catalog to a working
	// directory when the host scopes tools per project.
	FetchTools(ctx context.Context, providerID, modelID, directory string) ([]Tool, error)

	// FetchAgents returns the raw agent descriptors known to the host.
	FetchAgents(ctx context.Context) ([]Agent, error)

	// FetchSkills returns the raw skill descriptors known to the host.
	// Hosts without a skill catalog return an empty slice and no error.
	FetchSkills(ctx context.Context) ([]Skill, error)

	// ExecuteTool runs a single tool by its original name with the given
	// arguments and session identifiers.
	ExecuteTool(ctx context.Context, req ToolRequest) (ToolResult, error)

	// ResolveDefaultModel returns the configured default provider/model
	// pair, optionally resolved relative to a working directory.
	ResolveDefaultModel(ctx context.Context, directory string) (ModelRef, error)
}
