// Package host defines the boundary with the host application that owns the
// capability catalog and executes tools on behalf of running scripts.
//
// This package defines the core Client interface and provides infrastructure
// for working with one or more host connections:
//
//   - Client interface for capability sources (local, HTTP, custom)
//   - Registry for managing named clients
//   - Aggregator for merging catalogs across clients
//
// # Client Implementations
//
// Clients can be:
//
//   - Local: In-process handlers registered directly (host/local)
//   - Remote: An HTTP host API (host/remote)
//   - Custom: Anything satisfying the Client interface
//
// # Registry
//
// The Registry manages named client instances:
//
//	registry := host.NewRegistry()
//	registry.Register("demo", localClient)
//	registry.Register("prod", remoteClient)
//
// # Aggregator
//
// The Aggregator combines multiple clients behind the Client interface.
// Tool names are prefixed with the owning client's name, and execution is
// routed back by that prefix:
//
//	agg := host.NewAggregator(registry)
//	tools, _ := agg.FetchTools(ctx, provider, model, dir)
//	out, _ := agg.ExecuteTool(ctx, host.ToolRequest{ToolID: "demo:greet", ...})
package host
