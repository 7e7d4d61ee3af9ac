// Package exec provides a unified facade for script execution in the toolscript ecosystem.
//
// The exec package simplifies running snippets by combining model resolution,
// catalog construction, execution, and report rendering into a single, cohesive
// API. It integrates with the host package for the capability surface and with
// code for the underlying execution pipeline.
//
// # Overview
//
// Instead of working with multiple packages directly, users create an [Exec]
// instance bound to a host client and submit snippets:
//
//   - Capability catalogs fetched fresh per request
//   - Default model resolution with session/message identifier minting
//   - Snippet execution with timeout and call-ceiling enforcement
//   - Rendered reports (logs, call trace, result)
//   - Capability listings for prompt construction
//
// # Basic Usage
//
//	// Create a host client with a tool
//	client := local.New()
//	client.RegisterTool("greet", local.ToolDef{
//	    Description: "Greets a user",
//	    InputSchema: map[string]any{
//	        "type": "object",
//	        "properties": map[string]any{
//	            "name": map[string]any{"type": "string"},
//	        },
//	    },
//	    Handler: func(ctx context.Context, args map[string]any) (any, error) {
//	        return fmt.Sprintf("Hello, %s!", args["name"]), nil
//	    },
//	})
//	client.SetDefaultModel(host.ModelRef{ProviderID: "anthropic", ModelID: "claude-sonnet"})
//
//	// Create the facade
//	runner, err := exec.New(exec.Options{Client: client})
//
//	// Execute a snippet
//	resp, err := runner.Execute(ctx, exec.Params{
//	    Code: `return await tools.greet({ name: "World" });`,
//	})
//	fmt.Println(resp.Report)
//
// # Listing Capabilities
//
// The listing surface renders every visible capability the way snippets
// see them, for embedding into a model prompt:
//
//	listing, _ := runner.Capabilities(ctx)
//	// or, through the execution path:
//	resp, _ := runner.Execute(ctx, exec.Params{ListAvailable: true})
//
// # Integration
//
// The exec package integrates with:
//
//   - [github.com/jonwraymond/toolscript/host] for the client boundary
//   - [github.com/jonwraymond/toolscript/catalog] for catalogs and listings
//   - [github.com/jonwraymond/toolscript/code] for the execution pipeline
//   - [github.com/jonwraymond/toolscript/jsengine] for the default engine
package exec
