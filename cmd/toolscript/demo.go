package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/toolscript/host"
	"github.com/jonwraymond/toolscript/host/local"
)

// newDemoClient builds the local toolset used when host.kind is "local".
func newDemoClient() *local.Client {
	client := local.New()
	client.SetDefaultModel(host.ModelRef{ProviderID: "local", ModelID: "demo"})

	client.RegisterTool("echo", local.ToolDef{
		Description: "Returns the given text unchanged",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
			"required": []any{"text"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			text, ok := args["text"].(string)
			if !ok {
				return nil, fmt.Errorf("text must be a string")
			}
			return text, nil
		},
	})

	client.RegisterTool("time", local.ToolDef{
		Description: "Returns the current time in RFC 3339 format",
		InputSchema: map[string]any{"type": "object"},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return time.Now().Format(time.RFC3339), nil
		},
	})

	client.RegisterTool("uppercase", local.ToolDef{
		Description: "Converts text to upper case",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
			"required": []any{"text"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			text, ok := args["text"].(string)
			if !ok {
				return nil, fmt.Errorf("text must be a string")
			}
			return strings.ToUpper(text), nil
		},
	})

	return client
}
