package code

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatResult renders a Result as a human-readable report. Sections
// appear in fixed order (Logs, Tool Calls, then Result or Error); the
// Logs and Tool Calls sections are omitted entirely when empty. Rendering
// never alters the Result.
func FormatResult(res Result) string {
	var sections []string

	if len(res.Logs) > 0 {
		var b strings.Builder
		b.WriteString("Logs:\n")
		for _, line := range res.Logs {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		sections = append(sections, b.String())
	}

	if len(res.ToolCalls) > 0 {
		var b strings.Builder
		b.WriteString("Tool Calls:\n")
		for _, call := range res.ToolCalls {
			b.WriteString(formatCall(call))
			b.WriteByte('\n')
		}
		sections = append(sections, b.String())
	}

	if res.Success {
		sections = append(sections, "Result:\n"+formatValue(res.Value)+"\n")
	} else {
		msg := res.Error
		if msg == "" {
			msg = "unknown error"
		}
		sections = append(sections, "Error:\n"+msg+"\n")
	}

	return strings.Join(sections, "\n")
}

func formatCall(call CallRecord) string {
	status := "OK"
	if call.Error != "" {
		status = "ERROR: " + call.Error
	}
	return fmt.Sprintf("- %s(%s) [%dms] %s", call.Tool, formatArgs(call.Args), call.DurationMs, status)
}

func formatArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(data)
}

// formatValue pretty-prints the snippet's return value, or a placeholder
// when the snippet returned nothing.
func formatValue(v any) string {
	if v == nil {
		return "(no return value)"
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
