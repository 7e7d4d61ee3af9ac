package catalog

import (
	"fmt"
	"strings"
)

// DisplayType maps a schema type to the display type used in signatures.
func DisplayType(schemaType string) string {
	switch schemaType {
	case "string":
		return "string"
	case "number", "integer":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		return "unknown[]"
	case "object":
		return "Record<string, unknown>"
	default:
		return "unknown"
	}
}

// Signature renders a tool descriptor as the async function signature shown
// to script authors. Optional parameters carry a ? suffix; tools without
// parameters render with an empty parameter list.
func Signature(d Descriptor) string {
	name := SanitizeName(d.Name)
	if len(d.Parameters) == 0 {
		return fmt.Sprintf("async function %s(): Promise<string>", name)
	}

	parts := make([]string, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		pname := p.Name
		if !p.Required {
			pname += "?"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", pname, DisplayType(p.Type)))
	}
	return fmt.Sprintf("async function %s(args: { %s }): Promise<string>", name, strings.Join(parts, ", "))
}

// Listing renders the complete capability listing: tool signatures, agents
// (annotated as not directly callable), skills when any exist, and the
// explicit-return usage note. Empty sections are omitted.
func Listing(c Catalog) string {
	var sections []string

	if len(c.Tools) > 0 {
		var sb strings.Builder
		sb.WriteString("Available Tools:\n")
		for _, d := range c.Tools {
			sb.WriteString("\n")
			sb.WriteString(Signature(d))
			sb.WriteString("\n")
			if d.Description != "" {
				sb.WriteString("    " + d.Description + "\n")
			}
		}
		sections = append(sections, sb.String())
	}

	if len(c.Agents) > 0 {
		var sb strings.Builder
		sb.WriteString("Available Agents (not directly callable):\n\n")
		for _, d := range c.Agents {
			sb.WriteString(itemLine(d))
		}
		sections = append(sections, sb.String())
	}

	if len(c.Skills) > 0 {
		var sb strings.Builder
		sb.WriteString("Available Skills:\n\n")
		for _, d := range c.Skills {
			sb.WriteString(itemLine(d))
		}
		sections = append(sections, sb.String())
	}

	sections = append(sections,
		"Note: capabilities are async functions; await them. A result is produced only by an explicit return statement.\n")

	return strings.Join(sections, "\n")
}

func itemLine(d Descriptor) string {
	if d.Description == "" {
		return "- " + d.Name + "\n"
	}
	return "- " + d.Name + ": " + d.Description + "\n"
}
