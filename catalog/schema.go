package catalog

import (
	"encoding/json"
	"sort"
)

// ParametersFromSchema converts a raw JSON-schema-like value into an ordered
// parameter list. The conversion is tolerant: anything that does not look
// like an object schema with properties yields an empty list, a property
// without a type defaults to "string", and unrecognized constructs are
// ignored rather than rejected.
func ParametersFromSchema(schema any) []Parameter {
	m, ok := schemaMap(schema)
	if !ok {
		return nil
	}
	props, ok := m["properties"].(map[string]any)
	if !ok {
		return nil
	}
	return convertProperties(props, stringSet(m["required"]))
}

// schemaMap coerces the raw schema into a map. Schemas may arrive as
// map[string]any, raw JSON bytes, or a typed schema struct; struct values
// go through a JSON round trip.
func schemaMap(schema any) (map[string]any, bool) {
	switch v := schema.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	case json.RawMessage:
		return unmarshalMap(v)
	case []byte:
		return unmarshalMap(v)
	default:
		b, err := json.Marshal(schema)
		if err != nil {
			return nil, false
		}
		return unmarshalMap(b)
	}
}

func unmarshalMap(b []byte) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, false
	}
	return m, true
}

func convertProperties(props map[string]any, required map[string]bool) []Parameter {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Parameter, 0, len(names))
	for _, name := range names {
		spec, _ := props[name].(map[string]any)
		out = append(out, convertParameter(name, spec, required[name]))
	}
	return out
}

func convertParameter(name string, spec map[string]any, required bool) Parameter {
	p := Parameter{
		Name:     name,
		Type:     "string",
		Required: required,
	}
	if spec == nil {
		return p
	}

	switch t := spec["type"].(type) {
	case string:
		if t != "" {
			p.Type = t
		}
	case []any:
		// Union types keep their first named member.
		for _, member := range t {
			if s, ok := member.(string); ok && s != "" {
				p.Type = s
				break
			}
		}
	}

	if d, ok := spec["description"].(string); ok {
		p.Description = d
	}
	if values, ok := spec["enum"].([]any); ok {
		for _, v := range values {
			if s, ok := v.(string); ok {
				p.Enum = append(p.Enum, s)
			}
		}
	}
	if items, ok := spec["items"].(map[string]any); ok {
		item := convertParameter("", items, false)
		p.Items = &item
	}
	if props, ok := spec["properties"].(map[string]any); ok {
		p.Properties = convertProperties(props, stringSet(spec["required"]))
	}
	return p
}

// stringSet collects the string members of a raw required list.
func stringSet(raw any) map[string]bool {
	out := make(map[string]bool)
	switch values := raw.(type) {
	case []any:
		for _, v := range values {
			if s, ok := v.(string); ok {
				out[s] = true
			}
		}
	case []string:
		for _, s := range values {
			out[s] = true
		}
	}
	return out
}
