package llm

import (
	"fmt"
	"strings"

	"triagelock/domain/schema"
)

// ContractLines renders the schema as a field-per-line contract embedded in
// the system message. Providers that only enforce "valid JSON" (OpenAI
// json_object mode) rely on this text to pin the exact shape.
func ContractLines(s schema.Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Return a single JSON object with exactly these fields:\n")
	for _, f := range s.Fields {
		switch f.Kind {
		case schema.KindEnum:
			fmt.Fprintf(&b, "- %q: one of %s\n", f.Name, quoteList(f.Allowed))
		case schema.KindStringList:
			fmt.Fprintf(&b, "- %q: array of strings\n", f.Name)
		case schema.KindFloat:
			fmt.Fprintf(&b, "- %q: number\n", f.Name)
		case schema.KindInt:
			fmt.Fprintf(&b, "- %q: integer\n", f.Name)
		default:
			fmt.Fprintf(&b, "- %q: string\n", f.Name)
		}
	}
	b.WriteString("Do not add fields, do not omit fields, do not wrap the object in markdown.")
	return b.String()
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

// ResponseSchema builds the Gemini responseSchema document for a domain
// schema. Gemini enforces this server-side, so the shape here is the real
// constraint; propertyOrdering keeps output fields in declaration order.
func ResponseSchema(s schema.Schema) map[string]any {
	props := make(map[string]any, len(s.Fields))
	required := make([]string, 0, len(s.Fields))
	ordering := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = fieldSchema(f)
		required = append(required, f.Name)
		ordering = append(ordering, f.Name)
	}
	return map[string]any{
		"type":             "OBJECT",
		"properties":       props,
		"required":         required,
		"propertyOrdering": ordering,
	}
}

func fieldSchema(f schema.Field) map[string]any {
	switch f.Kind {
	case schema.KindEnum:
		return map[string]any{"type": "STRING", "enum": f.Allowed}
	case schema.KindStringList:
		return map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING"},
		}
	case schema.KindFloat:
		return map[string]any{"type": "NUMBER"}
	case schema.KindInt:
		return map[string]any{"type": "INTEGER"}
	default:
		return map[string]any{"type": "STRING"}
	}
}
