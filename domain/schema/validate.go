package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"triagelock/internal/errors"
)

// Validate decodes raw model output and checks it against the schema.
// Unknown fields are ignored; every declared field must be present and
// conform to its kind. Validation is idempotent: re-serializing the
// returned Record and validating it again yields an equal Record.
func Validate(raw []byte, s Schema) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return Record{}, errors.JSONDecodeError(err, string(raw))
	}
	// Trailing garbage after the object is still malformed output
	if dec.More() {
		return Record{}, errors.JSONDecodeError(fmt.Errorf("trailing data after JSON object"), string(raw))
	}

	values := make(map[string]any, len(s.Fields))
	var violations []string

	for _, f := range s.Fields {
		rawValue, ok := payload[f.Name]
		if !ok {
			violations = append(violations, fmt.Sprintf("%s: required field missing", f.Name))
			continue
		}
		v, err := coerce(f, rawValue)
		if err != nil {
			violations = append(violations, fmt.Sprintf("%s: %v", f.Name, err))
			continue
		}
		values[f.Name] = v
	}

	if len(violations) > 0 {
		return Record{}, errors.SchemaValidationError(strings.Join(violations, "; "))
	}
	return Record{Schema: s, Values: values}, nil
}

func coerce(f Field, raw any) (any, error) {
	switch f.Kind {
	case KindString:
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %s", jsonTypeName(raw))
		}
		return str, nil

	case KindEnum:
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %s", jsonTypeName(raw))
		}
		for _, allowed := range f.Allowed {
			if str == allowed {
				return str, nil
			}
		}
		return nil, fmt.Errorf("value %q not in allowed set [%s]", str, strings.Join(f.Allowed, ", "))

	case KindStringList:
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("expected array of strings, got %s", jsonTypeName(raw))
		}
		out := make([]string, len(list))
		for i, item := range list {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %s", i, jsonTypeName(item))
			}
			out[i] = str
		}
		return out, nil

	case KindFloat:
		n, ok := raw.(json.Number)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", jsonTypeName(raw))
		}
		v, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", n.String())
		}
		return v, nil

	case KindInt:
		n, ok := raw.(json.Number)
		if !ok {
			return nil, fmt.Errorf("expected integer, got %s", jsonTypeName(raw))
		}
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		// Tolerate a float representation with a zero fractional part
		v, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", n.String())
		}
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt64 {
			return nil, fmt.Errorf("expected integer, got %q", n.String())
		}
		return int64(v), nil

	default:
		return nil, fmt.Errorf("unsupported field kind %v", f.Kind)
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// MarshalOrdered serializes a record's values in schema-declared order.
// encoding/json randomizes nothing but sorts nothing either for maps; the
// export contract requires schema order, so the object is built by hand.
func (r Record) MarshalOrdered(indent string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, fv := range r.OrderedFields() {
		if i > 0 {
			buf.WriteString(",")
		}
		if indent != "" {
			buf.WriteString("\n")
			buf.WriteString(indent)
		}
		key, err := json.Marshal(fv.Field.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		val, err := json.Marshal(fv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	if indent != "" && len(r.Schema.Fields) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
