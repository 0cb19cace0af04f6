package schema

// Domain identifies one vertical-specific triage context
type Domain string

const (
	DomainHealthcare    Domain = "healthcare"
	DomainIndustrial    Domain = "industrial"
	DomainCybersecurity Domain = "cybersecurity"
	DomainFinancial     Domain = "financial"
	DomainEnergy        Domain = "energy"
)

// FieldKind enumerates the value kinds a schema field may declare
type FieldKind int

const (
	KindString FieldKind = iota
	KindEnum
	KindStringList
	KindFloat
	KindInt
)

func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindStringList:
		return "string_list"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Field is one named slot in a schema. Allowed is populated only for
// KindEnum fields and is ordered.
type Field struct {
	Name    string
	Kind    FieldKind
	Allowed []string
}

// Schema is the closed field contract the model's output must satisfy for
// one Domain. Field order is the display and export order.
type Schema struct {
	ID     Domain
	Label  string // substituted into the model instruction ("healthcare clinical")
	Title  string // human-facing console title ("HCLS Intake Portal")
	Fields []Field

	// Manual-review baseline used for session analytics and ROI projection
	ManualReviewMinutes int
	ManualReviewLabel   string

	// Synthetic demo payloads
	Example  string
	Snippets []string
}

// Field returns the named field and whether it exists
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns field names in schema order
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Record is a validated, schema-conformant result of one analysis.
// Values hold string, []string, float64 or int64 keyed by field name.
// Immutable by convention once returned from Validate.
type Record struct {
	Schema Schema
	Values map[string]any
}

// FieldValue pairs a field with its validated value, in schema order
type FieldValue struct {
	Field Field
	Value any
}

// OrderedFields returns the record's values in schema-declared order
func (r Record) OrderedFields() []FieldValue {
	out := make([]FieldValue, 0, len(r.Schema.Fields))
	for _, f := range r.Schema.Fields {
		out = append(out, FieldValue{Field: f, Value: r.Values[f.Name]})
	}
	return out
}

// TopField returns the first schema field's name and value, used as the
// one-field history summary
func (r Record) TopField() (string, any) {
	if len(r.Schema.Fields) == 0 {
		return "", nil
	}
	name := r.Schema.Fields[0].Name
	return name, r.Values[name]
}
