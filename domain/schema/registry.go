package schema

import (
	"fmt"

	"triagelock/internal/errors"
)

// Registry maps Domain identifiers to their Schemas. It is assembled once
// at process start and is read-only afterwards; registration order is the
// iteration order other components observe.
type Registry struct {
	order   []Domain
	schemas map[Domain]Schema
}

// NewRegistry builds a registry from the given schemas, validating each
// contract's internal invariants.
func NewRegistry(schemas ...Schema) (*Registry, error) {
	r := &Registry{schemas: make(map[Domain]Schema, len(schemas))}
	for _, s := range schemas {
		if s.ID == "" {
			return nil, errors.ConfigInvalid("schema has empty domain id")
		}
		if _, dup := r.schemas[s.ID]; dup {
			return nil, errors.ConfigInvalid(fmt.Sprintf("domain %q registered twice", s.ID))
		}
		if err := checkSchema(s); err != nil {
			return nil, err
		}
		r.order = append(r.order, s.ID)
		r.schemas[s.ID] = s
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for compile-time schema tables
func MustNewRegistry(schemas ...Schema) *Registry {
	r, err := NewRegistry(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}

func checkSchema(s Schema) error {
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.ConfigInvalid(fmt.Sprintf("domain %q has a field with no name", s.ID))
		}
		if seen[f.Name] {
			return errors.ConfigInvalid(fmt.Sprintf("domain %q declares field %q twice", s.ID, f.Name))
		}
		seen[f.Name] = true

		if f.Kind == KindEnum {
			if len(f.Allowed) == 0 {
				return errors.ConfigInvalid(fmt.Sprintf("domain %q enum field %q has no allowed values", s.ID, f.Name))
			}
			values := make(map[string]bool, len(f.Allowed))
			for _, v := range f.Allowed {
				if values[v] {
					return errors.ConfigInvalid(fmt.Sprintf("domain %q enum field %q repeats value %q", s.ID, f.Name, v))
				}
				values[v] = true
			}
		} else if len(f.Allowed) > 0 {
			return errors.ConfigInvalid(fmt.Sprintf("domain %q field %q declares allowed values but is not an enum", s.ID, f.Name))
		}
	}
	return nil
}

// Lookup returns the Schema for a domain, or UnknownDomain
func (r *Registry) Lookup(d Domain) (Schema, error) {
	s, ok := r.schemas[d]
	if !ok {
		return Schema{}, errors.UnknownDomain(string(d))
	}
	return s, nil
}

// Domains returns all registered domains in registration order
func (r *Registry) Domains() []Domain {
	out := make([]Domain, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered domains
func (r *Registry) Len() int {
	return len(r.order)
}
