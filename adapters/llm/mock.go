package llm

import (
	"context"
	"sync"

	"triagelock/domain/schema"
)

// MockGenerator is a canned Generator for tests and the mock provider. Set
// Response or Err per test; by default it fabricates a record that passes
// validation for the requested schema.
type MockGenerator struct {
	Response string
	Err      error

	mu        sync.Mutex
	callCount int
	lastText  string
}

// NewMockGenerator creates a mock with default behavior
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) Generate(_ context.Context, text string, s schema.Schema, _ string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastText = text
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	rec := schema.Record{Schema: s, Values: defaultValues(s)}
	out, err := rec.MarshalOrdered("")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CallCount returns how many times Generate has been invoked
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastText returns the input text of the most recent call
func (m *MockGenerator) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText
}

func defaultValues(s schema.Schema) map[string]any {
	values := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		switch f.Kind {
		case schema.KindEnum:
			values[f.Name] = f.Allowed[0]
		case schema.KindStringList:
			values[f.Name] = []any{"mock item"}
		case schema.KindFloat:
			values[f.Name] = 0.5
		case schema.KindInt:
			values[f.Name] = int64(1)
		default:
			values[f.Name] = "mock " + f.Name
		}
	}
	return values
}
