package ports

import (
	"context"

	"triagelock/domain/schema"
)

// Generator is the outbound contract for the external model call: text
// plus a schema constraint in, raw JSON text out. One blocking round trip,
// no internal retry; failures surface as errors and are terminal for the
// attempt.
type Generator interface {
	Generate(ctx context.Context, text string, s schema.Schema, instruction string) (string, error)
}
