package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triagelock/adapters/llm"
	"triagelock/adapters/memory"
	"triagelock/domain/schema"
	"triagelock/domain/signal"
	"triagelock/internal"
	"triagelock/internal/errors"
	"triagelock/models"
)

const industrialInput = "Bearing DE vibration 11.4 mm/s RMS, oil sump temp 94C, fault code ERR-4012"

func newTestService(t *testing.T, gen *llm.MockGenerator) (*TriageService, *models.Session) {
	t.Helper()
	store := memory.NewStore()
	service := NewTriageService(
		schema.DefaultRegistry(),
		signal.NewDefaultMatcher(),
		gen,
		store,
		store,
		internal.NewLogger(internal.LogLevelError),
	)
	session, err := service.NewSession(context.Background(), 10)
	require.NoError(t, err)
	return service, session
}

func TestAnalyzeSuccessDecrementsCredit(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)

	result, err := service.Analyze(context.Background(), session.ID, schema.DomainIndustrial, industrialInput)
	require.NoError(t, err)
	require.NotNil(t, result.Record)
	assert.Nil(t, result.Advisory)
	assert.Equal(t, 9, result.CreditsLeft)
	assert.Equal(t, 1, gen.CallCount())

	history, err := service.History(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Run)
	assert.Equal(t, schema.DomainIndustrial, history[0].Domain)
	assert.Equal(t, "severity_level", history[0].TopField)
	assert.Equal(t, 25, history[0].ManualMinutes)
	assert.NotEmpty(t, history[0].RecordJSON)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)

	for _, input := range []string{"", "   ", "\n\t "} {
		_, err := service.Analyze(context.Background(), session.ID, schema.DomainIndustrial, input)
		assert.True(t, errors.IsEmptyInput(err), "input %q: %v", input, err)
	}
	assert.Equal(t, 0, gen.CallCount(), "empty input must never reach the model")
}

func TestAnalyzeEmptyInputReportedBeforeQuota(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, industrialInput)
		require.NoError(t, err)
	}

	// Both gates would fire; the input gate comes first
	_, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, "   ")
	assert.True(t, errors.IsEmptyInput(err), "got %v", err)
}

func TestAnalyzeUnknownDomain(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)

	_, err := service.Analyze(context.Background(), session.ID, "aerospace", industrialInput)
	assert.True(t, errors.IsUnknownDomain(err))
	assert.Equal(t, 0, gen.CallCount())
}

func TestAnalyzeQuotaExhaustion(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		result, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, industrialInput)
		require.NoError(t, err, "run %d", i+1)
		assert.Equal(t, 9-i, result.CreditsLeft)
	}

	_, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, industrialInput)
	require.True(t, errors.IsQuotaExhausted(err))
	assert.Equal(t, 10, gen.CallCount(), "the exhausted call must not reach the model")

	history, err := service.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, history, 10)
}

func TestAnalyzeTransportErrorKeepsCredit(t *testing.T) {
	gen := llm.NewMockGenerator()
	gen.Err = errors.TransportError(fmt.Errorf("connection refused"))
	service, session := newTestService(t, gen)
	ctx := context.Background()

	_, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, industrialInput)
	require.Equal(t, errors.CodeTransportError, errors.GetCode(err))

	loaded, err := service.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Credits, "failed calls must not consume quota")

	history, err := service.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, history, "failed calls must not enter history")
}

func TestAnalyzeValidationFailureKeepsCredit(t *testing.T) {
	gen := llm.NewMockGenerator()
	gen.Response = `{"severity_level": "Catastrophic"}`
	service, session := newTestService(t, gen)
	ctx := context.Background()

	_, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, industrialInput)
	require.Equal(t, errors.CodeSchemaValidation, errors.GetCode(err))

	loaded, err := service.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Credits)
}

func TestAnalyzeEnumViolationKeepsCredit(t *testing.T) {
	gen := llm.NewMockGenerator()
	gen.Response = `{"triage_priority": "Unknown"}`
	service, session := newTestService(t, gen)
	ctx := context.Background()

	_, err := service.Analyze(ctx, session.ID, schema.DomainHealthcare,
		"Patient 68M, chest pain, BP 88/54, troponin pending, ECG shows STEMI")
	require.Equal(t, errors.CodeSchemaValidation, errors.GetCode(err))
	assert.Contains(t, errors.GetDetail(err), "triage_priority")

	loaded, err := service.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Credits)
}

func TestAnalyzeMalformedOutputKeepsCredit(t *testing.T) {
	gen := llm.NewMockGenerator()
	gen.Response = "this is not json"
	service, session := newTestService(t, gen)
	ctx := context.Background()

	_, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, industrialInput)
	require.Equal(t, errors.CodeJSONDecode, errors.GetCode(err))
	assert.Equal(t, "this is not json", errors.GetDetail(err), "decode failures carry the raw output")

	loaded, err := service.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Credits)
}

func TestAnalyzeMismatchAdvisorySkipsModel(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)

	// Clinical text under the industrial domain
	result, err := service.Analyze(context.Background(), session.ID,
		schema.DomainIndustrial, "Patient 68M, chest pain, BP 88/54, troponin pending, ECG shows STEMI")
	require.NoError(t, err)
	require.NotNil(t, result.Advisory)
	assert.Nil(t, result.Record)
	assert.Equal(t, schema.DomainHealthcare, result.Advisory.Suggested)
	assert.Equal(t, 10, result.CreditsLeft, "advisories must not consume quota")
	assert.Equal(t, 0, gen.CallCount(), "advisories must not reach the model")
}

func TestAnalyzeRunNumbersAreSequential(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)
	ctx := context.Background()

	domains := []schema.Domain{schema.DomainIndustrial, schema.DomainEnergy, schema.DomainIndustrial}
	inputs := []string{
		industrialInput,
		"Feeder 12 fault, breaker open, 4.2 MW load lost, substation relay tripped",
		industrialInput,
	}
	for i := range domains {
		_, err := service.Analyze(ctx, session.ID, domains[i], inputs[i])
		require.NoError(t, err)
	}

	history, err := service.History(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, e := range history {
		assert.Equal(t, i+1, e.Run)
	}
}

func TestLatestRecordRoundTrips(t *testing.T) {
	gen := llm.NewMockGenerator()
	service, session := newTestService(t, gen)
	ctx := context.Background()

	_, err := service.Analyze(ctx, session.ID, schema.DomainIndustrial, industrialInput)
	require.NoError(t, err)

	record, entry, err := service.LatestRecord(ctx, session.ID, schema.DomainIndustrial)
	require.NoError(t, err)
	assert.Equal(t, schema.DomainIndustrial, record.Schema.ID)
	assert.Equal(t, 1, entry.Run)

	_, _, err = service.LatestRecord(ctx, session.ID, schema.DomainFinancial)
	assert.True(t, errors.IsNotFound(err))
}

func TestBuildInstruction(t *testing.T) {
	got := BuildInstruction("healthcare clinical")
	assert.True(t, strings.HasPrefix(got, "You are a deterministic healthcare clinical triage engine."))
	assert.Contains(t, got, "SINGLE, valid JSON object")
}
