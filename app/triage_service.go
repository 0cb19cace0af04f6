package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"triagelock/domain/schema"
	"triagelock/domain/signal"
	"triagelock/internal"
	"triagelock/internal/errors"
	"triagelock/models"
	"triagelock/ports"
)

// BuildInstruction renders the fixed model instruction for a domain label.
// The wording is deliberately stable across domains; only the label varies.
func BuildInstruction(domainLabel string) string {
	return fmt.Sprintf("You are a deterministic %s triage engine. "+
		"Your ONLY job is to analyze the unstructured event data provided by the user "+
		"and return a SINGLE, valid JSON object that conforms to the required schema. "+
		"Be precise, clinical, and evidence-based. Extract all relevant data points.", domainLabel)
}

// Result is the outcome of one analyze call. Exactly one of Record or
// Advisory is meaningful: an advisory result carries no record, consumed no
// credit and made no model call.
type Result struct {
	Record         *schema.Record
	RawJSON        []byte
	LatencySeconds float64
	Advisory       *signal.Verdict
	CreditsLeft    int
}

// TriageService orchestrates one analysis: quota gate, schema lookup,
// mismatch check, model call, validation, then the success bookkeeping
type TriageService struct {
	registry *schema.Registry
	matcher  *signal.Matcher
	gen      ports.Generator
	sessions ports.SessionRepository
	history  ports.HistoryRepository
	logger   *internal.Logger
}

// NewTriageService creates the orchestration service
func NewTriageService(
	registry *schema.Registry,
	matcher *signal.Matcher,
	gen ports.Generator,
	sessions ports.SessionRepository,
	history ports.HistoryRepository,
	logger *internal.Logger,
) *TriageService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &TriageService{
		registry: registry,
		matcher:  matcher,
		gen:      gen,
		sessions: sessions,
		history:  history,
		logger:   logger,
	}
}

// Registry exposes the schema registry for read-side handlers
func (s *TriageService) Registry() *schema.Registry {
	return s.registry
}

// NewSession starts a session with the given credit allowance
func (s *TriageService) NewSession(ctx context.Context, startingCredits int) (*models.Session, error) {
	session, err := s.sessions.CreateSession(ctx, startingCredits)
	if err != nil {
		return nil, err
	}
	s.logger.Info("[TriageService] Session started - id=%s, credits=%d", session.ID, session.Credits)
	return session, nil
}

// GetSession loads a session by ID
func (s *TriageService) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	return s.sessions.GetSession(ctx, id)
}

// History returns a session's completed analyses in run order
func (s *TriageService) History(ctx context.Context, sessionID uuid.UUID) ([]models.HistoryEntry, error) {
	return s.history.List(ctx, sessionID)
}

// LatestRecord returns the most recent validated record for a domain,
// reconstructed from the stored JSON
func (s *TriageService) LatestRecord(ctx context.Context, sessionID uuid.UUID, domain schema.Domain) (*schema.Record, *models.HistoryEntry, error) {
	sc, err := s.registry.Lookup(domain)
	if err != nil {
		return nil, nil, err
	}
	entry, err := s.history.Latest(ctx, sessionID, domain)
	if err != nil {
		return nil, nil, err
	}
	record, err := schema.Validate(entry.RecordJSON, sc)
	if err != nil {
		return nil, nil, errors.Wrap(err, "stored record no longer validates")
	}
	return &record, entry, nil
}

// Analyze runs the full pipeline for one input. Checks run in a fixed
// order so callers always see the same failure for the same state: empty
// input, then quota, then domain, then the mismatch heuristic, and only
// then the model call.
func (s *TriageService) Analyze(ctx context.Context, sessionID uuid.UUID, domain schema.Domain, text string) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.EmptyInput()
	}

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Credits <= 0 {
		return nil, errors.QuotaExhausted()
	}

	sc, err := s.registry.Lookup(domain)
	if err != nil {
		return nil, err
	}

	if verdict := s.matcher.Evaluate(trimmed, domain); verdict.Mismatch {
		s.logger.Info("[TriageService] Domain mismatch advisory - selected=%s, suggested=%s, scores=%d/%d",
			domain, verdict.Suggested, verdict.SelectedScore, verdict.BestScore)
		v := verdict
		return &Result{Advisory: &v, CreditsLeft: session.Credits}, nil
	}

	instruction := BuildInstruction(sc.Label)
	start := time.Now()
	raw, err := s.gen.Generate(ctx, trimmed, sc, instruction)
	latency := time.Since(start).Seconds()
	if err != nil {
		s.logger.Error("[TriageService] Model call failed - domain=%s, latency=%.2fs, err=%v", domain, latency, err)
		if errors.CredentialSuspected(err) {
			s.logger.Error("[TriageService] Failure looks like an invalid API credential")
		}
		return nil, err
	}

	record, err := schema.Validate([]byte(raw), sc)
	if err != nil {
		s.logger.Error("[TriageService] Output rejected - domain=%s, code=%s", domain, errors.GetCode(err))
		return nil, err
	}

	// Credits decrement only on a fully validated success
	session.Credits--
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	recordJSON, err := record.MarshalOrdered("")
	if err != nil {
		return nil, errors.Wrap(err, "serialize validated record")
	}

	prior, err := s.history.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	topField, topValue := record.TopField()
	entry := models.HistoryEntry{
		Run:            len(prior) + 1,
		At:             time.Now().UTC(),
		Domain:         domain,
		LatencySeconds: latency,
		ManualMinutes:  sc.ManualReviewMinutes,
		TopField:       topField,
		TopValue:       fmt.Sprintf("%v", topValue),
		RecordJSON:     recordJSON,
	}
	if err := s.history.Append(ctx, sessionID, entry); err != nil {
		return nil, err
	}

	s.logger.Info("[TriageService] Analysis complete - domain=%s, run=%d, latency=%.2fs, creditsLeft=%d",
		domain, entry.Run, latency, session.Credits)

	return &Result{
		Record:         &record,
		RawJSON:        recordJSON,
		LatencySeconds: latency,
		CreditsLeft:    session.Credits,
	}, nil
}
