package ui

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"triagelock/domain/schema"
	"triagelock/export"
	"triagelock/internal/errors"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type domainSummary struct {
	ID                  string   `json:"id"`
	Label               string   `json:"label"`
	Title               string   `json:"title"`
	Fields              []string `json:"fields"`
	ManualReviewMinutes int      `json:"manual_review_minutes"`
	ManualReviewLabel   string   `json:"manual_review_label"`
}

func (s *Server) handleListDomains(w http.ResponseWriter, _ *http.Request) {
	registry := s.service.Registry()
	out := make([]domainSummary, 0, registry.Len())
	for _, d := range registry.Domains() {
		sc, err := registry.Lookup(d)
		if err != nil {
			writeError(w, err)
			return
		}
		out = append(out, domainSummary{
			ID:                  string(sc.ID),
			Label:               sc.Label,
			Title:               sc.Title,
			Fields:              sc.FieldNames(),
			ManualReviewMinutes: sc.ManualReviewMinutes,
			ManualReviewLabel:   sc.ManualReviewLabel,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDomainExample(w http.ResponseWriter, r *http.Request) {
	domain := schema.Domain(chi.URLParam(r, "domain"))
	sc, err := s.service.Registry().Lookup(domain)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"domain":   sc.ID,
		"example":  sc.Example,
		"snippets": sc.Snippets,
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.service.NewSession(r.Context(), s.cfg.Session.StartingCredits)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		return uuid.Nil, errors.InvalidInput("session id must be a UUID")
	}
	return id, nil
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	session, err := s.service.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	history, err := s.service.History(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	stats, err := s.service.Stats(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session": session,
		"history": history,
		"stats":   stats,
	})
}

type analyzeRequest struct {
	Domain string `json:"domain"`
	Text   string `json:"text"`
}

type analyzeResponse struct {
	Record         json.RawMessage `json:"record,omitempty"`
	LatencySeconds float64         `json:"latency_seconds"`
	CreditsLeft    int             `json:"credits_left"`
	Advisory       *advisoryView   `json:"advisory,omitempty"`
}

type advisoryView struct {
	Suggested      string `json:"suggested"`
	SuggestedLabel string `json:"suggested_label"`
	SelectedLabel  string `json:"selected_label"`
	BestScore      int    `json:"best_score"`
	SelectedScore  int    `json:"selected_score"`
	Message        string `json:"message"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("request body must be JSON with domain and text"))
		return
	}

	result, err := s.service.Analyze(r.Context(), id, schema.Domain(req.Domain), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	if result.Advisory != nil {
		writeJSON(w, http.StatusConflict, analyzeResponse{
			CreditsLeft: result.CreditsLeft,
			Advisory: &advisoryView{
				Suggested:      string(result.Advisory.Suggested),
				SuggestedLabel: result.Advisory.SuggestedLabel,
				SelectedLabel:  result.Advisory.SelectedLabel,
				BestScore:      result.Advisory.BestScore,
				SelectedScore:  result.Advisory.SelectedScore,
				Message:        result.Advisory.Message(),
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Record:         json.RawMessage(result.RawJSON),
		LatencySeconds: result.LatencySeconds,
		CreditsLeft:    result.CreditsLeft,
	})
}

func (s *Server) handleROI(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	dailyVolume, err := strconv.Atoi(r.URL.Query().Get("daily_volume"))
	if err != nil {
		writeError(w, errors.InvalidInput("daily_volume must be an integer"))
		return
	}
	hourlyCost, err := strconv.ParseFloat(r.URL.Query().Get("hourly_cost"), 64)
	if err != nil {
		writeError(w, errors.InvalidInput("hourly_cost must be a number"))
		return
	}

	projection, err := s.service.ProjectROI(r.Context(), id, dailyVolume, hourlyCost)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	domain := schema.Domain(r.URL.Query().Get("domain"))
	format := chi.URLParam(r, "format")

	record, entry, err := s.service.LatestRecord(r.Context(), id, domain)
	if err != nil {
		writeError(w, err)
		return
	}

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case "json":
		payload, err = export.JSON(*record)
		contentType = "application/json"
	case "csv":
		payload, err = export.CSV(*record)
		contentType = "text/csv"
	case "slack":
		payload = []byte(export.SlackSummary(*record, s.modelLabel, entry.LatencySeconds))
		contentType = "text/plain; charset=utf-8"
	case "jira":
		payload = []byte(export.JiraSummary(*record, s.modelLabel, entry.LatencySeconds))
		contentType = "text/plain; charset=utf-8"
	case "html":
		payload = export.HTMLSummary(*record, s.modelLabel, entry.LatencySeconds)
		contentType = "text/html; charset=utf-8"
	case "xlsx":
		history, herr := s.service.History(r.Context(), id)
		if herr != nil {
			writeError(w, herr)
			return
		}
		payload, err = export.XLSX(*record, history)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		writeError(w, errors.InvalidInput("format must be one of json, csv, slack, jira, html, xlsx"))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	name := export.ExportName(domain, time.Now().Unix(), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
