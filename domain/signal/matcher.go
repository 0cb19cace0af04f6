package signal

import (
	"fmt"
	"strings"

	"triagelock/domain/schema"
)

// Thresholds tune the mismatch heuristic. A single keyword hit is too weak
// to justify blocking a call; the best match must either dominate a silent
// selected domain or beat it by DominanceRatio.
type Thresholds struct {
	MinBestHits    int
	DominanceRatio float64
}

// DefaultThresholds returns the tuning the heuristic ships with
func DefaultThresholds() Thresholds {
	return Thresholds{MinBestHits: 2, DominanceRatio: 1.5}
}

// Verdict is the outcome of one mismatch evaluation. Zero value means
// "no concern".
type Verdict struct {
	Mismatch       bool
	Suggested      schema.Domain
	SuggestedLabel string
	SelectedLabel  string
	BestScore      int
	SelectedScore  int
}

// Message renders the advisory the way the console shows it. Empty for a
// no-concern verdict.
func (v Verdict) Message() string {
	if !v.Mismatch {
		return ""
	}
	return fmt.Sprintf(
		"This input looks like **%s** data, but you have **%s** selected. "+
			"Switch the domain to **%s**, or load the matching synthetic example.",
		v.SuggestedLabel, v.SelectedLabel, v.Suggested)
}

// Matcher scores free text against every registered domain's keyword set
// and decides whether the selected domain is a poor fit. Pure and
// deterministic; never calls the external model.
type Matcher struct {
	sets       []KeywordSet
	thresholds Thresholds
}

// NewMatcher builds a matcher over the given keyword sets. Set order is
// the tie-break order: when two domains score equally, the earlier one
// wins.
func NewMatcher(sets []KeywordSet, thresholds Thresholds) *Matcher {
	return &Matcher{sets: sets, thresholds: thresholds}
}

// NewDefaultMatcher builds a matcher over the built-in keyword table
func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultKeywordSets(), DefaultThresholds())
}

// Score returns the keyword hit count for one set against lower-cased
// text. Each keyword counts at most once regardless of repetition.
func (s KeywordSet) Score(loweredText string) int {
	hits := 0
	for _, kw := range s.Keywords {
		if strings.Contains(loweredText, kw) {
			hits++
		}
	}
	return hits
}

// Evaluate scores the text against every domain and returns an advisory
// verdict when the selected domain looks like the wrong one. Empty text
// scores zero everywhere and yields no concern; callers gate on non-empty
// input earlier in the flow.
func (m *Matcher) Evaluate(text string, selected schema.Domain) Verdict {
	lowered := strings.ToLower(text)

	scores := make([]int, len(m.sets))
	bestIdx := -1
	selectedIdx := -1
	for i, set := range m.sets {
		scores[i] = set.Score(lowered)
		if set.Domain == selected {
			selectedIdx = i
		}
		// strictly-greater keeps the first registered domain on ties
		if bestIdx < 0 || scores[i] > scores[bestIdx] {
			bestIdx = i
		}
	}

	if bestIdx < 0 || scores[bestIdx] < 1 {
		// No informative signal from this text; do not block the call.
		return Verdict{}
	}

	best := m.sets[bestIdx]
	bestHits := scores[bestIdx]
	selectedHits := 0
	selectedLabel := string(selected)
	if selectedIdx >= 0 {
		selectedHits = scores[selectedIdx]
		selectedLabel = m.sets[selectedIdx].Label
	}

	if best.Domain != selected &&
		bestHits >= m.thresholds.MinBestHits &&
		(selectedHits == 0 || float64(bestHits) >= float64(selectedHits)*m.thresholds.DominanceRatio) {
		return Verdict{
			Mismatch:       true,
			Suggested:      best.Domain,
			SuggestedLabel: best.Label,
			SelectedLabel:  selectedLabel,
			BestScore:      bestHits,
			SelectedScore:  selectedHits,
		}
	}
	return Verdict{}
}
