package signal

import (
	"testing"

	"triagelock/domain/schema"
)

const (
	clinicalText   = "Patient 68M, chest pain, BP 88/54, troponin pending, ECG shows STEMI"
	industrialText = "Bearing DE vibration 11.4 mm/s RMS, oil sump temp 94C, fault code ERR-4012"
)

func TestEvaluateFlagsClinicalTextUnderIndustrial(t *testing.T) {
	m := NewDefaultMatcher()

	v := m.Evaluate(clinicalText, schema.DomainIndustrial)
	if !v.Mismatch {
		t.Fatal("expected mismatch advisory")
	}
	if v.Suggested != schema.DomainHealthcare {
		t.Errorf("suggested = %s, want healthcare", v.Suggested)
	}
	if v.BestScore < 2 {
		t.Errorf("best score = %d, want >= 2", v.BestScore)
	}
	if v.Message() == "" {
		t.Error("mismatch verdict must carry a message")
	}
}

func TestEvaluateFlagsIndustrialTextUnderHealthcare(t *testing.T) {
	m := NewDefaultMatcher()

	v := m.Evaluate(industrialText, schema.DomainHealthcare)
	if !v.Mismatch {
		t.Fatal("expected mismatch advisory")
	}
	if v.Suggested != schema.DomainIndustrial {
		t.Errorf("suggested = %s, want industrial", v.Suggested)
	}
}

func TestEvaluateAcceptsMatchingDomain(t *testing.T) {
	m := NewDefaultMatcher()

	if v := m.Evaluate(clinicalText, schema.DomainHealthcare); v.Mismatch {
		t.Errorf("clinical text under healthcare flagged: %+v", v)
	}
	if v := m.Evaluate(industrialText, schema.DomainIndustrial); v.Mismatch {
		t.Errorf("industrial text under industrial flagged: %+v", v)
	}
}

func TestEvaluateZeroSignalText(t *testing.T) {
	m := NewDefaultMatcher()

	v := m.Evaluate("the quick brown fox jumps over the lazy dog", schema.DomainFinancial)
	if v.Mismatch {
		t.Errorf("no-signal text should never produce an advisory: %+v", v)
	}
}

func TestEvaluateTieBreakFollowsRegistrationOrder(t *testing.T) {
	m := NewDefaultMatcher()

	// Two industrial hits and two energy hits; industrial registers first
	v := m.Evaluate("vibration bearing fault voltage", schema.DomainHealthcare)
	if v.BestScore != 2 {
		t.Fatalf("fixture is not a tie: best score = %d", v.BestScore)
	}
	if !v.Mismatch {
		t.Fatal("expected mismatch advisory")
	}
	if v.Suggested != schema.DomainIndustrial {
		t.Errorf("tie should resolve to the earlier registered domain, got %s", v.Suggested)
	}
}

func TestEvaluateTieBreakWithControlledSets(t *testing.T) {
	sets := []KeywordSet{
		{Domain: "a", Label: "set a", Keywords: []string{"alpha", "beta"}},
		{Domain: "b", Label: "set b", Keywords: []string{"gamma", "delta"}},
		{Domain: "c", Label: "set c", Keywords: []string{"omega"}},
	}
	m := NewMatcher(sets, DefaultThresholds())

	// a and b both score 2; a registered first
	v := m.Evaluate("alpha beta gamma delta", "c")
	if !v.Mismatch {
		t.Fatal("expected mismatch advisory")
	}
	if v.Suggested != "a" {
		t.Errorf("suggested = %s, want the first registered of the tied sets", v.Suggested)
	}
	if v.BestScore != 2 || v.SelectedScore != 0 {
		t.Errorf("scores = %d/%d", v.SelectedScore, v.BestScore)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	m := NewDefaultMatcher()

	first := m.Evaluate(clinicalText, schema.DomainIndustrial)
	for i := 0; i < 100; i++ {
		if got := m.Evaluate(clinicalText, schema.DomainIndustrial); got != first {
			t.Fatalf("iteration %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestEvaluateCaseInsensitive(t *testing.T) {
	m := NewDefaultMatcher()

	lower := m.Evaluate(clinicalText, schema.DomainIndustrial)
	upper := m.Evaluate("PATIENT 68M, CHEST PAIN, BP 88/54, TROPONIN PENDING, ECG SHOWS STEMI", schema.DomainIndustrial)
	if lower.Mismatch != upper.Mismatch || lower.Suggested != upper.Suggested {
		t.Errorf("case should not affect the verdict: %+v vs %+v", lower, upper)
	}
}

func testSets() []KeywordSet {
	return []KeywordSet{
		{Domain: "a", Label: "set a", Keywords: []string{"alpha", "beta", "gamma"}},
		{Domain: "b", Label: "set b", Keywords: []string{"delta", "epsilon"}},
	}
}

func TestEvaluateThresholds(t *testing.T) {
	// Text scores 3 for a and 2 for b
	text := "alpha beta gamma delta epsilon"

	tests := []struct {
		name       string
		thresholds Thresholds
		selected   schema.Domain
		mismatch   bool
	}{
		{"dominance exactly at ratio", Thresholds{MinBestHits: 2, DominanceRatio: 1.5}, "b", true},
		{"dominance just under ratio", Thresholds{MinBestHits: 2, DominanceRatio: 1.6}, "b", false},
		{"best hits below minimum", Thresholds{MinBestHits: 4, DominanceRatio: 1.5}, "b", false},
		{"selected is best", Thresholds{MinBestHits: 2, DominanceRatio: 1.5}, "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(testSets(), tt.thresholds)
			v := m.Evaluate(text, tt.selected)
			if v.Mismatch != tt.mismatch {
				t.Errorf("mismatch = %v, want %v (verdict %+v)", v.Mismatch, tt.mismatch, v)
			}
		})
	}
}

func TestEvaluateSelectedDomainSilent(t *testing.T) {
	m := NewMatcher(testSets(), Thresholds{MinBestHits: 2, DominanceRatio: 1.5})

	// Selected scores zero; any best at or above MinBestHits advises
	v := m.Evaluate("alpha beta", "b")
	if !v.Mismatch {
		t.Fatal("expected advisory when the selected domain scores zero")
	}
	if v.SelectedScore != 0 || v.BestScore != 2 {
		t.Errorf("scores = %d/%d", v.SelectedScore, v.BestScore)
	}
}

func TestKeywordCountsOncePerText(t *testing.T) {
	set := KeywordSet{Domain: "a", Keywords: []string{"alpha"}}
	if got := set.Score("alpha alpha alpha"); got != 1 {
		t.Errorf("repeated keyword counted %d times", got)
	}
}
