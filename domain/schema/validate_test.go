package schema

import (
	"strings"
	"testing"

	"triagelock/internal/errors"
)

func healthcareFixture() string {
	return `{
		"triage_priority": "Critical",
		"esi_acuity_level": "1",
		"diagnosis_impression": "STEMI, inferior wall",
		"specialist_referral": "Interventional Cardiology",
		"vitals_extracted": ["BP 88/54", "HR 118"],
		"risk_factors": ["Hypotension"],
		"medications_administered": ["ASA 324mg"],
		"allergies_noted": [],
		"suggested_action": "Activate cath lab",
		"disposition": "Admit ICU"
	}`
}

func mustSchema(t *testing.T, d Domain) Schema {
	t.Helper()
	s, err := DefaultRegistry().Lookup(d)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestValidateAcceptsConformingRecord(t *testing.T) {
	s := mustSchema(t, DomainHealthcare)
	record, err := Validate([]byte(healthcareFixture()), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := record.Values["triage_priority"]; got != "Critical" {
		t.Errorf("triage_priority = %v", got)
	}
	vitals, ok := record.Values["vitals_extracted"].([]string)
	if !ok || len(vitals) != 2 {
		t.Errorf("vitals_extracted = %v", record.Values["vitals_extracted"])
	}
	name, value := record.TopField()
	if name != "triage_priority" || value != "Critical" {
		t.Errorf("TopField() = %s, %v", name, value)
	}
}

func TestValidateRejectsEnumViolation(t *testing.T) {
	s := mustSchema(t, DomainHealthcare)
	payload := strings.Replace(healthcareFixture(), `"Critical"`, `"Unknown"`, 1)

	_, err := Validate([]byte(payload), s)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if errors.GetCode(err) != errors.CodeSchemaValidation {
		t.Fatalf("expected SCHEMA_VALIDATION_ERROR, got %s", errors.GetCode(err))
	}
	if detail := errors.GetDetail(err); !strings.Contains(detail, "triage_priority") {
		t.Errorf("detail should name the offending field, got %q", detail)
	}
}

func TestValidateRejectsMissingField(t *testing.T) {
	s := mustSchema(t, DomainHealthcare)
	payload := strings.Replace(healthcareFixture(), `"disposition": "Admit ICU"`, `"disposition_x": "Admit ICU"`, 1)

	_, err := Validate([]byte(payload), s)
	if errors.GetCode(err) != errors.CodeSchemaValidation {
		t.Fatalf("expected SCHEMA_VALIDATION_ERROR, got %v", err)
	}
	if !strings.Contains(errors.GetDetail(err), "disposition: required field missing") {
		t.Errorf("detail = %q", errors.GetDetail(err))
	}
}

func TestValidateTypeMismatches(t *testing.T) {
	s := mustSchema(t, DomainEnergy)
	base := `{
		"alert_priority": "Emergency",
		"affected_system": "Feeder 12-North",
		"grid_impact_mw": 45.5,
		"customers_affected": 18200,
		"fault_indicators": ["Phase A-C fault"],
		"weather_factor": "Ice storm",
		"safety_hazards": ["Downed line"],
		"estimated_restoration_hours": 6.5,
		"recommended_action": "Emergency Dispatch",
		"root_cause_hypothesis": "Galloping conductors"
	}`

	if _, err := Validate([]byte(base), s); err != nil {
		t.Fatalf("baseline should validate: %v", err)
	}

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"string list with non-string element", `["Downed line"]`, `["Downed line", 7]`},
		{"float as string", `45.5`, `"45.5"`},
		{"int with fraction", `18200`, `18200.7`},
		{"string as number", `"Ice storm"`, `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := strings.Replace(base, tt.from, tt.to, 1)
			_, err := Validate([]byte(payload), s)
			if errors.GetCode(err) != errors.CodeSchemaValidation {
				t.Errorf("expected SCHEMA_VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestValidateIntegralFloatAccepted(t *testing.T) {
	s := mustSchema(t, DomainEnergy)
	payload := `{
		"alert_priority": "Advisory",
		"affected_system": "Substation 7",
		"grid_impact_mw": 2.0,
		"customers_affected": 120.0,
		"fault_indicators": [],
		"weather_factor": "Clear",
		"safety_hazards": [],
		"estimated_restoration_hours": 1.0,
		"recommended_action": "Continue Monitoring",
		"root_cause_hypothesis": "Sensor drift"
	}`
	record, err := Validate([]byte(payload), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := record.Values["customers_affected"]; got != int64(120) {
		t.Errorf("customers_affected = %v (%T)", got, got)
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	s := mustSchema(t, DomainHealthcare)
	for _, raw := range []string{"", "not json", `{"triage_priority":`, `{"a":1} trailing`} {
		_, err := Validate([]byte(raw), s)
		if errors.GetCode(err) != errors.CodeJSONDecode {
			t.Errorf("raw %q: expected JSON_DECODE_ERROR, got %v", raw, err)
		}
	}
}

func TestValidateIgnoresUnknownFields(t *testing.T) {
	s := mustSchema(t, DomainHealthcare)
	payload := strings.Replace(healthcareFixture(), `"triage_priority"`, `"extra_field": "ignored", "triage_priority"`, 1)
	record, err := Validate([]byte(payload), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := record.Values["extra_field"]; ok {
		t.Error("unknown field should not survive validation")
	}
}

func TestValidateRoundTripIdempotent(t *testing.T) {
	s := mustSchema(t, DomainHealthcare)
	first, err := Validate([]byte(healthcareFixture()), s)
	if err != nil {
		t.Fatal(err)
	}
	serialized, err := first.MarshalOrdered("")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Validate(serialized, s)
	if err != nil {
		t.Fatalf("re-validation failed: %v", err)
	}
	again, err := second.MarshalOrdered("")
	if err != nil {
		t.Fatal(err)
	}
	if string(serialized) != string(again) {
		t.Errorf("round trip changed the record:\n%s\n%s", serialized, again)
	}
}

func TestMarshalOrderedFollowsSchemaOrder(t *testing.T) {
	s := mustSchema(t, DomainHealthcare)
	record, err := Validate([]byte(healthcareFixture()), s)
	if err != nil {
		t.Fatal(err)
	}
	out, err := record.MarshalOrdered("")
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)
	last := -1
	for _, name := range s.FieldNames() {
		idx := strings.Index(text, `"`+name+`"`)
		if idx < 0 {
			t.Fatalf("field %s missing from output", name)
		}
		if idx < last {
			t.Fatalf("field %s out of schema order", name)
		}
		last = idx
	}
}
