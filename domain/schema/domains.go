package schema

// The five built-in vertical contracts. Each schema doubles as the model
// output contract and the display/export contract.

func clinicalSchema() Schema {
	return Schema{
		ID:    DomainHealthcare,
		Label: "healthcare clinical",
		Title: "HCLS Intake Portal",
		Fields: []Field{
			{Name: "triage_priority", Kind: KindEnum, Allowed: []string{"Critical", "Urgent", "Routine"}},
			{Name: "esi_acuity_level", Kind: KindEnum, Allowed: []string{"1", "2", "3", "4", "5"}},
			{Name: "diagnosis_impression", Kind: KindString},
			{Name: "specialist_referral", Kind: KindString},
			{Name: "vitals_extracted", Kind: KindStringList},
			{Name: "risk_factors", Kind: KindStringList},
			{Name: "medications_administered", Kind: KindStringList},
			{Name: "allergies_noted", Kind: KindStringList},
			{Name: "suggested_action", Kind: KindString},
			{Name: "disposition", Kind: KindEnum, Allowed: []string{"Admit ICU", "Admit Floor", "Observation", "Discharge"}},
		},
		ManualReviewMinutes: 12,
		ManualReviewLabel:   "Avg nurse intake triage",
		Example:             healthcareExample,
		Snippets: []string{
			"72 y/o female, SOB, SpO2 88%, hx of CHF, bilateral crackles on auscultation, BNP 1840 pg/mL",
			"14 y/o male, right forearm deformity after fall, NV intact distally, pain 7/10, no open wound",
		},
	}
}

func industrialSchema() Schema {
	return Schema{
		ID:    DomainIndustrial,
		Label: "industrial IoT",
		Title: "IoT Telemetry Dashboard",
		Fields: []Field{
			{Name: "severity_level", Kind: KindEnum, Allowed: []string{"Critical", "Warning", "Info"}},
			{Name: "affected_component", Kind: KindString},
			{Name: "failure_probability_percent", Kind: KindFloat},
			{Name: "sensor_readings", Kind: KindStringList},
			{Name: "maintenance_action", Kind: KindEnum, Allowed: []string{"Immediate Shutdown", "Schedule Service", "Monitor"}},
			{Name: "safety_risk", Kind: KindEnum, Allowed: []string{"High", "Medium", "Low"}},
			{Name: "estimated_downtime_hours", Kind: KindFloat},
			{Name: "parts_required", Kind: KindStringList},
			{Name: "root_cause_hypothesis", Kind: KindString},
		},
		ManualReviewMinutes: 25,
		ManualReviewLabel:   "Avg manual log review",
		Example:             industrialExample,
		Snippets: []string{
			"Pump P-201 discharge pressure dropped from 6.2 bar to 3.1 bar over 15 min, cavitation noise audible, motor current normal",
			"CNC Mill #4 spindle vibration 8.2 mm/s RMS (baseline 2.1), tool wear sensor flagging, last calibration 120 days ago",
		},
	}
}

func cybersecuritySchema() Schema {
	return Schema{
		ID:    DomainCybersecurity,
		Label: "cybersecurity threat",
		Title: "SecOps Threat Console",
		Fields: []Field{
			{Name: "threat_level", Kind: KindEnum, Allowed: []string{"Critical", "High", "Medium", "Low"}},
			{Name: "attack_vector", Kind: KindString},
			{Name: "mitre_attack_techniques", Kind: KindStringList},
			{Name: "affected_assets", Kind: KindStringList},
			{Name: "indicators_of_compromise", Kind: KindStringList},
			{Name: "data_at_risk", Kind: KindString},
			{Name: "urgency_window", Kind: KindEnum, Allowed: []string{"Minutes", "Hours", "Days"}},
			{Name: "containment_steps", Kind: KindStringList},
			{Name: "recommended_response", Kind: KindEnum, Allowed: []string{"Isolate & Investigate", "Block & Monitor", "Log & Review"}},
			{Name: "threat_hypothesis", Kind: KindString},
		},
		ManualReviewMinutes: 18,
		ManualReviewLabel:   "Avg analyst alert triage",
		Example:             cybersecurityExample,
		Snippets: []string{
			"Multiple failed SSH logins from 45.155.205.0/24 against jump host, followed by successful root login at 03:14 UTC, new cron job created",
			"DLP alert: 14,000 customer records exported to USB by user jdoe@corp, outside business hours, 2 weeks before termination date",
		},
	}
}

func financialSchema() Schema {
	return Schema{
		ID:    DomainFinancial,
		Label: "financial AML/fraud",
		Title: "FinOps Risk Console",
		Fields: []Field{
			{Name: "risk_rating", Kind: KindEnum, Allowed: []string{"Critical", "Elevated", "Normal"}},
			{Name: "transaction_type", Kind: KindString},
			{Name: "entities_involved", Kind: KindStringList},
			{Name: "flagged_anomalies", Kind: KindStringList},
			{Name: "amount_at_risk_usd", Kind: KindFloat},
			{Name: "jurisdiction_risk", Kind: KindString},
			{Name: "regulatory_flags", Kind: KindStringList},
			{Name: "escalation_path", Kind: KindString},
			{Name: "recommended_action", Kind: KindEnum, Allowed: []string{"Freeze Account", "Enhanced Review", "Clear Transaction"}},
			{Name: "fraud_hypothesis", Kind: KindString},
		},
		ManualReviewMinutes: 35,
		ManualReviewLabel:   "Avg compliance review",
		Example:             financialExample,
		Snippets: []string{
			"3 wire transfers totaling $890K to newly opened accounts in 48 hrs, originator is a dormant LLC reactivated last week",
			"Credit card: 47 transactions across 6 countries in 2 hours, chip-not-present, average ticket $320, cardholder reports no travel",
		},
	}
}

func energySchema() Schema {
	return Schema{
		ID:    DomainEnergy,
		Label: "energy grid operations",
		Title: "Grid Operations Console",
		Fields: []Field{
			{Name: "alert_priority", Kind: KindEnum, Allowed: []string{"Emergency", "Warning", "Advisory"}},
			{Name: "affected_system", Kind: KindString},
			{Name: "grid_impact_mw", Kind: KindFloat},
			{Name: "customers_affected", Kind: KindInt},
			{Name: "fault_indicators", Kind: KindStringList},
			{Name: "weather_factor", Kind: KindString},
			{Name: "safety_hazards", Kind: KindStringList},
			{Name: "estimated_restoration_hours", Kind: KindFloat},
			{Name: "recommended_action", Kind: KindEnum, Allowed: []string{"Emergency Dispatch", "Schedule Inspection", "Continue Monitoring"}},
			{Name: "root_cause_hypothesis", Kind: KindString},
		},
		ManualReviewMinutes: 15,
		ManualReviewLabel:   "Avg dispatcher fault review",
		Example:             energyExample,
		Snippets: []string{
			"Transformer T-4 oil temp 92°C (alarm 85°C), dissolved gas analysis shows acetylene 180 ppm, load at 94% of rating",
			"Frequency deviation -0.3 Hz sustained 8 seconds, automatic load shedding stage 1 activated, 340 MW generation shortfall",
		},
	}
}

// DefaultRegistry returns the built-in five-vertical registry. Registration
// order is observable (it is the matcher's tie-break order), so it is fixed
// here rather than sorted.
func DefaultRegistry() *Registry {
	return MustNewRegistry(
		clinicalSchema(),
		industrialSchema(),
		cybersecuritySchema(),
		financialSchema(),
		energySchema(),
	)
}
