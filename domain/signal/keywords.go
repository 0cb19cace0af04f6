package signal

import "triagelock/domain/schema"

// KeywordSet associates case-insensitive substrings with a Domain. Used
// only for mismatch detection, never for validation. Sets may overlap
// across domains; matching is substring containment, not word-boundary
// matching (hence entries like "bp " and "err-").
type KeywordSet struct {
	Domain   schema.Domain
	Label    string // shown in the advisory ("clinical / healthcare")
	Keywords []string
}

// DefaultKeywordSets returns the built-in signal table in the same order
// as schema.DefaultRegistry. Order matters: it is the tie-break order.
func DefaultKeywordSets() []KeywordSet {
	return []KeywordSet{
		{
			Domain: schema.DomainHealthcare,
			Label:  "clinical / healthcare",
			Keywords: []string{
				"patient", "vitals", "bp ", "hr ", "spo2", "triage", "diagnosis",
				"ecg", "nurse", "allergies", "medications", "symptoms", "chief complaint",
				"history of present", "labs", "ems", "er ", "icu", "mg ", "stemi",
				"cardiac", "pulse", "respiratory", "auscultation", "prognosis",
				"discharge", "admission", "radiology", "ct scan", "mri", "cbc",
				"troponin", "bmp", "creatinine", "hemoglobin", "o2 sat", "intubat",
				"clinical", "physician", "medical record", "icd-10", "cpt code",
			},
		},
		{
			Domain: schema.DomainIndustrial,
			Label:  "industrial / manufacturing",
			Keywords: []string{
				"vibration", "bearing", "temperature", "sensor", "compressor",
				"motor", "pressure", "rpm", "scada", "plc", "maintenance",
				"calibration", "pump", "spindle", "err-", "warn-", "telemetry",
				"machine", "conveyor", "hydraulic", "actuator", "downtime",
				"oee", "torque", "overload", "coolant", "cnc", "feed rate",
			},
		},
		{
			Domain: schema.DomainCybersecurity,
			Label:  "cybersecurity / SecOps",
			Keywords: []string{
				"siem", "alert", "login", "ssh", "credential", "malware", "ip ",
				"firewall", "endpoint", "lateral movement", "exfiltrat", "cve-",
				"mitre", "threat", "ioc", "phishing", "brute force", "xdr", "edr",
				"ransomware", "payload", "c2 ", "command and control", "privilege escalation",
				"hash", "dns", "port scan", "intrusion", "signature", "zero day",
				"exploit", "trojan", "backdoor", "beacon", "cobalt strike",
			},
		},
		{
			Domain: schema.DomainFinancial,
			Label:  "financial / AML",
			Keywords: []string{
				"transaction", "wire", "aml", "fraud", "sar", "kyc", "beneficiary",
				"originator", "ofac", "sanctions", "structuring", "pep",
				"account", "suspicious", "usd", "bank", "compliance",
				"settlement", "clearing", "counterparty", "custody", "trade",
				"equit", "derivative", "portfolio", "dividend", "coupon",
				"reconcil", "ledger", "swift", "iban", "bic", "nostro", "vostro",
				"collateral", "margin call", "exposure", "netting", "exception",
				"payment", "remittance", "forex", "fx ", "basis point", "t+1", "t+2",
				"broker", "dealer", "finra", "sec ", "regulatory", "fiduciary",
			},
		},
		{
			Domain: schema.DomainEnergy,
			Label:  "energy / utility",
			Keywords: []string{
				"fault", "feeder", "substation", "relay", "transformer", "grid",
				"voltage", "frequency", "outage", "customers", "mw ", "kv ",
				"recloser", "breaker", "load shedding", "der", "scada",
				"solar", "wind", "turbine", "inverter", "battery storage",
				"dispatch", "generation", "transmission", "distribution",
				"peak demand", "power factor", "amps", "watt", "kilowatt",
			},
		},
	}
}
