package schema

// Synthetic demo payloads. Realistic but entirely fictional.

const healthcareExample = `TRIAGE NOTE — ER Intake  |  Timestamp: 2026-02-07 02:47 UTC
Patient: 68 y/o male, arrived via EMS, chief complaint of crushing substernal chest pain radiating to left arm and jaw, onset ~45 min ago while sleeping.
Vitals on arrival:  BP 88/54 mmHg  |  HR 112 bpm (irregular)  |  SpO2 91% RA  |  RR 24  |  Temp 37.1°C
History: Type-2 DM (A1c 9.2), HTN (non-compliant w/ lisinopril), prior MI (2021, LAD stent), current smoker (40 pack-year), BMI 34.
ECG: ST-elevation leads II, III, aVF — consistent with inferior STEMI.
Labs pending: troponin, BMP, CBC, PT/INR.
Nurse note: Patient diaphoretic, anxious, nausea x2 episodes. IV access x2 (18g AC bilateral). 324 mg ASA administered PO. Nitro SL x1 given — minimal relief. Morphine 2 mg IV ordered. Cardiology page initiated.
Allergies: Sulfa (rash), Codeine (GI upset).
Code Status: Full code.`

const industrialExample = `=== SENSOR TELEMETRY LOG — Line 7, Compressor Unit C-401 ===
Timestamp: 2026-02-07T03:12:08Z  |  Source: SCADA Gateway / PLC-7-041

[VIBRATION]  Bearing DE — X-axis: 11.4 mm/s RMS (baseline 3.2) ▲ 256%
[VIBRATION]  Bearing NDE — X-axis: 7.8 mm/s RMS (baseline 2.9) ▲ 169%
[TEMPERATURE] Bearing DE — 94.3°C (alarm threshold: 85°C) ⚠ EXCEEDED
[TEMPERATURE] Oil sump — 78.1°C (warning threshold: 75°C) ⚠ EXCEEDED
[PRESSURE]   Discharge — 12.1 bar (nominal 11.5 ± 0.3) — within range
[CURRENT]    Motor draw — 142 A (rated 130 A) ▲ 9.2% above nameplate

Error codes active:
  ERR-4012: High vibration — Loss of dynamic balance
  ERR-4087: Thermal exceedance — Bearing lubrication degradation suspected
  WARN-3001: Predictive model flag — RUL estimate < 72 hrs

Maintenance log: Last PM completed 2025-11-18 (81 days ago, interval = 90 days).
Oil analysis (2026-01-12): Fe particulate 48 ppm (limit 25 ppm), water 0.08%.
Unit runtime since last start: 1,247 hrs.
Downstream dependency: Line 7 feeds Assembly Cell 7A/7B — full production stop if C-401 trips.`

const cybersecurityExample = `=== SIEM ALERT CORRELATION — Incident #SEC-2026-02841 ===
Timestamp: 2026-02-07T04:18:32Z  |  Source: Sentinel / XDR Fusion Engine
Severity Override: Analyst L1 escalated to L3

[ALERT-1] 04:14:07Z  Credential stuffing burst detected — 3,842 failed login attempts against Azure AD tenant (threshold: 200/5min). Source IPs: 185.220.101.0/24 (Tor exit nodes), geolocation: multiple.
[ALERT-2] 04:15:44Z  Successful auth: svc-backup@corp.contoso.com from IP 185.220.101.34 — MFA bypassed via legacy IMAP protocol. Account is a service principal with Mail.ReadWrite and Files.ReadAll Graph API scopes.
[ALERT-3] 04:16:59Z  Anomalous mailbox rule created: "Auto-Forward All" → external address j.smith8827@proton.me. 412 emails exfiltrated in 73 seconds.
[ALERT-4] 04:17:48Z  Lateral movement: svc-backup authenticated to SharePoint admin site via stolen session token. 2.1 GB download initiated from /sites/finance/Shared Documents/Q4-2025-Earnings/.

Threat intel match: IP 185.220.101.34 flagged in CrowdStrike Falcon feed (APT-41 infrastructure, confidence: HIGH). Hash of forwarding rule payload matches known BEC toolkit "MailSnake v3.2".
EDR status: No endpoint agent on svc-backup (service account, headless).
Conditional Access gap: Legacy auth protocols not blocked for service accounts.`

const financialExample = `=== TRANSACTION MONITORING ALERT — Case #FIN-2026-09173 ===
Timestamp: 2026-02-07T01:33:17Z  |  Source: AML Engine v4.2 / Wire Desk

Flagged wire transfer:
  Originator: Meridian Capital Holdings LLC (Acct: ****4782, New York)
  Beneficiary: Oceanic Trade Partners Ltd (Acct: ****6190, Cayman Islands)
  Amount: USD 4,750,000.00  |  Reference: "Advisory fee — Project Atlas"
  Routing: JPM NY → Correspondent (Deutsche Frankfurt) → Cayman National Bank

Risk indicators triggered:
  [R-1] Structuring pattern: 5 wires in 14 days totaling $23.4M, each just below $5M reporting threshold. Previous 12-month avg: $1.2M/quarter.
  [R-2] Jurisdiction risk: Beneficiary domiciled in FATF grey-list jurisdiction. Shell company — incorporated 2025-12-02, no web presence, nominee directors.
  [R-3] Behavioral anomaly: Originator changed beneficiary bank details 3x in 48 hrs. New authorized signer added to account on 2026-02-04 (KYC refresh pending).
  [R-4] PEP proximity: Originator's UBO (35% stake) is a politically exposed person — former deputy minister of trade (Country: undisclosed).

Sanctions screening: No OFAC/EU/UN hits. Adverse media: 2 articles (2025) linking UBO to procurement irregularities. SAR history: 1 prior filing (2024).`

const energyExample = `=== GRID EVENT LOG — Substation Bravo-7, Feeder 12kV-F03 ===
Timestamp: 2026-02-07T05:42:19Z  |  Source: ADMS / SCADA Relay IED

[FAULT] 05:41:58Z  Phase-to-ground fault detected on Feeder F03, Zone 2. Relay 51G tripped in 0.12s. Fault current: 8,420 A (nominal load: 340 A).
[RECLOSE] 05:42:03Z  Auto-reclose attempt #1 — FAILED. Fault persists.
[RECLOSE] 05:42:18Z  Auto-reclose attempt #2 — FAILED. Lockout engaged.
[IMPACT] Feeder F03 de-energized. 2,847 customers without power. Estimated load lost: 14.3 MW.

Weather: Freezing rain advisory active. Wind: 38 km/h gusting 56 km/h.
Vegetation mgmt: Last trim cycle completed 2025-09-14 (Span 7-12 flagged as high-risk corridor — heritage oak canopy, trimming restricted by county).
Asset condition: Recloser R-7 firmware v2.3 (current: v3.1, update deferred). Insulator inspection (2025-11-02): Span 9 — hairline crack noted, replacement scheduled Q1-2026 but not yet completed.
DER status: 4.2 MW solar + 1.8 MW BESS on Feeder F03. Islanding not enabled.
Adjacent feeders: F02 at 87% capacity, F04 at 91% capacity. Load transfer limited — tie switch TS-12 manual-only (motorized upgrade in CIP backlog).`
