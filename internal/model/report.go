package model

// FeeRow is a single labeled doctor's-fee line.
type FeeRow struct {
	Label  string `json:"label" dynamodbav:"label"`
	Amount string `json:"amount" dynamodbav:"amount"`
}

// ChargeRow is a single accommodation or daily-treatment-fee line. The
// description carries the rate-times-quantity breakdown shown on the form.
type ChargeRow struct {
	Label       string `json:"label" dynamodbav:"label"`
	Description string `json:"description" dynamodbav:"description"`
	Amount      string `json:"amount" dynamodbav:"amount"`
}

// DoctorsFees is the doctor's-fees block of the cost estimate. Rows always
// holds exactly four entries in form order.
type DoctorsFees struct {
	Rows         []FeeRow `json:"rows" dynamodbav:"rows"`
	Total        string   `json:"total" dynamodbav:"total"`
	MOHBenchmark string   `json:"moh_benchmark" dynamodbav:"moh_benchmark"`
}

// HospitalCharges is the hospital-charges block. Row order is part of the
// contract; the renderer prints rows positionally.
type HospitalCharges struct {
	AccommodationRows  []ChargeRow `json:"accommodation_rows" dynamodbav:"accommodation_rows"`
	DTFRows            []ChargeRow `json:"dtf_rows" dynamodbav:"dtf_rows"`
	AncillaryCharges   string      `json:"ancillary_charges" dynamodbav:"ancillary_charges"`
	DailyCompanionRate string      `json:"daily_companion_rate" dynamodbav:"daily_companion_rate"`
	Total              string      `json:"total" dynamodbav:"total"`
}

// Totals is the summary block printed at the bottom of the form.
type Totals struct {
	TotalDoctorsFees           string `json:"total_doctors_fees" dynamodbav:"total_doctors_fees"`
	DailyTreatmentFee          string `json:"daily_treatment_fee" dynamodbav:"daily_treatment_fee"`
	TotalHospitalCharges       string `json:"total_hospital_charges" dynamodbav:"total_hospital_charges"`
	TotalEstimatedAmount       string `json:"total_estimated_amount" dynamodbav:"total_estimated_amount"`
	EstimatedMedisaveClaimable string `json:"estimated_medisave_claimable" dynamodbav:"estimated_medisave_claimable"`
	DepositRequired            string `json:"deposit_required" dynamodbav:"deposit_required"`
}

// Flags carries the upstream processing flags through to the stored report.
type Flags struct {
	BackupLogic bool `json:"backup_logic" dynamodbav:"backup_logic"`
	Manual      bool `json:"manual" dynamodbav:"manual"`
	Warning     bool `json:"warning" dynamodbav:"warning"`
	Patched     bool `json:"patched" dynamodbav:"patched"`
}

// Report is the render-ready cost estimate produced from one inference
// record. Every monetary value is already rounded and formatted; downstream
// consumers display the strings as-is.
type Report struct {
	JobID           string          `json:"job_id" dynamodbav:"job_id"`
	FANumber        *string         `json:"fa_number" dynamodbav:"fa_number"`
	TemplateID      int             `json:"template_id" dynamodbav:"template_id"`
	TemplateName    string          `json:"template_name" dynamodbav:"template_name"`
	DoctorsFees     DoctorsFees     `json:"doctors_fees" dynamodbav:"doctors_fees"`
	HospitalCharges HospitalCharges `json:"hospital_charges" dynamodbav:"hospital_charges"`
	Totals          Totals          `json:"totals" dynamodbav:"totals"`
	ConsumablesList any             `json:"consumables_list" dynamodbav:"consumables_list"`
	Flags           Flags           `json:"flags" dynamodbav:"flags"`
	RawOutputS3Key  string          `json:"raw_output_s3_key" dynamodbav:"raw_output_s3_key"`
	ProcessedAt     string          `json:"processed_at" dynamodbav:"processed_at"`
}
