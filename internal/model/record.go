package model

// WardEntry is one element of a record's ward_breakdown list.
type WardEntry struct {
	Type               Str `json:"ward_type"`
	UnitCostFirstBlock Num `json:"ward_unit_cost_first_block"`
	Charges            Num `json:"ward_charges"`
	QuantityUnit       Str `json:"ward_quantity_unit"`
	LengthOfStay       Num `json:"length_of_stay"`
	DTFTotal           Num `json:"ward_dtf_total"`
}

// InferenceOutput is the raw extraction result read from a .out object.
// Every field is optional, and numeric fields arrive either as numbers or as
// numeric strings depending on the upstream model's mood, so the flexible
// scalar types absorb whatever shape shows up.
type InferenceOutput struct {
	WardBreakdown    WardList `json:"ward_breakdown"`
	WardUnitCostSubq Num      `json:"ward_unit_cost_subq"`
	WardQuantitySubq Num      `json:"ward_quantity_subq_1"`

	ORType               Str `json:"or_type"`
	ORUnitCostFirstBlock Num `json:"or_unit_cost_first_block"`
	ORUnitCostSubq       Num `json:"or_unit_cost_subq"`
	ORQuantitySubq       Num `json:"or_quantity_subq_1"`
	ORChargingBlockHours Num `json:"or_charging_block_hours"`
	ORCharges            Num `json:"or_charges"`
	ORDTF                Num `json:"or_dtf"`

	ConsultationFee Num `json:"consultation_fee"`
	ProcedureFee    Num `json:"procedure_fee"`
	AnaesthetistFee Num `json:"anaesthetist_fee"`

	AncillaryChargesLLM     Num `json:"ancillary_charges_llm"`
	DoctorPrescribedCharges Num `json:"doctor_prescribed_charges"`

	DTF                        Num `json:"dtf"`
	EstimatedMedisaveClaimable Num `json:"estimated_medisave_claimable"`

	ConsumablesList any `json:"consumables_list"`

	BackupLogicFlag Flag `json:"backup_logic_flag"`
	ManualFlag      Flag `json:"manual_flag"`
	WarningFlag     Flag `json:"warning_flag"`
	PatchedFlag     Flag `json:"patched_flag"`
}
