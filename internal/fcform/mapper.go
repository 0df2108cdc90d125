package fcform

import (
	"fmt"
	"strings"
	"time"

	"github.com/hospitech/fcproc/internal/model"
)

// treatmentFeeLabel is printed for daily-treatment-fee rows that are not
// tied to a per-day ward stay (hour-billed wards and OR suites).
const treatmentFeeLabel = "TREATMENT FEE-DAY SUITE"

// BuildReport maps a raw record to the render-ready report for the template
// scenario tmpl. It never fails: malformed numeric input degrades to zero,
// and a scenario whose expected fields are missing simply produces fewer
// rows. faNumber may be nil when the upstream job has no reference number.
func BuildReport(rec *model.InferenceOutput, tmpl Template, sourceKey string, faNumber *string) *model.Report {
	consultation := Round2(rec.ConsultationFee.Float64())
	procedure := Round2(rec.ProcedureFee.Float64())
	anaesthetist := Round2(rec.AnaesthetistFee.Float64())
	const assistantSurgeon = 0.0 // keyed in by hand on the form, no source field
	docTotal := Round2(consultation + procedure + assistantSurgeon + anaesthetist)

	accRows, accTotal := accommodationRows(rec, tmpl)
	tfRows, tfTotal := treatmentFeeRows(rec, tmpl)
	ancillary := ancillaryCharges(rec, tmpl.HasWard)

	hospTotal := Round2(accTotal + tfTotal + ancillary)
	grandTotal := Round2(docTotal + hospTotal)
	medisave := Round2(rec.EstimatedMedisaveClaimable.Float64())
	deposit := Round2(grandTotal - medisave)

	consumables := rec.ConsumablesList
	if consumables == nil {
		consumables = []any{}
	}

	return &model.Report{
		JobID:        JobIDFromKey(sourceKey),
		FANumber:     faNumber,
		TemplateID:   tmpl.ID,
		TemplateName: tmpl.Name,
		DoctorsFees: model.DoctorsFees{
			Rows: []model.FeeRow{
				{Label: "Consultation Fee(s)", Amount: FormatAmount(consultation)},
				{Label: "Procedure / Surgeon Fee(s)", Amount: FormatAmount(procedure)},
				{Label: "Assistant Surgeon Fee(s)", Amount: FormatAmount(assistantSurgeon)},
				{Label: "Anaesthetist Fee(s)", Amount: FormatAmount(anaesthetist)},
			},
			Total:        FormatAmount(docTotal),
			MOHBenchmark: "N/A",
		},
		HospitalCharges: model.HospitalCharges{
			AccommodationRows:  accRows,
			DTFRows:            tfRows,
			AncillaryCharges:   FormatAmount(ancillary),
			DailyCompanionRate: FormatAmount(0),
			Total:              FormatAmount(hospTotal),
		},
		Totals: model.Totals{
			TotalDoctorsFees:           FormatAmount(docTotal),
			DailyTreatmentFee:          FormatAmount(Round2(rec.DTF.Float64())),
			TotalHospitalCharges:       FormatAmount(hospTotal),
			TotalEstimatedAmount:       FormatAmount(grandTotal),
			EstimatedMedisaveClaimable: FormatAmount(medisave),
			DepositRequired:            FormatAmount(deposit),
		},
		ConsumablesList: consumables,
		Flags: model.Flags{
			BackupLogic: bool(rec.BackupLogicFlag),
			Manual:      bool(rec.ManualFlag),
			Warning:     bool(rec.WarningFlag),
			Patched:     bool(rec.PatchedFlag),
		},
		RawOutputS3Key: sourceKey,
		ProcessedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// accommodationRows builds the ordered accommodation rows for the template
// scenario and returns them with the sum of their already-rounded amounts.
// Row order is part of the output contract.
func accommodationRows(rec *model.InferenceOutput, tmpl Template) ([]model.ChargeRow, float64) {
	rows := []model.ChargeRow{}
	total := 0.0
	add := func(row model.ChargeRow, amount float64) {
		rows = append(rows, row)
		total += amount
	}
	wards := rec.WardBreakdown

	switch tmpl.ID {
	case TemplateWardAndOR:
		if len(wards) > 0 {
			add(wardFirstRow(wards[0]))
		}
		add(orFirstRow(rec))
		if rec.ORUnitCostSubq.Float64() > 0 {
			add(orSubqRow(rec))
		}
	case TemplateWardDays, TemplateWardHoursOne:
		if len(wards) > 0 {
			add(wardFirstRow(wards[0]))
		}
	case TemplateWardHoursTwo:
		if len(wards) > 0 {
			add(wardFirstRow(wards[0]))
			add(wardSubqRow(wards[0], rec))
		}
	case TemplateWardTwoTypes:
		if len(wards) > 0 {
			add(wardFirstRow(wards[0]))
		}
		if len(wards) > 1 {
			add(wardFirstRow(wards[1]))
		}
	case TemplateOROneBlock:
		add(orFirstRow(rec))
	case TemplateORTwoBlocks:
		add(orFirstRow(rec))
		add(orSubqRow(rec))
	}
	return rows, total
}

// wardFirstRow renders a ward entry's first billing block. Day-billed wards
// show the rate-times-stay breakdown; anything else shows the bare rate. The
// amount is the accumulated ward charge, not rate times stay.
func wardFirstRow(e model.WardEntry) (model.ChargeRow, float64) {
	rate := Round2(e.UnitCostFirstBlock.Float64())
	amount := Round2(e.Charges.Float64())
	desc := flatDesc(rate)
	if isDayUnit(e) {
		desc = qtyDesc(rate, stayFor(e), "Day(s)")
	}
	return model.ChargeRow{
		Label:       e.Type.Raw(),
		Description: desc,
		Amount:      FormatAmount(amount),
	}, amount
}

// wardSubqRow renders the subsequent-hour block billed on top of a ward's
// first block. The "-PER SUBQ" marker is added only when a subsequent unit
// cost actually exists.
func wardSubqRow(e model.WardEntry, rec *model.InferenceOutput) (model.ChargeRow, float64) {
	subqCost := rec.WardUnitCostSubq.Float64()
	rate := Round2(subqCost)
	qty := rec.WardQuantitySubq.Float64()
	label := e.Type.Raw()
	if subqCost > 0 {
		label += "-PER SUBQ"
	}
	amount := Round2(rate * qty)
	return model.ChargeRow{
		Label:       label,
		Description: qtyDesc(rate, qty, "Hour(s)"),
		Amount:      FormatAmount(amount),
	}, amount
}

// orFirstRow renders the first OR charging block. The label names the block
// duration when one is known, but the description and amount stay flat: the
// first block is billed as a single unit at its rate.
func orFirstRow(rec *model.InferenceOutput) (model.ChargeRow, float64) {
	rate := Round2(rec.ORUnitCostFirstBlock.Float64())
	label := rec.ORType.Raw()
	if hours := rec.ORChargingBlockHours.Float64(); hours != 0 {
		label = fmt.Sprintf("%s (First %d Hours)", label, int(hours))
	}
	return model.ChargeRow{
		Label:       label,
		Description: flatDesc(rate),
		Amount:      FormatAmount(rate),
	}, rate
}

// orSubqRow renders the per-hour OR block that follows the first one.
func orSubqRow(rec *model.InferenceOutput) (model.ChargeRow, float64) {
	rate := Round2(rec.ORUnitCostSubq.Float64())
	qty := rec.ORQuantitySubq.Float64()
	amount := Round2(rate * qty)
	return model.ChargeRow{
		Label:       rec.ORType.Raw() + " (Subsequent Hour or Part Thereof)",
		Description: qtyDesc(rate, qty, "Hour(s)"),
		Amount:      FormatAmount(amount),
	}, amount
}

// treatmentFeeRows builds one DTF row per ward entry carrying a positive
// accumulated treatment-fee total, plus one OR row when the scenario has an
// OR with its own treatment fee. Returns the rows and the sum of their
// already-rounded amounts.
func treatmentFeeRows(rec *model.InferenceOutput, tmpl Template) ([]model.ChargeRow, float64) {
	rows := []model.ChargeRow{}
	total := 0.0

	for _, e := range rec.WardBreakdown {
		dtf := Round2(e.DTFTotal.Float64())
		if dtf <= 0 {
			continue
		}
		row := model.ChargeRow{Label: treatmentFeeLabel, Description: flatDesc(dtf)}
		if isDayUnit(e) {
			row.Label = e.Type.Raw()
			if stay := stayFor(e); stay != 0 {
				row.Description = qtyDesc(Round2(dtf/stay), stay, "Day(s)")
			}
		}
		row.Amount = FormatAmount(dtf)
		rows = append(rows, row)
		total += dtf
	}

	if tmpl.HasOR {
		if orDTF := Round2(rec.ORDTF.Float64()); orDTF > 0 {
			rows = append(rows, model.ChargeRow{
				Label:       treatmentFeeLabel,
				Description: flatDesc(orDTF),
				Amount:      FormatAmount(orDTF),
			})
			total += orDTF
		}
	}
	return rows, total
}

// ancillaryCharges folds OR charges into ancillary only when a ward is also
// present; in OR-only scenarios the OR accommodation rows already carry
// them. The raw parts are summed first and rounded once.
func ancillaryCharges(rec *model.InferenceOutput, hasWard bool) float64 {
	sum := rec.AncillaryChargesLLM.Float64() + rec.DoctorPrescribedCharges.Float64()
	if hasWard {
		sum += rec.ORCharges.Float64()
	}
	return Round2(sum)
}

// stayFor resolves the billed length of stay for a ward entry. When the
// explicit value is absent or zero it falls back to charges divided by the
// first-block rate.
func stayFor(e model.WardEntry) float64 {
	if los := e.LengthOfStay.Float64(); los != 0 {
		return los
	}
	if rate := e.UnitCostFirstBlock.Float64(); rate > 0 {
		return Round2(e.Charges.Float64() / rate)
	}
	return 0
}

func isDayUnit(e model.WardEntry) bool {
	return strings.ToLower(e.QuantityUnit.Norm()) == "days"
}

func flatDesc(v float64) string {
	return "$ " + FormatAmount(v)
}

func qtyDesc(rate, qty float64, unit string) string {
	return fmt.Sprintf("$ %s x %s %s", FormatAmount(rate), FormatQuantity(qty), unit)
}
