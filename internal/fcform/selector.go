package fcform

import (
	"slices"
	"strings"

	"github.com/hospitech/fcproc/internal/model"
)

// Template ids, one per billing scenario on the estimate form.
const (
	TemplateUnclassified = 0
	TemplateWardAndOR    = 1
	TemplateWardDays     = 2
	TemplateWardHoursOne = 3
	TemplateWardHoursTwo = 4
	TemplateWardTwoTypes = 5
	TemplateOROneBlock   = 6
	TemplateORTwoBlocks  = 7
)

var templateNames = map[int]string{
	TemplateUnclassified: "UNCLASSIFIED",
	TemplateWardAndOR:    "Ward + OR",
	TemplateWardDays:     "Ward only (days)",
	TemplateWardHoursOne: "Ward only (hours, 1 block)",
	TemplateWardHoursTwo: "Ward only (hours, 2 blocks)",
	TemplateWardTwoTypes: "Ward only (2 types)",
	TemplateOROneBlock:   "OR only (1 block)",
	TemplateORTwoBlocks:  "OR only (2 blocks)",
}

// Template describes the billing scenario a record falls into and the facts
// the mapper needs to build rows for it. WardUnit reflects only the first
// ward entry and is empty when no unit is present.
type Template struct {
	ID        int
	Name      string
	HasWard   bool
	HasOR     bool
	WardCount int
	WardUnit  string
}

// SelectTemplate classifies a record into one of the eight template
// scenarios. It never fails: missing or malformed fields degrade to
// "no ward" / "no OR" and the record lands in UNCLASSIFIED.
func SelectTemplate(rec *model.InferenceOutput) Template {
	hasWard := hasWardData(rec)
	hasOR := hasORData(rec)

	var id int
	switch {
	case hasWard && hasOR:
		id = TemplateWardAndOR
	case hasWard:
		id = wardOnlyTemplate(rec)
	case hasOR:
		if rec.ORUnitCostSubq.Float64() > 0 {
			id = TemplateORTwoBlocks
		} else {
			id = TemplateOROneBlock
		}
	default:
		id = TemplateUnclassified
	}

	return Template{
		ID:        id,
		Name:      templateNames[id],
		HasWard:   hasWard,
		HasOR:     hasOR,
		WardCount: len(rec.WardBreakdown),
		WardUnit:  wardUnit(rec),
	}
}

func hasWardData(rec *model.InferenceOutput) bool {
	for _, e := range rec.WardBreakdown {
		if e.Type.Present() {
			return true
		}
	}
	return false
}

// hasORData requires an OR type label plus a positive charge signal. A label
// alone, or one with only negative amounts, never counts.
func hasORData(rec *model.InferenceOutput) bool {
	if !rec.ORType.Present() {
		return false
	}
	return rec.ORCharges.Float64() > 0 || rec.ORUnitCostFirstBlock.Float64() > 0
}

// wardOnlyTemplate picks among the ward-only scenarios. Two distinct ward
// types win over the hours checks even when both conditions hold.
func wardOnlyTemplate(rec *model.InferenceOutput) int {
	if len(distinctWardTypes(rec)) >= 2 {
		return TemplateWardTwoTypes
	}
	if wardUnit(rec) == "hours" {
		if len(rec.WardBreakdown) >= 2 {
			return TemplateWardHoursTwo
		}
		return TemplateWardHoursOne
	}
	return TemplateWardDays
}

func wardUnit(rec *model.InferenceOutput) string {
	if len(rec.WardBreakdown) == 0 {
		return ""
	}
	return strings.ToLower(rec.WardBreakdown[0].QuantityUnit.Norm())
}

// distinctWardTypes returns the unique present ward-type labels in
// first-seen order.
func distinctWardTypes(rec *model.InferenceOutput) []string {
	var seen []string
	for _, e := range rec.WardBreakdown {
		wt := e.Type.Norm()
		if wt == "" || slices.Contains(seen, wt) {
			continue
		}
		seen = append(seen, wt)
	}
	return seen
}
