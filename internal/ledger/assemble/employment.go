package assemble

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"loandraft/internal/draft/models"
	"loandraft/internal/ledger"
	"loandraft/internal/lookup"
	domainerrors "loandraft/pkg/domain-errors"
	strutil "loandraft/pkg/platform/strings"
)

// Flow distinguishes the single-applicant pipeline from the joint one. The
// two flows share most rules but keep a handful of deliberate divergences;
// every divergent resolver takes the flow explicitly.
type Flow int

const (
	FlowSingle Flow = iota
	FlowJoint
)

// ClassifyEmployment maps form employment details onto the ledger employment
// entry. An unknown employment-type code is a hard lookup miss; an unknown
// or absent occupation code is not.
//
// The effective-date fallback differs per flow: when month or year is
// missing, the single flow leaves the date empty while the joint flow uses
// the current date. Both behaviours are load-bearing downstream.
func ClassifyEmployment(emp models.EmploymentDetails, flow Flow, now time.Time) (ledger.Employment, error) {
	typ, ok := lookup.EmploymentTypeByCode(emp.TypeCode)
	if !ok {
		return ledger.Employment{}, domainerrors.NewLookupMiss("employment_types", emp.TypeCode)
	}

	out := ledger.Employment{
		EmploymentType: typ.Code,
		Description:    typ.Description,
		EmployerName:   emp.EmployerName,
	}
	if occ, found := lookup.OccupationByCode(emp.OccupationCode); found {
		out.Occupation = occ.LedgerCode
		out.JobDescription = occ.Description
	}
	if out.JobDescription == "" {
		if benefits := strutil.DedupeAndTrim(emp.BenefitTypes); len(benefits) > 0 {
			out.JobDescription = strings.Join(benefits, ", ")
		}
	}
	if out.EmployerName == "" {
		out.EmployerName = typ.Code
	}
	out.EffectiveDate = employmentEffectiveDate(emp, flow, now)
	return out, nil
}

func employmentEffectiveDate(emp models.EmploymentDetails, flow Flow, now time.Time) string {
	month, monthOK := lookup.MonthNumber(emp.EffectiveMonth)
	year, yearErr := strconv.Atoi(emp.EffectiveYear)
	if monthOK && yearErr == nil {
		return fmt.Sprintf("%04d-%02d-01", year, month)
	}
	if flow == FlowJoint {
		return now.Format("2006-01-02")
	}
	return ""
}
