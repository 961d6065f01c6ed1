package assemble

import (
	"fmt"
	"time"

	"loandraft/internal/draft/models"
	"loandraft/internal/ledger"
	"loandraft/internal/lookup"
	domainerrors "loandraft/pkg/domain-errors"
)

// Fixed product code for the credit-insurance line.
const insuranceProductCode = "CCI"

// jointCommencementDate is the fixed commencement the joint flow has always
// submitted; the single flow uses the current date.
const jointCommencementDate = "2019-09-25"

// ResolveInsurance builds the insurance lines for the application. No
// election, or an incomplete one, yields an empty list. A complete election
// must match a catalog row on cover type and component type; a miss fails
// the submission rather than producing an unpriceable line.
func ResolveInsurance(catalog []lookup.InsuranceCatalogRow, sel models.InsuranceSelection, costOfGoods string, flow Flow, now time.Time) ([]ledger.Insurance, error) {
	if !sel.Needed || sel.CoverTypeCode == "" || sel.ComponentTypeCode == "" {
		return []ledger.Insurance{}, nil
	}

	row, ok := matchCatalog(catalog, sel.CoverTypeCode, sel.ComponentTypeCode)
	if !ok {
		return nil, domainerrors.NewLookupMiss("insurance_catalog", sel.CoverTypeCode+"/"+sel.ComponentTypeCode)
	}

	commencement := now.Format("2006-01-02")
	if flow == FlowJoint {
		commencement = jointCommencementDate
	}

	return []ledger.Insurance{{
		InsuranceType:     insuranceProductCode,
		InsuranceOption:   row.LedgerCoverCode,
		Premium:           "0.00",
		PolicyDescription: fmt.Sprintf("%s - %s", insuranceProductCode, row.Description),
		SumInsured:        costOfGoods,
		Commencement:      commencement,
	}}, nil
}

func matchCatalog(catalog []lookup.InsuranceCatalogRow, coverType, insuranceType string) (lookup.InsuranceCatalogRow, bool) {
	for _, row := range catalog {
		if row.CoverType == coverType && row.InsuranceType == insuranceType {
			return row, true
		}
	}
	return lookup.InsuranceCatalogRow{}, false
}
