package lookup

// InsuranceCatalogRow maps a (cover type, insurance component) selection onto
// the ledger system's cover code for the credit-insurance product.
type InsuranceCatalogRow struct {
	CoverType       string
	InsuranceType   string
	LedgerCoverCode string
	Description     string
}

// insuranceCatalog is the fixed product catalog: three cover types crossed
// with three component bundles.
var insuranceCatalog = []InsuranceCatalogRow{
	{CoverType: "SINGLE", InsuranceType: "DEATH", LedgerCoverCode: "OPT1", Description: "Single cover - Death"},
	{CoverType: "SINGLE", InsuranceType: "DEATH_DISABILITY", LedgerCoverCode: "OPT2", Description: "Single cover - Death and Disability"},
	{CoverType: "SINGLE", InsuranceType: "DEATH_DISABILITY_REDUNDANCY", LedgerCoverCode: "OPT3", Description: "Single cover - Death, Disability and Redundancy"},
	{CoverType: "JOINT", InsuranceType: "DEATH", LedgerCoverCode: "OPT4", Description: "Joint cover - Death"},
	{CoverType: "JOINT", InsuranceType: "DEATH_DISABILITY", LedgerCoverCode: "OPT5", Description: "Joint cover - Death and Disability"},
	{CoverType: "JOINT", InsuranceType: "DEATH_DISABILITY_REDUNDANCY", LedgerCoverCode: "OPT6", Description: "Joint cover - Death, Disability and Redundancy"},
	{CoverType: "DUAL", InsuranceType: "DEATH", LedgerCoverCode: "OPT7", Description: "Dual cover - Death"},
	{CoverType: "DUAL", InsuranceType: "DEATH_DISABILITY", LedgerCoverCode: "OPT8", Description: "Dual cover - Death and Disability"},
	{CoverType: "DUAL", InsuranceType: "DEATH_DISABILITY_REDUNDANCY", LedgerCoverCode: "OPT9", Description: "Dual cover - Death, Disability and Redundancy"},
}

// InsuranceCatalog returns the fixed catalog, callers must not mutate it.
func InsuranceCatalog() []InsuranceCatalogRow {
	return insuranceCatalog
}
