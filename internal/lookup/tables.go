// Package lookup holds the static reference tables the ledger system's
// mapping contract depends on. Pure data: no I/O, no dependencies.
package lookup

// EmploymentType pairs a form employment-type code with the ledger
// description for it.
type EmploymentType struct {
	Code        string
	Description string
}

// employmentTypes is the fixed 14-entry employment classification table.
var employmentTypes = map[string]EmploymentType{
	"FT": {Code: "FT", Description: "Full Time"},
	"PT": {Code: "PT", Description: "Part Time"},
	"CA": {Code: "CA", Description: "Casual"},
	"CT": {Code: "CT", Description: "Contract"},
	"SE": {Code: "SE", Description: "Self Employed"},
	"SN": {Code: "SN", Description: "Seasonal"},
	"ST": {Code: "ST", Description: "Student"},
	"BT": {Code: "BT", Description: "Beneficiary"},
	"RT": {Code: "RT", Description: "Retired"},
	"HM": {Code: "HM", Description: "Home Maker"},
	"UE": {Code: "UE", Description: "Unemployed"},
	"AP": {Code: "AP", Description: "Apprentice"},
	"TW": {Code: "TW", Description: "Temporary Worker"},
	"OT": {Code: "OT", Description: "Other"},
}

// EmploymentTypeByCode returns the table entry for a form code.
func EmploymentTypeByCode(code string) (EmploymentType, bool) {
	t, ok := employmentTypes[code]
	return t, ok
}

// Occupation pairs a form occupation code with the ledger system's own
// occupation code and description.
type Occupation struct {
	LedgerCode  string
	Description string
}

var occupations = map[string]Occupation{
	"01": {LedgerCode: "MGR", Description: "Managers"},
	"02": {LedgerCode: "PRO", Description: "Professionals"},
	"03": {LedgerCode: "TEC", Description: "Technicians and Trades Workers"},
	"04": {LedgerCode: "COM", Description: "Community and Personal Service Workers"},
	"05": {LedgerCode: "CLE", Description: "Clerical and Administrative Workers"},
	"06": {LedgerCode: "SAL", Description: "Sales Workers"},
	"07": {LedgerCode: "MAC", Description: "Machinery Operators and Drivers"},
	"08": {LedgerCode: "LAB", Description: "Labourers"},
	"09": {LedgerCode: "DEF", Description: "Defence and Protective Services"},
	"10": {LedgerCode: "AGR", Description: "Agriculture and Fishery Workers"},
	"11": {LedgerCode: "HOS", Description: "Hospitality Workers"},
	"12": {LedgerCode: "OTH", Description: "Other Occupations"},
}

// OccupationByCode returns the ledger occupation mapping for a form code.
func OccupationByCode(code string) (Occupation, bool) {
	o, ok := occupations[code]
	return o, ok
}

// LoanPurpose carries the two-level ledger purpose classification.
type LoanPurpose struct {
	Level1      string
	Level2      string
	Description string
}

var loanPurposes = map[string]LoanPurpose{
	"VEH": {Level1: "NBUS", Level2: "VEHP", Description: "Vehicle Purchase"},
	"DCN": {Level1: "NBUS", Level2: "DCON", Description: "Debt Consolidation"},
	"HOL": {Level1: "NBUS", Level2: "TRVL", Description: "Holiday / Travel"},
	"MED": {Level1: "NBUS", Level2: "MEDE", Description: "Medical / Dental"},
	"EDU": {Level1: "NBUS", Level2: "EDUC", Description: "Education"},
	"HIM": {Level1: "NBUS", Level2: "HIMP", Description: "Home Improvements"},
	"FUR": {Level1: "NBUS", Level2: "FURN", Description: "Furniture / Appliances"},
	"WED": {Level1: "NBUS", Level2: "WEDD", Description: "Wedding"},
	"FNE": {Level1: "NBUS", Level2: "FUNE", Description: "Funeral Expenses"},
	"BIL": {Level1: "NBUS", Level2: "BILL", Description: "Bills / Arrears"},
	"OTH": {Level1: "NBUS", Level2: "OTHR", Description: "Other Personal"},
}

// LoanPurposeByCode returns the ledger purpose mapping for a form code.
func LoanPurposeByCode(code string) (LoanPurpose, bool) {
	p, ok := loanPurposes[code]
	return p, ok
}

// Accommodation pairs a ledger accommodation code with its description.
type Accommodation struct {
	Code        string
	Description string
}

// Accommodation codes used by both resolver variants.
var (
	AccommodationRentShortTerm = Accommodation{Code: "RENT1", Description: "Renting less than 2 years"}
	AccommodationRentLongTerm  = Accommodation{Code: "RENT2", Description: "Renting 2 years or more"}
	AccommodationBoarding      = Accommodation{Code: "BRD", Description: "Boarding"}
	AccommodationOwnMortgage   = Accommodation{Code: "OWM", Description: "Own home with mortgage"}
	AccommodationOwnFreehold   = Accommodation{Code: "OWOM", Description: "Own home freehold"}
)

// monthNumbers resolves month names to calendar numbers for effective dates.
var monthNumbers = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// MonthNumber resolves a month name to its calendar number.
func MonthNumber(name string) (int, bool) {
	n, ok := monthNumbers[name]
	return n, ok
}

var countries = map[string]string{
	"NZ": "New Zealand",
	"AU": "Australia",
	"GB": "United Kingdom",
	"US": "United States",
	"ZA": "South Africa",
	"IN": "India",
	"CN": "China",
	"PH": "Philippines",
	"FJ": "Fiji",
	"WS": "Samoa",
	"TO": "Tonga",
	"KR": "South Korea",
}

// CountryByCode returns the country name for an ISO-style code.
func CountryByCode(code string) (string, bool) {
	c, ok := countries[code]
	return c, ok
}

var genders = map[string]string{
	"M": "Male",
	"F": "Female",
	"U": "Unspecified",
}

// GenderByCode returns the ledger description for a gender code.
func GenderByCode(code string) (string, bool) {
	g, ok := genders[code]
	return g, ok
}

var maritalStatuses = map[string]string{
	"S": "Single",
	"M": "Married",
	"D": "De Facto",
	"V": "Divorced",
	"W": "Widowed",
	"P": "Separated",
}

// MaritalStatusByCode returns the ledger description for a marital-status code.
func MaritalStatusByCode(code string) (string, bool) {
	m, ok := maritalStatuses[code]
	return m, ok
}
