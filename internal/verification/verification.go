// Package verification defines the verification kinds, statuses and result
// types shared by the clients, the orchestrator and the persistence adapter.
package verification

// Kind identifies one contactable field subject to verification.
// The two address kinds are verified through the same address-lookup client
// but persisted as independent targets.
type Kind string

const (
	KindMobile             Kind = "mobile"
	KindWorkPhone          Kind = "workPhone"
	KindEmail              Kind = "email"
	KindResidentialAddress Kind = "residentialAddress"
	KindMailingAddress     Kind = "mailingAddress"
)

// Kinds lists every verification kind in a stable order.
var Kinds = []Kind{
	KindMobile,
	KindWorkPhone,
	KindEmail,
	KindResidentialAddress,
	KindMailingAddress,
}

// Status is the outcome of one verification attempt.
//
// Absent is not a failure: it means the input field was empty (or already
// verified, in the single-applicant flow) and the call was never issued.
type Status string

const (
	StatusAbsent    Status = "absent"
	StatusFailed    Status = "failed"
	StatusSucceeded Status = "succeeded"
)

// PhoneResult is the structured outcome of a phone-line verification.
type PhoneResult struct {
	Success                bool   `json:"success"`
	LineType               string `json:"lineType"`
	LineStatus             string `json:"lineStatus"`
	LineStatusReason       string `json:"lineStatusReason"`
	CountryCode            string `json:"countryCode"`
	CallingCode            string `json:"callingCode"`
	RawNational            string `json:"rawNational"`
	FormattedNational      string `json:"formattedNational"`
	RawInternational       string `json:"rawInternational"`
	FormattedInternational string `json:"formattedInternational"`
	NotVerifiedCode        string `json:"notVerifiedCode,omitempty"`
	NotVerifiedReason      string `json:"notVerifiedReason,omitempty"`
}

// EmailResult is the structured outcome of an email-address verification.
type EmailResult struct {
	Success           bool   `json:"success"`
	EmailAddress      string `json:"emailAddress"`
	Account           string `json:"account"`
	Domain            string `json:"domain"`
	ProviderDomain    string `json:"providerDomain"`
	IsDisposable      bool   `json:"isDisposable"`
	IsRole            bool   `json:"isRole"`
	IsPublic          bool   `json:"isPublic"`
	IsCatchAll        bool   `json:"isCatchAll"`
	NotVerifiedCode   string `json:"notVerifiedCode,omitempty"`
	NotVerifiedReason string `json:"notVerifiedReason,omitempty"`
}

// AddressResult is the metadata record returned by the address lookup for a
// pxid. RawPayload keeps the service's exact response for the audit trail.
type AddressResult struct {
	Pxid        string `json:"pxid"`
	FullAddress string `json:"fullAddress"`
	Number      string `json:"number"`
	Street      string `json:"street"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
	RawPayload  []byte `json:"-"`
}

// Result is the tagged outcome for one kind.
type Result struct {
	Kind    Kind
	Status  Status
	Phone   *PhoneResult
	Email   *EmailResult
	Address *AddressResult
	Err     error // set only when Status == StatusFailed
}

// ResultSet maps each kind to its result. Kinds that were never considered
// are present with StatusAbsent so callers can range over Kinds safely.
type ResultSet map[Kind]Result

// NewResultSet returns a set with every kind marked absent.
func NewResultSet() ResultSet {
	set := make(ResultSet, len(Kinds))
	for _, k := range Kinds {
		set[k] = Result{Kind: k, Status: StatusAbsent}
	}
	return set
}

// Succeeded reports whether the kind completed with a usable result.
func (s ResultSet) Succeeded(kind Kind) bool {
	return s[kind].Status == StatusSucceeded
}
