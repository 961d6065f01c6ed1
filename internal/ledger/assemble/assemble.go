// Package assemble builds the ledger system's draft application document
// from validated form input, resolved lookups and stored contact records.
// Assembly is deterministic: the same input and the same pinned time yield
// a byte-identical document.
package assemble

import (
	"strconv"
	"strings"
	"time"

	"loandraft/internal/draft/models"
	"loandraft/internal/ledger"
	"loandraft/internal/lookup"
	"loandraft/internal/verification/store"
	domainerrors "loandraft/pkg/domain-errors"
)

// Temporary resource IDs used to wire relationships to included entries.
const (
	clientIDPrime = "PRIME-1"
	clientIDJoint = "JOINT-1"
	securityID    = "VEHICLE-1"
)

// ContactRecords holds the stored verification records fetched for one
// applicant. nil fields mean no stored record exists; the matching contact
// array in the document stays empty.
type ContactRecords struct {
	Mobile      *store.PhoneRecord
	WorkPhone   *store.PhoneRecord
	Email       *store.EmailRecord
	Residential *store.AddressRecord
	Mailing     *store.AddressRecord
}

// Applicant pairs a profile with its stored contact records.
type Applicant struct {
	Profile  models.ApplicantProfile
	Contacts ContactRecords
}

// Input is everything Assemble needs. Joint is nil for single submissions.
type Input struct {
	Flow      Flow
	Prime     Applicant
	Joint     *Applicant
	Loan      models.LoanDetails
	Vehicle   models.VehicleSecurity
	Insurance models.InsuranceSelection
	Catalog   []lookup.InsuranceCatalogRow
}

// Assemble builds the document in fixed stages: attributes, relationships,
// included entries, then finalization. Each stage only appends; a lookup
// miss in any stage aborts the whole build.
func Assemble(in Input, now time.Time) (*ledger.DraftPayload, error) {
	b := &builder{in: in, now: now}
	stages := []func() error{
		b.attributes,
		b.relationships,
		b.included,
		b.finalize,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return nil, err
		}
	}
	return &b.payload, nil
}

type builder struct {
	in      Input
	now     time.Time
	payload ledger.DraftPayload
}

func (b *builder) attributes() error {
	prelim := b.in.Prime.Profile.Preliminary

	purpose, ok := lookup.LoanPurposeByCode(prelim.LoanPurposeCode)
	if !ok {
		return domainerrors.NewLookupMiss("loan_purposes", prelim.LoanPurposeCode)
	}

	b.payload.Data.Type = ledger.TypeApplication
	b.payload.Data.Attributes = ledger.Attributes{
		ApplicationName:  b.applicationName(),
		TradingBranch:    prelim.TradingBranch,
		SalesChannelCode: b.in.Loan.SalesChannelCode,
		LoanPurposeCode:  prelim.LoanPurposeCode,
		LoanPurpose: ledger.LoanPurpose{
			Level1: purpose.Level1,
			Level2: purpose.Level2,
		},
		MemoText:         b.memoText(),
		Term:             b.in.Loan.Term,
		PaymentFrequency: b.in.Loan.PaymentFrequency,
		TotalAmount:      b.in.Loan.TotalAmount,
		CostOfGoods:      b.in.Loan.CostOfGoods,
		DraftedAt:        b.now.Format(time.RFC3339),
	}
	return nil
}

func (b *builder) relationships() error {
	clients := []ledger.ResourceRef{{Type: ledger.TypeAssociatedClient, ID: clientIDPrime}}
	if b.in.Joint != nil {
		clients = append(clients, ledger.ResourceRef{Type: ledger.TypeAssociatedClient, ID: clientIDJoint})
	}

	securities := []ledger.ResourceRef{}
	if b.in.Vehicle.RegistrationNumber != "" {
		securities = append(securities, ledger.ResourceRef{Type: ledger.TypeSecurity, ID: securityID})
	}

	b.payload.Data.Relationships = ledger.Relationships{
		AssociatedClients: ledger.RelationshipList{Data: clients},
		Securities:        ledger.RelationshipList{Data: securities},
	}
	return nil
}

func (b *builder) included() error {
	prime, err := b.buildClient(b.in.Prime, true)
	if err != nil {
		return err
	}
	b.payload.Included = append(b.payload.Included, ledger.Included{
		Type:       ledger.TypeAssociatedClient,
		ID:         clientIDPrime,
		Attributes: ledger.IncludedAttributes{Role: ledger.RolePrime, Seq: "1", ClientMaint: prime},
	})

	if b.in.Joint != nil {
		joint, err := b.buildClient(*b.in.Joint, false)
		if err != nil {
			return err
		}
		b.payload.Included = append(b.payload.Included, ledger.Included{
			Type:       ledger.TypeAssociatedClient,
			ID:         clientIDJoint,
			Attributes: ledger.IncludedAttributes{Role: ledger.RoleJoint, Seq: "2", ClientMaint: joint},
		})
	}

	if b.in.Vehicle.RegistrationNumber != "" {
		b.payload.Included = append(b.payload.Included, ledger.Included{
			Type: ledger.TypeSecurity,
			ID:   securityID,
			Attributes: ledger.IncludedAttributes{
				Security: &ledger.Security{
					SecurityPercentage: "100",
					Vehicle:            ledger.Vehicle{RegistrationNumber: b.in.Vehicle.RegistrationNumber},
				},
			},
		})
	}
	return nil
}

func (b *builder) finalize() error {
	if b.payload.Included == nil {
		b.payload.Included = []ledger.Included{}
	}
	return nil
}

// applicationName renders "<Title> <F>. <Last>" for the prime applicant,
// joined with " & " to the same pattern for a joint applicant.
func (b *builder) applicationName() string {
	name := displayName(b.in.Prime.Profile.Personal)
	if b.in.Joint != nil {
		name += " & " + displayName(b.in.Joint.Profile.Personal)
	}
	return name
}

func displayName(p models.PersonalDetails) string {
	parts := make([]string, 0, 3)
	if p.Title != "" {
		parts = append(parts, p.Title)
	}
	if p.FirstName != "" {
		parts = append(parts, string([]rune(p.FirstName)[0])+".")
	}
	parts = append(parts, p.LastName)
	return strings.Join(parts, " ")
}

func (b *builder) memoText() string {
	memo := b.in.Loan.MemoText
	prelim := b.in.Prime.Profile.Preliminary
	if prelim.Bankrupt {
		note := "Declared bankrupt"
		if prelim.BankruptcyYear != "" {
			note += " " + prelim.BankruptcyYear
		}
		if memo != "" {
			memo += ". "
		}
		memo += note
	}
	return memo
}

func (b *builder) buildClient(a Applicant, withInsurance bool) (*ledger.ClientMaint, error) {
	profile := a.Profile

	employment, err := ClassifyEmployment(profile.Employment, b.in.Flow, b.now)
	if err != nil {
		return nil, err
	}

	country, err := resolveCountry(profile.Preliminary)
	if err != nil {
		return nil, err
	}

	insuranceLines := []ledger.Insurance{}
	if withInsurance {
		insuranceLines, err = ResolveInsurance(b.in.Catalog, b.in.Insurance, b.in.Loan.CostOfGoods, b.in.Flow, b.now)
		if err != nil {
			return nil, err
		}
	}

	return &ledger.ClientMaint{
		GeneralDetails:       generalDetails(profile.Personal),
		Identifications:      SelectIdentifications(profile.Identification),
		ContactDetails:       contactDetails(profile.Contact, a.Contacts),
		EmploymentDetails:    []ledger.Employment{employment},
		Accommodation:        b.accommodation(profile.Contact),
		CountryOfCitizenship: country,
		FinancialDetails: []ledger.FinancialDetail{
			{Insurances: ledger.Insurances{Insurance: insuranceLines}},
		},
	}, nil
}

func (b *builder) accommodation(contact models.ContactDetails) ledger.Accommodation {
	effective := residencyEffectiveDate(contact, b.now)
	if b.in.Flow == FlowJoint {
		return ResolveAccommodationJoint(contact.AccommodationType, effective, b.now)
	}
	return ResolveAccommodationSingle(contact.AccommodationType, effective, b.now)
}

// residencyEffectiveDate resolves the residency month/year pair to the first
// of that month. An unresolvable pair counts as "moved in now", which keeps
// rent tenure at zero years.
func residencyEffectiveDate(contact models.ContactDetails, now time.Time) time.Time {
	month, monthOK := lookup.MonthNumber(contact.ResidencyEffectiveMonth)
	year, yearErr := strconv.Atoi(contact.ResidencyEffectiveYear)
	if !monthOK || yearErr != nil {
		return now
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func generalDetails(p models.PersonalDetails) ledger.GeneralDetails {
	gender := p.GenderCode
	if desc, ok := lookup.GenderByCode(p.GenderCode); ok {
		gender = desc
	}
	marital := p.MaritalStatusCode
	if desc, ok := lookup.MaritalStatusByCode(p.MaritalStatusCode); ok {
		marital = desc
	}
	return ledger.GeneralDetails{
		Title:             p.Title,
		FirstName:         p.FirstName,
		MiddleName:        p.MiddleName,
		Surname:           p.LastName,
		Gender:            gender,
		DateOfBirth:       p.DateOfBirth,
		MaritalStatus:     marital,
		DependantAdults:   p.DependantAdults,
		DependantChildren: p.DependantChildren,
	}
}

// contactDetails fills the four contact arrays. Phone, mobile and email
// entries come only from stored verification records; the arrays stay empty
// when no record was fetched. Address entries come from the form.
func contactDetails(contact models.ContactDetails, records ContactRecords) ledger.ContactDetails {
	details := ledger.ContactDetails{
		Mobile:  []ledger.MobileContact{},
		Phone:   []ledger.PhoneContact{},
		Email:   []ledger.EmailContact{},
		Address: []ledger.AddressContact{},
	}

	if rec := records.Mobile; rec != nil {
		details.Mobile = append(details.Mobile, ledger.MobileContact{
			CountryCode:     rec.CallingCode,
			NetworkCode:     rec.NetworkCode,
			Number:          phoneNumber(rec),
			PreferredMethod: "Y",
		})
	}
	if rec := records.WorkPhone; rec != nil {
		details.Phone = append(details.Phone, ledger.PhoneContact{
			CountryCode:     rec.CallingCode,
			StdCode:         rec.NetworkCode,
			Number:          phoneNumber(rec),
			PreferredMethod: "N",
		})
	}
	if rec := records.Email; rec != nil {
		details.Email = append(details.Email, ledger.EmailContact{
			Address:         rec.VerifiedEmail,
			PreferredMethod: "N",
		})
	}

	if contact.ResidentialAddress != "" {
		details.Address = append(details.Address, ledger.AddressContact{
			Purpose:     "R",
			FullAddress: contact.ResidentialAddress,
			Pxid:        contact.ResidentialPxid,
		})
	}
	if contact.MailingAddress != "" {
		details.Address = append(details.Address, ledger.AddressContact{
			Purpose:     "M",
			FullAddress: contact.MailingAddress,
			Pxid:        contact.MailingPxid,
		})
	}
	return details
}

func phoneNumber(rec *store.PhoneRecord) string {
	if rec.LocalNumber != "" {
		return rec.LocalNumber
	}
	return rec.RawNational
}

// resolveCountry returns the citizenship country code for the document. A
// declared NZ citizen is always "NZ"; anyone else must carry a code present
// in the countries table.
func resolveCountry(prelim models.PreliminaryDetails) (string, error) {
	if prelim.NZCitizen {
		return "NZ", nil
	}
	if _, ok := lookup.CountryByCode(prelim.CitizenshipCountryCode); !ok {
		return "", domainerrors.NewLookupMiss("countries", prelim.CitizenshipCountryCode)
	}
	return prelim.CitizenshipCountryCode, nil
}
