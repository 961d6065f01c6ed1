// Package models holds the validated input contract for draft submissions.
// The intake form has already enforced types, required-ness and cross-field
// rules; nothing here re-validates.
package models

import "loandraft/internal/verification"

// ApplicantProfile describes one applicant, prime or joint.
type ApplicantProfile struct {
	Personal        PersonalDetails         `json:"personalDetails"`
	Contact         ContactDetails          `json:"contactDetails"`
	Preliminary     PreliminaryDetails      `json:"preliminaryDetails"`
	Employment      EmploymentDetails       `json:"employmentDetails"`
	Identification  IdentificationDocuments `json:"identificationDocuments"`
	Refs            VerificationRefs        `json:"verificationRefs"`
	CompletionFlags CompletionFlags         `json:"completionFlags"`
}

type PersonalDetails struct {
	Title             string `json:"title"`
	FirstName         string `json:"firstName"`
	MiddleName        string `json:"middleName"`
	LastName          string `json:"lastName"`
	GenderCode        string `json:"genderCode"`
	MaritalStatusCode string `json:"maritalStatusCode"`
	DateOfBirth       string `json:"dateOfBirth"` // yyyy-mm-dd
	DependantAdults   int    `json:"dependantAdults"`
	DependantChildren int    `json:"dependantChildren"`
}

type ContactDetails struct {
	MobileNumber            string `json:"mobileNumber"`
	WorkPhoneNumber         string `json:"workPhoneNumber"`
	EmailAddress            string `json:"emailAddress"`
	ResidentialAddress      string `json:"residentialAddress"`
	ResidentialPxid         string `json:"residentialPxid"`
	MailingAddress          string `json:"mailingAddress"`
	MailingPxid             string `json:"mailingPxid"`
	AccommodationType       string `json:"accommodationType"`
	ResidencyEffectiveMonth string `json:"residencyEffectiveMonth"`
	ResidencyEffectiveYear  string `json:"residencyEffectiveYear"`
}

// SubmissionEmail returns the value the draft record stores as the
// applicant's email. The upstream form contract populates this from the
// work-phone field; callers rely on that value, so it is preserved here
// behind one accessor rather than scattered through the pipeline.
// TODO: switch to EmailAddress once the form contract fix ships.
func (c ContactDetails) SubmissionEmail() string {
	return c.WorkPhoneNumber
}

type PreliminaryDetails struct {
	NZCitizen              bool   `json:"nzCitizen"`
	PermanentResident      bool   `json:"permanentResident"`
	WorkPermit             bool   `json:"workPermit"`
	CitizenshipCountryCode string `json:"citizenshipCountryCode"`
	Bankrupt               bool   `json:"bankrupt"`
	BankruptcyYear         string `json:"bankruptcyYear"`
	LoanPurposeCode        string `json:"loanPurposeCode"`
	TradingBranch          string `json:"tradingBranch"`
}

type EmploymentDetails struct {
	TypeCode            string   `json:"typeCode"`
	OccupationCode      string   `json:"occupationCode"`
	EmployerName        string   `json:"employerName"`
	SchoolOrInstitution string   `json:"schoolOrInstitution"`
	BenefitTypes        []string `json:"benefitTypes"`
	IncomeFrequency     string   `json:"incomeFrequency"`
	IncomeAmount        string   `json:"incomeAmount"`
	EffectiveMonth      string   `json:"effectiveMonth"`
	EffectiveYear       string   `json:"effectiveYear"`
}

// IdentificationDocument is one optional identity document. Number empty
// means the document was not supplied.
type IdentificationDocument struct {
	Number        string `json:"number"`
	EffectiveDate string `json:"effectiveDate"`
	ExpiryDate    string `json:"expiryDate"`
}

type IdentificationDocuments struct {
	DriverLicence         IdentificationDocument `json:"driverLicence"`
	Passport              IdentificationDocument `json:"passport"`
	FirearmsLicence       IdentificationDocument `json:"firearmsLicence"`
	BirthCertificate      IdentificationDocument `json:"birthCertificate"`
	KiwiAccessCard        IdentificationDocument `json:"kiwiAccessCard"`
	CommunityServicesCard IdentificationDocument `json:"communityServicesCard"`
	GoldCard              IdentificationDocument `json:"goldCard"`
	StudentCard           IdentificationDocument `json:"studentCard"`
}

// VerificationRefs carries the numeric contact-record refs the intake form
// allocated. nil means no record exists and the field is skipped.
type VerificationRefs struct {
	Mobile             *int64 `json:"mobile"`
	WorkPhone          *int64 `json:"workPhone"`
	Email              *int64 `json:"email"`
	ResidentialAddress *int64 `json:"residentialAddress"`
	MailingAddress     *int64 `json:"mailingAddress"`
}

// CompletionFlags marks verifications already completed on an earlier
// submission attempt.
type CompletionFlags struct {
	Mobile             bool `json:"mobile"`
	WorkPhone          bool `json:"workPhone"`
	Email              bool `json:"email"`
	ResidentialAddress bool `json:"residentialAddress"`
	MailingAddress     bool `json:"mailingAddress"`
}

// ContactFields maps the profile onto the orchestrator's input.
func (p ApplicantProfile) ContactFields() verification.ContactFields {
	return verification.ContactFields{
		MobileNumber:    p.Contact.MobileNumber,
		WorkPhoneNumber: p.Contact.WorkPhoneNumber,
		EmailAddress:    p.Contact.EmailAddress,
		ResidentialPxid: p.Contact.ResidentialPxid,
		MailingPxid:     p.Contact.MailingPxid,
	}
}

// VerificationRefs maps the profile's refs onto the persistence input.
func (p ApplicantProfile) VerificationRefs() verification.Refs {
	return verification.Refs{
		Mobile:             p.Refs.Mobile,
		WorkPhone:          p.Refs.WorkPhone,
		Email:              p.Refs.Email,
		ResidentialAddress: p.Refs.ResidentialAddress,
		MailingAddress:     p.Refs.MailingAddress,
	}
}

// VerificationFlags maps the profile's completion flags onto the
// orchestrator's input.
func (p ApplicantProfile) VerificationFlags() verification.CompletionFlags {
	return verification.CompletionFlags{
		Mobile:             p.CompletionFlags.Mobile,
		WorkPhone:          p.CompletionFlags.WorkPhone,
		Email:              p.CompletionFlags.Email,
		ResidentialAddress: p.CompletionFlags.ResidentialAddress,
		MailingAddress:     p.CompletionFlags.MailingAddress,
	}
}

// LoanDetails carries the financial terms, pre-formatted by the form layer.
type LoanDetails struct {
	Term             string `json:"term"`
	PaymentFrequency string `json:"paymentFrequency"`
	TotalAmount      string `json:"totalAmount"`
	CostOfGoods      string `json:"costOfGoods"`
	SalesChannelCode string `json:"salesChannelCode"`
	MemoText         string `json:"memoText"`
}

// VehicleSecurity is the optional loan security. An empty registration
// number means no security was elected.
type VehicleSecurity struct {
	RegistrationNumber string `json:"registrationNumber"`
}

// InsuranceSelection is the applicant's optional insurance election.
type InsuranceSelection struct {
	Needed            bool   `json:"needed"`
	CoverTypeCode     string `json:"coverTypeCode"`
	ComponentTypeCode string `json:"componentTypeCode"`
}

// SingleDraftRequest is the decoded body of POST /applications/draft.
type SingleDraftRequest struct {
	Applicant ApplicantProfile   `json:"applicant"`
	Loan      LoanDetails        `json:"loan"`
	Vehicle   VehicleSecurity    `json:"vehicle"`
	Insurance InsuranceSelection `json:"insurance"`
}

// JointDraftRequest is the decoded body of POST /applications/draft/joint.
type JointDraftRequest struct {
	Prime     ApplicantProfile   `json:"prime"`
	Joint     ApplicantProfile   `json:"joint"`
	Loan      LoanDetails        `json:"loan"`
	Vehicle   VehicleSecurity    `json:"vehicle"`
	Insurance InsuranceSelection `json:"insurance"`
}
