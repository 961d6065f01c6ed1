// Package ledger defines the wire shapes of the draft application document
// the core-banking system accepts. These structs are the contract: field
// names and nesting follow the ledger schema, not internal conventions.
package ledger

// Resource type discriminators used in relationships and included entries.
const (
	TypeApplication      = "application"
	TypeAssociatedClient = "associatedClients"
	TypeSecurity         = "securities"
)

// Client roles within an application.
const (
	RolePrime = "PRIMEB"
	RoleJoint = "COBOR"
)

// DraftPayload is the complete document submitted to the ledger system.
type DraftPayload struct {
	Data     Data       `json:"data"`
	Included []Included `json:"included"`
}

type Data struct {
	Type          string        `json:"type"`
	Attributes    Attributes    `json:"attributes"`
	Relationships Relationships `json:"relationships"`
}

type Attributes struct {
	ApplicationName  string      `json:"applicationName"`
	TradingBranch    string      `json:"tradingBranch"`
	SalesChannelCode string      `json:"salesChannelCode"`
	LoanPurposeCode  string      `json:"loanPurposeCode"`
	LoanPurpose      LoanPurpose `json:"loanPurpose"`
	MemoText         string      `json:"memoText"`
	Term             string      `json:"term"`
	PaymentFrequency string      `json:"paymentFrequency"`
	TotalAmount      string      `json:"totalAmount"`
	CostOfGoods      string      `json:"costOfGoods"`
	DraftedAt        string      `json:"draftedAt"`
}

type LoanPurpose struct {
	Level1 string `json:"level1"`
	Level2 string `json:"level2"`
}

type Relationships struct {
	AssociatedClients RelationshipList `json:"associatedClients"`
	Securities        RelationshipList `json:"securities"`
}

// RelationshipList always serializes its data member, empty or not.
type RelationshipList struct {
	Data []ResourceRef `json:"data"`
}

type ResourceRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Included is one entry of the document's included array: an associated
// client or a security. Exactly one of ClientMaint / Security is set.
type Included struct {
	Type       string             `json:"type"`
	ID         string             `json:"id"`
	Attributes IncludedAttributes `json:"attributes"`
}

type IncludedAttributes struct {
	Role        string       `json:"role,omitempty"`
	Seq         string       `json:"seq,omitempty"`
	ClientMaint *ClientMaint `json:"clientMaint,omitempty"`
	Security    *Security    `json:"security,omitempty"`
}

type ClientMaint struct {
	GeneralDetails       GeneralDetails    `json:"generalDetails"`
	Identifications      []Identification  `json:"identifications"`
	ContactDetails       ContactDetails    `json:"contactDetails"`
	EmploymentDetails    []Employment      `json:"employmentDetails"`
	Accommodation        Accommodation     `json:"accommodation"`
	CountryOfCitizenship string            `json:"countryOfCitizenship"`
	FinancialDetails     []FinancialDetail `json:"financialDetails"`
}

type GeneralDetails struct {
	Title             string `json:"title"`
	FirstName         string `json:"firstName"`
	MiddleName        string `json:"middleName,omitempty"`
	Surname           string `json:"surname"`
	Gender            string `json:"gender"`
	DateOfBirth       string `json:"dateOfBirth"`
	MaritalStatus     string `json:"maritalStatus"`
	DependantAdults   int    `json:"numberOfDependantAdults"`
	DependantChildren int    `json:"numberOfDependantChildren"`
}

type Identification struct {
	IDCode1       string `json:"idCode1"`
	Reference     string `json:"reference"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
}

// ContactDetails arrays are always present in the document, empty when the
// stored contact fetch returned nothing for that field.
type ContactDetails struct {
	Mobile  []MobileContact  `json:"mobile"`
	Phone   []PhoneContact   `json:"phone"`
	Email   []EmailContact   `json:"email"`
	Address []AddressContact `json:"address"`
}

type MobileContact struct {
	CountryCode     string `json:"countryCode"`
	NetworkCode     string `json:"networkCode"`
	Number          string `json:"number"`
	PreferredMethod string `json:"preferredMethod"`
}

type PhoneContact struct {
	CountryCode     string `json:"countryCode"`
	StdCode         string `json:"stdCode"`
	Number          string `json:"number"`
	PreferredMethod string `json:"preferredMethod"`
}

type EmailContact struct {
	Address         string `json:"address"`
	PreferredMethod string `json:"preferredMethod"`
}

type AddressContact struct {
	Purpose     string `json:"purpose"`
	FullAddress string `json:"fullAddress"`
	Pxid        string `json:"pxid,omitempty"`
}

type Employment struct {
	EmploymentType string `json:"employmentType"`
	Description    string `json:"description"`
	Occupation     string `json:"occupation,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`
	EmployerName   string `json:"employerName"`
	EffectiveDate  string `json:"effectiveDate"`
}

type Accommodation struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type FinancialDetail struct {
	Insurances Insurances `json:"insurances"`
}

type Insurances struct {
	Insurance []Insurance `json:"insurance"`
}

type Insurance struct {
	InsuranceType     string `json:"insuranceType"`
	InsuranceOption   string `json:"insuranceOption"`
	Premium           string `json:"premium"`
	PolicyDescription string `json:"policyDescription"`
	SumInsured        string `json:"sumInsured"`
	Commencement      string `json:"commencement"`
}

type Security struct {
	SecurityPercentage string  `json:"securityPercentage"`
	Vehicle            Vehicle `json:"vehicle"`
}

type Vehicle struct {
	RegistrationNumber string `json:"registrationNumber"`
}
