package verification

// ContactFields is the slice of an applicant's contact details the
// orchestrator needs. Empty fields are skipped outright.
type ContactFields struct {
	MobileNumber    string
	WorkPhoneNumber string
	EmailAddress    string
	ResidentialPxid string
	MailingPxid     string
}

// Value returns the input value driving the given verification kind.
func (c ContactFields) Value(kind Kind) string {
	switch kind {
	case KindMobile:
		return c.MobileNumber
	case KindWorkPhone:
		return c.WorkPhoneNumber
	case KindEmail:
		return c.EmailAddress
	case KindResidentialAddress:
		return c.ResidentialPxid
	case KindMailingAddress:
		return c.MailingPxid
	}
	return ""
}

// Refs holds the numeric contact-record refs the intake form allocated, one
// per contactable field. nil means no record exists for that field.
type Refs struct {
	Mobile             *int64
	WorkPhone          *int64
	Email              *int64
	ResidentialAddress *int64
	MailingAddress     *int64
}

// Ref returns the record ref for the given kind, or nil.
func (r Refs) Ref(kind Kind) *int64 {
	switch kind {
	case KindMobile:
		return r.Mobile
	case KindWorkPhone:
		return r.WorkPhone
	case KindEmail:
		return r.Email
	case KindResidentialAddress:
		return r.ResidentialAddress
	case KindMailingAddress:
		return r.MailingAddress
	}
	return nil
}

// CompletionFlags records which verifications already completed on a prior
// submission attempt. Only the single-applicant flow consults these.
type CompletionFlags struct {
	Mobile             bool
	WorkPhone          bool
	Email              bool
	ResidentialAddress bool
	MailingAddress     bool
}

// Done returns the completion flag for the given kind.
func (f CompletionFlags) Done(kind Kind) bool {
	switch kind {
	case KindMobile:
		return f.Mobile
	case KindWorkPhone:
		return f.WorkPhone
	case KindEmail:
		return f.Email
	case KindResidentialAddress:
		return f.ResidentialAddress
	case KindMailingAddress:
		return f.MailingAddress
	}
	return false
}
