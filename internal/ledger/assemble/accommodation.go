package assemble

import (
	"time"

	"loandraft/internal/ledger"
	"loandraft/internal/lookup"
)

// Accommodation type codes accepted from the form.
const (
	accommodationRent        = "rent"
	accommodationBoard       = "board"
	accommodationOwn         = "own"
	accommodationOwnOutright = "own_outright"
)

// ResolveAccommodationSingle maps the single-applicant dwelling type onto a
// ledger accommodation code. Renting splits on tenure: two or more whole
// years at the residential-effective date selects the long-term code.
// Unrecognized types fall back to own-with-mortgage.
func ResolveAccommodationSingle(typ string, residentialEffective, now time.Time) ledger.Accommodation {
	switch typ {
	case accommodationRent:
		return rentCode(residentialEffective, now)
	case accommodationBoard:
		return toLedger(lookup.AccommodationBoarding)
	case accommodationOwn:
		return toLedger(lookup.AccommodationOwnMortgage)
	default:
		return toLedger(lookup.AccommodationOwnMortgage)
	}
}

// ResolveAccommodationJoint is the joint-flow variant. It additionally
// recognizes outright ownership, which the single variant does not; the two
// tables are kept separate on purpose.
func ResolveAccommodationJoint(typ string, residentialEffective, now time.Time) ledger.Accommodation {
	switch typ {
	case accommodationRent:
		return rentCode(residentialEffective, now)
	case accommodationBoard:
		return toLedger(lookup.AccommodationBoarding)
	case accommodationOwn:
		return toLedger(lookup.AccommodationOwnMortgage)
	case accommodationOwnOutright:
		return toLedger(lookup.AccommodationOwnFreehold)
	default:
		return toLedger(lookup.AccommodationOwnMortgage)
	}
}

func rentCode(residentialEffective, now time.Time) ledger.Accommodation {
	if wholeYearsBetween(residentialEffective, now) >= 2 {
		return toLedger(lookup.AccommodationRentLongTerm)
	}
	return toLedger(lookup.AccommodationRentShortTerm)
}

// wholeYearsBetween counts completed years from 'from' to 'now'. The
// anniversary itself counts as a completed year.
func wholeYearsBetween(from, now time.Time) int {
	if now.Before(from) {
		return 0
	}
	years := now.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

func toLedger(a lookup.Accommodation) ledger.Accommodation {
	return ledger.Accommodation{Code: a.Code, Description: a.Description}
}
