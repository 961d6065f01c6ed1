package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmploymentTypeTableHasFourteenEntries(t *testing.T) {
	assert.Len(t, employmentTypes, 14)
}

func TestEmploymentTypeByCode(t *testing.T) {
	et, ok := EmploymentTypeByCode("SE")
	assert.True(t, ok)
	assert.Equal(t, "Self Employed", et.Description)

	_, ok = EmploymentTypeByCode("XX")
	assert.False(t, ok)
}

func TestLoanPurposeByCode(t *testing.T) {
	p, ok := LoanPurposeByCode("VEH")
	assert.True(t, ok)
	assert.Equal(t, "NBUS", p.Level1)
	assert.Equal(t, "VEHP", p.Level2)

	_, ok = LoanPurposeByCode("ZZZ")
	assert.False(t, ok)
}

func TestMonthNumber(t *testing.T) {
	n, ok := MonthNumber("September")
	assert.True(t, ok)
	assert.Equal(t, 9, n)

	_, ok = MonthNumber("septembre")
	assert.False(t, ok)
}

func TestCountryByCode(t *testing.T) {
	name, ok := CountryByCode("FJ")
	assert.True(t, ok)
	assert.Equal(t, "Fiji", name)

	_, ok = CountryByCode("XQ")
	assert.False(t, ok)
}
