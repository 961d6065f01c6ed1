package domainerrors

import "fmt"

// LookupMiss reports a code that has no match in a fixed reference table.
// The offending table and code are kept separately so handlers and audit
// records can surface exactly what was rejected.
type LookupMiss struct {
	Table string // reference table name, e.g. "loan_purposes"
	Value string // the code that missed
}

func (m *LookupMiss) Error() string {
	return fmt.Sprintf("%s: no entry for code %q", m.Table, m.Value)
}

// NewLookupMiss wraps a LookupMiss in a coded domain error so dErrors.Is
// and CodeOf keep working at the HTTP boundary.
func NewLookupMiss(table, value string) *Error {
	miss := &LookupMiss{Table: table, Value: value}
	return &Error{Code: CodeLookupMiss, Message: miss.Error(), cause: miss}
}
