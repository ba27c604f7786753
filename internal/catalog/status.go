package catalog

import "fmt"

// LoanStatus is the availability of a BookInstance.
type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

// DefaultLoanStatus is assigned to new copies that do not specify a status.
const DefaultLoanStatus = StatusMaintenance

// LoanStatuses lists every status in display order.
var LoanStatuses = []LoanStatus{StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved}

// Valid reports whether s is one of the four known codes.
func (s LoanStatus) Valid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

// Label is the human readable name of the status.
func (s LoanStatus) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	}
	return string(s)
}

// ParseLoanStatus accepts a status code and rejects anything else.
func ParseLoanStatus(code string) (LoanStatus, error) {
	s := LoanStatus(code)
	if !s.Valid() {
		return "", fmt.Errorf("unknown loan status %q", code)
	}
	return s, nil
}
