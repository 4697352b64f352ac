// Package qualifier implements the loan qualification pipeline: ratio
// derivation and the fixed sequence of eligibility filters applied to a
// bank rate sheet.
package qualifier

import (
	"github.com/lendsift/lendsift/internal/common"
)

// Ratios holds the two derived applicant ratios. Computed once per run,
// read-only afterwards.
type Ratios struct {
	DebtToIncome float64
	LoanToValue  float64
}

// DebtToIncome returns the applicant's monthly debt-to-income ratio.
// Values above 1.0 are valid and simply mean the applicant is
// over-leveraged; no clamping or rounding is applied here.
func DebtToIncome(monthlyDebt, monthlyIncome float64) (float64, error) {
	if monthlyIncome == 0 {
		return 0, common.ErrZeroIncome
	}
	return monthlyDebt / monthlyIncome, nil
}

// LoanToValue returns the loan-to-value ratio for the requested loan
// against the home value. Ratios above 1.0 are permitted.
func LoanToValue(loanAmount, homeValue float64) (float64, error) {
	if homeValue == 0 {
		return 0, common.ErrZeroHomeValue
	}
	return loanAmount / homeValue, nil
}
