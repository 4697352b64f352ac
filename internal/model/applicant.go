package model

import (
	"fmt"
)

// ApplicantProfile holds the five applicant inputs collected once per run.
// The profile is never mutated after its ratios have been derived.
type ApplicantProfile struct {
	CreditScore   int
	MonthlyDebt   float64
	MonthlyIncome float64
	LoanAmount    float64
	HomeValue     float64
}

// Validate checks the structural constraints on the profile: the credit
// score and monthly debt must be non-negative, the remaining amounts must
// be positive. A zero income or home value is reported separately by the
// ratio calculator so the user sees a division message, not a generic one.
func (p ApplicantProfile) Validate() error {
	if p.CreditScore < 0 {
		return fmt.Errorf("credit score must be non-negative, got %d", p.CreditScore)
	}
	if p.MonthlyDebt < 0 {
		return fmt.Errorf("monthly debt must be non-negative, got %.2f", p.MonthlyDebt)
	}
	if p.MonthlyIncome < 0 {
		return fmt.Errorf("monthly income must be non-negative, got %.2f", p.MonthlyIncome)
	}
	if p.LoanAmount <= 0 {
		return fmt.Errorf("loan amount must be positive, got %.2f", p.LoanAmount)
	}
	if p.HomeValue < 0 {
		return fmt.Errorf("home value must be non-negative, got %.2f", p.HomeValue)
	}
	return nil
}
