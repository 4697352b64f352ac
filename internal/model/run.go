package model

import (
	"time"
)

// QualificationRun records the outcome of a single qualification run for
// the history log.
type QualificationRun struct {
	RanAt            time.Time
	SavedPath        string
	ID               int64
	CreditScore      int
	MonthlyDebt      float64
	MonthlyIncome    float64
	LoanAmount       float64
	HomeValue        float64
	DebtToIncome     float64
	LoanToValue      float64
	OffersConsidered int
	OffersQualified  int
}
