// Package model defines the core domain types for loan qualification.
package model

import (
	"fmt"
	"strconv"
)

// LoanOffer is a single row from a bank rate sheet. Offers are immutable
// once loaded; their identity is their position and content in the sheet.
type LoanOffer struct {
	Lender          string
	MaxLoanAmount   float64
	MaxLoanToValue  float64
	MinCreditScore  int
	MaxDebtToIncome float64
	InterestRate    float64
}

// offerFieldCount is the fixed arity of a rate-sheet row.
const offerFieldCount = 6

// ParseOffer converts one positional CSV record into a LoanOffer.
// Column order is fixed: lender, max loan amount, max LTV, min credit
// score, max DTI, interest rate.
func ParseOffer(record []string) (LoanOffer, error) {
	if len(record) != offerFieldCount {
		return LoanOffer{}, fmt.Errorf("expected %d fields, got %d", offerFieldCount, len(record))
	}

	maxLoan, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return LoanOffer{}, fmt.Errorf("max loan amount %q: %w", record[1], err)
	}

	maxLTV, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return LoanOffer{}, fmt.Errorf("max loan-to-value %q: %w", record[2], err)
	}

	minCredit, err := strconv.Atoi(record[3])
	if err != nil {
		return LoanOffer{}, fmt.Errorf("min credit score %q: %w", record[3], err)
	}

	maxDTI, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return LoanOffer{}, fmt.Errorf("max debt-to-income %q: %w", record[4], err)
	}

	rate, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return LoanOffer{}, fmt.Errorf("interest rate %q: %w", record[5], err)
	}

	return LoanOffer{
		Lender:          record[0],
		MaxLoanAmount:   maxLoan,
		MaxLoanToValue:  maxLTV,
		MinCreditScore:  minCredit,
		MaxDebtToIncome: maxDTI,
		InterestRate:    rate,
	}, nil
}

// Record converts the offer back into its positional CSV representation.
func (o LoanOffer) Record() []string {
	return []string{
		o.Lender,
		strconv.FormatFloat(o.MaxLoanAmount, 'f', -1, 64),
		strconv.FormatFloat(o.MaxLoanToValue, 'f', -1, 64),
		strconv.Itoa(o.MinCreditScore),
		strconv.FormatFloat(o.MaxDebtToIncome, 'f', -1, 64),
		strconv.FormatFloat(o.InterestRate, 'f', -1, 64),
	}
}
