// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Rate-sheet errors.
	ErrSheetNotFound   = errors.New("rate sheet not found")
	ErrNoOffersToWrite = errors.New("refusing to write an empty rate sheet")

	// Qualification errors.
	ErrZeroDenominator   = errors.New("division by zero")
	ErrNoQualifyingLoans = errors.New("no qualifying loans")

	// Applicant errors.
	ErrInvalidProfile = errors.New("invalid applicant profile")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Derived division errors. Both unwrap to ErrZeroDenominator so callers can
// match the whole class with a single errors.Is check.
var (
	ErrZeroIncome    = fmt.Errorf("monthly income is zero: %w", ErrZeroDenominator)
	ErrZeroHomeValue = fmt.Errorf("home value is zero: %w", ErrZeroDenominator)
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
