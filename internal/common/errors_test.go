package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserError(t *testing.T) {
	inner := errors.New("boom")
	err := NewUserError("Something went wrong", inner)

	if got := err.Error(); got != "Something went wrong: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Fatal("UserError should unwrap to the inner error")
	}

	var userErr *UserError
	if !errors.As(err, &userErr) {
		t.Fatal("errors.As failed to find UserError")
	}
	if userErr.UserMessage != "Something went wrong" {
		t.Fatalf("UserMessage = %q", userErr.UserMessage)
	}
}

func TestUserErrorWithoutCause(t *testing.T) {
	err := NewUserError("Just a message", nil)
	if got := err.Error(); got != "Just a message" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestDivisionErrorsUnwrapToZeroDenominator(t *testing.T) {
	for _, err := range []error{ErrZeroIncome, ErrZeroHomeValue} {
		if !errors.Is(err, ErrZeroDenominator) {
			t.Fatalf("%v should unwrap to ErrZeroDenominator", err)
		}
	}
}

func TestWrappedSentinelsSurviveFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("loading sheet: %w", ErrSheetNotFound)
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatal("wrapped ErrSheetNotFound no longer matches")
	}
}
