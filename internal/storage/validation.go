package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lendsift/lendsift/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidRun   = errors.New("invalid qualification run")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRun validates a qualification run before persisting it.
func validateRun(run *model.QualificationRun) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if run.RanAt.IsZero() {
		return fmt.Errorf("%w: ran_at is zero", ErrInvalidRun)
	}
	if run.OffersQualified > run.OffersConsidered {
		return fmt.Errorf("%w: qualified count %d exceeds considered count %d",
			ErrInvalidRun, run.OffersQualified, run.OffersConsidered)
	}
	return nil
}
