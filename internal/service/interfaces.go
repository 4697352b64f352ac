// Package service defines the interfaces for the application's collaborators.
package service

import (
	"context"

	"github.com/lendsift/lendsift/internal/model"
)

// InputSource supplies the values the qualification flow needs from the
// user. The interactive terminal prompter implements it; tests use a
// scripted implementation so commands run without a terminal.
type InputSource interface {
	// ReadPath prompts for a file path and returns it verbatim.
	ReadPath(ctx context.Context, prompt string) (string, error)
	// ReadInt prompts until the user supplies a non-negative integer.
	ReadInt(ctx context.Context, prompt string) (int, error)
	// ReadAmount prompts until the user supplies a non-negative decimal
	// currency amount.
	ReadAmount(ctx context.Context, prompt string) (float64, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Storage defines the contract for the run-history persistence layer.
type Storage interface {
	SaveRun(ctx context.Context, run *model.QualificationRun) error
	ListRuns(ctx context.Context, limit int) ([]model.QualificationRun, error)
	Migrate(ctx context.Context) error
	Close() error
}
