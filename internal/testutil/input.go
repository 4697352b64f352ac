// Package testutil provides test doubles for the application's
// collaborator interfaces.
package testutil

import (
	"context"
	"fmt"
)

// ScriptedInput implements service.InputSource from a fixed script of
// answers, consumed in order. It lets command flows run in tests without a
// terminal.
type ScriptedInput struct {
	Paths    []string
	Ints     []int
	Amounts  []float64
	Confirms []bool

	pathIdx    int
	intIdx     int
	amountIdx  int
	confirmIdx int
}

// ReadPath returns the next scripted path.
func (s *ScriptedInput) ReadPath(_ context.Context, prompt string) (string, error) {
	if s.pathIdx >= len(s.Paths) {
		return "", fmt.Errorf("scripted input exhausted for path prompt %q", prompt)
	}
	path := s.Paths[s.pathIdx]
	s.pathIdx++
	return path, nil
}

// ReadInt returns the next scripted integer.
func (s *ScriptedInput) ReadInt(_ context.Context, prompt string) (int, error) {
	if s.intIdx >= len(s.Ints) {
		return 0, fmt.Errorf("scripted input exhausted for int prompt %q", prompt)
	}
	value := s.Ints[s.intIdx]
	s.intIdx++
	return value, nil
}

// ReadAmount returns the next scripted amount.
func (s *ScriptedInput) ReadAmount(_ context.Context, prompt string) (float64, error) {
	if s.amountIdx >= len(s.Amounts) {
		return 0, fmt.Errorf("scripted input exhausted for amount prompt %q", prompt)
	}
	value := s.Amounts[s.amountIdx]
	s.amountIdx++
	return value, nil
}

// Confirm returns the next scripted confirmation.
func (s *ScriptedInput) Confirm(_ context.Context, prompt string) (bool, error) {
	if s.confirmIdx >= len(s.Confirms) {
		return false, fmt.Errorf("scripted input exhausted for confirm prompt %q", prompt)
	}
	value := s.Confirms[s.confirmIdx]
	s.confirmIdx++
	return value, nil
}
