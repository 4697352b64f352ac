package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Prompter implements the interactive terminal input source for the
// qualification flow. Invalid numeric input re-prompts rather than failing
// the run.
type Prompter struct {
	writer io.Writer
	reader *LineReader
}

// NewPrompter creates a new terminal prompter with the given reader and
// writer, defaulting to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewLineReader(reader),
		writer: writer,
	}
}

// ReadPath prompts for a file path and returns it verbatim, re-prompting
// on empty input.
func (p *Prompter) ReadPath(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		p.showError("A file path is required.")
	}
}

// ReadInt prompts until the user supplies a non-negative integer.
func (p *Prompter) ReadInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			p.showError("Please enter a whole number.")
			continue
		}
		if value < 0 {
			p.showError("Please enter a non-negative number.")
			continue
		}
		return value, nil
	}
}

// ReadAmount prompts until the user supplies a non-negative decimal
// currency amount. A leading currency symbol and thousands separators are
// tolerated.
func (p *Prompter) ReadAmount(ctx context.Context, prompt string) (float64, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}

		cleaned := strings.NewReplacer("$", "", ",", "").Replace(line)
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			p.showError("Please enter a decimal amount, e.g. 4500 or 4500.50.")
			continue
		}
		if value < 0 {
			p.showError("Please enter a non-negative amount.")
			continue
		}
		return value, nil
	}
}

// Confirm asks a yes/no question, re-prompting until the answer is one of
// y/yes/n/no.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := p.ask(ctx, prompt+" [y/n]")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			p.showError("Please answer y or n.")
		}
	}
}

func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if _, err := fmt.Fprintf(p.writer, "%s", FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		if err == io.EOF {
			return "", fmt.Errorf("input terminated")
		}
		return "", err
	}
	return line, nil
}

func (p *Prompter) showError(message string) {
	if _, err := fmt.Fprintln(p.writer, FormatError(message)); err != nil {
		slog.Warn("Failed to write error message", "error", err)
	}
}
