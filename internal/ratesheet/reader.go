// Package ratesheet loads and saves bank rate sheets in their fixed CSV
// layout: lender, max loan amount, max loan-to-value, min credit score,
// max debt-to-income, interest rate. The first row is a header.
package ratesheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lendsift/lendsift/internal/common"
	"github.com/lendsift/lendsift/internal/model"
)

// DefaultHeader is written when a sheet is saved without a source header,
// matching the column order of the loaded format.
var DefaultHeader = []string{
	"Lender",
	"Max Loan Amount",
	"Max LTV",
	"Min Credit Score",
	"Max Debt To Income",
	"Interest Rate",
}

// Sheet is a loaded rate sheet: its source path, header row, and offers in
// file order.
type Sheet struct {
	Path   string
	Header []string
	Offers []model.LoanOffer
}

// RowError reports a rate-sheet row that could not be parsed into an offer.
// A malformed row aborts the load; skipping it silently would hide
// data-quality problems behind incorrect qualification results.
type RowError struct {
	Err  error
	Path string
	Line int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.Path, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Load reads the rate sheet at path. It returns common.ErrSheetNotFound if
// the file does not exist and a RowError for the first malformed row.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrSheetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open rate sheet %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	// Arity is validated per row so a RowError can name the offending line.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("rate sheet %s is empty", path)
		}
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	sheet := &Sheet{
		Path:   path,
		Header: header,
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RowError{Path: path, Line: line, Err: err}
		}

		offer, err := model.ParseOffer(record)
		if err != nil {
			return nil, &RowError{Path: path, Line: line, Err: err}
		}

		sheet.Offers = append(sheet.Offers, offer)
	}

	return sheet, nil
}
