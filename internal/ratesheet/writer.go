package ratesheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lendsift/lendsift/internal/common"
	"github.com/lendsift/lendsift/internal/model"
)

// Save writes a header row followed by the offers to a CSV file at path,
// creating parent directories as needed. It refuses to write an empty
// offer list; callers must treat zero qualifying offers as a terminal
// condition before ever reaching the writer.
func Save(path string, header []string, offers []model.LoanOffer) error {
	if len(offers) == 0 {
		return common.ErrNoOffersToWrite
	}
	if len(header) == 0 {
		header = DefaultHeader
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	for _, offer := range offers {
		if err := writer.Write(offer.Record()); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write offer %q to %s: %w", offer.Lender, path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
