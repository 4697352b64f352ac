package ratesheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lendsift/lendsift/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rate_sheet.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSheet(t, `Lender,Max Loan Amount,Max LTV,Min Credit Score,Max Debt To Income,Interest Rate
Bank of Fintech,300000,0.85,740,0.47,3.6
Tiny Credit Union,100000,0.9,600,0.4,4.2
`)

	sheet, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, sheet.Path)
	assert.Equal(t, []string{"Lender", "Max Loan Amount", "Max LTV", "Min Credit Score", "Max Debt To Income", "Interest Rate"}, sheet.Header)
	require.Len(t, sheet.Offers, 2)
	assert.Equal(t, "Bank of Fintech", sheet.Offers[0].Lender)
	assert.Equal(t, 300000.0, sheet.Offers[0].MaxLoanAmount)
	assert.Equal(t, 740, sheet.Offers[0].MinCreditScore)
	assert.Equal(t, "Tiny Credit Union", sheet.Offers[1].Lender)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSheetNotFound), "want ErrSheetNotFound, got %v", err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeSheet(t, "")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeSheet(t, "Lender,Max Loan Amount,Max LTV,Min Credit Score,Max Debt To Income,Interest Rate\n")
	sheet, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, sheet.Offers)
}

func TestLoadMalformedRowAbortsAndNamesTheLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
	}{
		{
			name: "non-numeric field",
			content: `Lender,Max Loan Amount,Max LTV,Min Credit Score,Max Debt To Income,Interest Rate
Bank of Fintech,300000,0.85,740,0.47,3.6
Broken Bank,not-a-number,0.9,600,0.4,4.2
`,
			line: 3,
		},
		{
			name: "wrong arity",
			content: `Lender,Max Loan Amount,Max LTV,Min Credit Score,Max Debt To Income,Interest Rate
Short Row Bank,300000,0.85
`,
			line: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSheet(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr), "want RowError, got %v", err)
			assert.Equal(t, tt.line, rowErr.Line)
			assert.Equal(t, path, rowErr.Path)
		})
	}
}
