package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lendsift/lendsift/internal/model"
	"github.com/lendsift/lendsift/internal/storage"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T, dbPath string, runs ...*model.QualificationRun) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	for _, run := range runs {
		require.NoError(t, store.SaveRun(context.Background(), run))
	}
	require.NoError(t, store.Close())
}

func runHistoryCommand(t *testing.T, dbPath string, args ...string) string {
	t.Helper()

	viper.Set("database.path", dbPath)
	t.Cleanup(func() { viper.Set("database.path", "") })

	cmd := historyCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestHistoryCommandEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lendsift.db")

	output := runHistoryCommand(t, dbPath)
	assert.Contains(t, output, "No qualification runs recorded yet")
}

func TestHistoryCommandListsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lendsift.db")

	seedHistory(t, dbPath, &model.QualificationRun{
		RanAt:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		CreditScore:      750,
		MonthlyDebt:      500,
		MonthlyIncome:    5000,
		LoanAmount:       200000,
		HomeValue:        500000,
		DebtToIncome:     0.10,
		LoanToValue:      0.40,
		OffersConsidered: 15,
		OffersQualified:  6,
		SavedPath:        "qualifying_loans.csv",
	})

	output := runHistoryCommand(t, dbPath)
	assert.Contains(t, output, "200000.00")
	assert.Contains(t, output, "750")
	assert.Contains(t, output, "6/15")
	assert.Contains(t, output, "qualifying_loans.csv")
}

func TestHistoryCommandLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lendsift.db")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := make([]*model.QualificationRun, 0, 3)
	for i := 0; i < 3; i++ {
		runs = append(runs, &model.QualificationRun{
			RanAt:            base.Add(time.Duration(i) * time.Hour),
			CreditScore:      700 + i,
			MonthlyIncome:    5000,
			LoanAmount:       100000,
			HomeValue:        300000,
			OffersConsidered: 10,
			OffersQualified:  i,
		})
	}
	seedHistory(t, dbPath, runs...)

	output := runHistoryCommand(t, dbPath, "--limit", "1")

	// Only the newest run should be listed.
	assert.Contains(t, output, "2/10")
	assert.NotContains(t, output, "0/10")
}
