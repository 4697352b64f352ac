package storage

import (
	"context"
	"fmt"

	"github.com/lendsift/lendsift/internal/model"
)

// SaveRun appends one qualification run to the history log and fills in
// the generated run ID.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.QualificationRun) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO qualification_runs (
			ran_at, credit_score, monthly_debt, monthly_income,
			loan_amount, home_value, debt_to_income, loan_to_value,
			offers_considered, offers_qualified, saved_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RanAt, run.CreditScore, run.MonthlyDebt, run.MonthlyIncome,
		run.LoanAmount, run.HomeValue, run.DebtToIncome, run.LoanToValue,
		run.OffersConsidered, run.OffersQualified, run.SavedPath)
	if err != nil {
		return fmt.Errorf("failed to save qualification run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read run id: %w", err)
	}
	run.ID = id

	return nil
}

// ListRuns returns the most recent qualification runs, newest first.
// A non-positive limit returns all runs.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]model.QualificationRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, ran_at, credit_score, monthly_debt, monthly_income,
			loan_amount, home_value, debt_to_income, loan_to_value,
			offers_considered, offers_qualified, saved_path
		FROM qualification_runs
		ORDER BY ran_at DESC, id DESC`

	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list qualification runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []model.QualificationRun
	for rows.Next() {
		var run model.QualificationRun
		if err := rows.Scan(
			&run.ID, &run.RanAt, &run.CreditScore, &run.MonthlyDebt, &run.MonthlyIncome,
			&run.LoanAmount, &run.HomeValue, &run.DebtToIncome, &run.LoanToValue,
			&run.OffersConsidered, &run.OffersQualified, &run.SavedPath,
		); err != nil {
			return nil, fmt.Errorf("failed to scan qualification run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate qualification runs: %w", err)
	}

	return runs, nil
}
