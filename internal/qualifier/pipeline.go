package qualifier

import (
	"fmt"
	"log/slog"

	"github.com/lendsift/lendsift/internal/common"
	"github.com/lendsift/lendsift/internal/model"
)

// StageCount reports how many offers survived one filter stage.
type StageCount struct {
	Filter    string
	Remaining int
}

// Result is the outcome of one pipeline run.
type Result struct {
	Qualifying  []model.LoanOffer
	StageCounts []StageCount
	Ratios      Ratios
}

// Option customizes a pipeline run.
type Option func(*options)

type options struct {
	filters  []Filter
	progress func(stage string, remaining int)
}

// WithFilters overrides the default filter sequence. Intended for tests
// exercising the order-independence property.
func WithFilters(filters []Filter) Option {
	return func(o *options) {
		o.filters = filters
	}
}

// WithProgress registers a callback invoked after each filter stage with
// the stage name and the number of offers still in play.
func WithProgress(fn func(stage string, remaining int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// FindQualifyingLoans derives the applicant's ratios and narrows the offer
// table through the eligibility filters in sequence. Each stage consumes
// the previous stage's output, so the candidate set shrinks monotonically;
// the returned offers keep their rate-sheet order. The input slice is never
// mutated and the run has no other side effects, so identical inputs always
// produce identical results.
func FindQualifyingLoans(offers []model.LoanOffer, profile model.ApplicantProfile, opts ...Option) (Result, error) {
	o := options{filters: DefaultFilters()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := profile.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", common.ErrInvalidProfile, err)
	}

	dti, err := DebtToIncome(profile.MonthlyDebt, profile.MonthlyIncome)
	if err != nil {
		return Result{}, fmt.Errorf("debt-to-income ratio: %w", err)
	}

	ltv, err := LoanToValue(profile.LoanAmount, profile.HomeValue)
	if err != nil {
		return Result{}, fmt.Errorf("loan-to-value ratio: %w", err)
	}

	ratios := Ratios{DebtToIncome: dti, LoanToValue: ltv}

	slog.Debug("Derived applicant ratios",
		"debt_to_income", dti,
		"loan_to_value", ltv)

	candidates := offers
	stageCounts := make([]StageCount, 0, len(o.filters))
	for _, filter := range o.filters {
		candidates = filter.Apply(profile, ratios, candidates)
		stageCounts = append(stageCounts, StageCount{Filter: filter.Name, Remaining: len(candidates)})

		slog.Debug("Applied qualification filter",
			"filter", filter.Name,
			"remaining", len(candidates))

		if o.progress != nil {
			o.progress(filter.Name, len(candidates))
		}
	}

	return Result{
		Qualifying:  candidates,
		StageCounts: stageCounts,
		Ratios:      ratios,
	}, nil
}
