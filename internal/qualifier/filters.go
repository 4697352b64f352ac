package qualifier

import (
	"github.com/lendsift/lendsift/internal/model"
)

// Filter is a single pass/fail eligibility criterion evaluated against one
// offer. Each predicate depends only on the offer and the fixed applicant
// values, so filters are independent of each other and of application order.
type Filter struct {
	Keep func(profile model.ApplicantProfile, ratios Ratios, offer model.LoanOffer) bool
	Name string
}

// MaxLoanSizeFilter retains offers whose maximum loan amount covers the
// requested amount. The comparison is inclusive: an offer capped at exactly
// the requested amount passes.
func MaxLoanSizeFilter() Filter {
	return Filter{
		Name: "max loan size",
		Keep: func(profile model.ApplicantProfile, _ Ratios, offer model.LoanOffer) bool {
			return profile.LoanAmount <= offer.MaxLoanAmount
		},
	}
}

// CreditScoreFilter retains offers whose minimum credit score the applicant
// meets. Inclusive: a score exactly at the minimum passes.
func CreditScoreFilter() Filter {
	return Filter{
		Name: "credit score",
		Keep: func(profile model.ApplicantProfile, _ Ratios, offer model.LoanOffer) bool {
			return profile.CreditScore >= offer.MinCreditScore
		},
	}
}

// DebtToIncomeFilter retains offers whose DTI ceiling the applicant's
// derived debt-to-income ratio does not exceed.
func DebtToIncomeFilter() Filter {
	return Filter{
		Name: "debt to income",
		Keep: func(_ model.ApplicantProfile, ratios Ratios, offer model.LoanOffer) bool {
			return ratios.DebtToIncome <= offer.MaxDebtToIncome
		},
	}
}

// LoanToValueFilter retains offers whose LTV ceiling the applicant's
// derived loan-to-value ratio does not exceed.
func LoanToValueFilter() Filter {
	return Filter{
		Name: "loan to value",
		Keep: func(_ model.ApplicantProfile, ratios Ratios, offer model.LoanOffer) bool {
			return ratios.LoanToValue <= offer.MaxLoanToValue
		},
	}
}

// DefaultFilters returns the four eligibility filters in their fixed
// application order. The order only affects which intermediate counts get
// reported; the final set is the same under any permutation.
func DefaultFilters() []Filter {
	return []Filter{
		MaxLoanSizeFilter(),
		CreditScoreFilter(),
		DebtToIncomeFilter(),
		LoanToValueFilter(),
	}
}

// Apply runs one filter over a candidate slice and returns the surviving
// offers as a new slice, preserving their relative order. The input is
// never mutated.
func (f Filter) Apply(profile model.ApplicantProfile, ratios Ratios, offers []model.LoanOffer) []model.LoanOffer {
	kept := make([]model.LoanOffer, 0, len(offers))
	for _, offer := range offers {
		if f.Keep(profile, ratios, offer) {
			kept = append(kept, offer)
		}
	}
	return kept
}
