package qualifier

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lendsift/lendsift/internal/common"
	"github.com/lendsift/lendsift/internal/model"
)

func testProfile() model.ApplicantProfile {
	return model.ApplicantProfile{
		CreditScore:   750,
		MonthlyDebt:   500,
		MonthlyIncome: 5000,
		LoanAmount:    200000,
		HomeValue:     500000,
	}
}

func testSheet() []model.LoanOffer {
	return []model.LoanOffer{
		{Lender: "Prosperity Bank", MaxLoanAmount: 300000, MaxLoanToValue: 0.85, MinCreditScore: 740, MaxDebtToIncome: 0.47, InterestRate: 3.6},
		{Lender: "Tiny Credit Union", MaxLoanAmount: 100000, MaxLoanToValue: 0.9, MinCreditScore: 600, MaxDebtToIncome: 0.4, InterestRate: 4.2},
		{Lender: "Elite Lending", MaxLoanAmount: 500000, MaxLoanToValue: 0.5, MinCreditScore: 800, MaxDebtToIncome: 0.2, InterestRate: 2.9},
		{Lender: "Wide Net Mortgage", MaxLoanAmount: 400000, MaxLoanToValue: 0.95, MinCreditScore: 650, MaxDebtToIncome: 0.5, InterestRate: 4.0},
	}
}

func TestFindQualifyingLoansRetainsMatchingOffer(t *testing.T) {
	offers := []model.LoanOffer{
		{Lender: "Bank of Fintech", MaxLoanAmount: 250000, MaxLoanToValue: 0.45, MinCreditScore: 700, MaxDebtToIncome: 0.36, InterestRate: 3.5},
	}

	result, err := FindQualifyingLoans(offers, testProfile())
	if err != nil {
		t.Fatalf("FindQualifyingLoans() unexpected error: %v", err)
	}

	if result.Ratios.DebtToIncome != 0.10 {
		t.Errorf("DebtToIncome = %v, want 0.10", result.Ratios.DebtToIncome)
	}
	if result.Ratios.LoanToValue != 0.40 {
		t.Errorf("LoanToValue = %v, want 0.40", result.Ratios.LoanToValue)
	}
	if len(result.Qualifying) != 1 || result.Qualifying[0].Lender != "Bank of Fintech" {
		t.Fatalf("Qualifying = %+v, want the single offer retained", result.Qualifying)
	}
}

func TestFindQualifyingLoansRejectsOnCreditScore(t *testing.T) {
	// Identical offer except the minimum credit score is out of reach.
	offers := []model.LoanOffer{
		{Lender: "Bank of Fintech", MaxLoanAmount: 250000, MaxLoanToValue: 0.45, MinCreditScore: 800, MaxDebtToIncome: 0.36, InterestRate: 3.5},
	}

	result, err := FindQualifyingLoans(offers, testProfile())
	if err != nil {
		t.Fatalf("FindQualifyingLoans() unexpected error: %v", err)
	}

	if len(result.Qualifying) != 0 {
		t.Fatalf("Qualifying = %+v, want empty set", result.Qualifying)
	}

	// The offer should survive the max-loan-size stage and fall at credit score.
	if result.StageCounts[0].Remaining != 1 {
		t.Errorf("after max loan size: %d offers, want 1", result.StageCounts[0].Remaining)
	}
	if result.StageCounts[1].Remaining != 0 {
		t.Errorf("after credit score: %d offers, want 0", result.StageCounts[1].Remaining)
	}
}

func TestFindQualifyingLoansZeroIncome(t *testing.T) {
	profile := testProfile()
	profile.MonthlyIncome = 0

	_, err := FindQualifyingLoans(testSheet(), profile)
	if !errors.Is(err, common.ErrZeroIncome) {
		t.Fatalf("FindQualifyingLoans() error = %v, want ErrZeroIncome", err)
	}
}

func TestFindQualifyingLoansZeroHomeValue(t *testing.T) {
	profile := testProfile()
	profile.HomeValue = 0

	_, err := FindQualifyingLoans(testSheet(), profile)
	if !errors.Is(err, common.ErrZeroHomeValue) {
		t.Fatalf("FindQualifyingLoans() error = %v, want ErrZeroHomeValue", err)
	}
}

func TestFindQualifyingLoansInvalidProfile(t *testing.T) {
	profile := testProfile()
	profile.LoanAmount = -1

	_, err := FindQualifyingLoans(testSheet(), profile)
	if !errors.Is(err, common.ErrInvalidProfile) {
		t.Fatalf("FindQualifyingLoans() error = %v, want ErrInvalidProfile", err)
	}
}

// The result must be a subsequence of the input: set containment with
// relative order preserved.
func TestFindQualifyingLoansPreservesInputOrder(t *testing.T) {
	offers := testSheet()

	result, err := FindQualifyingLoans(offers, testProfile())
	if err != nil {
		t.Fatalf("FindQualifyingLoans() unexpected error: %v", err)
	}

	next := 0
	for _, kept := range result.Qualifying {
		found := false
		for ; next < len(offers); next++ {
			if offers[next] == kept {
				found = true
				next++
				break
			}
		}
		if !found {
			t.Fatalf("offer %q is not a subsequence match of the input order", kept.Lender)
		}
	}
}

func TestFindQualifyingLoansIsIdempotent(t *testing.T) {
	offers := testSheet()
	profile := testProfile()

	first, err := FindQualifyingLoans(offers, profile)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := FindQualifyingLoans(offers, profile)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// The four predicates depend only on the offer and fixed applicant values,
// so the final set must be identical under any filter permutation.
func TestFindQualifyingLoansFilterOrderIndependence(t *testing.T) {
	offers := testSheet()
	profile := testProfile()

	baseline, err := FindQualifyingLoans(offers, profile)
	if err != nil {
		t.Fatalf("baseline run failed: %v", err)
	}

	filters := DefaultFilters()
	for _, perm := range permutations(len(filters)) {
		shuffled := make([]Filter, len(filters))
		for i, j := range perm {
			shuffled[i] = filters[j]
		}

		result, err := FindQualifyingLoans(offers, profile, WithFilters(shuffled))
		if err != nil {
			t.Fatalf("permuted run %v failed: %v", perm, err)
		}
		if !reflect.DeepEqual(result.Qualifying, baseline.Qualifying) {
			t.Fatalf("permutation %v changed the final set:\nbaseline: %+v\npermuted: %+v",
				perm, baseline.Qualifying, result.Qualifying)
		}
	}
}

func TestFindQualifyingLoansProgressCallback(t *testing.T) {
	var stages []string
	_, err := FindQualifyingLoans(testSheet(), testProfile(),
		WithProgress(func(stage string, _ int) {
			stages = append(stages, stage)
		}))
	if err != nil {
		t.Fatalf("FindQualifyingLoans() unexpected error: %v", err)
	}

	want := []string{"max loan size", "credit score", "debt to income", "loan to value"}
	if !reflect.DeepEqual(stages, want) {
		t.Fatalf("progress stages = %v, want %v", stages, want)
	}
}

func TestFindQualifyingLoansEmptySheet(t *testing.T) {
	result, err := FindQualifyingLoans(nil, testProfile())
	if err != nil {
		t.Fatalf("FindQualifyingLoans() unexpected error: %v", err)
	}
	if len(result.Qualifying) != 0 {
		t.Fatalf("Qualifying = %+v, want empty", result.Qualifying)
	}
}

// permutations returns every ordering of [0, n) by Heap's algorithm.
func permutations(n int) [][]int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var result [][]int
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			perm := make([]int, n)
			copy(perm, indices)
			result = append(result, perm)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				indices[i], indices[k-1] = indices[k-1], indices[i]
			} else {
				indices[0], indices[k-1] = indices[k-1], indices[0]
			}
		}
	}
	generate(n)
	return result
}
