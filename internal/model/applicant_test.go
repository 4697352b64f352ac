package model

import (
	"testing"
)

func TestApplicantProfileValidate(t *testing.T) {
	valid := ApplicantProfile{
		CreditScore:   750,
		MonthlyDebt:   500,
		MonthlyIncome: 5000,
		LoanAmount:    200000,
		HomeValue:     500000,
	}

	tests := []struct {
		mutate  func(*ApplicantProfile)
		name    string
		wantErr bool
	}{
		{
			name:    "valid profile",
			mutate:  func(*ApplicantProfile) {},
			wantErr: false,
		},
		{
			name:    "negative credit score",
			mutate:  func(p *ApplicantProfile) { p.CreditScore = -1 },
			wantErr: true,
		},
		{
			name:    "negative monthly debt",
			mutate:  func(p *ApplicantProfile) { p.MonthlyDebt = -0.01 },
			wantErr: true,
		},
		{
			name:    "zero loan amount",
			mutate:  func(p *ApplicantProfile) { p.LoanAmount = 0 },
			wantErr: true,
		},
		{
			name: "zero income passes validation; the ratio calculator reports it",
			mutate: func(p *ApplicantProfile) {
				p.MonthlyIncome = 0
			},
			wantErr: false,
		},
		{
			name: "zero home value passes validation; the ratio calculator reports it",
			mutate: func(p *ApplicantProfile) {
				p.HomeValue = 0
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := valid
			tt.mutate(&profile)

			err := profile.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("Validate() succeeded for %+v, want error", profile)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() failed for %+v: %v", profile, err)
			}
		})
	}
}
