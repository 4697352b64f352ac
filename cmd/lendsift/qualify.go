package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lendsift/lendsift/internal/cli"
	"github.com/lendsift/lendsift/internal/common"
	"github.com/lendsift/lendsift/internal/config"
	"github.com/lendsift/lendsift/internal/model"
	"github.com/lendsift/lendsift/internal/qualifier"
	"github.com/lendsift/lendsift/internal/ratesheet"
	"github.com/lendsift/lendsift/internal/service"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// qualifyParams carries the values supplied as flags. Nil pointer fields
// were not set and get collected interactively instead.
type qualifyParams struct {
	creditScore   *int
	monthlyDebt   *float64
	monthlyIncome *float64
	loanAmount    *float64
	homeValue     *float64
	inputPath     string
	outputPath    string
	noHistory     bool
}

func qualifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qualify",
		Short: "Match an applicant against a bank rate sheet",
		Long: `Match a loan applicant's financial profile against a rate sheet of bank
loan offers.

Offers are narrowed through four eligibility filters in sequence: maximum
loan size, minimum credit score, maximum debt-to-income ratio, and maximum
loan-to-value ratio. Offers that survive all four can be saved to a new
rate sheet.

Any applicant value not supplied as a flag is collected interactively:

  # Fully interactive
  lendsift qualify

  # Non-interactive
  lendsift qualify --input daily_rate_sheet.csv \
    --credit-score 750 --debt 500 --income 5000 \
    --loan-amount 200000 --home-value 500000 \
    --output qualifying_loans.csv`,
		Args: cobra.NoArgs,
		RunE: runQualify,
	}

	cmd.Flags().StringP("input", "i", "", "path to the rate-sheet CSV to load")
	cmd.Flags().StringP("output", "o", "", "path to save qualifying loans to (skips the save prompt)")
	cmd.Flags().Int("credit-score", 0, "applicant's credit score")
	cmd.Flags().Float64("debt", 0, "applicant's total monthly debt payments")
	cmd.Flags().Float64("income", 0, "applicant's total monthly income")
	cmd.Flags().Float64("loan-amount", 0, "requested loan amount")
	cmd.Flags().Float64("home-value", 0, "estimated home value")
	cmd.Flags().Bool("no-history", false, "skip recording this run in the history database")

	return cmd
}

func runQualify(cmd *cobra.Command, _ []string) error {
	params, err := qualifyParamsFromFlags(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		// History is a convenience; qualification still runs without it.
		slog.Warn("Run history unavailable", "error", err)
		store = nil
	} else {
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Warn("Failed to close storage", "error", closeErr)
			}
		}()
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	return runQualification(ctx, params, prompter, store, cmd.OutOrStdout())
}

func qualifyParamsFromFlags(cmd *cobra.Command) (qualifyParams, error) {
	params := qualifyParams{}

	var err error
	if params.inputPath, err = cmd.Flags().GetString("input"); err != nil {
		return params, err
	}
	if params.outputPath, err = cmd.Flags().GetString("output"); err != nil {
		return params, err
	}
	if params.noHistory, err = cmd.Flags().GetBool("no-history"); err != nil {
		return params, err
	}

	if cmd.Flags().Changed("credit-score") {
		score, _ := cmd.Flags().GetInt("credit-score")
		params.creditScore = &score
	}
	if cmd.Flags().Changed("debt") {
		debt, _ := cmd.Flags().GetFloat64("debt")
		params.monthlyDebt = &debt
	}
	if cmd.Flags().Changed("income") {
		income, _ := cmd.Flags().GetFloat64("income")
		params.monthlyIncome = &income
	}
	if cmd.Flags().Changed("loan-amount") {
		loan, _ := cmd.Flags().GetFloat64("loan-amount")
		params.loanAmount = &loan
	}
	if cmd.Flags().Changed("home-value") {
		value, _ := cmd.Flags().GetFloat64("home-value")
		params.homeValue = &value
	}

	return params, nil
}

// runQualification drives the whole flow: load the sheet, collect the
// applicant profile, filter, report, save, and record history. All fatal
// conditions return as errors so main performs the actual exit.
func runQualification(ctx context.Context, params qualifyParams, input service.InputSource, store service.Storage, out io.Writer) error {
	fmt.Fprintln(out, cli.FormatTitle("Loan Qualifier"))

	sheet, err := loadSheet(ctx, params, input)
	if err != nil {
		return err
	}

	slog.Info("Loaded rate sheet", "path", sheet.Path, "offers", len(sheet.Offers))

	profile, err := collectProfile(ctx, params, input)
	if err != nil {
		return err
	}

	result, err := siftOffers(sheet.Offers, profile, out)
	if err != nil {
		if errors.Is(err, common.ErrZeroDenominator) {
			return common.NewUserError("Cannot compute the applicant's ratios", err)
		}
		return err
	}

	reportResult(result, out)

	if len(result.Qualifying) == 0 {
		return common.NewUserError("There are no qualifying loans; nothing will be saved", common.ErrNoQualifyingLoans)
	}

	savedPath, err := saveQualifyingLoans(ctx, params, input, sheet, result.Qualifying, out)
	if err != nil {
		return err
	}

	recordRun(ctx, store, params, profile, result, len(sheet.Offers), savedPath)

	return nil
}

func loadSheet(ctx context.Context, params qualifyParams, input service.InputSource) (*ratesheet.Sheet, error) {
	path := params.inputPath
	if path == "" {
		var err error
		path, err = input.ReadPath(ctx, "Enter a file path to a rate sheet (.csv)")
		if err != nil {
			return nil, err
		}
	}

	sheet, err := ratesheet.Load(config.ExpandPath(path))
	if err != nil {
		if errors.Is(err, common.ErrSheetNotFound) {
			return nil, common.NewUserError(fmt.Sprintf("Can't find this path: %s", path), err)
		}

		var rowErr *ratesheet.RowError
		if errors.As(err, &rowErr) {
			return nil, common.NewUserError("The rate sheet contains a malformed row and cannot be trusted", err)
		}
		return nil, err
	}

	return sheet, nil
}

func collectProfile(ctx context.Context, params qualifyParams, input service.InputSource) (model.ApplicantProfile, error) {
	var profile model.ApplicantProfile
	var err error

	if params.creditScore != nil {
		profile.CreditScore = *params.creditScore
	} else if profile.CreditScore, err = input.ReadInt(ctx, "What's your credit score?"); err != nil {
		return profile, err
	}

	if params.monthlyDebt != nil {
		profile.MonthlyDebt = *params.monthlyDebt
	} else if profile.MonthlyDebt, err = input.ReadAmount(ctx, "What's your current amount of monthly debt?"); err != nil {
		return profile, err
	}

	if params.monthlyIncome != nil {
		profile.MonthlyIncome = *params.monthlyIncome
	} else if profile.MonthlyIncome, err = input.ReadAmount(ctx, "What's your total monthly income?"); err != nil {
		return profile, err
	}

	if params.loanAmount != nil {
		profile.LoanAmount = *params.loanAmount
	} else if profile.LoanAmount, err = input.ReadAmount(ctx, "What's your desired loan amount?"); err != nil {
		return profile, err
	}

	if params.homeValue != nil {
		profile.HomeValue = *params.homeValue
	} else if profile.HomeValue, err = input.ReadAmount(ctx, "What's your home's value?"); err != nil {
		return profile, err
	}

	if err := profile.Validate(); err != nil {
		return profile, common.NewUserError("The applicant profile is invalid", err)
	}

	return profile, nil
}

// siftOffers runs the qualification pipeline with a stage-level progress bar.
func siftOffers(offers []model.LoanOffer, profile model.ApplicantProfile, out io.Writer) (qualifier.Result, error) {
	filters := qualifier.DefaultFilters()

	bar := progressbar.NewOptions(len(filters),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Sifting rate sheet"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)

	result, err := qualifier.FindQualifyingLoans(offers, profile,
		qualifier.WithProgress(func(_ string, _ int) {
			_ = bar.Add(1)
		}))

	_ = bar.Finish()

	return result, err
}

func reportResult(result qualifier.Result, out io.Writer) {
	fmt.Fprintf(out, "The monthly debt to income ratio is %.2f\n", result.Ratios.DebtToIncome)
	fmt.Fprintf(out, "The loan to value ratio is %.2f\n", result.Ratios.LoanToValue)

	for _, stage := range result.StageCounts {
		fmt.Fprintln(out, cli.SubtleStyle.Render(
			fmt.Sprintf("  after %-14s %d offers remain", stage.Filter+":", stage.Remaining)))
	}

	count := len(result.Qualifying)
	if count == 0 {
		fmt.Fprintln(out, cli.FormatWarning("Found 0 qualifying loans"))
		return
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Found %d qualifying loans", count)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.TableHeaderStyle.Render(
		fmt.Sprintf("%-24s %14s %8s %6s %6s %6s",
			"Lender", "Max Loan", "Max LTV", "Score", "DTI", "Rate")))
	for _, offer := range result.Qualifying {
		fmt.Fprintf(out, "%-24s %14.2f %8.2f %6d %6.2f %6.2f\n",
			offer.Lender, offer.MaxLoanAmount, offer.MaxLoanToValue,
			offer.MinCreditScore, offer.MaxDebtToIncome, offer.InterestRate)
	}
	fmt.Fprintln(out)
}

// saveQualifyingLoans persists the surviving offers. It returns the path
// written, or the empty string when the user declined to save.
func saveQualifyingLoans(ctx context.Context, params qualifyParams, input service.InputSource, sheet *ratesheet.Sheet, qualifying []model.LoanOffer, out io.Writer) (string, error) {
	path := params.outputPath

	if path == "" {
		save, err := input.Confirm(ctx, "Would you like to save the list of qualifying loans?")
		if err != nil {
			return "", err
		}
		if !save {
			fmt.Fprintln(out, cli.SubtleStyle.Render("Not saving."))
			return "", nil
		}

		path, err = input.ReadPath(ctx, "Enter a file path for saving the qualifying loans (.csv)")
		if err != nil {
			return "", err
		}
	}

	path = config.ExpandPath(path)
	if err := ratesheet.Save(path, sheet.Header, qualifying); err != nil {
		return "", common.NewUserError(fmt.Sprintf("Failed to save qualifying loans to %s", path), err)
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("The qualifying loans have been saved to %s", path)))
	return path, nil
}

// recordRun appends the run to the history database. History is
// best-effort: failures are logged, never fatal.
func recordRun(ctx context.Context, store service.Storage, params qualifyParams, profile model.ApplicantProfile, result qualifier.Result, considered int, savedPath string) {
	if store == nil || params.noHistory {
		return
	}

	run := &model.QualificationRun{
		RanAt:            time.Now().UTC(),
		CreditScore:      profile.CreditScore,
		MonthlyDebt:      profile.MonthlyDebt,
		MonthlyIncome:    profile.MonthlyIncome,
		LoanAmount:       profile.LoanAmount,
		HomeValue:        profile.HomeValue,
		DebtToIncome:     result.Ratios.DebtToIncome,
		LoanToValue:      result.Ratios.LoanToValue,
		OffersConsidered: considered,
		OffersQualified:  len(result.Qualifying),
		SavedPath:        savedPath,
	}

	if err := store.SaveRun(ctx, run); err != nil {
		slog.Warn("Failed to record run history", "error", err)
	}
}
