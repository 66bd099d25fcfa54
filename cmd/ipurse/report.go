package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LightDevCoder/iPurseLight/internal/cli"
	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/model"
	"github.com/LightDevCoder/iPurseLight/internal/report"
	"github.com/LightDevCoder/iPurseLight/internal/service"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a month or year of spending",
		Long: `Summarize the transactions of one calendar month or year: income and
expense totals and breakdowns by category and channel. With --advise the
summary digest is sent to the configured AI provider for review.`,
		RunE: runReport,
	}

	now := time.Now()
	cmd.Flags().IntP("year", "y", now.Year(), "Calendar year")
	cmd.Flags().IntP("month", "m", int(now.Month()), "Month (1-12, 0 = whole year)")
	cmd.Flags().Bool("advise", false, "Ask the AI provider to review the digest")
	cmd.Flags().Bool("years", false, "List the years that have data and exit")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	loc, err := resolveLocation()
	if err != nil {
		return err
	}

	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	advise, _ := cmd.Flags().GetBool("advise")
	if month < 0 || month > 12 {
		return fmt.Errorf("month must be between 0 and 12")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	all, err := store.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return err
	}

	if listYears, _ := cmd.Flags().GetBool("years"); listYears {
		for _, y := range report.AvailableYears(all, loc, time.Now()) {
			fmt.Println(y)
		}
		return nil
	}

	var window []model.Transaction
	var label string
	if month == 0 {
		window = report.SelectYear(all, year, loc)
		label = fmt.Sprintf("%d", year)
	} else {
		window = report.SelectMonth(all, year, time.Month(month), loc)
		label = fmt.Sprintf("%d-%02d", year, month)
	}

	totalIncome := report.TotalIncome(window)
	totalExpense := report.TotalExpense(window)
	byCategory := report.SumByCategory(window)
	byChannel := report.SumByChannel(window, report.SignExpense)
	incomeByChannel := report.SumByChannel(window, report.SignIncome)

	var lines []string
	lines = append(lines, fmt.Sprintf("Income   %s", cli.IncomeStyle.Render(fmt.Sprintf("%.2f", totalIncome))))
	lines = append(lines, fmt.Sprintf("Expense  %s", cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", totalExpense))))
	lines = append(lines, fmt.Sprintf("Net      %+.2f", totalIncome-totalExpense))

	if len(byCategory) > 0 {
		lines = append(lines, "", cli.TableHeaderStyle.Render("Expenses by category"))
		for _, ct := range byCategory {
			lines = append(lines, fmt.Sprintf("  %-16s %10.2f", ct.Category, ct.Total))
		}
	}
	if len(byChannel) > 0 {
		lines = append(lines, "", cli.TableHeaderStyle.Render("Expenses by channel"))
		for _, ct := range byChannel {
			lines = append(lines, fmt.Sprintf("  %-16s %10.2f", ct.Channel, ct.Total))
		}
	}
	if len(incomeByChannel) > 0 {
		lines = append(lines, "", cli.TableHeaderStyle.Render("Income by channel"))
		for _, ct := range incomeByChannel {
			lines = append(lines, fmt.Sprintf("  %-16s %10.2f", ct.Channel, ct.Total))
		}
	}

	fmt.Println(cli.RenderBox(cli.ChartIcon+" "+label, strings.Join(lines, "\n")))

	if !advise {
		return nil
	}

	digest := report.BuildDigest(label, totalIncome, totalExpense, report.CategoryBreakdown(byCategory))

	client, cfg, err := createLLMClient()
	if err != nil {
		return err
	}
	if closer, ok := client.(interface{ Close() error }); ok {
		defer func() { _ = closer.Close() }()
	}

	advice, err := requestAdvice(ctx, client, retryOptions(cfg), digest)
	if err != nil {
		return common.NewUserError("could not get advice from the AI provider",
			fmt.Errorf("%w: %w", common.ErrAdviceFailed, err))
	}

	fmt.Println(cli.RenderBox(cli.RobotIcon+" Advisor", advice))
	return nil
}

// requestAdvice sends the digest to the advisor with the configured retry
// policy and returns the reply verbatim.
func requestAdvice(ctx context.Context, advisor service.AdviceClient, opts service.RetryOptions, digest string) (string, error) {
	var advice string
	err := common.WithRetry(ctx, func() error {
		var adviseErr error
		advice, adviseErr = advisor.Advise(ctx, digest)
		return adviseErr
	}, opts)
	return advice, err
}
