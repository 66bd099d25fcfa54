package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LightDevCoder/iPurseLight/internal/cli"
	"github.com/LightDevCoder/iPurseLight/internal/report"
	"github.com/LightDevCoder/iPurseLight/internal/service"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "List and delete transactions",
	}

	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txDeleteCmd())
	return cmd
}

func txListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE:  runTxList,
	}

	cmd.Flags().IntP("limit", "l", 50, "Maximum rows to show (0 = all)")
	cmd.Flags().Int("year", 0, "Restrict to a calendar year")
	cmd.Flags().Int("month", 0, "Restrict to a month of --year (1-12)")

	return cmd
}

func runTxList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	loc, err := resolveLocation()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	if month != 0 && (month < 1 || month > 12) {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if month != 0 && year == 0 {
		return fmt.Errorf("--month requires --year")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	// Period filtering happens in memory, so the row limit is applied
	// after it rather than at the query.
	filter := service.TransactionFilter{}
	if year == 0 {
		filter.Limit = limit
	}
	txns, err := store.GetTransactions(ctx, filter)
	if err != nil {
		return err
	}

	switch {
	case month != 0:
		txns = report.SelectMonth(txns, year, time.Month(month), loc)
	case year != 0:
		txns = report.SelectYear(txns, year, loc)
	}
	if year != 0 && limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}

	if len(txns) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tCHANNEL\tNOTE\tID")
	for i := range txns {
		txn := &txns[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			txn.Date.In(loc).Format("2006-01-02 15:04"),
			cli.FormatAmount(txn.Amount),
			txn.Category, txn.Channel, txn.Note, txn.ID)
	}
	return w.Flush()
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id> [id...]",
		Short: "Delete transactions by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransactions(ctx, args); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %d transaction(s)", len(args))))
			return nil
		},
	}
}
