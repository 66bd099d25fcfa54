package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LightDevCoder/iPurseLight/internal/cli"
	"github.com/LightDevCoder/iPurseLight/internal/model"
	"github.com/LightDevCoder/iPurseLight/internal/valuation"
)

func portfolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Group assets into named portfolios",
	}

	cmd.AddCommand(portfolioCreateCmd())
	cmd.AddCommand(portfolioListCmd())
	cmd.AddCommand(portfolioDeleteCmd())
	return cmd
}

func portfolioCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a portfolio from existing assets",
		Args:  cobra.ExactArgs(1),
		RunE:  runPortfolioCreate,
	}

	cmd.Flags().StringSlice("assets", []string{}, "Member asset IDs (comma-separated)")

	return cmd
}

func runPortfolioCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	assetIDs, _ := cmd.Flags().GetStringSlice("assets")

	portfolio := model.Portfolio{
		ID:        uuid.New().String(),
		Name:      args[0],
		CreatedAt: time.Now(),
		AssetIDs:  assetIDs,
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.CreatePortfolio(ctx, &portfolio); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created portfolio %q (%s) with %d asset(s)",
		portfolio.Name, portfolio.ID, len(portfolio.AssetIDs))))
	return nil
}

func portfolioListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List portfolios with current totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			portfolios, err := store.GetAllPortfolios(ctx)
			if err != nil {
				return err
			}
			if len(portfolios) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No portfolios."))
				return nil
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tASSETS\tCURRENT VALUE\tID")
			for i := range portfolios {
				p := &portfolios[i]
				assets, err := store.GetPortfolioAssets(ctx, p.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\n",
					p.Name, len(assets), valuation.PortfolioTotal(assets, now), p.ID)
			}
			return w.Flush()
		},
	}
}

func portfolioDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a portfolio (its assets remain)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeletePortfolio(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted portfolio, assets kept"))
			return nil
		},
	}
}
