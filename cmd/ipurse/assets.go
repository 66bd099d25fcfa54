package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LightDevCoder/iPurseLight/internal/cli"
	"github.com/LightDevCoder/iPurseLight/internal/model"
	"github.com/LightDevCoder/iPurseLight/internal/valuation"
)

func assetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage interest-bearing assets",
	}

	cmd.AddCommand(assetAddCmd())
	cmd.AddCommand(assetEditCmd())
	cmd.AddCommand(assetListCmd())
	cmd.AddCommand(assetDeleteCmd())
	return cmd
}

func assetAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an asset",
		Args:  cobra.ExactArgs(1),
		RunE:  runAssetAdd,
	}

	cmd.Flags().Float64P("principal", "p", 0, "Principal amount")
	cmd.Flags().StringP("category", "c", "Other",
		"Asset category (suggested: "+strings.Join(model.SuggestedAssetCategories, ", ")+")")
	cmd.Flags().Float64P("rate", "r", 0, "Annual rate in percent (3.65 = 3.65%)")
	cmd.Flags().Float64("realized-gain", 0, "Gain already realized")
	cmd.Flags().StringP("note", "n", "", "Free-form note")

	return cmd
}

func runAssetAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	principal, _ := cmd.Flags().GetFloat64("principal")
	category, _ := cmd.Flags().GetString("category")
	rate, _ := cmd.Flags().GetFloat64("rate")
	realizedGain, _ := cmd.Flags().GetFloat64("realized-gain")
	note, _ := cmd.Flags().GetString("note")

	asset := model.Asset{
		ID:                  uuid.New().String(),
		Name:                args[0],
		Category:            category,
		Principal:           principal,
		RealizedGain:        realizedGain,
		AnnualRatePercent:   rate,
		Note:                note,
		LastPrincipalUpdate: time.Now(),
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveAsset(ctx, &asset); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added asset %q (%s) with principal %.2f at %.2f%%",
		asset.Name, asset.ID, asset.Principal, asset.AnnualRatePercent)))
	return nil
}

func assetEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an asset",
		Long: `Edit an asset's fields. Changing the principal restarts interest
accrual from the moment of the edit; other edits leave the accrual anchor
untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: runAssetEdit,
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().Float64P("principal", "p", -1, "New principal amount")
	cmd.Flags().StringP("category", "c", "", "New asset category")
	cmd.Flags().Float64P("rate", "r", -1, "New annual rate in percent")
	cmd.Flags().Float64("realized-gain", 0, "New realized gain")
	cmd.Flags().StringP("note", "n", "", "New note")

	return cmd
}

func runAssetEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	asset, err := store.GetAssetByID(ctx, args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		asset.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("principal") {
		asset.Principal, _ = cmd.Flags().GetFloat64("principal")
	}
	if cmd.Flags().Changed("category") {
		asset.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("rate") {
		asset.AnnualRatePercent, _ = cmd.Flags().GetFloat64("rate")
	}
	if cmd.Flags().Changed("realized-gain") {
		asset.RealizedGain, _ = cmd.Flags().GetFloat64("realized-gain")
	}
	if cmd.Flags().Changed("note") {
		asset.Note, _ = cmd.Flags().GetString("note")
	}

	if err := store.UpdateAsset(ctx, asset, time.Now()); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated asset %q", asset.Name)))
	return nil
}

func assetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assets with current values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			assets, err := store.GetAllAssets(ctx)
			if err != nil {
				return err
			}
			if len(assets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No assets."))
				return nil
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tPRINCIPAL\tRATE%\tCURRENT VALUE\tDAILY INCOME\tID")
			for i := range assets {
				a := &assets[i]
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
					a.Name, a.Category, a.Principal, a.AnnualRatePercent,
					valuation.CurrentValue(a, now),
					valuation.AssetDailyIncome(a),
					a.ID)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Total: %.2f", valuation.PortfolioTotal(assets, now))))
			return nil
		},
	}
}

func assetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAsset(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted asset"))
			return nil
		},
	}
}
