package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/LightDevCoder/iPurseLight/internal/cli"
	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/importer"
	"github.com/LightDevCoder/iPurseLight/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV or OFX/QFX file",
		Long: `Import transactions from an external bill file.

CSV files use six columns (date, kind, category, channel, amount, note)
with a header row. A filename like PersonalBill-Jan.2026.csv pins every
imported row to that month. OFX/QFX bank exports are also accepted; their
transactions land on the Bank Card channel.`,
		Args: cobra.ExactArgs(1),
		RunE: runFileImport,
	}

	cmd.Flags().String("format", "", "File format: csv or ofx (default: by extension)")
	cmd.Flags().Bool("dry-run", false, "Show what would be imported without saving")

	return cmd
}

func runFileImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	format, _ := cmd.Flags().GetString("format")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ofx", ".qfx":
			format = "ofx"
		default:
			format = "csv"
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var transactions []model.Transaction
	switch format {
	case "csv":
		loc, locErr := resolveLocation()
		if locErr != nil {
			return locErr
		}
		override, ok := importer.ParseBillFilename(filepath.Base(path))
		if ok {
			fmt.Println(cli.FormatWarning(fmt.Sprintf("Filename pins rows to %s %d",
				override.Month, override.Year)))
		}
		transactions, err = importer.ParseCSV(file, override, loc)
	case "ofx":
		transactions, err = importer.NewOFXParser().ParseOFX(file)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	if len(transactions) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Nothing to import."))
		return nil
	}
	if dryRun {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Would import %d transaction(s)", len(transactions))))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(transactions),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing transactions..."),
	)

	// Save in batches so the bar tracks real progress on large bills.
	const batchSize = 100
	for start := 0; start < len(transactions); start += batchSize {
		end := start + batchSize
		if end > len(transactions) {
			end = len(transactions)
		}
		if err := store.SaveTransactions(ctx, transactions[start:end]); err != nil {
			return err
		}
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()
	fmt.Println()

	common.LogInfo("import complete", common.Fields{"file": path, "count": len(transactions)})
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s) from %s", len(transactions), path)))
	return nil
}
