package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/LightDevCoder/iPurseLight/internal/backup"
	"github.com/LightDevCoder/iPurseLight/internal/cli"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore JSON backups",
	}

	cmd.AddCommand(backupExportCmd())
	cmd.AddCommand(backupRestoreCmd())
	return cmd
}

func backupExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all assets and transactions to a JSON file",
		RunE:  runBackupExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output file (default: ipurse_backup_<unix>.json)")

	return cmd
}

func runBackupExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	now := time.Now()
	data, err := backup.Export(ctx, store, now)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = fmt.Sprintf("ipurse_backup_%d.json", now.Unix())
	}

	if err := os.WriteFile(out, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported backup to %s", out)))
	return nil
}

func backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Load assets and transactions from a backup file",
		Long: `Load assets and transactions from a JSON backup. Restored entries are
added next to existing data; nothing is cleared first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			assets, transactions, err := backup.Restore(ctx, store, data)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored %d asset(s) and %d transaction(s)", assets, transactions)))
			return nil
		},
	}
}
