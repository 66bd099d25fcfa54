package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LightDevCoder/iPurseLight/internal/cli"
	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/llm"
	"github.com/LightDevCoder/iPurseLight/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [free text]",
		Short: "Record a transaction",
		Long: `Record a single transaction.

With flags, the fields are taken as given: a negative amount is an expense,
a positive amount is income.

With --parse, the arguments are sent to the configured AI provider as free
text ("28.5 taxi to the airport, paid by card") and the returned fields are
used instead. Category and channel values outside the suggested sets fall
back to --category and --channel.`,
		RunE: runAdd,
	}

	cmd.Flags().Float64P("amount", "a", 0, "Signed amount (negative = expense)")
	cmd.Flags().StringP("category", "c", "Other", "Category label")
	cmd.Flags().String("channel", "WeChat", "Payment channel")
	cmd.Flags().StringP("note", "n", "", "Free-form note")
	cmd.Flags().StringP("date", "d", "", "Transaction time (2006-01-02 or RFC 3339, default: now)")
	cmd.Flags().Bool("parse", false, "Parse the arguments as free text with the AI provider")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	loc, err := resolveLocation()
	if err != nil {
		return err
	}

	amount, _ := cmd.Flags().GetFloat64("amount")
	category, _ := cmd.Flags().GetString("category")
	channel, _ := cmd.Flags().GetString("channel")
	note, _ := cmd.Flags().GetString("note")
	dateStr, _ := cmd.Flags().GetString("date")
	parse, _ := cmd.Flags().GetBool("parse")

	date := time.Now().In(loc)
	if dateStr != "" {
		date, err = parseDateFlag(dateStr, loc)
		if err != nil {
			return err
		}
	}

	if parse {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("%w: --parse needs free text arguments", common.ErrInvalidInput)
		}

		client, cfg, err := createLLMClient()
		if err != nil {
			return err
		}
		if closer, ok := client.(interface{ Close() error }); ok {
			defer func() { _ = closer.Close() }()
		}

		var parsed llm.ParsedTransaction
		err = common.WithRetry(ctx, func() error {
			var parseErr error
			parsed, parseErr = client.ParseTransaction(ctx, text)
			return parseErr
		}, retryOptions(cfg))
		if err != nil {
			return common.NewUserError("could not parse the transaction text",
				fmt.Errorf("%w: %w", common.ErrParseFailed, err))
		}

		// The flag values act as priors when the model wanders off the
		// suggested sets.
		parsed = parsed.Normalize(category, channel)
		amount = parsed.SignedAmount()
		category = parsed.Category
		channel = parsed.Channel
		if parsed.Note != "" {
			note = parsed.Note
		}
	}

	if amount == 0 {
		return fmt.Errorf("%w: amount must be non-zero", common.ErrInvalidInput)
	}

	txn := model.Transaction{
		ID:       uuid.New().String(),
		Date:     date,
		Category: category,
		Channel:  channel,
		Amount:   amount,
		Note:     note,
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransactions(ctx, []model.Transaction{txn}); err != nil {
		return err
	}

	kind, _ := txn.Kind()
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s %s (%s, %s)",
		strings.ToLower(string(kind)), cli.FormatAmount(txn.Amount), txn.Category, txn.Channel,
		txn.Date.Format("2006-01-02 15:04"))))
	return nil
}

func parseDateFlag(value string, loc *time.Location) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		if date, err := time.ParseInLocation(layout, value, loc); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", common.ErrInvalidInput, value)
}
