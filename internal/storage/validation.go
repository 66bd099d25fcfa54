package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidAsset       = errors.New("invalid asset")
	ErrInvalidPortfolio   = errors.New("invalid portfolio")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i := range transactions {
		if err := validateTransaction(&transactions[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single transaction. A zero amount is
// rejected here: it cannot be classified as income or expense and silent
// acceptance is how sign/kind inconsistencies creep in.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.Amount == 0 {
		return fmt.Errorf("%w: zero amount", ErrInvalidTransaction)
	}
	return nil
}

// validateAsset validates an asset.
func validateAsset(asset *model.Asset) error {
	if asset == nil {
		return fmt.Errorf("%w: asset", ErrNilParameter)
	}
	if asset.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidAsset)
	}
	if strings.TrimSpace(asset.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidAsset)
	}
	if asset.Principal < 0 {
		return fmt.Errorf("%w: negative principal", ErrInvalidAsset)
	}
	if asset.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: negative annual rate", ErrInvalidAsset)
	}
	if asset.LastPrincipalUpdate.IsZero() {
		return fmt.Errorf("%w: missing last principal update", ErrInvalidAsset)
	}
	return nil
}

// validatePortfolio validates a portfolio.
func validatePortfolio(portfolio *model.Portfolio) error {
	if portfolio == nil {
		return fmt.Errorf("%w: portfolio", ErrNilParameter)
	}
	if portfolio.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidPortfolio)
	}
	if strings.TrimSpace(portfolio.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPortfolio)
	}
	return nil
}
