// Package backup implements JSON export and restore of the persisted data.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/model"
	"github.com/LightDevCoder/iPurseLight/internal/service"
)

// ContainerVersion identifies the backup file format.
const ContainerVersion = "1.0"

// Container is the top-level backup file shape. Only persisted fields are
// included; derived values are recomputed after restore.
type Container struct {
	ExportedAt   time.Time           `json:"exportedAt"`
	Version      string              `json:"version"`
	Assets       []AssetRecord       `json:"assets"`
	Transactions []TransactionRecord `json:"transactions"`
}

// AssetRecord is the backup shape of a single asset.
type AssetRecord struct {
	LastPrincipalUpdate time.Time `json:"lastPrincipalUpdate"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Note                string    `json:"note"`
	Principal           float64   `json:"principal"`
	RealizedGain        float64   `json:"realizedGain"`
	AnnualRatePercent   float64   `json:"annualRatePercent"`
}

// TransactionRecord is the backup shape of a single transaction. Type is
// redundant with the amount's sign; it is written for readability and
// checked against the sign on restore.
type TransactionRecord struct {
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Channel  string    `json:"channel"`
	Note     string    `json:"note"`
	Amount   float64   `json:"amount"`
}

// Marshal builds the backup container from in-memory entities and encodes
// it as indented JSON with RFC 3339 timestamps.
func Marshal(assets []model.Asset, transactions []model.Transaction, now time.Time) ([]byte, error) {
	container := Container{
		Version:      ContainerVersion,
		ExportedAt:   now.UTC(),
		Assets:       make([]AssetRecord, 0, len(assets)),
		Transactions: make([]TransactionRecord, 0, len(transactions)),
	}

	for i := range assets {
		a := &assets[i]
		container.Assets = append(container.Assets, AssetRecord{
			Name:                a.Name,
			Category:            a.Category,
			Principal:           a.Principal,
			RealizedGain:        a.RealizedGain,
			AnnualRatePercent:   a.AnnualRatePercent,
			Note:                a.Note,
			LastPrincipalUpdate: a.LastPrincipalUpdate.UTC(),
		})
	}

	for i := range transactions {
		txn := &transactions[i]
		kind, err := txn.Kind()
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", txn.ID, err)
		}
		container.Transactions = append(container.Transactions, TransactionRecord{
			Date:     txn.Date.UTC(),
			Type:     string(kind),
			Category: txn.Category,
			Channel:  txn.Channel,
			Note:     txn.Note,
			Amount:   txn.Amount,
		})
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a backup file and reconstructs entities. Records get
// fresh IDs; the backup format does not carry them. A record whose type
// field disagrees with its amount's sign is kept with the sign winning, and
// the anomaly is logged. Zero-amount records are dropped.
func Unmarshal(data []byte) ([]model.Asset, []model.Transaction, error) {
	var container Container
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode backup: %w", common.ErrInvalidInput, err)
	}
	if container.Version == "" {
		return nil, nil, fmt.Errorf("%w: backup has no version", common.ErrInvalidInput)
	}

	assets := make([]model.Asset, 0, len(container.Assets))
	for _, record := range container.Assets {
		assets = append(assets, model.Asset{
			ID:                  uuid.New().String(),
			Name:                record.Name,
			Category:            record.Category,
			Principal:           record.Principal,
			RealizedGain:        record.RealizedGain,
			AnnualRatePercent:   record.AnnualRatePercent,
			Note:                record.Note,
			LastPrincipalUpdate: record.LastPrincipalUpdate,
		})
	}

	transactions := make([]model.Transaction, 0, len(container.Transactions))
	for _, record := range container.Transactions {
		kind, err := model.KindOf(record.Amount)
		if err != nil {
			slog.Warn("Skipping backup record with zero amount",
				"date", record.Date,
				"category", record.Category)
			continue
		}
		if record.Type != "" && record.Type != string(kind) {
			slog.Warn("Backup record type disagrees with amount sign, keeping sign",
				"recorded_type", record.Type,
				"derived_kind", kind,
				"amount", record.Amount)
		}
		transactions = append(transactions, model.Transaction{
			ID:       uuid.New().String(),
			Date:     record.Date,
			Category: record.Category,
			Channel:  record.Channel,
			Note:     record.Note,
			Amount:   record.Amount,
		})
	}

	return assets, transactions, nil
}

// Export reads everything from storage and produces a backup document.
func Export(ctx context.Context, store service.Storage, now time.Time) ([]byte, error) {
	assets, err := store.GetAllAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	transactions, err := store.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return Marshal(assets, transactions, now)
}

// Restore decodes a backup document and writes its entities to storage.
// Existing data is left in place; restore adds, it never clears.
func Restore(ctx context.Context, store service.Storage, data []byte) (int, int, error) {
	assets, transactions, err := Unmarshal(data)
	if err != nil {
		return 0, 0, err
	}

	for i := range assets {
		if err := store.SaveAsset(ctx, &assets[i]); err != nil {
			return 0, 0, fmt.Errorf("failed to restore asset %q: %w", assets[i].Name, err)
		}
	}
	if len(transactions) > 0 {
		if err := store.SaveTransactions(ctx, transactions); err != nil {
			return 0, 0, fmt.Errorf("failed to restore transactions: %w", err)
		}
	}

	return len(assets), len(transactions), nil
}
