package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// SaveAsset inserts a new asset. Only the persisted fields are written;
// derived values are always recomputed from them at read time.
func (s *SQLiteStorage) SaveAsset(ctx context.Context, asset *model.Asset) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAsset(asset); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assets (id, name, category, principal, realized_gain, annual_rate_percent, note, last_principal_update)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, asset.ID, asset.Name, asset.Category, asset.Principal, asset.RealizedGain,
		asset.AnnualRatePercent, asset.Note, asset.LastPrincipalUpdate.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert asset %s: %w", asset.ID, err)
	}
	return nil
}

// GetAssetByID retrieves a single asset.
func (s *SQLiteStorage) GetAssetByID(ctx context.Context, id string) (*model.Asset, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, principal, realized_gain, annual_rate_percent, note, last_principal_update
		FROM assets WHERE id = ?
	`, id)

	asset, err := scanAsset(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("asset %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// GetAllAssets returns every asset, ordered by name.
func (s *SQLiteStorage) GetAllAssets(ctx context.Context) ([]model.Asset, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, principal, realized_gain, annual_rate_percent, note, last_principal_update
		FROM assets ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var assets []model.Asset
	for rows.Next() {
		asset, scanErr := scanAsset(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", scanErr)
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

// UpdateAsset replaces the asset's fields. When the stored principal
// differs from the new one, last_principal_update resets to now so accrual
// restarts from the edit.
func (s *SQLiteStorage) UpdateAsset(ctx context.Context, asset *model.Asset, now time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAsset(asset); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var storedPrincipal float64
	err = tx.QueryRowContext(ctx, `SELECT principal FROM assets WHERE id = ?`, asset.ID).Scan(&storedPrincipal)
	if err == sql.ErrNoRows {
		return fmt.Errorf("asset %s: %w", asset.ID, common.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read stored principal: %w", err)
	}

	lastUpdate := asset.LastPrincipalUpdate
	if storedPrincipal != asset.Principal {
		lastUpdate = now
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE assets
		SET name = ?, category = ?, principal = ?, realized_gain = ?, annual_rate_percent = ?, note = ?, last_principal_update = ?
		WHERE id = ?
	`, asset.Name, asset.Category, asset.Principal, asset.RealizedGain,
		asset.AnnualRatePercent, asset.Note, lastUpdate.UTC(), asset.ID); err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit asset update: %w", err)
	}
	asset.LastPrincipalUpdate = lastUpdate
	return nil
}

// DeleteAsset removes an asset; portfolio membership rows cascade away.
func (s *SQLiteStorage) DeleteAsset(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("asset %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func scanAsset(row rowScanner) (*model.Asset, error) {
	var asset model.Asset
	var note sql.NullString
	var lastUpdate time.Time

	if err := row.Scan(&asset.ID, &asset.Name, &asset.Category, &asset.Principal,
		&asset.RealizedGain, &asset.AnnualRatePercent, &note, &lastUpdate); err != nil {
		return nil, err
	}
	asset.Note = note.String
	asset.LastPrincipalUpdate = lastUpdate
	return &asset, nil
}
