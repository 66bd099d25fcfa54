package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/LightDevCoder/iPurseLight/internal/common"
	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// CreatePortfolio inserts a portfolio and its membership rows. Member IDs
// that don't reference an existing asset fail the insert.
func (s *SQLiteStorage) CreatePortfolio(ctx context.Context, portfolio *model.Portfolio) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePortfolio(portfolio); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO portfolios (id, name, created_at) VALUES (?, ?, ?)
	`, portfolio.ID, portfolio.Name, portfolio.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to insert portfolio %s: %w", portfolio.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO portfolio_assets (portfolio_id, asset_id) VALUES (?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare membership statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, assetID := range portfolio.AssetIDs {
		if _, err := stmt.ExecContext(ctx, portfolio.ID, assetID); err != nil {
			return fmt.Errorf("failed to add asset %s to portfolio: %w", assetID, err)
		}
	}

	return tx.Commit()
}

// GetPortfolioByID retrieves a portfolio and its member asset IDs.
func (s *SQLiteStorage) GetPortfolioByID(ctx context.Context, id string) (*model.Portfolio, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var portfolio model.Portfolio
	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM portfolios WHERE id = ?
	`, id).Scan(&portfolio.ID, &portfolio.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("portfolio %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	portfolio.CreatedAt = createdAt

	rows, err := s.db.QueryContext(ctx, `
		SELECT asset_id FROM portfolio_assets WHERE portfolio_id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var assetID string
		if err := rows.Scan(&assetID); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		portfolio.AssetIDs = append(portfolio.AssetIDs, assetID)
	}
	return &portfolio, rows.Err()
}

// GetAllPortfolios returns every portfolio with its member asset IDs.
func (s *SQLiteStorage) GetAllPortfolios(ctx context.Context) ([]model.Portfolio, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM portfolios ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	portfolios := make([]model.Portfolio, 0, len(ids))
	for _, id := range ids {
		p, err := s.GetPortfolioByID(ctx, id)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, *p)
	}
	return portfolios, nil
}

// GetPortfolioAssets returns the member assets of a portfolio.
func (s *SQLiteStorage) GetPortfolioAssets(ctx context.Context, id string) ([]model.Asset, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.category, a.principal, a.realized_gain, a.annual_rate_percent, a.note, a.last_principal_update
		FROM assets a
		JOIN portfolio_assets pa ON pa.asset_id = a.id
		WHERE pa.portfolio_id = ?
		ORDER BY a.name
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio assets: %w", err)
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

// DeletePortfolio removes a portfolio. Membership rows cascade; the member
// assets themselves are untouched.
func (s *SQLiteStorage) DeletePortfolio(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM portfolios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("portfolio %s: %w", id, common.ErrNotFound)
	}
	return nil
}
