// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// Storage defines the contract for our persistence layer. Derived asset
// values are never stored; this layer moves only the persisted fields.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransactions(ctx context.Context, ids []string) error

	// Asset operations
	SaveAsset(ctx context.Context, asset *model.Asset) error
	GetAssetByID(ctx context.Context, id string) (*model.Asset, error)
	GetAllAssets(ctx context.Context) ([]model.Asset, error)
	UpdateAsset(ctx context.Context, asset *model.Asset, now time.Time) error
	DeleteAsset(ctx context.Context, id string) error

	// Portfolio operations
	CreatePortfolio(ctx context.Context, portfolio *model.Portfolio) error
	GetPortfolioByID(ctx context.Context, id string) (*model.Portfolio, error)
	GetAllPortfolios(ctx context.Context) ([]model.Portfolio, error)
	GetPortfolioAssets(ctx context.Context, id string) ([]model.Asset, error)
	DeletePortfolio(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// AdviceClient is the AI collaborator boundary: plain text in, plain text
// out. The core produces the digest and displays the advice verbatim.
type AdviceClient interface {
	Advise(ctx context.Context, digest string) (string, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
