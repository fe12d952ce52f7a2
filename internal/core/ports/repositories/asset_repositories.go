package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// AssetReader defines read operations for depreciable assets
type AssetReader interface {
	FindAssetByID(ctx context.Context, id string) (*domain.AssetRecord, error)
	ListAssets(ctx context.Context) ([]domain.AssetRecord, error)
}

// AssetWriter defines write operations for depreciable assets.
// Cost and useful life have no update path.
type AssetWriter interface {
	SaveAsset(ctx context.Context, asset domain.AssetRecord) error

	// TouchAsset records when depreciation was last looked at.
	TouchAsset(ctx context.Context, id string, userID string, now time.Time) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
