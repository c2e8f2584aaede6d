package registry

import (
	"context"

	"labdesk/internal/domain"
)

// Store is the lookup and mutation surface for registered entities. All state
// transitions funnel through MarkBorrowed and IncrementBorrowCount so a
// concurrent deployment only needs atomicity at those two seams.
type Store interface {
	RegisterAsset(ctx context.Context, asset *domain.Asset) error
	RegisterRequester(ctx context.Context, requester *domain.Requester) error
	GetAsset(ctx context.Context, assetID string) (*domain.Asset, error)
	GetRequester(ctx context.Context, uid string) (*domain.Requester, error)

	// MarkBorrowed flips the asset's availability to false. It is the single
	// path allowed to mutate availability and performs an atomic check-and-set:
	// a second call for the same asset fails with a conflict.
	MarkBorrowed(ctx context.Context, assetID string) error

	// IncrementBorrowCount raises the requester's borrow count by exactly one,
	// refusing to pass domain.MaxBorrowCount.
	IncrementBorrowCount(ctx context.Context, uid string) error
}
