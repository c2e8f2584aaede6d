package registry

import (
	"context"
	"sync"

	"labdesk/internal/domain"
	derrors "labdesk/pkg/domain-errors"
)

// MemoryStore keeps assets and requesters in two independent maps keyed by
// identifier. Reads return copies; mutations happen under the write lock so
// MarkBorrowed behaves as a check-and-set even with concurrent callers.
type MemoryStore struct {
	mu         sync.RWMutex
	assets     map[string]*domain.Asset
	requesters map[string]*domain.Requester
}

// NewMemoryStore creates an empty in-memory registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		assets:     make(map[string]*domain.Asset),
		requesters: make(map[string]*domain.Requester),
	}
}

// RegisterAsset inserts or overwrites an asset by ID.
func (s *MemoryStore) RegisterAsset(_ context.Context, asset *domain.Asset) error {
	if asset == nil || asset.ID == "" {
		return derrors.New(derrors.CodeBadRequest, "asset with a non-empty ID is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *asset
	s.assets[asset.ID] = &clone
	return nil
}

// RegisterRequester inserts or overwrites a requester by UID.
func (s *MemoryStore) RegisterRequester(_ context.Context, requester *domain.Requester) error {
	if requester == nil || requester.UID == "" {
		return derrors.New(derrors.CodeBadRequest, "requester with a non-empty UID is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *requester
	s.requesters[requester.UID] = &clone
	return nil
}

// GetAsset retrieves a copy of the asset with the given ID.
func (s *MemoryStore) GetAsset(_ context.Context, assetID string) (*domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[assetID]
	if !ok {
		return nil, derrors.Newf(derrors.CodeNotFound, "no asset registered with ID %s", assetID)
	}
	clone := *asset
	return &clone, nil
}

// GetRequester retrieves a copy of the requester with the given UID.
func (s *MemoryStore) GetRequester(_ context.Context, uid string) (*domain.Requester, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	requester, ok := s.requesters[uid]
	if !ok {
		return nil, derrors.Newf(derrors.CodeNotFound, "no requester registered with UID %s", uid)
	}
	clone := *requester
	return &clone, nil
}

// MarkBorrowed atomically flips the asset's availability to false. Fails with
// a conflict when the asset is already issued, so at most one checkout can
// succeed per asset until a release path exists.
func (s *MemoryStore) MarkBorrowed(_ context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	asset, ok := s.assets[assetID]
	if !ok {
		return derrors.Newf(derrors.CodeNotFound, "no asset registered with ID %s", assetID)
	}
	if !asset.Available {
		return derrors.New(derrors.CodeConflict, "asset already allocated")
	}
	asset.Available = false
	return nil
}

// IncrementBorrowCount raises the requester's borrow count by one. The cap is
// re-checked here even though eligibility runs upstream; the store is the last
// line of defense for the 0..MaxBorrowCount invariant.
func (s *MemoryStore) IncrementBorrowCount(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	requester, ok := s.requesters[uid]
	if !ok {
		return derrors.Newf(derrors.CodeNotFound, "no requester registered with UID %s", uid)
	}
	if requester.BorrowCount >= domain.MaxBorrowCount {
		return derrors.New(derrors.CodeInvariantViolation, "borrow count already at capacity")
	}
	requester.BorrowCount++
	return nil
}
