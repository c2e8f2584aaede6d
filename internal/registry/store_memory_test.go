package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"labdesk/internal/domain"
	derrors "labdesk/pkg/domain-errors"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemoryStore()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestAssetLookup() {
	ctx := context.Background()

	s.Run("returns registered asset by ID", func() {
		asset := &domain.Asset{ID: "LAB-101", Name: "HDMI Cable", Available: true, SecurityLevel: 1}
		s.Require().NoError(s.store.RegisterAsset(ctx, asset))

		found, err := s.store.GetAsset(ctx, "LAB-101")
		s.Require().NoError(err)
		s.Equal(asset, found)
	})

	s.Run("returns not_found for unknown ID", func() {
		_, err := s.store.GetAsset(ctx, "LAB-999")
		s.Require().Error(err)
		s.True(derrors.HasCode(err, derrors.CodeNotFound))
	})

	s.Run("re-registering overwrites by ID", func() {
		s.Require().NoError(s.store.RegisterAsset(ctx, &domain.Asset{ID: "LAB-104", Name: "Multimeter", Available: true, SecurityLevel: 1}))
		s.Require().NoError(s.store.RegisterAsset(ctx, &domain.Asset{ID: "LAB-104", Name: "Bench Multimeter", Available: true, SecurityLevel: 2}))

		found, err := s.store.GetAsset(ctx, "LAB-104")
		s.Require().NoError(err)
		s.Equal("Bench Multimeter", found.Name)
		s.Equal(2, found.SecurityLevel)
	})

	s.Run("mutating a returned copy does not leak into the store", func() {
		s.Require().NoError(s.store.RegisterAsset(ctx, &domain.Asset{ID: "LAB-105", Name: "Soldering Iron", Available: true, SecurityLevel: 1}))

		found, err := s.store.GetAsset(ctx, "LAB-105")
		s.Require().NoError(err)
		found.Available = false

		again, err := s.store.GetAsset(ctx, "LAB-105")
		s.Require().NoError(err)
		s.True(again.Available)
	})
}

func (s *MemoryStoreSuite) TestRequesterLookup() {
	ctx := context.Background()

	s.Run("returns registered requester by UID", func() {
		requester := &domain.Requester{UID: "KRG11771", Name: "Arnav"}
		s.Require().NoError(s.store.RegisterRequester(ctx, requester))

		found, err := s.store.GetRequester(ctx, "KRG11771")
		s.Require().NoError(err)
		s.Equal(requester, found)
	})

	s.Run("returns not_found for unknown UID", func() {
		_, err := s.store.GetRequester(ctx, "ABC12345")
		s.Require().Error(err)
		s.True(derrors.HasCode(err, derrors.CodeNotFound))
	})
}

func (s *MemoryStoreSuite) TestMarkBorrowed() {
	ctx := context.Background()

	s.Run("flips availability exactly once", func() {
		s.Require().NoError(s.store.RegisterAsset(ctx, &domain.Asset{ID: "LAB-101", Name: "HDMI Cable", Available: true, SecurityLevel: 1}))

		s.Require().NoError(s.store.MarkBorrowed(ctx, "LAB-101"))

		found, err := s.store.GetAsset(ctx, "LAB-101")
		s.Require().NoError(err)
		s.False(found.Available)

		err = s.store.MarkBorrowed(ctx, "LAB-101")
		s.Require().Error(err)
		s.True(derrors.HasCode(err, derrors.CodeConflict))
	})

	s.Run("unknown asset is not_found", func() {
		err := s.store.MarkBorrowed(ctx, "LAB-404")
		s.Require().Error(err)
		s.True(derrors.HasCode(err, derrors.CodeNotFound))
	})
}

func (s *MemoryStoreSuite) TestIncrementBorrowCount() {
	ctx := context.Background()

	s.Run("increments by exactly one", func() {
		s.Require().NoError(s.store.RegisterRequester(ctx, &domain.Requester{UID: "KRG11771", Name: "Arnav"}))

		s.Require().NoError(s.store.IncrementBorrowCount(ctx, "KRG11771"))

		found, err := s.store.GetRequester(ctx, "KRG11771")
		s.Require().NoError(err)
		s.Equal(1, found.BorrowCount)
	})

	s.Run("refuses to pass the capacity invariant", func() {
		s.Require().NoError(s.store.RegisterRequester(ctx, &domain.Requester{UID: "KRG88999", Name: "tarun", BorrowCount: domain.MaxBorrowCount}))

		err := s.store.IncrementBorrowCount(ctx, "KRG88999")
		s.Require().Error(err)
		s.True(derrors.HasCode(err, derrors.CodeInvariantViolation))

		found, err := s.store.GetRequester(ctx, "KRG88999")
		s.Require().NoError(err)
		s.Equal(domain.MaxBorrowCount, found.BorrowCount)
	})

	s.Run("unknown requester is not_found", func() {
		err := s.store.IncrementBorrowCount(ctx, "ZZZ00000")
		s.Require().Error(err)
		s.True(derrors.HasCode(err, derrors.CodeNotFound))
	})
}

func (s *MemoryStoreSuite) TestSeedDemoData() {
	ctx := context.Background()
	s.Require().NoError(SeedDemoData(ctx, s.store))

	asset, err := s.store.GetAsset(ctx, "LAB-103")
	s.Require().NoError(err)
	s.False(asset.Available)

	requester, err := s.store.GetRequester(ctx, "ABC15456")
	s.Require().NoError(err)
	s.Equal(100, requester.FineAmount)
}
