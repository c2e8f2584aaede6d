package registry

import (
	"context"

	"labdesk/internal/domain"
)

// SeedDemoData loads the demo requesters and assets used for local runs and
// examples. Production deployments are expected to register real records
// before serving checkouts.
func SeedDemoData(ctx context.Context, store Store) error {
	requesters := []*domain.Requester{
		{UID: "KRG11771", Name: "Arnav", FineAmount: 0, BorrowCount: 0},
		{UID: "ABC15456", Name: "richa", FineAmount: 100, BorrowCount: 0},
		{UID: "KRG88999", Name: "tarun", FineAmount: 0, BorrowCount: 2},
	}
	for _, r := range requesters {
		if err := store.RegisterRequester(ctx, r); err != nil {
			return err
		}
	}

	assets := []*domain.Asset{
		{ID: "LAB-101", Name: "HDMI Cable", Available: true, SecurityLevel: 1},
		{ID: "LAB-102", Name: "Oscilloscope", Available: true, SecurityLevel: 3},
		{ID: "LAB-103", Name: "Projector", Available: false, SecurityLevel: 2},
	}
	for _, a := range assets {
		if err := store.RegisterAsset(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
