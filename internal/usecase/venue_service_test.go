package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/cricketlabs/livestats/internal/domain/venue"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
)

func TestVenueService_ListFiltersByMinCapacity(t *testing.T) {
	t.Parallel()

	svc := NewVenueService(memory.NewVenueRepository(memory.SeedVenues()))

	items, err := svc.ListVenues(context.Background(), venue.ListFilter{MinCapacity: 60000})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 venues over 60000 capacity, got %d", len(items))
	}
	if items[0].Name != "Narendra Modi Stadium" {
		t.Fatalf("expected largest venue first, got %q", items[0].Name)
	}
}

func TestVenueService_RejectsNegativeCapacity(t *testing.T) {
	t.Parallel()

	svc := NewVenueService(memory.NewVenueRepository(nil))

	_, err := svc.CreateVenue(context.Background(), venue.Venue{Name: "Backyard", Capacity: -1})
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestVenueService_DeleteMissingVenue(t *testing.T) {
	t.Parallel()

	svc := NewVenueService(memory.NewVenueRepository(nil))

	if err := svc.DeleteVenue(context.Background(), 42); !stderrors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
