package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/cricketlabs/livestats/internal/domain/venue"
)

type VenueService struct {
	venueRepo venue.Repository
}

func NewVenueService(venueRepo venue.Repository) *VenueService {
	return &VenueService{venueRepo: venueRepo}
}

func (s *VenueService) ListVenues(ctx context.Context, filter venue.ListFilter) ([]venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.ListVenues")
	defer span.End()

	filter.Limit, filter.Offset = normalizeWindow(filter.Limit, filter.Offset)
	items, err := s.venueRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return items, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id int64) (venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.GetVenue")
	defer span.End()

	if id <= 0 {
		return venue.Venue{}, fmt.Errorf("%w: venue id must be greater than zero", ErrInvalidInput)
	}
	item, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, venue.ErrNotFound) {
			return venue.Venue{}, fmt.Errorf("%w: venue=%d", ErrNotFound, id)
		}
		return venue.Venue{}, fmt.Errorf("get venue by id: %w", err)
	}
	return item, nil
}

func (s *VenueService) CreateVenue(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.CreateVenue")
	defer span.End()

	if err := validateVenue(v); err != nil {
		return venue.Venue{}, err
	}
	created, err := s.venueRepo.Create(ctx, v)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("create venue: %w", err)
	}
	return created, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.UpdateVenue")
	defer span.End()

	if v.ID <= 0 {
		return venue.Venue{}, fmt.Errorf("%w: venue id must be greater than zero", ErrInvalidInput)
	}
	if err := validateVenue(v); err != nil {
		return venue.Venue{}, err
	}
	updated, err := s.venueRepo.Update(ctx, v)
	if err != nil {
		if stderrors.Is(err, venue.ErrNotFound) {
			return venue.Venue{}, fmt.Errorf("%w: venue=%d", ErrNotFound, v.ID)
		}
		return venue.Venue{}, fmt.Errorf("update venue: %w", err)
	}
	return updated, nil
}

func (s *VenueService) DeleteVenue(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.DeleteVenue")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: venue id must be greater than zero", ErrInvalidInput)
	}
	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, venue.ErrNotFound) {
			return fmt.Errorf("%w: venue=%d", ErrNotFound, id)
		}
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}

func validateVenue(v venue.Venue) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: venue name is required", ErrInvalidInput)
	}
	if v.Capacity < 0 {
		return fmt.Errorf("%w: venue capacity cannot be negative", ErrInvalidInput)
	}
	return nil
}
