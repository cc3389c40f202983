package service

import (
	"context"
	"errors"
	"fmt"

	"wanderwith/internal/model"
	"wanderwith/internal/repository"
)

var ErrDestinationNotFound = errors.New("destination not found")

// DestinationService defines read operations on destinations
type DestinationService interface {
	ListDestinations(ctx context.Context, filters model.DestinationFilters) ([]model.Destination, error)
	GetDestination(ctx context.Context, id int) (*model.DestinationDetail, error)
}

type destinationService struct {
	repo repository.DestinationRepository
}

// NewDestinationService creates a new DestinationService
func NewDestinationService(repo repository.DestinationRepository) DestinationService {
	return &destinationService{repo: repo}
}

func (s *destinationService) ListDestinations(ctx context.Context, filters model.DestinationFilters) ([]model.Destination, error) {
	destinations, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations from repo: %w", err)
	}
	return destinations, nil
}

func (s *destinationService) GetDestination(ctx context.Context, id int) (*model.DestinationDetail, error) {
	destination, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find destination by ID: %w", err)
	}
	if destination == nil {
		return nil, ErrDestinationNotFound
	}

	reviews := make([]model.Review, len(model.SampleReviews))
	copy(reviews, model.SampleReviews)
	return &model.DestinationDetail{Destination: *destination, Reviews: reviews}, nil
}
