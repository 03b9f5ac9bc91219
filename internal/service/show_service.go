package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/netoar/fyyur/internal/dto"
	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/repository"
	"github.com/netoar/fyyur/pkg/rabbitmq"
)

// ShowFormOptions feeds the venue and artist pickers of the new show form.
type ShowFormOptions struct {
	Venues  []models.Venue
	Artists []models.Artist
}

type ShowService interface {
	ListShows(ctx context.Context) ([]dto.ShowListing, error)
	FormOptions(ctx context.Context) (*ShowFormOptions, error)
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
}

type showService struct {
	repo       repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
	publisher  *rabbitmq.Publisher
}

func NewShowService(repo repository.ShowRepository, venueRepo repository.VenueRepository, artistRepo repository.ArtistRepository, publisher *rabbitmq.Publisher) ShowService {
	return &showService{repo: repo, venueRepo: venueRepo, artistRepo: artistRepo, publisher: publisher}
}

func (s *showService) ListShows(ctx context.Context) ([]dto.ShowListing, error) {
	shows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	out := make([]dto.ShowListing, len(shows))
	for i := range shows {
		out[i] = dto.ToShowListing(&shows[i])
	}
	return out, nil
}

func (s *showService) FormOptions(ctx context.Context) (*ShowFormOptions, error) {
	venues, err := s.venueRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	artists, err := s.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return &ShowFormOptions{Venues: venues, Artists: artists}, nil
}

// CreateShow checks both parents exist before inserting so the result can
// carry their names.
func (s *showService) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	venue, err := s.venueRepo.FindByID(ctx, show.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, writeFailed("show", "create", ErrVenueNotFound)
		}
		return nil, writeFailed("show", "create", err)
	}
	artist, err := s.artistRepo.FindByID(ctx, show.ArtistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, writeFailed("show", "create", ErrArtistNotFound)
		}
		return nil, writeFailed("show", "create", err)
	}

	if err := s.repo.Create(ctx, show); err != nil {
		return nil, writeFailed("show", "create", err)
	}
	writeSucceeded("show", "create")

	show.Venue = venue
	show.Artist = artist
	publish(s.publisher, rabbitmq.ShowCreated, show)
	return show, nil
}
