package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/netoar/fyyur/internal/dto"
	"github.com/netoar/fyyur/internal/location"
	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/monitoring"
	"github.com/netoar/fyyur/internal/repository"
	"github.com/netoar/fyyur/internal/schedule"
	"github.com/netoar/fyyur/pkg/rabbitmq"
)

type VenueService interface {
	ListAreas(ctx context.Context) ([]location.Area, error)
	ListRecent(ctx context.Context, limit int) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) (dto.SearchResult[models.Venue], error)
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	GetVenueDetail(ctx context.Context, id uint) (*dto.VenueDetail, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) (*models.Venue, error)
}

type venueService struct {
	repo      repository.VenueRepository
	shows     repository.ShowRepository
	publisher *rabbitmq.Publisher
	now       func() time.Time
}

func NewVenueService(repo repository.VenueRepository, shows repository.ShowRepository, publisher *rabbitmq.Publisher) VenueService {
	return &venueService{repo: repo, shows: shows, publisher: publisher, now: schedule.Now}
}

func (s *venueService) ListAreas(ctx context.Context) ([]location.Area, error) {
	venues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return location.Group(venues), nil
}

func (s *venueService) ListRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	return s.repo.FindRecent(ctx, limit)
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (dto.SearchResult[models.Venue], error) {
	venues, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return dto.SearchResult[models.Venue]{}, fmt.Errorf("search venues: %w", err)
	}
	return dto.NewSearchResult(venues), nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue %d: %w", id, err)
	}
	return venue, nil
}

func (s *venueService) GetVenueDetail(ctx context.Context, id uint) (*dto.VenueDetail, error) {
	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.shows.FindByVenueID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shows for venue %d: %w", id, err)
	}

	p := schedule.Classify(s.now(), shows)
	monitoring.RecordClassified(p.PastCount(), p.UpcomingCount())

	detail := dto.ToVenueDetail(venue, p)
	return &detail, nil
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := s.repo.Create(ctx, venue); err != nil {
		return writeFailed("venue", "create", err)
	}
	writeSucceeded("venue", "create")
	publish(s.publisher, rabbitmq.VenueCreated, venue)
	return nil
}

// UpdateVenue overwrites every mutable field of the stored venue with changes.
func (s *venueService) UpdateVenue(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error) {
	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	venue.Name = changes.Name
	venue.City = changes.City
	venue.State = changes.State
	venue.Address = changes.Address
	venue.Phone = changes.Phone
	venue.ImageLink = dto.DefaultImage(dto.KindVenue, changes.ImageLink)
	venue.FacebookLink = changes.FacebookLink
	venue.WebsiteLink = changes.WebsiteLink
	venue.Genres = changes.Genres
	venue.SeekingTalent = changes.SeekingTalent
	venue.SeekingDescription = changes.SeekingDescription

	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, writeFailed("venue", "update", err)
	}
	writeSucceeded("venue", "update")
	publish(s.publisher, rabbitmq.VenueUpdated, venue)
	return venue, nil
}

// DeleteVenue removes the venue together with its shows.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, writeFailed("venue", "delete", err)
	}
	writeSucceeded("venue", "delete")
	publish(s.publisher, rabbitmq.VenueDeleted, venue)
	return venue, nil
}
