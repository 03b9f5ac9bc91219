package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/netoar/fyyur/internal/dto"
	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/monitoring"
	"github.com/netoar/fyyur/internal/repository"
	"github.com/netoar/fyyur/internal/schedule"
	"github.com/netoar/fyyur/pkg/rabbitmq"
)

type ArtistService interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	ListRecent(ctx context.Context, limit int) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) (dto.SearchResult[models.Artist], error)
	GetArtist(ctx context.Context, id uint) (*models.Artist, error)
	GetArtistDetail(ctx context.Context, id uint) (*dto.ArtistDetail, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id uint) (*models.Artist, error)
}

type artistService struct {
	repo      repository.ArtistRepository
	shows     repository.ShowRepository
	publisher *rabbitmq.Publisher
	now       func() time.Time
}

func NewArtistService(repo repository.ArtistRepository, shows repository.ShowRepository, publisher *rabbitmq.Publisher) ArtistService {
	return &artistService{repo: repo, shows: shows, publisher: publisher, now: schedule.Now}
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (s *artistService) ListRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	return s.repo.FindRecent(ctx, limit)
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (dto.SearchResult[models.Artist], error) {
	artists, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return dto.SearchResult[models.Artist]{}, fmt.Errorf("search artists: %w", err)
	}
	return dto.NewSearchResult(artists), nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("find artist %d: %w", id, err)
	}
	return artist, nil
}

func (s *artistService) GetArtistDetail(ctx context.Context, id uint) (*dto.ArtistDetail, error) {
	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.shows.FindByArtistID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shows for artist %d: %w", id, err)
	}

	p := schedule.Classify(s.now(), shows)
	monitoring.RecordClassified(p.PastCount(), p.UpcomingCount())

	detail := dto.ToArtistDetail(artist, p)
	return &detail, nil
}

func (s *artistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if err := s.repo.Create(ctx, artist); err != nil {
		return writeFailed("artist", "create", err)
	}
	writeSucceeded("artist", "create")
	publish(s.publisher, rabbitmq.ArtistCreated, artist)
	return nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error) {
	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	artist.Name = changes.Name
	artist.City = changes.City
	artist.State = changes.State
	artist.Phone = changes.Phone
	artist.Genres = changes.Genres
	artist.ImageLink = dto.DefaultImage(dto.KindArtist, changes.ImageLink)
	artist.FacebookLink = changes.FacebookLink
	artist.WebsiteLink = changes.WebsiteLink
	artist.SeekingVenue = changes.SeekingVenue
	artist.SeekingDescription = changes.SeekingDescription

	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, writeFailed("artist", "update", err)
	}
	writeSucceeded("artist", "update")
	publish(s.publisher, rabbitmq.ArtistUpdated, artist)
	return artist, nil
}

func (s *artistService) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, writeFailed("artist", "delete", err)
	}
	writeSucceeded("artist", "delete")
	publish(s.publisher, rabbitmq.ArtistDeleted, artist)
	return artist, nil
}
