package repository

import (
	"context"

	"github.com/netoar/fyyur/internal/models"
	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error)
	FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error)
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	if err := r.db.WithContext(ctx).
		Joins("Venue").
		Joins("Artist").
		Order("shows.id ASC").
		Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

// FindByVenueID loads a venue's shows with the performing artist joined in.
func (r *showRepository) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	if err := r.db.WithContext(ctx).
		Joins("Artist").
		Where("shows.venue_id = ?", venueID).
		Order("shows.id ASC").
		Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

// FindByArtistID loads an artist's shows with the hosting venue joined in.
func (r *showRepository) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	if err := r.db.WithContext(ctx).
		Joins("Venue").
		Where("shows.artist_id = ?", artistID).
		Order("shows.id ASC").
		Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}
