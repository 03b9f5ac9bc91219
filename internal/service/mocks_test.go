package service

import (
	"context"

	"github.com/netoar/fyyur/internal/models"
)

// --- Mock VenueRepository ---

type mockVenueRepo struct {
	createFn   func(ctx context.Context, venue *models.Venue) error
	updateFn   func(ctx context.Context, venue *models.Venue) error
	deleteFn   func(ctx context.Context, id uint) (*models.Venue, error)
	findByIDFn func(ctx context.Context, id uint) (*models.Venue, error)
	findAllFn  func(ctx context.Context) ([]models.Venue, error)
	recentFn   func(ctx context.Context, limit int) ([]models.Venue, error)
	searchFn   func(ctx context.Context, term string) ([]models.Venue, error)
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}
func (m *mockVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	return m.updateFn(ctx, venue)
}
func (m *mockVenueRepo) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	return m.deleteFn(ctx, id)
}
func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) FindAll(ctx context.Context) ([]models.Venue, error) {
	return m.findAllFn(ctx)
}
func (m *mockVenueRepo) FindRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	return m.recentFn(ctx, limit)
}
func (m *mockVenueRepo) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	return m.searchFn(ctx, term)
}

// --- Mock ArtistRepository ---

type mockArtistRepo struct {
	createFn   func(ctx context.Context, artist *models.Artist) error
	updateFn   func(ctx context.Context, artist *models.Artist) error
	deleteFn   func(ctx context.Context, id uint) (*models.Artist, error)
	findByIDFn func(ctx context.Context, id uint) (*models.Artist, error)
	findAllFn  func(ctx context.Context) ([]models.Artist, error)
	recentFn   func(ctx context.Context, limit int) ([]models.Artist, error)
	searchFn   func(ctx context.Context, term string) ([]models.Artist, error)
}

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	return m.createFn(ctx, artist)
}
func (m *mockArtistRepo) Update(ctx context.Context, artist *models.Artist) error {
	return m.updateFn(ctx, artist)
}
func (m *mockArtistRepo) Delete(ctx context.Context, id uint) (*models.Artist, error) {
	return m.deleteFn(ctx, id)
}
func (m *mockArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockArtistRepo) FindAll(ctx context.Context) ([]models.Artist, error) {
	return m.findAllFn(ctx)
}
func (m *mockArtistRepo) FindRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	return m.recentFn(ctx, limit)
}
func (m *mockArtistRepo) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	return m.searchFn(ctx, term)
}

// --- Mock ShowRepository ---

type mockShowRepo struct {
	createFn   func(ctx context.Context, show *models.Show) error
	findAllFn  func(ctx context.Context) ([]models.Show, error)
	byVenueFn  func(ctx context.Context, venueID uint) ([]models.Show, error)
	byArtistFn func(ctx context.Context, artistID uint) ([]models.Show, error)
}

func (m *mockShowRepo) Create(ctx context.Context, show *models.Show) error {
	return m.createFn(ctx, show)
}
func (m *mockShowRepo) FindAll(ctx context.Context) ([]models.Show, error) {
	return m.findAllFn(ctx)
}
func (m *mockShowRepo) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	return m.byVenueFn(ctx, venueID)
}
func (m *mockShowRepo) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	return m.byArtistFn(ctx, artistID)
}
