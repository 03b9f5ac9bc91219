package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArtistService(repo *mockArtistRepo, shows *mockShowRepo) *artistService {
	svc := NewArtistService(repo, shows, nil).(*artistService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func sampleArtist() *models.Artist {
	return &models.Artist{
		ID:     4,
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	}
}

func TestListArtists(t *testing.T) {
	repo := &mockArtistRepo{
		findAllFn: func(ctx context.Context) ([]models.Artist, error) {
			return []models.Artist{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}, nil
		},
	}

	artists, err := newTestArtistService(repo, &mockShowRepo{}).ListArtists(context.Background())

	require.NoError(t, err)
	assert.Len(t, artists, 2)
}

func TestSearchArtists_Empty(t *testing.T) {
	repo := &mockArtistRepo{
		searchFn: func(ctx context.Context, term string) ([]models.Artist, error) {
			return nil, nil
		},
	}

	res, err := newTestArtistService(repo, &mockShowRepo{}).SearchArtists(context.Background(), "zzz")

	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Data)
}

func TestGetArtistDetail_ClassifiesShows(t *testing.T) {
	repo := &mockArtistRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return sampleArtist(), nil
		},
	}
	shows := &mockShowRepo{
		byArtistFn: func(ctx context.Context, artistID uint) ([]models.Show, error) {
			return []models.Show{
				{ID: 1, VenueID: 1, ArtistID: 4, StartTime: fixedNow.AddDate(-1, 0, 0), Venue: &models.Venue{ID: 1, Name: "The Musical Hop"}},
				{ID: 2, VenueID: 3, ArtistID: 4, StartTime: fixedNow.AddDate(1, 0, 0), Venue: &models.Venue{ID: 3, Name: "Park Square"}},
			}, nil
		},
	}

	d, err := newTestArtistService(repo, shows).GetArtistDetail(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)
	assert.Equal(t, uint(1), d.PastShows[0].VenueID)
	assert.Equal(t, "Park Square", d.UpcomingShows[0].VenueName)
}

func TestGetArtistDetail_NotFound(t *testing.T) {
	repo := &mockArtistRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return nil, repository.ErrNotFound
		},
	}

	_, err := newTestArtistService(repo, &mockShowRepo{}).GetArtistDetail(context.Background(), 9)

	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestGetArtistDetail_ShowQueryFails(t *testing.T) {
	repo := &mockArtistRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return sampleArtist(), nil
		},
	}
	shows := &mockShowRepo{
		byArtistFn: func(ctx context.Context, artistID uint) ([]models.Show, error) {
			return nil, errors.New("timeout")
		},
	}

	_, err := newTestArtistService(repo, shows).GetArtistDetail(context.Background(), 4)

	assert.ErrorContains(t, err, "timeout")
}

func TestCreateArtist_WriteConflict(t *testing.T) {
	repo := &mockArtistRepo{
		createFn: func(ctx context.Context, artist *models.Artist) error {
			return errors.New("duplicate key")
		},
	}

	err := newTestArtistService(repo, &mockShowRepo{}).CreateArtist(context.Background(), sampleArtist())

	assert.ErrorIs(t, err, ErrWriteConflict)
}

func TestUpdateArtist_ReplacesGenresAndImage(t *testing.T) {
	var saved *models.Artist
	repo := &mockArtistRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			a := sampleArtist()
			a.ImageLink = "https://x/old.jpg"
			return a, nil
		},
		updateFn: func(ctx context.Context, artist *models.Artist) error {
			saved = artist
			return nil
		},
	}

	_, err := newTestArtistService(repo, &mockShowRepo{}).UpdateArtist(context.Background(), 4, &models.Artist{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Genres:       []string{"Rock n Roll", "Punk"},
		SeekingVenue: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Rock n Roll", "Punk"}, []string(saved.Genres))
	assert.NotEqual(t, "https://x/old.jpg", saved.ImageLink)
	assert.True(t, saved.SeekingVenue)
}

func TestDeleteArtist_NotFound(t *testing.T) {
	repo := &mockArtistRepo{
		deleteFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return nil, repository.ErrNotFound
		},
	}

	_, err := newTestArtistService(repo, &mockShowRepo{}).DeleteArtist(context.Background(), 4)

	assert.ErrorIs(t, err, ErrArtistNotFound)
}
