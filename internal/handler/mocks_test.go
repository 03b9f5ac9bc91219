package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/netoar/fyyur/internal/dto"
	"github.com/netoar/fyyur/internal/location"
	"github.com/netoar/fyyur/internal/middleware"
	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/service"
	"github.com/netoar/fyyur/internal/view"
	"github.com/stretchr/testify/require"
)

// --- Mock VenueService ---

type mockVenueService struct {
	listAreasFn func(ctx context.Context) ([]location.Area, error)
	recentFn    func(ctx context.Context, limit int) ([]models.Venue, error)
	searchFn    func(ctx context.Context, term string) (dto.SearchResult[models.Venue], error)
	getFn       func(ctx context.Context, id uint) (*models.Venue, error)
	detailFn    func(ctx context.Context, id uint) (*dto.VenueDetail, error)
	createFn    func(ctx context.Context, venue *models.Venue) error
	updateFn    func(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error)
	deleteFn    func(ctx context.Context, id uint) (*models.Venue, error)
}

func (m *mockVenueService) ListAreas(ctx context.Context) ([]location.Area, error) {
	return m.listAreasFn(ctx)
}
func (m *mockVenueService) ListRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	return m.recentFn(ctx, limit)
}
func (m *mockVenueService) SearchVenues(ctx context.Context, term string) (dto.SearchResult[models.Venue], error) {
	return m.searchFn(ctx, term)
}
func (m *mockVenueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	return m.getFn(ctx, id)
}
func (m *mockVenueService) GetVenueDetail(ctx context.Context, id uint) (*dto.VenueDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *mockVenueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}
func (m *mockVenueService) UpdateVenue(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error) {
	return m.updateFn(ctx, id, changes)
}
func (m *mockVenueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	return m.deleteFn(ctx, id)
}

// --- Mock ArtistService ---

type mockArtistService struct {
	listFn   func(ctx context.Context) ([]models.Artist, error)
	recentFn func(ctx context.Context, limit int) ([]models.Artist, error)
	searchFn func(ctx context.Context, term string) (dto.SearchResult[models.Artist], error)
	getFn    func(ctx context.Context, id uint) (*models.Artist, error)
	detailFn func(ctx context.Context, id uint) (*dto.ArtistDetail, error)
	createFn func(ctx context.Context, artist *models.Artist) error
	updateFn func(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error)
	deleteFn func(ctx context.Context, id uint) (*models.Artist, error)
}

func (m *mockArtistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return m.listFn(ctx)
}
func (m *mockArtistService) ListRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	return m.recentFn(ctx, limit)
}
func (m *mockArtistService) SearchArtists(ctx context.Context, term string) (dto.SearchResult[models.Artist], error) {
	return m.searchFn(ctx, term)
}
func (m *mockArtistService) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	return m.getFn(ctx, id)
}
func (m *mockArtistService) GetArtistDetail(ctx context.Context, id uint) (*dto.ArtistDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *mockArtistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return m.createFn(ctx, artist)
}
func (m *mockArtistService) UpdateArtist(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error) {
	return m.updateFn(ctx, id, changes)
}
func (m *mockArtistService) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	return m.deleteFn(ctx, id)
}

// --- Mock ShowService ---

type mockShowService struct {
	listFn    func(ctx context.Context) ([]dto.ShowListing, error)
	optionsFn func(ctx context.Context) (*service.ShowFormOptions, error)
	createFn  func(ctx context.Context, show *models.Show) (*models.Show, error)
}

func (m *mockShowService) ListShows(ctx context.Context) ([]dto.ShowListing, error) {
	return m.listFn(ctx)
}
func (m *mockShowService) FormOptions(ctx context.Context) (*service.ShowFormOptions, error) {
	return m.optionsFn(ctx)
}
func (m *mockShowService) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	return m.createFn(ctx, show)
}

// --- Helpers ---

// captureRenderer records the last rendered page instead of executing it.
type captureRenderer struct {
	name string
	page view.Page
}

func (r *captureRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	r.name = name
	r.page = data.(view.Page)
	return nil
}

func newTestEcho() (*echo.Echo, *captureRenderer) {
	e := echo.New()
	r := &captureRenderer{}
	e.Renderer = r
	return e, r
}

var testSessionSecret = []byte("0123456789abcdef0123456789abcdef")

// withSession runs h behind the session middleware, as the server does.
func withSession(h echo.HandlerFunc) echo.HandlerFunc {
	return middleware.Sessions(testSessionSecret)(h)
}

// replayCookies adds the cookies a response set to req. The last Set-Cookie
// for a name wins, as in a browser.
func replayCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	latest := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		latest[ck.Name] = ck
	}
	for _, ck := range latest {
		req.AddCookie(ck)
	}
	return req
}

// flashed returns the messages a response queued for the next page.
func flashed(t *testing.T, e *echo.Echo, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	req := replayCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	var msgs []string
	err := withSession(func(c echo.Context) error {
		msgs = middleware.PopFlashes(c)
		return nil
	})(e.NewContext(req, httptest.NewRecorder()))
	require.NoError(t, err)
	require.NotEmpty(t, msgs, "no flash queued")
	return msgs
}
