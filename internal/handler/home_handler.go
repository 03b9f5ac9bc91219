package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/service"
)

const recentLimit = 10

type HomeHandler struct {
	venues  service.VenueService
	artists service.ArtistService
}

func NewHomeHandler(venues service.VenueService, artists service.ArtistService) *HomeHandler {
	return &HomeHandler{venues: venues, artists: artists}
}

type homePage struct {
	Venues  []models.Venue
	Artists []models.Artist
}

func (h *HomeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
}

func (h *HomeHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	venues, err := h.venues.ListRecent(ctx, recentLimit)
	if err != nil {
		return readError(err)
	}
	artists, err := h.artists.ListRecent(ctx, recentLimit)
	if err != nil {
		return readError(err)
	}

	return render(c, http.StatusOK, "pages/home.html", homePage{Venues: venues, Artists: artists})
}
