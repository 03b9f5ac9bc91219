package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/netoar/fyyur/internal/dto"
	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/service"
)

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListArtists)
	g.POST("/search", h.SearchArtists)
	g.GET("/create", h.NewArtistForm)
	g.POST("/create", h.CreateArtist)
	g.GET("/:id", h.GetArtist)
	g.GET("/:id/edit", h.EditArtistForm)
	g.POST("/:id/edit", h.UpdateArtist)
	g.POST("/:id/delete", h.DeleteArtist)
	g.DELETE("/:id", h.DeleteArtist)
}

func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.svc.ListArtists(c.Request().Context())
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "pages/artists.html", artists)
}

func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.svc.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "pages/search_artists.html", searchPage[models.Artist]{SearchTerm: term, Results: res})
}

func (h *ArtistHandler) GetArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	detail, err := h.svc.GetArtistDetail(c.Request().Context(), id)
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "pages/show_artist.html", detail)
}

func (h *ArtistHandler) NewArtistForm(c echo.Context) error {
	return render(c, http.StatusOK, "forms/new_artist.html", formPage[dto.ArtistForm]{})
}

func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return render(c, http.StatusBadRequest, "forms/new_artist.html", formPage[dto.ArtistForm]{Form: form, Error: "invalid form submission"})
	}
	if err := form.Validate(); err != nil {
		return render(c, http.StatusBadRequest, "forms/new_artist.html", formPage[dto.ArtistForm]{Form: form, Error: err.Error()})
	}

	artist := form.ToModel()
	if err := h.svc.CreateArtist(c.Request().Context(), artist); err != nil {
		return redirectWith(c, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
	}
	return redirectWith(c, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	artist, err := h.svc.GetArtist(c.Request().Context(), id)
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "forms/edit_artist.html", formPage[dto.ArtistForm]{ID: id, Form: dto.ArtistFormFrom(artist)})
}

func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return render(c, http.StatusBadRequest, "forms/edit_artist.html", formPage[dto.ArtistForm]{ID: id, Form: form, Error: "invalid form submission"})
	}
	if err := form.Validate(); err != nil {
		return render(c, http.StatusBadRequest, "forms/edit_artist.html", formPage[dto.ArtistForm]{ID: id, Form: form, Error: err.Error()})
	}

	location := fmt.Sprintf("/artists/%d", id)
	artist, err := h.svc.UpdateArtist(c.Request().Context(), id, form.ToModel())
	switch {
	case errors.Is(err, service.ErrArtistNotFound):
		return readError(err)
	case err != nil:
		return redirectWith(c, location, fmt.Sprintf("An error occurred. Artist %d could not be updated.", id))
	}
	return redirectWith(c, location, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
}

// DeleteArtist removes the artist and its shows. A missing artist is reported
// like any other failed delete.
func (h *ArtistHandler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	artist, err := h.svc.DeleteArtist(c.Request().Context(), id)
	if err != nil {
		return redirectWith(c, "/", fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id))
	}
	return redirectWith(c, "/", fmt.Sprintf("Artist %s has been deleted.", artist.Name))
}
