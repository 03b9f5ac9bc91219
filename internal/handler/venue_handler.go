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

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListVenues)
	g.POST("/search", h.SearchVenues)
	g.GET("/create", h.NewVenueForm)
	g.POST("/create", h.CreateVenue)
	g.GET("/:id", h.GetVenue)
	g.GET("/:id/edit", h.EditVenueForm)
	g.POST("/:id/edit", h.UpdateVenue)
	g.POST("/:id/delete", h.DeleteVenue)
	g.DELETE("/:id", h.DeleteVenue)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	areas, err := h.svc.ListAreas(c.Request().Context())
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "pages/venues.html", areas)
}

func (h *VenueHandler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.svc.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "pages/search_venues.html", searchPage[models.Venue]{SearchTerm: term, Results: res})
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	detail, err := h.svc.GetVenueDetail(c.Request().Context(), id)
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "pages/show_venue.html", detail)
}

func (h *VenueHandler) NewVenueForm(c echo.Context) error {
	return render(c, http.StatusOK, "forms/new_venue.html", formPage[dto.VenueForm]{})
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return render(c, http.StatusBadRequest, "forms/new_venue.html", formPage[dto.VenueForm]{Form: form, Error: "invalid form submission"})
	}
	if err := form.Validate(); err != nil {
		return render(c, http.StatusBadRequest, "forms/new_venue.html", formPage[dto.VenueForm]{Form: form, Error: err.Error()})
	}

	venue := form.ToModel()
	if err := h.svc.CreateVenue(c.Request().Context(), venue); err != nil {
		return redirectWith(c, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
	}
	return redirectWith(c, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	venue, err := h.svc.GetVenue(c.Request().Context(), id)
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "forms/edit_venue.html", formPage[dto.VenueForm]{ID: id, Form: dto.VenueFormFrom(venue)})
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return render(c, http.StatusBadRequest, "forms/edit_venue.html", formPage[dto.VenueForm]{ID: id, Form: form, Error: "invalid form submission"})
	}
	if err := form.Validate(); err != nil {
		return render(c, http.StatusBadRequest, "forms/edit_venue.html", formPage[dto.VenueForm]{ID: id, Form: form, Error: err.Error()})
	}

	location := fmt.Sprintf("/venues/%d", id)
	venue, err := h.svc.UpdateVenue(c.Request().Context(), id, form.ToModel())
	switch {
	case errors.Is(err, service.ErrVenueNotFound):
		return readError(err)
	case err != nil:
		return redirectWith(c, location, fmt.Sprintf("An error occurred. Venue %d could not be updated.", id))
	}
	return redirectWith(c, location, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
}

// DeleteVenue removes the venue and its shows. A missing venue is reported
// like any other failed delete.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	venue, err := h.svc.DeleteVenue(c.Request().Context(), id)
	if err != nil {
		return redirectWith(c, "/", fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
	}
	return redirectWith(c, "/", fmt.Sprintf("Venue %s has been deleted.", venue.Name))
}
