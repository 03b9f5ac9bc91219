package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/netoar/fyyur/internal/dto"
	"github.com/netoar/fyyur/internal/service"
)

const showFailedMessage = "There was something wrong during the posting. Try it again."

type ShowHandler struct {
	svc service.ShowService
}

func NewShowHandler(svc service.ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

type showFormPage struct {
	Form    dto.ShowForm
	Options *service.ShowFormOptions
	Error   string
}

func (h *ShowHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListShows)
	g.GET("/create", h.NewShowForm)
	g.POST("/create", h.CreateShow)
}

func (h *ShowHandler) ListShows(c echo.Context) error {
	shows, err := h.svc.ListShows(c.Request().Context())
	if err != nil {
		return readError(err)
	}
	return render(c, http.StatusOK, "pages/shows.html", shows)
}

func (h *ShowHandler) NewShowForm(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, dto.ShowForm{}, "")
}

func (h *ShowHandler) CreateShow(c echo.Context) error {
	var form dto.ShowForm
	if err := c.Bind(&form); err != nil {
		return h.renderForm(c, http.StatusBadRequest, form, "invalid form submission")
	}
	if err := form.Validate(); err != nil {
		return h.renderForm(c, http.StatusBadRequest, form, err.Error())
	}

	show, err := form.ToModel()
	if err != nil {
		slog.Warn("show form rejected",
			"artist_id", form.ArtistID,
			"venue_id", form.VenueID,
			"start_time", form.StartTime,
			"error", err,
		)
		return redirectWith(c, "/", showFailedMessage)
	}
	created, err := h.svc.CreateShow(c.Request().Context(), show)
	if err != nil {
		return redirectWith(c, "/", showFailedMessage)
	}
	return redirectWith(c, "/", fmt.Sprintf("%s show in %s was successfully listed!", created.Artist.Name, created.Venue.Name))
}

func (h *ShowHandler) renderForm(c echo.Context, code int, form dto.ShowForm, msg string) error {
	opts, err := h.svc.FormOptions(c.Request().Context())
	if err != nil {
		return readError(err)
	}
	return render(c, code, "forms/new_show.html", showFormPage{Form: form, Options: opts, Error: msg})
}
