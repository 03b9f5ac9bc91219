package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/netoar/fyyur/internal/dto"
	"github.com/netoar/fyyur/internal/middleware"
	"github.com/netoar/fyyur/internal/service"
	"github.com/netoar/fyyur/internal/view"
)

// render executes a page with any flashed messages queued by the previous
// request.
func render(c echo.Context, code int, name string, data any) error {
	return c.Render(code, name, view.Page{Messages: middleware.PopFlashes(c), Data: data})
}

// redirectWith flashes msg and sends the client to location.
func redirectWith(c echo.Context, location, msg string) error {
	middleware.SetFlash(c, msg)
	return c.Redirect(http.StatusSeeOther, location)
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a record, so it is a 404.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.ErrNotFound
	}
	return uint(id), nil
}

// readError maps a read-path service error to an HTTP error.
func readError(err error) error {
	if errors.Is(err, service.ErrVenueNotFound) || errors.Is(err, service.ErrArtistNotFound) {
		return echo.ErrNotFound.WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError).WithInternal(err)
}

type searchPage[T any] struct {
	SearchTerm string
	Results    dto.SearchResult[T]
}

type formPage[F any] struct {
	ID    uint
	Form  F
	Error string
}
