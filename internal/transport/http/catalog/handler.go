package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/antt-creator/beyondthetrenchesproject/internal/catalog"
	"github.com/antt-creator/beyondthetrenchesproject/internal/presentation/http/response"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

// Handler serves the static country catalog and book info.
type Handler struct{}

// NewHandler constructs a catalog Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/api/countries", h.listCountries)
	e.GET("/api/countries/:code", h.getCountry)
	e.GET("/api/book", h.getBook)
}

func (h *Handler) listCountries(c echo.Context) error {
	return response.New(c).WithData(catalog.All()).Build()
}

func (h *Handler) getCountry(c echo.Context) error {
	b := response.New(c)

	entry, ok := catalog.Lookup(c.Param("code"))
	if !ok {
		return b.WithError(errorbank.NotFound("unknown country code")).Build()
	}
	return b.WithData(entry).Build()
}

func (h *Handler) getBook(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Book())
}
