package admin

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/internal/dto"
	"github.com/antt-creator/beyondthetrenchesproject/internal/presentation/http/response"
	authsvc "github.com/antt-creator/beyondthetrenchesproject/internal/service/auth"
	ordersvc "github.com/antt-creator/beyondthetrenchesproject/internal/service/order"
	"github.com/antt-creator/beyondthetrenchesproject/internal/transport/http/session"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/antt-creator/beyondthetrenchesproject/transport/http/admin")

// Handler exposes the admin order-management endpoints.
type Handler struct {
	auth       *authsvc.Service
	admin      *ordersvc.Admin
	sessionTTL time.Duration
}

// NewHandler constructs an admin Handler.
func NewHandler(auth *authsvc.Service, admin *ordersvc.Admin, cfg config.Config) *Handler {
	return &Handler{auth: auth, admin: admin, sessionTTL: cfg.Admin.SessionTTL}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/admin")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/orders", h.listOrders)
	g.POST("/orders/:id/toggle", h.toggleStatus)
}

func (h *Handler) login(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid login payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "admin.login")
	defer span.End()

	token, err := h.auth.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		return b.WithError(err).Build()
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return b.WithData(map[string]string{"token": token}).Build()
}

func (h *Handler) logout(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "admin.logout")
	defer span.End()

	if err := h.auth.Logout(ctx, session.TokenFromRequest(c)); err != nil {
		return b.WithError(err).Build()
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return b.WithData(map[string]bool{"loggedOut": true}).Build()
}

func (h *Handler) listOrders(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "admin.orders.list")
	defer span.End()

	orders, err := h.admin.List(ctx, session.TokenFromRequest(c))
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.FromOrders(orders)).WithMeta("count", len(orders)).Build()
}

func (h *Handler) toggleStatus(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")
	if id == "" {
		return b.WithError(errorbank.BadRequest("order id is required")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "admin.orders.toggle", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	orders, err := h.admin.ToggleStatus(ctx, session.TokenFromRequest(c), id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.FromOrders(orders)).WithMeta("count", len(orders)).Build()
}
