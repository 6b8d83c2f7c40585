package order

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/dto"
	service "github.com/antt-creator/beyondthetrenchesproject/internal/service/order"
	"github.com/antt-creator/beyondthetrenchesproject/internal/transport/http/session"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/antt-creator/beyondthetrenchesproject/transport/http/order")

// Handler exposes the public storefront order endpoints. Wire shapes follow
// the original storefront API so existing clients keep working.
type Handler struct {
	svc    *service.Service
	admin  *service.Admin
	logger *zap.Logger
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service, admin *service.Admin, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, admin: admin, logger: logger}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/orders")
	g.POST("", h.create)
	g.GET("", h.list)
}

func (h *Handler) create(c echo.Context) error {
	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create")
	defer span.End()

	req, err := h.bindCreate(c)
	if err != nil {
		return writeError(c, err)
	}

	confirmation, err := h.svc.Submit(ctx, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":  true,
		"orderId":  confirmation.Order.ID,
		"currency": confirmation.Currency,
		"total":    confirmation.Total,
	})
}

// list serves the legacy order listing. It is session-gated: unauthenticated
// callers get an empty body and never any order data.
func (h *Handler) list(c echo.Context) error {
	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	orders, err := h.admin.List(ctx, session.TokenFromRequest(c))
	if err != nil {
		appErr := errorbank.From(err)
		h.logger.Warn("order listing unavailable", zap.String("kind", string(appErr.Kind())), zap.Error(err))
		return c.JSON(appErr.StatusCode(), []dto.OrderResponse{})
	}

	return c.JSON(http.StatusOK, dto.FromOrders(orders))
}

// bindCreate decodes either a JSON body or a multipart form with an optional
// receipt image part.
func (h *Handler) bindCreate(c echo.Context) (dto.CreateOrderRequest, error) {
	var req dto.CreateOrderRequest

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := c.Bind(&req); err != nil {
			return req, errorbank.BadRequest("invalid order payload", errorbank.WithCause(err))
		}
		return req, nil
	}

	if err := c.Bind(&req); err != nil {
		return req, errorbank.BadRequest("invalid order form", errorbank.WithCause(err))
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		// No receipt part attached; the field is optional.
		return req, nil
	}
	src, err := file.Open()
	if err != nil {
		return req, errorbank.BadRequest("failed to open receipt image", errorbank.WithCause(err))
	}
	defer src.Close()

	encoded, err := service.EncodeReceipt(src, file.Header.Get(echo.HeaderContentType))
	if err != nil {
		return req, err
	}
	req.ReceiptURL = encoded
	return req, nil
}

// writeError renders failures in the storefront's flat error shape.
func writeError(c echo.Context, err error) error {
	appErr := errorbank.From(err)
	body := map[string]any{"error": appErr.Message()}
	if details := appErr.Details(); len(details) > 0 {
		body["details"] = details
	} else if cause := appErr.Unwrap(); cause != nil {
		body["details"] = cause.Error()
	}
	return c.JSON(appErr.StatusCode(), body)
}
