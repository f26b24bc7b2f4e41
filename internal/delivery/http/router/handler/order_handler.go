package handler

import (
	"log/slog"
	"net/http"

	"skyelectro/internal/delivery/http/middleware"
	"skyelectro/internal/delivery/http/response"
	"skyelectro/internal/domain/entity"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order lifecycle handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AdvanceStatusRequest represents the request body for advancing an order.
// TrackingNumber is required only when the next status is shipped.
type AdvanceStatusRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	Note           string `json:"note" validate:"max=500"`
}

// OrderNoteRequest represents the optional note on cancel and return
type OrderNoteRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// GetOrder handles retrieving one order; non-admins only see their own
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, middleware.IsAdmin(c), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListMyOrders handles the caller's own order history
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Orders retrieved successfully")
}

// ListOrders handles the administrative order listing
func (h *OrderHandler) ListOrders(c echo.Context) error {
	input := usecase.ListOrdersInput{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown order status: "+raw)
		}
		input.Status = &status
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Orders retrieved successfully")
}

// AdvanceStatus handles moving an order to its next status (admin)
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req AdvanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.AdvanceStatus(c.Request().Context(), orderID, actorID, req.TrackingNumber, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// CancelOrder handles cancelling a non-terminal order
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req OrderNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}

	// Non-admin callers may only cancel their own orders.
	if _, err := h.orderUC.GetOrder(c.Request().Context(), actorID, middleware.IsAdmin(c), orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), orderID, actorID, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled")
}

// ReturnOrder handles marking a non-terminal order as returned (admin)
func (h *OrderHandler) ReturnOrder(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req OrderNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return input")
	}

	order, err := h.orderUC.Return(c.Request().Context(), orderID, actorID, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order returned")
}

// TrackingQR handles rendering the packing-slip QR code as a PNG
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.TrackingQR(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
