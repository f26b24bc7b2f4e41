package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skyelectro/internal/delivery/http/validator"
	"skyelectro/internal/domain/entity"
	mockUC "skyelectro/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartTestContext(t *testing.T, userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func TestCartHandler_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	cartUC := mockUC.NewMockCartUsecase(t)
	cartUC.EXPECT().
		AddToCart(mock.Anything, userID, productID, 1).
		Return(entity.EmptyCartView(), nil)

	handler := &CartHandler{cartUC: cartUC, logger: slog.New(slog.DiscardHandler)}

	// No quantity field in the body
	c, rec := newCartTestContext(t, userID, `{"productId":"`+productID.String()+`"}`)

	require.NoError(t, handler.AddToCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddToCart_ExplicitQuantity(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	cartUC := mockUC.NewMockCartUsecase(t)
	cartUC.EXPECT().
		AddToCart(mock.Anything, userID, productID, 3).
		Return(entity.EmptyCartView(), nil)

	handler := &CartHandler{cartUC: cartUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newCartTestContext(t, userID, `{"productId":"`+productID.String()+`","quantity":3}`)

	require.NoError(t, handler.AddToCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddToCart_RejectsQuantityAboveLimit(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	cartUC := mockUC.NewMockCartUsecase(t)
	handler := &CartHandler{cartUC: cartUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newCartTestContext(t, userID, `{"productId":"`+productID.String()+`","quantity":11}`)

	require.NoError(t, handler.AddToCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
