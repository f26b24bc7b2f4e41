package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"skyelectro/internal/delivery/http/middleware"
	"skyelectro/internal/delivery/http/response"
	"skyelectro/internal/domain/entity"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review and comment handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for a new review
type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Title     string    `json:"title" validate:"max=200"`
	Comment   string    `json:"comment" validate:"required,max=2000"`
}

// AddReplyRequest represents the request body for a review reply
type AddReplyRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

// VoteRequest represents the request body for a helpfulness vote
type VoteRequest struct {
	Vote string `json:"vote" validate:"required"`
}

// SetReviewStatusRequest represents the moderation request body
type SetReviewStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListProductReviews handles the public review listing for a product
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	input := usecase.ListReviewsInput{
		ProductID: productID,
		Sort:      c.QueryParam("sort"),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	}

	if raw := c.QueryParam("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			return response.BadRequest(c, "INVALID_RATING", "Rating filter must be between 1 and 5")
		}
		input.Rating = &rating
	}

	page, err := h.reviewUC.ListProductReviews(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Reviews retrieved successfully")
}

// CreateReview handles posting a review; one review per user per product
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// AddReply handles appending a reply under a review
func (h *ReviewHandler) AddReply(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req AddReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.AddReply(c.Request().Context(), userID, reviewID, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Reply added successfully")
}

// Vote handles recording or switching a helpfulness vote
func (h *ReviewHandler) Vote(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.Vote(c.Request().Context(), userID, reviewID, entity.VoteKind(req.Vote))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review, "Vote recorded")
}

// SetStatus handles review moderation (admin)
func (h *ReviewHandler) SetStatus(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req SetReviewStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	status := entity.ReviewStatus(req.Status)
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown review status: "+req.Status)
	}

	review, err := h.reviewUC.SetStatus(c.Request().Context(), reviewID, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review, "Review status updated")
}
