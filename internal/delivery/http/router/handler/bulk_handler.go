package handler

import (
	"io"
	"log/slog"
	"net/http"

	"skyelectro/config"
	"skyelectro/internal/delivery/http/middleware"
	"skyelectro/internal/delivery/http/response"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// BulkHandlerParams holds dependencies for BulkHandler, injected by Fx.
type BulkHandlerParams struct {
	fx.In

	BulkUC usecase.BulkImportUsecase
	Config *config.Config
	Logger *slog.Logger
}

// BulkHandler holds dependencies for bulk product operations
type BulkHandler struct {
	bulkUC  usecase.BulkImportUsecase
	maxSize int64
	logger  *slog.Logger
}

// NewBulkHandler is the constructor for BulkHandler
func NewBulkHandler(params BulkHandlerParams) *BulkHandler {
	return &BulkHandler{
		bulkUC:  params.BulkUC,
		maxSize: params.Config.BulkImport.MaxFileSize,
		logger:  params.Logger,
	}
}

// BulkUpdateRequest represents the request body for a bulk field update.
// Nil fields are left untouched.
type BulkUpdateRequest struct {
	ProductIDs []uuid.UUID      `json:"productIds" validate:"required,min=1"`
	Price      *decimal.Decimal `json:"price"`
	Discount   *int             `json:"discount" validate:"omitempty,min=0,max=100"`
	Stock      *int             `json:"stock" validate:"omitempty,min=0"`
	IsActive   *bool            `json:"isActive"`
	IsFeatured *bool            `json:"isFeatured"`
	CategoryID *uuid.UUID       `json:"categoryId"`
}

// BulkDeleteRequest represents the request body for a bulk soft delete
type BulkDeleteRequest struct {
	ProductIDs []uuid.UUID `json:"productIds" validate:"required,min=1"`
}

// Template handles downloading the CSV import template
func (h *BulkHandler) Template(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products_template.csv"`)

	return c.Blob(http.StatusOK, "text/csv", h.bulkUC.Template())
}

// ImportProducts handles a multipart CSV upload and returns the per-row summary
func (h *BulkHandler) ImportProducts(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "CSV file is required under the \"file\" field")
	}

	if h.maxSize > 0 && fileHeader.Size > h.maxSize {
		return response.BadRequest(c, "FILE_TOO_LARGE", "Uploaded file exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Uploaded file could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Uploaded file could not be read")
	}

	summary, err := h.bulkUC.ImportProducts(c.Request().Context(), actorID, fileHeader.Filename, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Import completed")
}

// BulkUpdate handles applying the same field changes to many products
func (h *BulkHandler) BulkUpdate(c echo.Context) error {
	var req BulkUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	affected, err := h.bulkUC.BulkUpdate(c.Request().Context(), usecase.BulkUpdateInput{
		ProductIDs: req.ProductIDs,
		Updates: repository.ProductBulkUpdate{
			Price:      req.Price,
			Discount:   req.Discount,
			Stock:      req.Stock,
			IsActive:   req.IsActive,
			IsFeatured: req.IsFeatured,
			CategoryID: req.CategoryID,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": affected}, "Products updated")
}

// BulkSoftDelete handles deactivating and soft-deleting many products
func (h *BulkHandler) BulkSoftDelete(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk delete input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	affected, err := h.bulkUC.BulkSoftDelete(c.Request().Context(), req.ProductIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": affected}, "Products deleted")
}
