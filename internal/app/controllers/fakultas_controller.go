package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
)

// FakultasController handles faculty master data operations
type FakultasController struct {
	fakultasService services.FakultasService
}

// NewFakultasController creates a new FakultasController
func NewFakultasController(fakultasService services.FakultasService) *FakultasController {
	return &FakultasController{
		fakultasService: fakultasService,
	}
}

// CreateFakultas handles faculty creation
// @Summary Create a fakultas
// @Tags fakultas
// @Accept json
// @Produce json
// @Param request body dto.CreateFakultasRequest true "Fakultas information"
// @Success 201 {object} dto.StructuredResponse{data=models.Fakultas} "Fakultas created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Fakultas already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fakultas/create [post]
func (c *FakultasController) CreateFakultas(ctx *gin.Context) {
	var req dto.CreateFakultasRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fakultas data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fakultas, err := c.fakultasService.CreateFakultas(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(fakultas, "Fakultas berhasil dibuat"))
}

// ListFakultas retrieves faculties with pagination
// @Summary List fakultas
// @Tags fakultas
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Param search query string false "Name search"
// @Success 200 {object} dto.ListResponse{data=[]models.Fakultas} "Fakultas retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fakultas [get]
func (c *FakultasController) ListFakultas(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	items, total, err := c.fakultasService.ListFakultas(ctx, ctx.Query("search"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data fakultas berhasil diambil", items, pagination))
}

// GetFakultasByID retrieves a faculty by ID
// @Summary Get fakultas details
// @Tags fakultas
// @Produce json
// @Param id path int true "Fakultas ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse{data=models.Fakultas} "Fakultas retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid fakultas ID"
// @Failure 404 {object} dto.ErrorResponse "Fakultas not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fakultas/{id} [get]
func (c *FakultasController) GetFakultasByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fakultas, err := c.fakultasService.GetFakultasByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(fakultas, "Data fakultas berhasil diambil"))
}

// UpdateFakultas renames a faculty
// @Summary Update a fakultas
// @Tags fakultas
// @Accept json
// @Produce json
// @Param id path int true "Fakultas ID" minimum(1)
// @Param request body dto.UpdateFakultasRequest true "Updated fakultas information"
// @Success 200 {object} dto.StructuredResponse{data=models.Fakultas} "Fakultas updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Fakultas not found"
// @Failure 409 {object} dto.ErrorResponse "Fakultas already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fakultas/{id} [patch]
func (c *FakultasController) UpdateFakultas(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFakultasRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fakultas data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fakultas, err := c.fakultasService.UpdateFakultas(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(fakultas, "Fakultas berhasil diperbarui"))
}

// DeleteFakultas deletes a faculty without related data
// @Summary Delete a fakultas
// @Tags fakultas
// @Produce json
// @Param id path int true "Fakultas ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Fakultas deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid fakultas ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Fakultas not found"
// @Failure 409 {object} dto.ErrorResponse "Fakultas has associated data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fakultas/{id} [delete]
func (c *FakultasController) DeleteFakultas(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.fakultasService.DeleteFakultas(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Fakultas berhasil dihapus"))
}
