package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
)

// ProgramStudiController handles study program master data operations
type ProgramStudiController struct {
	programStudiService services.ProgramStudiService
}

// NewProgramStudiController creates a new ProgramStudiController
func NewProgramStudiController(programStudiService services.ProgramStudiService) *ProgramStudiController {
	return &ProgramStudiController{
		programStudiService: programStudiService,
	}
}

// CreateProgramStudi handles study program creation
// @Summary Create a program studi
// @Tags program-studi
// @Accept json
// @Produce json
// @Param request body dto.CreateProgramStudiRequest true "Program studi information"
// @Success 201 {object} dto.StructuredResponse{data=models.ProgramStudi} "Program studi created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Fakultas not found"
// @Failure 409 {object} dto.ErrorResponse "Program studi already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /program-studi/create [post]
func (c *ProgramStudiController) CreateProgramStudi(ctx *gin.Context) {
	var req dto.CreateProgramStudiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program studi data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	programStudi, err := c.programStudiService.CreateProgramStudi(ctx, req.FakultasID, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(programStudi, "Program studi berhasil dibuat"))
}

// ListProgramStudi retrieves study programs with pagination
// @Summary List program studi
// @Tags program-studi
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Param fakultasId query int false "Fakultas filter"
// @Param search query string false "Name search"
// @Success 200 {object} dto.ListResponse{data=[]models.ProgramStudi} "Program studi retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /program-studi [get]
func (c *ProgramStudiController) ListProgramStudi(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	items, total, err := c.programStudiService.ListProgramStudi(ctx, queryInt64(ctx, "fakultasId"), ctx.Query("search"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data program studi berhasil diambil", items, pagination))
}

// GetProgramStudiByID retrieves a study program by ID
// @Summary Get program studi details
// @Tags program-studi
// @Produce json
// @Param id path int true "Program studi ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse{data=models.ProgramStudi} "Program studi retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid program studi ID"
// @Failure 404 {object} dto.ErrorResponse "Program studi not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /program-studi/{id} [get]
func (c *ProgramStudiController) GetProgramStudiByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	programStudi, err := c.programStudiService.GetProgramStudiByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(programStudi, "Data program studi berhasil diambil"))
}

// UpdateProgramStudi updates a study program
// @Summary Update a program studi
// @Tags program-studi
// @Accept json
// @Produce json
// @Param id path int true "Program studi ID" minimum(1)
// @Param request body dto.UpdateProgramStudiRequest true "Updated program studi information"
// @Success 200 {object} dto.StructuredResponse{data=models.ProgramStudi} "Program studi updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Program studi not found"
// @Failure 409 {object} dto.ErrorResponse "Program studi already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /program-studi/{id} [patch]
func (c *ProgramStudiController) UpdateProgramStudi(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProgramStudiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program studi data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	programStudi, err := c.programStudiService.UpdateProgramStudi(ctx, id, req.FakultasID, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(programStudi, "Program studi berhasil diperbarui"))
}

// DeleteProgramStudi deletes a study program without related users
// @Summary Delete a program studi
// @Tags program-studi
// @Produce json
// @Param id path int true "Program studi ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Program studi deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid program studi ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Program studi not found"
// @Failure 409 {object} dto.ErrorResponse "Program studi has associated data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /program-studi/{id} [delete]
func (c *ProgramStudiController) DeleteProgramStudi(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.programStudiService.DeleteProgramStudi(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Program studi berhasil dihapus"))
}
