package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
)

// PertanyaanController handles survey question operations
type PertanyaanController struct {
	pertanyaanService services.PertanyaanService
}

// NewPertanyaanController creates a new PertanyaanController
func NewPertanyaanController(pertanyaanService services.PertanyaanService) *PertanyaanController {
	return &PertanyaanController{
		pertanyaanService: pertanyaanService,
	}
}

// queryStatus maps an optional status=true/false query to the stored
// smallint form.
func queryStatus(ctx *gin.Context) *int16 {
	raw := ctx.Query("status")
	if raw == "" {
		return nil
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	status := models.PertanyaanInactive
	if active {
		status = models.PertanyaanActive
	}
	return &status
}

// CreatePertanyaan creates a survey question
// @Summary Create a pertanyaan
// @Description Creates a survey question for an academic year. The slug is generated from the name
// @Tags pertanyaan
// @Accept json
// @Produce json
// @Param request body dto.CreatePertanyaanRequest true "Question information"
// @Success 201 {object} dto.StructuredResponse{data=models.Pertanyaan} "Pertanyaan created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pertanyaan/create [post]
func (c *PertanyaanController) CreatePertanyaan(ctx *gin.Context) {
	var req dto.CreatePertanyaanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid pertanyaan data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	pertanyaan, err := c.pertanyaanService.CreatePertanyaan(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(pertanyaan, "Pertanyaan berhasil dibuat"))
}

// ListPertanyaan retrieves questions with filters and pagination
// @Summary List pertanyaan
// @Tags pertanyaan
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Param tahun_akademik query string false "Academic year filter" example("2023/2024")
// @Param status query bool false "Active filter"
// @Param search query string false "Name search"
// @Success 200 {object} dto.ListResponse{data=[]models.Pertanyaan} "Pertanyaan retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pertanyaan [get]
func (c *PertanyaanController) ListPertanyaan(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	filter := dto.PertanyaanListFilter{
		TahunAkademik: queryString(ctx, "tahun_akademik"),
		Status:        queryStatus(ctx),
		Search:        ctx.Query("search"),
	}

	items, total, err := c.pertanyaanService.ListPertanyaan(ctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data pertanyaan berhasil diambil", items, pagination))
}

// GetPertanyaanByID retrieves a question with its answer choices
// @Summary Get pertanyaan details
// @Tags pertanyaan
// @Produce json
// @Param id path int true "Pertanyaan ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse{data=models.Pertanyaan} "Pertanyaan retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid pertanyaan ID"
// @Failure 404 {object} dto.ErrorResponse "Pertanyaan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pertanyaan/{id} [get]
func (c *PertanyaanController) GetPertanyaanByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	pertanyaan, err := c.pertanyaanService.GetPertanyaanByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(pertanyaan, "Data pertanyaan berhasil diambil"))
}

// UpdatePertanyaan updates a question
// @Summary Update a pertanyaan
// @Description Updates question fields. A name change regenerates the slug
// @Tags pertanyaan
// @Accept json
// @Produce json
// @Param id path int true "Pertanyaan ID" minimum(1)
// @Param request body dto.UpdatePertanyaanRequest true "Updated fields"
// @Success 200 {object} dto.StructuredResponse{data=models.Pertanyaan} "Pertanyaan updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Pertanyaan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pertanyaan/{id} [patch]
func (c *PertanyaanController) UpdatePertanyaan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePertanyaanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid pertanyaan data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	pertanyaan, err := c.pertanyaanService.UpdatePertanyaan(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(pertanyaan, "Pertanyaan berhasil diperbarui"))
}

// DeletePertanyaan removes a question and its choices
// @Summary Delete a pertanyaan
// @Tags pertanyaan
// @Produce json
// @Param id path int true "Pertanyaan ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Pertanyaan deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid pertanyaan ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Pertanyaan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pertanyaan/{id} [delete]
func (c *PertanyaanController) DeletePertanyaan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.pertanyaanService.DeletePertanyaan(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Pertanyaan berhasil dihapus"))
}

// CopyPertanyaan copies a survey between academic years
// @Summary Copy pertanyaan between years
// @Description Copies every question and choice of one academic year to another. Copies start inactive
// @Tags pertanyaan
// @Accept json
// @Produce json
// @Param request body dto.CopyPertanyaanRequest true "Source and target years"
// @Success 200 {object} dto.StructuredResponse{data=dto.CopyPertanyaanResult} "Questions copied"
// @Failure 400 {object} dto.ErrorResponse "Invalid years"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Source year has no questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pertanyaan/copy [post]
func (c *PertanyaanController) CopyPertanyaan(ctx *gin.Context) {
	var req dto.CopyPertanyaanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid copy request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.pertanyaanService.CopyPertanyaan(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(result, "Pertanyaan berhasil disalin"))
}

// UpdateStatusByTahunAkademik toggles every question of one academic year
// @Summary Toggle a year's questions
// @Description Activates or deactivates every question of an academic year
// @Tags pertanyaan
// @Accept json
// @Produce json
// @Param request body dto.UpdateStatusByTahunRequest true "Year and target status"
// @Success 200 {object} dto.StructuredResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Year has no questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pertanyaan/update-status [patch]
func (c *PertanyaanController) UpdateStatusByTahunAkademik(ctx *gin.Context) {
	var req dto.UpdateStatusByTahunRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	affected, err := c.pertanyaanService.UpdateStatusByTahunAkademik(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(gin.H{"totalPertanyaan": affected}, "Status pertanyaan berhasil diperbarui"))
}
