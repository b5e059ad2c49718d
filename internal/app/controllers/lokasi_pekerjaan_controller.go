package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/models/dto/enums"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
)

// LokasiPekerjaanController handles work location operations
type LokasiPekerjaanController struct {
	lokasiService services.LokasiPekerjaanService
}

// NewLokasiPekerjaanController creates a new LokasiPekerjaanController
func NewLokasiPekerjaanController(lokasiService services.LokasiPekerjaanService) *LokasiPekerjaanController {
	return &LokasiPekerjaanController{
		lokasiService: lokasiService,
	}
}

// CreateLokasiPekerjaan records where the caller works
// @Summary Report a work location
// @Description Records the caller's workplace and domicile. Faculty and program come from the account
// @Tags lokasi-pekerjaan
// @Accept json
// @Produce json
// @Param request body dto.CreateLokasiPekerjaanRequest true "Location information"
// @Success 201 {object} dto.StructuredResponse{data=models.LokasiPekerjaan} "Location created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Provinsi or kota not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lokasi-pekerjaan/create [post]
func (c *LokasiPekerjaanController) CreateLokasiPekerjaan(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateLokasiPekerjaanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lokasi pekerjaan data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	lokasi, err := c.lokasiService.CreateLokasiPekerjaan(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(lokasi, "Lokasi pekerjaan berhasil disimpan"))
}

// ListMyLokasiPekerjaan retrieves the caller's reported locations
// @Summary List own work locations
// @Tags lokasi-pekerjaan
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Success 200 {object} dto.ListResponse{data=[]models.LokasiPekerjaanRow} "Locations retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lokasi-pekerjaan/me [get]
func (c *LokasiPekerjaanController) ListMyLokasiPekerjaan(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	filter := dto.LokasiPekerjaanListFilter{UserID: &userID}
	rows, total, err := c.lokasiService.ListLokasiPekerjaanRows(ctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data lokasi pekerjaan berhasil diambil", rows, pagination))
}

// ListLokasiPekerjaan retrieves all reported locations with filters
// @Summary List work locations
// @Description Retrieves locations joined with alumni, region and faculty names
// @Tags lokasi-pekerjaan
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Param fakultasId query int false "Fakultas filter"
// @Param programStudiId query int false "Program studi filter"
// @Param provinsiId query int false "Provinsi filter"
// @Param kotaId query string false "Kota filter"
// @Param search query string false "Alumni or company name search"
// @Success 200 {object} dto.ListResponse{data=[]models.LokasiPekerjaanRow} "Locations retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lokasi-pekerjaan [get]
func (c *LokasiPekerjaanController) ListLokasiPekerjaan(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	filter := dto.LokasiPekerjaanListFilter{
		FakultasID:     queryInt64(ctx, "fakultasId"),
		ProgramStudiID: queryInt64(ctx, "programStudiId"),
		ProvinsiID:     queryInt64(ctx, "provinsiId"),
		KotaID:         queryString(ctx, "kotaId"),
		Search:         ctx.Query("search"),
	}

	rows, total, err := c.lokasiService.ListLokasiPekerjaanRows(ctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data lokasi pekerjaan berhasil diambil", rows, pagination))
}

// GetLokasiPekerjaanByID retrieves one location. Alumni only see their
// own rows; admin and dosen see any.
// @Summary Get work location details
// @Tags lokasi-pekerjaan
// @Produce json
// @Param id path int true "Lokasi pekerjaan ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse{data=models.LokasiPekerjaan} "Location retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid lokasi pekerjaan ID"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lokasi-pekerjaan/{id} [get]
func (c *LokasiPekerjaanController) GetLokasiPekerjaanByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lokasi, err := c.lokasiService.GetLokasiPekerjaanByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if role, ok := middleware.CurrentRole(ctx); ok && role == enums.RoleAlumni {
		userID, ok := requireUserID(ctx)
		if !ok {
			return
		}
		if lokasi.UserID != userID {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Lokasi pekerjaan ini bukan milik Anda")
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(lokasi, "Data lokasi pekerjaan berhasil diambil"))
}

// UpdateLokasiPekerjaan updates a location owned by the caller
// @Summary Update a work location
// @Tags lokasi-pekerjaan
// @Accept json
// @Produce json
// @Param id path int true "Lokasi pekerjaan ID" minimum(1)
// @Param request body dto.UpdateLokasiPekerjaanRequest true "Updated fields"
// @Success 200 {object} dto.StructuredResponse{data=models.LokasiPekerjaan} "Location updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lokasi-pekerjaan/{id} [patch]
func (c *LokasiPekerjaanController) UpdateLokasiPekerjaan(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateLokasiPekerjaanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lokasi pekerjaan data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	lokasi, err := c.lokasiService.UpdateLokasiPekerjaan(ctx, id, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(lokasi, "Lokasi pekerjaan berhasil diperbarui"))
}

// DeleteLokasiPekerjaan removes a location owned by the caller
// @Summary Delete an own work location
// @Tags lokasi-pekerjaan
// @Produce json
// @Param id path int true "Lokasi pekerjaan ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Location deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid lokasi pekerjaan ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lokasi-pekerjaan/{id} [delete]
func (c *LokasiPekerjaanController) DeleteLokasiPekerjaan(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.lokasiService.DeleteLokasiPekerjaan(ctx, id, &userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Lokasi pekerjaan berhasil dihapus"))
}

// AdminDeleteLokasiPekerjaan removes any location regardless of owner
// @Summary Delete a work location as admin
// @Tags lokasi-pekerjaan
// @Produce json
// @Param id path int true "Lokasi pekerjaan ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Location deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid lokasi pekerjaan ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lokasi-pekerjaan/admin/{id} [delete]
func (c *LokasiPekerjaanController) AdminDeleteLokasiPekerjaan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.lokasiService.DeleteLokasiPekerjaan(ctx, id, nil); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Lokasi pekerjaan berhasil dihapus"))
}
