package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
)

// BiodataController handles alumni profile operations
type BiodataController struct {
	biodataService services.BiodataService
}

// NewBiodataController creates a new BiodataController
func NewBiodataController(biodataService services.BiodataService) *BiodataController {
	return &BiodataController{
		biodataService: biodataService,
	}
}

// biodataResponse wraps the profile with a resolvable photo URL
type biodataResponse struct {
	*models.Biodata
	FotoURL *string `json:"fotoUrl,omitempty"`
}

func (c *BiodataController) toResponse(biodata *models.Biodata) biodataResponse {
	return biodataResponse{
		Biodata: biodata,
		FotoURL: c.biodataService.PhotoURL(biodata),
	}
}

// CreateBiodata creates the caller's profile from a multipart form
// @Summary Create own biodata
// @Description Creates the caller's alumni profile. The photo file is required
// @Tags biodata
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Profile photo"
// @Param tempatLahir formData string false "Place of birth"
// @Param tanggalLahir formData string false "Date of birth (YYYY-MM-DD)"
// @Param alamat formData string false "Address"
// @Param telepon formData string false "Phone number"
// @Param jenisKelamin formData string false "Gender (L or P)"
// @Param namaGelar formData string false "Name with academic title"
// @Param ipk formData string false "GPA"
// @Param angkatan formData string false "Enrollment year"
// @Success 201 {object} dto.StructuredResponse "Biodata created"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or missing photo"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Biodata already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /biodata/create [post]
func (c *BiodataController) CreateBiodata(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBiodataRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid biodata")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Absent file is reported by the service as a validation error
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	biodata, err := c.biodataService.CreateBiodata(ctx, userID, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(c.toResponse(biodata), "Biodata berhasil dibuat"))
}

// GetMyBiodata retrieves the caller's profile
// @Summary Get own biodata
// @Tags biodata
// @Produce json
// @Success 200 {object} dto.StructuredResponse "Biodata retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Biodata not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /biodata/me [get]
func (c *BiodataController) GetMyBiodata(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	biodata, err := c.biodataService.GetBiodataByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(c.toResponse(biodata), "Data biodata berhasil diambil"))
}

// UpdateMyBiodata updates the caller's profile from a multipart form
// @Summary Update own biodata
// @Description Updates profile fields. A new photo replaces and removes the old one
// @Tags biodata
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Replacement photo"
// @Param tempatLahir formData string false "Place of birth"
// @Param tanggalLahir formData string false "Date of birth (YYYY-MM-DD)"
// @Param alamat formData string false "Address"
// @Param telepon formData string false "Phone number"
// @Param jenisKelamin formData string false "Gender (L or P)"
// @Param namaGelar formData string false "Name with academic title"
// @Param ipk formData string false "GPA"
// @Param angkatan formData string false "Enrollment year"
// @Success 200 {object} dto.StructuredResponse "Biodata updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Biodata not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /biodata/update [patch]
func (c *BiodataController) UpdateMyBiodata(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBiodataRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid biodata")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	biodata, err := c.biodataService.UpdateBiodata(ctx, userID, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(c.toResponse(biodata), "Biodata berhasil diperbarui"))
}

// ListBiodata retrieves profiles with filters and pagination
// @Summary List biodata
// @Tags biodata
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Param fakultasId query int false "Fakultas filter"
// @Param programStudiId query int false "Program studi filter"
// @Param jenisKelamin query string false "Gender filter" Enums(L, P)
// @Param search query string false "Name or NPM search"
// @Success 200 {object} dto.ListResponse{data=[]dto.BiodataListRow} "Biodata retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /biodata [get]
func (c *BiodataController) ListBiodata(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	filter := dto.BiodataListFilter{
		FakultasID:     queryInt64(ctx, "fakultasId"),
		ProgramStudiID: queryInt64(ctx, "programStudiId"),
		JenisKelamin:   queryString(ctx, "jenisKelamin"),
		Search:         ctx.Query("search"),
	}

	rows, total, err := c.biodataService.ListBiodata(ctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data biodata berhasil diambil", rows, pagination))
}

// GetBiodataByID retrieves one profile
// @Summary Get biodata details
// @Tags biodata
// @Produce json
// @Param id path int true "Biodata ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Biodata retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid biodata ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Biodata not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /biodata/detail/{id} [get]
func (c *BiodataController) GetBiodataByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	biodata, err := c.biodataService.GetBiodataByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(c.toResponse(biodata), "Data biodata berhasil diambil"))
}

// DeleteBiodata removes a profile and its stored photo
// @Summary Delete biodata
// @Tags biodata
// @Produce json
// @Param id path int true "Biodata ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Biodata deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid biodata ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Biodata not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /biodata/{id} [delete]
func (c *BiodataController) DeleteBiodata(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.biodataService.DeleteBiodata(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Biodata berhasil dihapus"))
}
