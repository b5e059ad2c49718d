package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
)

// PilihanJawabanController handles answer choice operations
type PilihanJawabanController struct {
	pilihanService services.PilihanJawabanService
}

// NewPilihanJawabanController creates a new PilihanJawabanController
func NewPilihanJawabanController(pilihanService services.PilihanJawabanService) *PilihanJawabanController {
	return &PilihanJawabanController{
		pilihanService: pilihanService,
	}
}

// CreatePilihanJawaban attaches a choice to a question
// @Summary Create a pilihan jawaban
// @Tags pilihan-jawaban
// @Accept json
// @Produce json
// @Param request body dto.CreatePilihanJawabanRequest true "Choice information"
// @Success 201 {object} dto.StructuredResponse{data=models.PilihanJawaban} "Choice created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Pertanyaan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pilihan-jawaban/create [post]
func (c *PilihanJawabanController) CreatePilihanJawaban(ctx *gin.Context) {
	var req dto.CreatePilihanJawabanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid pilihan jawaban data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	pilihan, err := c.pilihanService.CreatePilihanJawaban(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(pilihan, "Pilihan jawaban berhasil dibuat"))
}

// GetPilihanJawabanByPertanyaan lists the choices of one question
// @Summary List choices of a pertanyaan
// @Tags pilihan-jawaban
// @Produce json
// @Param pertanyaan_id query int true "Pertanyaan ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse{data=[]models.PilihanJawaban} "Choices retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid pertanyaan_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pilihan-jawaban [get]
func (c *PilihanJawabanController) GetPilihanJawabanByPertanyaan(ctx *gin.Context) {
	pertanyaanID, err := strconv.ParseInt(ctx.Query("pertanyaan_id"), 10, 64)
	if err != nil || pertanyaanID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Query parameter pertanyaan_id is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	choices, err := c.pilihanService.GetPilihanJawabanByPertanyaanID(ctx, pertanyaanID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(choices, "Data pilihan jawaban berhasil diambil"))
}

// UpdatePilihanJawaban renames a choice
// @Summary Update a pilihan jawaban
// @Tags pilihan-jawaban
// @Accept json
// @Produce json
// @Param id path int true "Pilihan jawaban ID" minimum(1)
// @Param request body dto.UpdatePilihanJawabanRequest true "Updated choice name"
// @Success 200 {object} dto.StructuredResponse{data=models.PilihanJawaban} "Choice updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Choice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pilihan-jawaban/{id} [patch]
func (c *PilihanJawabanController) UpdatePilihanJawaban(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePilihanJawabanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid pilihan jawaban data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	pilihan, err := c.pilihanService.UpdatePilihanJawaban(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(pilihan, "Pilihan jawaban berhasil diperbarui"))
}

// DeletePilihanJawaban removes a choice
// @Summary Delete a pilihan jawaban
// @Tags pilihan-jawaban
// @Produce json
// @Param id path int true "Pilihan jawaban ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Choice deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid pilihan jawaban ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Choice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pilihan-jawaban/{id} [delete]
func (c *PilihanJawabanController) DeletePilihanJawaban(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.pilihanService.DeletePilihanJawaban(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Pilihan jawaban berhasil dihapus"))
}
