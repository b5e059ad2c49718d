package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
)

// JawabanController handles survey response operations
type JawabanController struct {
	jawabanService services.JawabanService
}

// NewJawabanController creates a new JawabanController
func NewJawabanController(jawabanService services.JawabanService) *JawabanController {
	return &JawabanController{
		jawabanService: jawabanService,
	}
}

// CreateJawaban submits the caller's answer to a question
// @Summary Answer a pertanyaan
// @Description Submits an answer, either a choice reference or free text. A question is answered once
// @Tags kuesioner
// @Accept json
// @Produce json
// @Param pertanyaanId path int true "Pertanyaan ID" minimum(1)
// @Param request body dto.CreateJawabanRequest true "Answer payload"
// @Success 201 {object} dto.StructuredResponse{data=models.JawabanKuesioner} "Answer submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid answer or inactive question"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Pertanyaan not found"
// @Failure 409 {object} dto.ErrorResponse "Question already answered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /kuesioner/{pertanyaanId}/jawaban [post]
func (c *JawabanController) CreateJawaban(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	pertanyaanID, ok := parseIDParam(ctx, "pertanyaanId")
	if !ok {
		return
	}

	var req dto.CreateJawabanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid jawaban data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	jawaban, err := c.jawabanService.CreateJawaban(ctx, userID, pertanyaanID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(jawaban, "Jawaban berhasil disimpan"))
}

// GetMyJawaban retrieves the caller's answer to one question
// @Summary Get own answer to a pertanyaan
// @Tags kuesioner
// @Produce json
// @Param pertanyaanId path int true "Pertanyaan ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse{data=models.JawabanKuesioner} "Answer retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /kuesioner/{pertanyaanId}/jawaban [get]
func (c *JawabanController) GetMyJawaban(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	pertanyaanID, ok := parseIDParam(ctx, "pertanyaanId")
	if !ok {
		return
	}

	jawaban, err := c.jawabanService.GetMyJawaban(ctx, userID, pertanyaanID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(jawaban, "Data jawaban berhasil diambil"))
}

// GetMyJawabanList retrieves all of the caller's answers
// @Summary List own answers
// @Tags kuesioner
// @Produce json
// @Param tahun_akademik query string false "Academic year filter" example("2023/2024")
// @Success 200 {object} dto.StructuredResponse{data=[]models.JawabanKuesioner} "Answers retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jawaban-kuesioner/me [get]
func (c *JawabanController) GetMyJawabanList(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	jawabanList, err := c.jawabanService.GetMyJawabanList(ctx, userID, queryString(ctx, "tahun_akademik"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(jawabanList, "Data jawaban berhasil diambil"))
}

// UpdateJawaban revises the caller's answer to one question
// @Summary Update own answer
// @Description Revises an answer. A new choice clears stored text and new text clears the choice
// @Tags kuesioner
// @Accept json
// @Produce json
// @Param pertanyaanId path int true "Pertanyaan ID" minimum(1)
// @Param request body dto.UpdateJawabanRequest true "Revised answer"
// @Success 200 {object} dto.StructuredResponse{data=models.JawabanKuesioner} "Answer updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid answer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /kuesioner/{pertanyaanId}/jawaban [patch]
func (c *JawabanController) UpdateJawaban(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	pertanyaanID, ok := parseIDParam(ctx, "pertanyaanId")
	if !ok {
		return
	}

	var req dto.UpdateJawabanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid jawaban data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	jawaban, err := c.jawabanService.UpdateJawaban(ctx, userID, pertanyaanID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(jawaban, "Jawaban berhasil diperbarui"))
}

// DeleteJawaban removes a response by ID
// @Summary Delete a jawaban
// @Tags kuesioner
// @Produce json
// @Param id path int true "Jawaban ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse "Answer deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid jawaban ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jawaban-kuesioner/{id} [delete]
func (c *JawabanController) DeleteJawaban(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jawabanService.DeleteJawaban(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Jawaban berhasil dihapus"))
}

// ListJawabanRows retrieves joined response rows for the admin listing
// @Summary List all answers
// @Description Retrieves responses joined with alumni, question and choice names
// @Tags kuesioner
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Param tahun_akademik query string false "Academic year filter" example("2023/2024")
// @Param pertanyaanId query int false "Question filter"
// @Param search query string false "Alumni name search"
// @Success 200 {object} dto.ListResponse{data=[]models.JawabanKuesionerRow} "Answers retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jawaban-kuesioner [get]
func (c *JawabanController) ListJawabanRows(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	filter := dto.JawabanListFilter{
		TahunAkademik: queryString(ctx, "tahun_akademik"),
		PertanyaanID:  queryInt64(ctx, "pertanyaanId"),
		Search:        ctx.Query("search"),
	}

	rows, total, err := c.jawabanService.ListJawabanRows(ctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data jawaban berhasil diambil", rows, pagination))
}
