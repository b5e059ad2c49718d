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

// MasterDataController serves the combined lookups the survey frontend
// needs: academic years and a year's questionnaire with choices.
type MasterDataController struct {
	pertanyaanService services.PertanyaanService
}

// NewMasterDataController creates a new MasterDataController
func NewMasterDataController(pertanyaanService services.PertanyaanService) *MasterDataController {
	return &MasterDataController{
		pertanyaanService: pertanyaanService,
	}
}

// GetTahunAkademikList lists the academic years that have questions
// @Summary List academic years
// @Tags master-data
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=[]string} "Years retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /master-data/tahun-akademik [get]
func (c *MasterDataController) GetTahunAkademikList(ctx *gin.Context) {
	years, err := c.pertanyaanService.GetTahunAkademikList(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(years, "Data tahun akademik berhasil diambil"))
}

// GetPertanyaanByTahun retrieves the questionnaire of one academic year
// @Summary Get a year's questionnaire
// @Description Retrieves the questions of an academic year with their choices. Defaults to active questions only
// @Tags master-data
// @Produce json
// @Param tahun_akademik query string true "Academic year" example("2023/2024")
// @Param all query bool false "Include inactive questions"
// @Success 200 {object} dto.StructuredResponse{data=[]models.Pertanyaan} "Questionnaire retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid academic year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /master-data/pertanyaan [get]
func (c *MasterDataController) GetPertanyaanByTahun(ctx *gin.Context) {
	tahun := ctx.Query("tahun_akademik")
	includeInactive, _ := strconv.ParseBool(ctx.DefaultQuery("all", "false"))

	questions, err := c.pertanyaanService.GetPertanyaanWithChoicesByTahun(ctx, tahun, !includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(questions, "Data kuesioner berhasil diambil"))
}

// GetPertanyaanActive lists the active questions across every year
// @Summary List active questions
// @Tags master-data
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(10)
// @Success 200 {object} dto.ListResponse{data=[]models.Pertanyaan} "Questions retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /master-data/pertanyaan-active [get]
func (c *MasterDataController) GetPertanyaanActive(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, perPage)

	active := models.PertanyaanActive
	filter := dto.PertanyaanListFilter{Status: &active}
	questions, total, err := c.pertanyaanService.ListPertanyaan(ctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, perPage)
	ctx.JSON(http.StatusOK, dto.NewListResponse("Data pertanyaan aktif berhasil diambil", questions, pagination))
}
