package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
)

// ReportController serves survey exports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// ExportJawabanPDF renders one academic year's responses as a PDF
// @Summary Export answers as PDF
// @Description Renders the responses of an academic year as a PDF table. The year travels in the path with the slash replaced by a dash, e.g. 2023-2024
// @Tags jawaban-kuesioner
// @Produce application/pdf
// @Param tahun_akademik path string true "Academic year with dash" example("2023-2024")
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} dto.ErrorResponse "Invalid academic year"
// @Failure 404 {object} dto.ErrorResponse "Year has no responses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jawaban-kuesioner/pdf/{tahun_akademik} [get]
func (c *ReportController) ExportJawabanPDF(ctx *gin.Context) {
	// The URL form 2023-2024 maps back to the stored 2023/2024
	tahun := strings.Replace(ctx.Param("tahun_akademik"), "-", "/", 1)

	report, err := c.reportService.ExportJawabanByTahunAkademik(ctx, tahun)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+report.Filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", report.Content)
}
