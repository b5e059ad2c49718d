package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/middleware"
)

// WilayahController handles region master data operations
type WilayahController struct {
	wilayahService services.WilayahService
}

// NewWilayahController creates a new WilayahController
func NewWilayahController(wilayahService services.WilayahService) *WilayahController {
	return &WilayahController{
		wilayahService: wilayahService,
	}
}

// ImportProvinsi pulls provinces from the national dataset
// @Summary Import provinces
// @Description Fetches all provinces from the regional dataset and upserts them
// @Tags provinsi
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=services.WilayahImportResult} "Provinces imported"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Import failed"
// @Router /provinsi/create [post]
func (c *WilayahController) ImportProvinsi(ctx *gin.Context) {
	result, err := c.wilayahService.ImportProvinsi(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(result, "Data provinsi berhasil diimpor"))
}

// ImportKota pulls regencies from the national dataset
// @Summary Import regencies
// @Description Fetches the regencies of every stored province and upserts them
// @Tags kota
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=services.WilayahImportResult} "Regencies imported"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Import failed"
// @Router /kota/create [post]
func (c *WilayahController) ImportKota(ctx *gin.Context) {
	result, err := c.wilayahService.ImportKota(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(result, "Data kota berhasil diimpor"))
}

// GetAllProvinsi lists stored provinces
// @Summary List provinces
// @Tags provinsi
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=[]models.Provinsi} "Provinces retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /provinsi [get]
func (c *WilayahController) GetAllProvinsi(ctx *gin.Context) {
	provinsi, err := c.wilayahService.GetAllProvinsi(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(provinsi, "Data provinsi berhasil diambil"))
}

// GetKotaByProvinsi lists the regencies of one province
// @Summary List regencies of a province
// @Tags kota
// @Produce json
// @Param provinsi_id query int true "Provinsi ID" minimum(1)
// @Success 200 {object} dto.StructuredResponse{data=[]models.Kota} "Regencies retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid provinsi_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /kota [get]
func (c *WilayahController) GetKotaByProvinsi(ctx *gin.Context) {
	provinsiID, err := strconv.ParseInt(ctx.Query("provinsi_id"), 10, 64)
	if err != nil || provinsiID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Query parameter provinsi_id is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	kota, err := c.wilayahService.GetKotaByProvinsi(ctx, provinsiID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(kota, "Data kota berhasil diambil"))
}
