package services

import (
	"context"
	"fmt"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/pdf"
)

// reportJawabanReader loads the report rows of one academic year.
type reportJawabanReader interface {
	GetJawabanRowsByTahunAkademik(ctx context.Context, tahunAkademik string) ([]*models.JawabanKuesionerRow, error)
}

// JawabanReport is a rendered PDF with its download filename.
type JawabanReport struct {
	Filename string
	Content  []byte
}

// ReportService defines the interface for survey export operations
type ReportService interface {
	ExportJawabanByTahunAkademik(ctx context.Context, tahunAkademik string) (*JawabanReport, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	jawabanReader reportJawabanReader
}

// NewReportService creates a new report service instance
func NewReportService(jawabanReader reportJawabanReader) ReportService {
	return &reportServiceImpl{jawabanReader: jawabanReader}
}

// ExportJawabanByTahunAkademik renders the responses of one academic
// year as a PDF table. A year without responses is a not found error.
func (s *reportServiceImpl) ExportJawabanByTahunAkademik(ctx context.Context, tahunAkademik string) (*JawabanReport, error) {
	tahun, err := validateTahunAkademik(tahunAkademik)
	if err != nil {
		return nil, err
	}

	rows, err := s.jawabanReader.GetJawabanRowsByTahunAkademik(ctx, tahun)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrJawabanNotFound
	}

	pdfRows := make([]pdf.JawabanRow, 0, len(rows))
	for _, row := range rows {
		jawaban := "-"
		if row.PilihanJawabanName != nil && *row.PilihanJawabanName != "" {
			jawaban = *row.PilihanJawabanName
		} else if row.JawabanTeks != nil && *row.JawabanTeks != "" {
			jawaban = *row.JawabanTeks
		}
		pdfRows = append(pdfRows, pdf.JawabanRow{
			NamaAlumni: row.UserName,
			Pertanyaan: row.PertanyaanName,
			Jawaban:    jawaban,
		})
	}

	content, err := pdf.RenderJawabanReport(tahun, pdfRows)
	if err != nil {
		return nil, fmt.Errorf("error rendering jawaban report: %w", err)
	}

	return &JawabanReport{
		Filename: pdf.ReportFilename(tahun),
		Content:  content,
	}, nil
}
