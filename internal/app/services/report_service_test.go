package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

type fakeReportReader struct {
	rows map[string][]*models.JawabanKuesionerRow
}

func (r *fakeReportReader) GetJawabanRowsByTahunAkademik(_ context.Context, tahunAkademik string) ([]*models.JawabanKuesionerRow, error) {
	return r.rows[tahunAkademik], nil
}

func TestExportJawabanRendersPDF(t *testing.T) {
	choice := "< 3 bulan"
	teks := "Bekerja sambil kuliah"
	reader := &fakeReportReader{rows: map[string][]*models.JawabanKuesionerRow{
		"2023/2024": {
			{UserName: "Budi Santoso", PertanyaanName: "Waktu tunggu kerja?", PilihanJawabanName: &choice, TahunAkademik: "2023/2024"},
			{UserName: "Siti Aminah", PertanyaanName: "Ceritakan pengalaman Anda", JawabanTeks: &teks, TahunAkademik: "2023/2024"},
			{UserName: "Andi Wijaya", PertanyaanName: "Waktu tunggu kerja?", TahunAkademik: "2023/2024"},
		},
	}}
	svc := NewReportService(reader)

	report, err := svc.ExportJawabanByTahunAkademik(context.Background(), " 2023/2024 ")
	if err != nil {
		t.Fatalf("ExportJawabanByTahunAkademik: %v", err)
	}
	if report.Filename != "jawaban_kuesioner_2023-2024.pdf" {
		t.Errorf("Filename = %q, want the slash replaced", report.Filename)
	}
	if !bytes.HasPrefix(report.Content, []byte("%PDF")) {
		t.Error("content does not start with a PDF header")
	}
}

func TestExportJawabanEmptyYear(t *testing.T) {
	svc := NewReportService(&fakeReportReader{rows: map[string][]*models.JawabanKuesionerRow{}})

	_, err := svc.ExportJawabanByTahunAkademik(context.Background(), "2019/2020")
	if !errors.Is(err, apperrors.ErrJawabanNotFound) {
		t.Errorf("got %v, want ErrJawabanNotFound", err)
	}
}

func TestExportJawabanRejectsBadYear(t *testing.T) {
	svc := NewReportService(&fakeReportReader{})

	_, err := svc.ExportJawabanByTahunAkademik(context.Background(), "2023-2024")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}
