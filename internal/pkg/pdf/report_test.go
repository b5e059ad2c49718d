package pdf

import (
	"bytes"
	"testing"
)

func TestRenderJawabanReport(t *testing.T) {
	rows := []JawabanRow{
		{NamaAlumni: "Budi Santoso", Pertanyaan: "Berapa lama waktu tunggu kerja?", Jawaban: "Kurang dari 6 bulan"},
		{NamaAlumni: "Siti Aminah", Pertanyaan: "Apakah pekerjaan sesuai bidang studi?", Jawaban: "Ya"},
	}

	data, err := RenderJawabanReport("2023/2024", rows)
	if err != nil {
		t.Fatalf("RenderJawabanReport returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF, starts with %q", data[:4])
	}
}

func TestRenderJawabanReportEmpty(t *testing.T) {
	data, err := RenderJawabanReport("2023/2024", nil)
	if err != nil {
		t.Fatalf("RenderJawabanReport returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF output for empty row set")
	}
}

func TestReportFilename(t *testing.T) {
	got := ReportFilename("2023/2024")
	want := "jawaban_kuesioner_2023-2024.pdf"
	if got != want {
		t.Errorf("ReportFilename = %q, want %q", got, want)
	}
}
