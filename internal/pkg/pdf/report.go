package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// JawabanRow is one rendered row of the survey answers report.
type JawabanRow struct {
	NamaAlumni string
	Pertanyaan string
	Jawaban    string
}

// RenderJawabanReport renders the survey answers of one academic year
// as a PDF table and returns the document bytes.
func RenderJawabanReport(tahunAkademik string, rows []JawabanRow) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(0, 10, "Data Jawaban Kuesioner", "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "", 12)
	doc.CellFormat(0, 8, "Tahun Akademik: "+tahunAkademik, "", 1, "C", false, 0, "")
	doc.Ln(4)

	// No / Nama Alumni / Pertanyaan / Jawaban
	colWidths := []float64{12, 48, 70, 60}
	headers := []string{"No", "Nama Alumni", "Pertanyaan", "Jawaban"}

	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 10)
	for i, row := range rows {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			row.NamaAlumni,
			row.Pertanyaan,
			row.Jawaban,
		}

		// Tall rows wrap: measure the tallest cell first
		lineHeight := 6.0
		maxLines := 1
		for c := 1; c < len(cells); c++ {
			lines := doc.SplitText(cells[c], colWidths[c]-2)
			if len(lines) > maxLines {
				maxLines = len(lines)
			}
		}
		rowHeight := lineHeight * float64(maxLines)

		if doc.GetY()+rowHeight > 280 {
			doc.AddPage()
		}

		x, y := doc.GetXY()
		doc.CellFormat(colWidths[0], rowHeight, cells[0], "1", 0, "C", false, 0, "")
		for c := 1; c < len(cells); c++ {
			cx := x + sum(colWidths[:c])
			doc.Rect(cx, y, colWidths[c], rowHeight, "D")
			doc.SetXY(cx+1, y)
			doc.MultiCell(colWidths[c]-2, lineHeight, cells[c], "", "L", false)
		}
		doc.SetXY(x, y+rowHeight)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

// ReportFilename builds the download filename for one academic year,
// replacing the "/" in years like 2023/2024 so it stays a valid name.
func ReportFilename(tahunAkademik string) string {
	safe := make([]rune, 0, len(tahunAkademik))
	for _, r := range tahunAkademik {
		if r == '/' {
			r = '-'
		}
		safe = append(safe, r)
	}
	return "jawaban_kuesioner_" + string(safe) + ".pdf"
}

func sum(vals []float64) float64 {
	var total float64
	for _, v := range vals {
		total += v
	}
	return total
}
