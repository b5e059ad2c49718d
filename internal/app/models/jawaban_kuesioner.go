package models

import "time"

// JawabanKuesioner is a user's answer to a survey question. A row holds
// either a choice reference or free text, never both. The academic year
// is denormalized from the question at creation time.
type JawabanKuesioner struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"userId" db:"user_id"`
	PertanyaanID     int64     `json:"pertanyaanId" db:"pertanyaan_id"`
	PilihanJawabanID *int64    `json:"pilihanJawabanId,omitempty" db:"pilihan_jawaban_id"`
	JawabanTeks      *string   `json:"jawaban_teks,omitempty" db:"jawaban_teks"`
	TahunAkademik    string    `json:"tahun_akademik" db:"tahun_akademik"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// JawabanKuesionerRow is a report row joined with the alumnus, question
// and choice names for the admin listing and the PDF export.
type JawabanKuesionerRow struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	UserName           string  `json:"user_name"`
	PertanyaanID       int64   `json:"pertanyaan_id"`
	PertanyaanName     string  `json:"pertanyaan_name"`
	PilihanJawabanName *string `json:"pilihan_jawaban_name,omitempty"`
	JawabanTeks        *string `json:"jawaban_teks,omitempty"`
	TahunAkademik      string  `json:"tahun_akademik"`
}
