package models

import "time"

// Pertanyaan status values. Only active questions accept answers.
const (
	PertanyaanInactive int16 = 0
	PertanyaanActive   int16 = 1
)

// Pertanyaan is a survey question scoped to an academic year.
type Pertanyaan struct {
	ID             int64            `json:"id" db:"id"`
	Name           string           `json:"name" db:"name"`
	Slug           string           `json:"slug" db:"slug"`
	Status         int16            `json:"status" db:"status"`
	TahunAkademik  string           `json:"tahun_akademik" db:"tahun_akademik" example:"2023/2024"`
	PilihanJawaban []PilihanJawaban `json:"pilihan_jawaban,omitempty"` // relation, loaded on detail
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time        `json:"updatedAt" db:"updated_at"`
}

// PilihanJawaban is an answer choice attached to a question.
type PilihanJawaban struct {
	ID           int64     `json:"id" db:"id"`
	PertanyaanID int64     `json:"pertanyaanId" db:"pertanyaan_id"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
