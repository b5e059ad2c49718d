package models

import "time"

// LokasiPekerjaan records where an alumnus works and lives. Faculty and
// study program are denormalized from the user at creation time so the
// map/report queries survive later profile changes.
type LokasiPekerjaan struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	ProvinsiID      int64     `json:"provinsi_id" db:"provinsi_id"`
	KotaID          string    `json:"kota_id" db:"kota_id"`
	FakultasID      int64     `json:"fakultas_id" db:"fakultas_id"`
	ProgramStudiID  int64     `json:"program_studi_id" db:"program_studi_id"`
	CompanyName     *string   `json:"company_name,omitempty" db:"company_name"`
	CompanyAddress  *string   `json:"company_address,omitempty" db:"company_address"`
	JobTitle        *string   `json:"job_title,omitempty" db:"job_title"`
	DomisiliAddress *string   `json:"domisili_address,omitempty" db:"domisili_address"`
	Longitude       *string   `json:"longitude,omitempty" db:"longitude"`
	Latitude        *string   `json:"latitude,omitempty" db:"latitude"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// LokasiPekerjaanRow is a listing row joined with the user, region,
// faculty and study program names.
type LokasiPekerjaanRow struct {
	ID               int64   `json:"id"`
	CompanyName      *string `json:"company_name,omitempty"`
	CompanyAddress   *string `json:"company_address,omitempty"`
	JobTitle         *string `json:"job_title,omitempty"`
	DomisiliAddress  *string `json:"domisili_address,omitempty"`
	UserID           int64   `json:"user_id"`
	UserName         string  `json:"user_name"`
	ProvinsiID       int64   `json:"provinsi_id"`
	ProvinsiName     string  `json:"provinsi_name"`
	KotaID           string  `json:"kota_id"`
	KotaName         string  `json:"kota_name"`
	FakultasID       int64   `json:"fakultas_id"`
	FakultasName     string  `json:"fakultas_name"`
	ProgramStudiID   int64   `json:"program_studi_id"`
	ProgramStudiName string  `json:"program_studi_name"`
}
