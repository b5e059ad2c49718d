package models

import "time"

// Biodata is the alumni profile, at most one row per user.
// Name, NPM, fakultas and program studi are denormalized from the
// owning user at creation time.
type Biodata struct {
	ID             int64      `json:"id" db:"id"`
	UserID         int64      `json:"userId" db:"user_id"`
	FakultasID     int64      `json:"fakultasId" db:"fakultas_id"`
	ProgramStudiID int64      `json:"programStudiId" db:"program_studi_id"`
	NPM            *string    `json:"npm,omitempty" db:"npm"`
	Image          *string    `json:"image,omitempty" db:"image"`
	Name           string     `json:"name" db:"name"`
	TempatLahir    *string    `json:"tempatLahir,omitempty" db:"tempat_lahir"`
	TanggalLahir   *time.Time `json:"tanggalLahir,omitempty" db:"tanggal_lahir"`
	Alamat         *string    `json:"alamat,omitempty" db:"alamat"`
	Telepon        *string    `json:"telepon,omitempty" db:"telepon"`
	JenisKelamin   *string    `json:"jenisKelamin,omitempty" db:"jenis_kelamin"`
	NamaGelar      *string    `json:"namaGelar,omitempty" db:"nama_gelar"`
	IPK            *string    `json:"ipk,omitempty" db:"ipk"`
	Angkatan       *string    `json:"angkatan,omitempty" db:"angkatan"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}
