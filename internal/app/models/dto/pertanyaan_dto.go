package dto

// CreatePertanyaanRequest creates a survey question for an academic year
type CreatePertanyaanRequest struct {
	Name          string `json:"name" binding:"required"`
	TahunAkademik string `json:"tahun_akademik" binding:"required,tahun_akademik" example:"2023/2024"`
	Status        *bool  `json:"status"`
}

// UpdatePertanyaanRequest updates individual question fields. A new name
// regenerates the slug.
type UpdatePertanyaanRequest struct {
	Name          *string `json:"name"`
	TahunAkademik *string `json:"tahun_akademik"`
	Status        *bool   `json:"status"`
}

// CopyPertanyaanRequest copies all questions and their choices from one
// academic year to another. Copies start inactive.
type CopyPertanyaanRequest struct {
	TahunAkademikAsal   string `json:"tahunAkademikAsal" binding:"required,tahun_akademik"`
	TahunAkademikTujuan string `json:"tahunAkademikTujuan" binding:"required,tahun_akademik"`
}

// CopyPertanyaanResult summarizes a copy operation
type CopyPertanyaanResult struct {
	TahunAkademikAsal          string `json:"tahunAkademikAsal"`
	TahunAkademikTujuan        string `json:"tahunAkademikTujuan"`
	TotalPertanyaanDisalin     int    `json:"totalPertanyaanDisalin"`
	TotalPilihanJawabanDisalin int    `json:"totalPilihanJawabanDisalin"`
}

// UpdateStatusByTahunRequest toggles every question of an academic year
type UpdateStatusByTahunRequest struct {
	TahunAkademik string `json:"tahun_akademik" binding:"required,tahun_akademik"`
	Status        bool   `json:"status"`
}

// PertanyaanListFilter collects the question listing filters
type PertanyaanListFilter struct {
	TahunAkademik *string
	Status        *int16
	Search        string
}

// CreatePilihanJawabanRequest attaches a choice to a question
type CreatePilihanJawabanRequest struct {
	PertanyaanID int64  `json:"pertanyaanId" binding:"required,min=1"`
	Name         string `json:"name" binding:"required"`
}

// UpdatePilihanJawabanRequest renames a choice
type UpdatePilihanJawabanRequest struct {
	Name string `json:"name" binding:"required"`
}
