package dto

// CreateLokasiPekerjaanRequest reports a work/domicile location. Faculty
// and study program are taken from the caller's account, not the body.
type CreateLokasiPekerjaanRequest struct {
	ProvinsiID      int64   `json:"provinsi_id" binding:"required,min=1"`
	KotaID          string  `json:"kota_id" binding:"required"`
	CompanyName     *string `json:"company_name"`
	CompanyAddress  *string `json:"company_address"`
	JobTitle        *string `json:"job_title"`
	DomisiliAddress *string `json:"domisili_address"`
	Longitude       *string `json:"longitude"`
	Latitude        *string `json:"latitude"`
}

// UpdateLokasiPekerjaanRequest updates individual location fields
type UpdateLokasiPekerjaanRequest struct {
	ProvinsiID      *int64  `json:"provinsi_id" binding:"omitempty,min=1"`
	KotaID          *string `json:"kota_id"`
	CompanyName     *string `json:"company_name"`
	CompanyAddress  *string `json:"company_address"`
	JobTitle        *string `json:"job_title"`
	DomisiliAddress *string `json:"domisili_address"`
	Longitude       *string `json:"longitude"`
	Latitude        *string `json:"latitude"`
}

// LokasiPekerjaanListFilter collects the admin listing filters
type LokasiPekerjaanListFilter struct {
	UserID         *int64
	FakultasID     *int64
	ProgramStudiID *int64
	ProvinsiID     *int64
	KotaID         *string
	Search         string
}
