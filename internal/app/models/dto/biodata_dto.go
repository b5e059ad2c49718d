package dto

// CreateBiodataRequest is bound from the multipart form; the photo file
// is handled separately by the controller.
type CreateBiodataRequest struct {
	TempatLahir  string `form:"tempatLahir" binding:"omitempty,max=191"`
	TanggalLahir string `form:"tanggalLahir" binding:"omitempty,datetime=2006-01-02"`
	Alamat       string `form:"alamat" binding:"omitempty,max=191"`
	Telepon      string `form:"telepon" binding:"omitempty,max=191"`
	JenisKelamin string `form:"jenisKelamin" binding:"omitempty,oneof=L P"`
	NamaGelar    string `form:"namaGelar" binding:"omitempty,max=191"`
	IPK          string `form:"ipk" binding:"omitempty,max=191"`
	Angkatan     string `form:"angkatan" binding:"omitempty,max=191"`
}

// UpdateBiodataRequest updates individual fields; absent fields keep
// their stored values.
type UpdateBiodataRequest struct {
	TempatLahir  *string `form:"tempatLahir" binding:"omitempty,max=191"`
	TanggalLahir *string `form:"tanggalLahir" binding:"omitempty,datetime=2006-01-02"`
	Alamat       *string `form:"alamat" binding:"omitempty,max=191"`
	Telepon      *string `form:"telepon" binding:"omitempty,max=191"`
	JenisKelamin *string `form:"jenisKelamin" binding:"omitempty,oneof=L P"`
	NamaGelar    *string `form:"namaGelar" binding:"omitempty,max=191"`
	IPK          *string `form:"ipk" binding:"omitempty,max=191"`
	Angkatan     *string `form:"angkatan" binding:"omitempty,max=191"`
}

// BiodataListRow is a listing row joined with faculty and program names
type BiodataListRow struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	NPM              *string `json:"npm,omitempty"`
	Image            *string `json:"image,omitempty"`
	Telepon          *string `json:"telepon,omitempty"`
	JenisKelamin     *string `json:"jenisKelamin,omitempty"`
	FakultasID       int64   `json:"fakultasId"`
	ProgramStudiID   int64   `json:"programStudiId"`
	FotoURL          *string `json:"fotoUrl,omitempty"`
}

// BiodataListFilter collects the admin listing filters
type BiodataListFilter struct {
	FakultasID     *int64
	ProgramStudiID *int64
	JenisKelamin   *string
	Search         string
}
