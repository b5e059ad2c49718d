package dto

// CreateJawabanRequest submits an answer to a question: either a choice
// reference or free text.
type CreateJawabanRequest struct {
	PilihanJawabanID *int64  `json:"pilihanJawabanId"`
	JawabanTeks      *string `json:"jawaban_teks"`
}

// UpdateJawabanRequest revises an existing answer. Setting a choice
// clears the stored text and vice versa; an empty body is a no-op.
type UpdateJawabanRequest struct {
	PilihanJawabanID *int64  `json:"pilihanJawabanId"`
	JawabanTeks      *string `json:"jawaban_teks"`
}

// JawabanListFilter collects the admin response listing filters
type JawabanListFilter struct {
	TahunAkademik *string
	PertanyaanID  *int64
	Search        string
}
