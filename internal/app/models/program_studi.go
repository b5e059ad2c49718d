package models

// ProgramStudi represents a study program belonging to a faculty
type ProgramStudi struct {
	ID           int64  `json:"id"`
	FakultasID   int64  `json:"fakultasId"`
	Name         string `json:"name"`
	FakultasName string `json:"fakultasName,omitempty"` // joined column, no db mapping
}
