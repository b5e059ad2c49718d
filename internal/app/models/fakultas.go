package models

// Fakultas represents a faculty at the university
type Fakultas struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
