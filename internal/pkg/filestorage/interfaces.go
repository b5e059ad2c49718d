package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile saves an uploaded file and returns its accessible path
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a file from storage; deleting a missing file is
	// not an error
	DeleteFile(filePath string) error

	// FileURL returns the public URL for a stored filename
	FileURL(filename string) string
}
