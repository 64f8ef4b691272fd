package filestorage

import "mime/multipart"

// FileStorage defines the interface for profile picture storage operations
type FileStorage interface {
	// SaveFileWithPath saves an uploaded file under the given subdirectory
	// and returns its URL path
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}
