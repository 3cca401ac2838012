package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for class-photo storage operations.
type StorageService interface {
	// UploadFile uploads a local file into destFolder, returning the
	// permanent identifier and a servable URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (publicID string, url string, err error)
	// DeleteFile removes an uploaded file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
