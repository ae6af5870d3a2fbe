package storage

import (
	"context"
	"io"
)

// StorageService handles prescription uploads attached to bookings.
type StorageService interface {
	UploadPrescription(ctx context.Context, file io.Reader, filename string) (publicID string, url string, err error)
	DownloadURL(publicID string) (string, error)
	DeletePrescription(ctx context.Context, publicID string) error
}
