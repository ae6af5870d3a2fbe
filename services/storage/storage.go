package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"labport/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const prescriptionFolder = "prescriptions"

type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService builds the Cloudinary-backed store from app config.
func NewStorageService() (*StorageServiceImpl, error) {
	cfg := config.AppConfig
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &StorageServiceImpl{cld: cld}, nil
}

func (s *StorageServiceImpl) UploadPrescription(ctx context.Context, file io.Reader, filename string) (string, string, error) {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	publicID := uuid.New().String()
	if ext != "" {
		publicID = publicID + "_" + ext
	}

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   prescriptionFolder,
		PublicID: publicID,
	})
	if err != nil {
		return "", "", fmt.Errorf("prescription upload failed: %w", err)
	}
	return resp.PublicID, resp.SecureURL, nil
}

func (s *StorageServiceImpl) DownloadURL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve asset %s: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build URL for %s: %w", publicID, err)
	}
	return url, nil
}

func (s *StorageServiceImpl) DeletePrescription(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", publicID, err)
	}
	return nil
}
