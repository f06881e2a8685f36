package storage

import (
	"context"
	"fmt"
	"time"

	"pickbook/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores area, court, and payment-QR images.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a StorageService from the loaded configuration.
func NewStorageService() (StorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &StorageServiceImpl{cld: cld, cloudName: cfg.CloudinaryCloudName}, nil
}
