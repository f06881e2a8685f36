package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadFile uploads a file into the given folder and returns its delivery URL.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("upload returned no public ID")
	}
	return result.SecureURL, nil
}

// DeleteFile removes a stored file by its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL returns the public delivery URL for an image.
func (s *StorageServiceImpl) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build URL: %w", err)
	}
	return url, nil
}
