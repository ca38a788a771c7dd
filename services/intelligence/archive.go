// File: services/intelligence/archive.go
package ai

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryArchive uploads timetable photos into a per-user folder.
type CloudinaryArchive struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryArchive(cloudName, apiKey, apiSecret, folder string) (*CloudinaryArchive, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryArchive{cld: cld, folder: folder}, nil
}

// Store uploads the photo and returns its public id.
func (a *CloudinaryArchive) Store(ctx context.Context, userID string, img Image) (string, error) {
	params := uploader.UploadParams{
		Folder: a.folder + "/" + userID,
	}
	result, err := a.cld.Upload.Upload(ctx, bytes.NewReader(img.Data), params)
	if err != nil {
		return "", fmt.Errorf("failed to upload timetable image: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned")
	}
	return result.PublicID, nil
}
