package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageUploader pushes billboard and product images to Cloudinary and
// hands the hosted URL back as an opaque string. A nil client means
// image hosting is not configured.
type ImageUploader struct {
	cld *cloudinary.Cloudinary
}

func NewImageUploader(cld *cloudinary.Cloudinary) *ImageUploader {
	return &ImageUploader{cld: cld}
}

func (u *ImageUploader) Enabled() bool {
	return u != nil && u.cld != nil
}

func (u *ImageUploader) Upload(ctx context.Context, file multipart.File) (string, error) {
	if !u.Enabled() {
		return "", fmt.Errorf("image hosting is not configured")
	}

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "store-admin"})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return result.SecureURL, nil
}
