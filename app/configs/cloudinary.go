package configs

import (
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

// OpenCloudinary builds the Cloudinary client from CLOUDINARY_URL.
// Image hosting is optional; without it the upload endpoint reports
// service unavailable.
func OpenCloudinary(env ENV) (*cloudinary.Cloudinary, error) {
	if env.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL environment variable not set")
	}

	cld, err := cloudinary.NewFromURL(env.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	log.Println("✅ Cloudinary client initialized.")

	return cld, nil
}
