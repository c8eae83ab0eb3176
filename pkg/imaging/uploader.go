package imaging

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores logo images on Cloudinary and hands back hosted URLs.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func NewUploader(cloudinaryURL string) (*Uploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

// UploadLogo uploads the image (a data URI, remote URL, or local path;
// whatever Cloudinary accepts as a file source) under the store's id
// and returns the hosted secure URL.
func (u *Uploader) UploadLogo(ctx context.Context, source string, storeID string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, source, uploader.UploadParams{
		Folder:   "store-logos",
		PublicID: "logo-" + storeID,
	})
	if err != nil {
		return "", err
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL")
	}
	return resp.SecureURL, nil
}
