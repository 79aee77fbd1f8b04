package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(rawURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Name() string { return "cloudinary" }

// Upload maps key "images/<id>.webp" to folder "images" and public id
// "<id>".
func (u *CloudinaryUploader) Upload(
	ctx context.Context,
	key string,
	body io.Reader,
	_ string,
) (string, error) {

	folder, file := path.Split(key)
	publicID := strings.TrimSuffix(file, path.Ext(file))

	resp, err := u.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:   strings.TrimSuffix(folder, "/"),
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %s: %w", key, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload %s: %w", key, errors.New(resp.Error.Message))
	}

	return resp.SecureURL, nil
}
