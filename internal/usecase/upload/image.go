package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/metrics"
	"github.com/BruksfildServices01/flatmate-finder/internal/storage"
)

const (
	MessageNotConfigured = "Image uploads are not configured"
	MessageUnsupported   = "Only JPEG, PNG and WebP images are allowed"
)

type ImageInput struct {
	UserID string
	Data   []byte
}

type Image struct {
	uploader storage.Uploader
	metrics  *metrics.Metrics
	audit    *audit.Dispatcher
}

// NewImage builds the use case. A nil uploader makes every call fail with
// 503.
func NewImage(
	uploader storage.Uploader,
	m *metrics.Metrics,
	audit *audit.Dispatcher,
) *Image {
	return &Image{
		uploader: uploader,
		metrics:  m,
		audit:    audit,
	}
}

// Execute normalises the image to WebP, stores it under images/<uuid>.webp
// and returns the public URL.
func (uc *Image) Execute(ctx context.Context, in ImageInput) (string, error) {
	if uc.uploader == nil {
		uc.count("unconfigured")
		return "", httperr.Unavailable(MessageNotConfigured)
	}

	data, err := storage.ToWebP(in.Data)
	if errors.Is(err, storage.ErrUnsupportedImage) {
		uc.count("rejected")
		return "", httperr.BadRequest(MessageUnsupported)
	}
	if err != nil {
		uc.count("rejected")
		return "", &httperr.Error{Kind: httperr.KindBadRequest, Message: MessageUnsupported, Cause: err}
	}

	key := fmt.Sprintf("images/%s.webp", uuid.NewString())

	url, err := uc.uploader.Upload(ctx, key, bytes.NewReader(data), "image/webp")
	if err != nil {
		uc.count("failed")
		return "", fmt.Errorf("upload to %s: %w", uc.uploader.Name(), err)
	}

	uc.count("stored")
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionImageUploaded,
		Entity:   "image",
		EntityID: key,
		Metadata: map[string]any{"backend": uc.uploader.Name(), "bytes": len(data)},
	})

	return url, nil
}

func (uc *Image) count(result string) {
	if uc.metrics != nil {
		uc.metrics.UploadsTotal.WithLabelValues(result).Inc()
	}
}
