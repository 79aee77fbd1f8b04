package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"
)

const (
	ContentTypeWebP = "image/webp"

	// MaxDimension bounds the longest side of stored images.
	MaxDimension = 2048

	webpQuality = 80
)

var ErrUnsupportedImage = errors.New("only JPEG, PNG and WebP images are allowed")

// ToWebP normalises an uploaded image to WebP. JPEG and PNG are decoded,
// scaled down when larger than MaxDimension and re-encoded; WebP input is
// validated and stored as is.
func ToWebP(data []byte) ([]byte, error) {
	mt := mimetype.Detect(data)

	var (
		img image.Image
		err error
	)

	switch {
	case mt.Is("image/jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(data))
	case mt.Is("image/png"):
		img, err = png.Decode(bytes.NewReader(data))
	case mt.Is(ContentTypeWebP):
		if _, err := xwebp.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("decode webp: %w", err)
		}
		return data, nil
	default:
		return nil, ErrUnsupportedImage
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", mt.String(), err)
	}

	img = fit(img, MaxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, limit int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return src
	}

	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}

	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
