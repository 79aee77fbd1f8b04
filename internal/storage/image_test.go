package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebPConvertsPNG(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 16, 8))
	require.NoError(t, err)
	assert.True(t, mimetype.Detect(out).Is(ContentTypeWebP))
}

func TestToWebPPassesThroughWebP(t *testing.T) {
	converted, err := ToWebP(pngBytes(t, 4, 4))
	require.NoError(t, err)

	again, err := ToWebP(converted)
	require.NoError(t, err)
	assert.Equal(t, converted, again)
}

func TestToWebPRejectsOtherTypes(t *testing.T) {
	_, err := ToWebP([]byte("%PDF-1.7 not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestFitScalesLongestSide(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4000, 1000))

	got := fit(src, MaxDimension).Bounds()
	assert.Equal(t, MaxDimension, got.Dx())
	assert.Equal(t, 512, got.Dy())

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, small, fit(small, MaxDimension))
}
