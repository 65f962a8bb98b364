package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalize_BoundsOversizeImages(t *testing.T) {
	proc := NewProcessor(85, 64)

	out, err := proc.Normalize(bytes.NewReader(encodePNG(t, 200, 100)), "image/png")
	require.NoError(t, err)

	data, err := io.ReadAll(out)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy(), "aspect ratio preserved")
}

func TestNormalize_SmallImagesKeepDimensions(t *testing.T) {
	proc := NewProcessor(85, 64)

	out, err := proc.Normalize(bytes.NewReader(encodePNG(t, 30, 20)), "image/png")
	require.NoError(t, err)

	img, _, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestNormalize_OtherContentTypesPassThrough(t *testing.T) {
	proc := NewProcessor(85, 64)

	payload := "GIF89a not really an image"
	out, err := proc.Normalize(strings.NewReader(payload), "image/gif")
	require.NoError(t, err)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestNormalize_GarbageImageFails(t *testing.T) {
	proc := NewProcessor(85, 64)

	_, err := proc.Normalize(strings.NewReader("not a png"), "image/png")
	assert.Error(t, err)
}
