package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Processor normalizes uploaded images before they reach storage:
// anything larger than maxDim on its longest edge is scaled down and
// JPEGs are re-encoded at the configured quality.
type Processor struct {
	quality int // JPEG quality (1-100)
	maxDim  int // longest edge after normalization; 0 disables scaling
}

// NewProcessor creates an image processor.
func NewProcessor(quality, maxDim int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
		maxDim:  maxDim,
	}
}

// Normalize returns the bytes to store for an upload. JPEG and PNG are
// decoded, bounded to maxDim and re-encoded; other content types
// (gif, webp, ...) pass through untouched.
func (p *Processor) Normalize(r io.Reader, contentType string) (io.Reader, error) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return r, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = p.bound(img)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, img)
	default:
		return bytes.NewReader(data), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return &buf, nil
}

// bound scales img down so its longest edge is at most maxDim,
// preserving aspect ratio. Smaller images are returned as-is.
func (p *Processor) bound(img image.Image) image.Image {
	if p.maxDim <= 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= p.maxDim && h <= p.maxDim {
		return img
	}

	if w >= h {
		h = h * p.maxDim / w
		w = p.maxDim
	} else {
		w = w * p.maxDim / h
		h = p.maxDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
