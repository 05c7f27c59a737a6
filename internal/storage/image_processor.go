package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	storageerrors "go-inova/internal/storage/errors"

	"github.com/disintegration/imaging"
)

const (
	DefaultMaxImageSize = 5 * 1024 * 1024
	DefaultMaxDimension = 800
	// DefaultMaxSourcePixels caps width*height of an upload before decoding.
	DefaultMaxSourcePixels = 25_000_000
	jpegQuality            = 85
)

// ImageProcessor validates and normalizes uploads. A zero MaxSourcePixels
// uses DefaultMaxSourcePixels.
type ImageProcessor struct {
	MaxSize         int64
	MaxDimension    int
	MaxSourcePixels int64
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxSize:         DefaultMaxImageSize,
		MaxDimension:    DefaultMaxDimension,
		MaxSourcePixels: DefaultMaxSourcePixels,
	}
}

// Validate accepts JPEG and PNG up to MaxSize bytes whose declared
// dimensions stay within MaxSourcePixels.
func (p *ImageProcessor) Validate(data []byte) error {
	if len(data) == 0 {
		return storageerrors.ErrMissingFile
	}
	if int64(len(data)) > p.MaxSize {
		return storageerrors.ErrImageTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return storageerrors.ErrUnsupportedImage.WithErr(err)
	}
	if format != "jpeg" && format != "png" {
		return storageerrors.ErrUnsupportedImage
	}

	limit := p.MaxSourcePixels
	if limit <= 0 {
		limit = DefaultMaxSourcePixels
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > limit {
		return storageerrors.ErrImageDimensionsTooLarge
	}
	return nil
}

// Normalize fits the image inside MaxDimension x MaxDimension and re-encodes
// it as JPEG. Smaller images keep their size.
func (p *ImageProcessor) Normalize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > p.MaxDimension || b.Dy() > p.MaxDimension {
		img = imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return buf.Bytes(), nil
}
