package parser

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// detectImageFormat reads the magic bytes and returns the current image format string
func detectImageFormat(data []byte) (string, error) {
	if len(data) < 12 {
		return "", errors.New("data too short to determine format")
	}

	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "jpeg", nil
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "png", nil
	}
	if string(data[0:6]) == "GIF87a" || string(data[0:6]) == "GIF89a" {
		return "gif", nil
	}
	if string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return "webp", nil
	}

	return "", errors.New("unknown image format")
}

// DecodeImage decodes png, jpeg, gif or webp bytes into an image.
// When maxSize is positive the result is scaled down (never up) to fit
// a maxSize x maxSize box, keeping the aspect ratio.
func DecodeImage(data []byte, maxSize int) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}

	format, err := detectImageFormat(data)
	if err != nil {
		return nil, err
	}

	var img image.Image
	reader := bytes.NewReader(data)

	switch format {
	case "png":
		img, err = png.Decode(reader)
	case "jpeg":
		img, err = jpeg.Decode(reader)
	case "gif":
		img, err = gif.Decode(reader)
	case "webp":
		img, err = webp.Decode(reader)
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", format, err)
	}

	if maxSize > 0 {
		b := img.Bounds()
		if b.Dx() > maxSize || b.Dy() > maxSize {
			return imaging.Fit(img, maxSize, maxSize, imaging.Lanczos), nil
		}
	}

	return img, nil
}
