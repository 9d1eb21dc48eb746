package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// ImageResult contains a rendered image as base64-encoded PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// Path is set when the image was also written to disk.
	Path string `json:"path,omitempty"`
}

// Encode converts img to an ImageResult. When outputPath is not empty the
// PNG is also saved there, creating parent directories as needed.
func Encode(img image.Image, outputPath string) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	res := &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}

	if outputPath != "" {
		if err := SavePNG(img, outputPath); err != nil {
			return nil, err
		}
		res.Path = outputPath
	}
	return res, nil
}

// EncodePNGBytes wraps already-encoded PNG data in an ImageResult.
func EncodePNGBytes(data []byte) (*ImageResult, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid png data: %w", err)
	}
	return &ImageResult{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}

// SavePNG writes img to path as PNG.
func SavePNG(img image.Image, path string) error {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".png") {
		return fmt.Errorf("output file must have .png extension, got %q", ext)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
