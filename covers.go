package bookshelf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	maxCoverWidth = 400
	jpegQuality   = 80
)

// processCover decodes a cover image, downscales it to maxCoverWidth when
// wider, and re-encodes it as JPEG. The second return value reports whether
// the image actually changed size.
func processCover(data []byte) ([]byte, bool, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxCoverWidth {
		return nil, false, nil
	}

	newH := h * maxCoverWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxCoverWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), true, nil
}

func isCoverFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// ProcessCovers downscales every cover image under dir in place. Oversized
// covers are rewritten as JPEGs at the same path; files that fail to decode
// are reported and skipped.
func ProcessCovers(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading covers directory: %w", err)
	}
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isCoverFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading cover %s: %w", entry.Name(), err)
		}
		out, resized, err := processCover(data)
		if err != nil {
			log.Printf("covers: skipping %s: %v", entry.Name(), err)
			continue
		}
		if !resized {
			continue
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("writing cover %s: %w", entry.Name(), err)
		}
		processed++
	}
	log.Printf("covers: resized %d images in %s", processed, dir)
	return nil
}
