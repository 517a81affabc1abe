package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

const (
	optimizeMaxSize  = 1920
	optimizeQuality  = 85
	thumbnailMaxSize = 400
	thumbnailQuality = 80
)

// Derivative describes a generated image variant on disk.
type Derivative struct {
	Path   string
	URL    string
	Width  int
	Height int
}

// ImageProcessor resizes and re-encodes uploaded images under uploadDir.
// Both operations are best-effort from the caller's point of view: an error
// degrades the stored record, it never aborts the upload.
type ImageProcessor struct {
	uploadDir string
}

func NewImageProcessor(uploadDir string) *ImageProcessor {
	return &ImageProcessor{uploadDir: uploadDir}
}

// Optimize re-encodes the file in place as JPEG, capping the longer dimension
// at 1920 pixels. Smaller images are never enlarged.
func (p *ImageProcessor) Optimize(path string) error {
	img, err := loadOriented(path)
	if err != nil {
		return WrapError(err, "optimize")
	}
	img = capSize(img, optimizeMaxSize)
	tmpPath := path + ".tmp"
	if err := saveJPEG(tmpPath, img, optimizeQuality); err != nil {
		return WrapError(err, "optimize")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return WrapError(err, "optimize")
	}
	return nil
}

// Thumbnail writes a derivative capped at 400 pixels into a thumbnails
// directory next to the source file and returns where it landed. The source
// file is left untouched.
func (p *ImageProcessor) Thumbnail(path string) (*Derivative, error) {
	img, err := loadOriented(path)
	if err != nil {
		return nil, WrapError(err, "thumbnail")
	}
	img = capSize(img, thumbnailMaxSize)

	thumbDir := filepath.Join(filepath.Dir(path), "thumbnails")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return nil, WrapError(err, "thumbnail")
	}
	thumbPath := filepath.Join(thumbDir, "thumb-"+filepath.Base(path))
	if err := saveJPEG(thumbPath, img, thumbnailQuality); err != nil {
		return nil, WrapError(err, "thumbnail")
	}

	bounds := img.Bounds()
	return &Derivative{
		Path:   thumbPath,
		URL:    p.PublicURL(thumbPath),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// PublicURL maps a file under uploadDir to its /uploads/ serving path.
func (p *ImageProcessor) PublicURL(path string) string {
	rel, err := filepath.Rel(p.uploadDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "/uploads/" + filepath.Base(path)
	}
	return "/uploads/" + filepath.ToSlash(rel)
}

func capSize(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxSize && bounds.Dy() <= maxSize {
		return img
	}
	return imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
}

func loadOriented(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isSupportedImageData(data) {
		return nil, fmt.Errorf("unsupported image format")
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return applyOrientation(img, readExifOrientation(bytes.NewReader(data))), nil
}

func saveJPEG(path string, img image.Image, quality int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = jpeg.Encode(file, img, &jpeg.Options{Quality: quality})
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

func isSupportedImageData(data []byte) bool {
	contentType := http.DetectContentType(data)
	switch {
	case strings.Contains(contentType, "jpeg"),
		strings.Contains(contentType, "png"),
		strings.Contains(contentType, "gif"),
		strings.Contains(contentType, "webp"):
		return true
	default:
		return false
	}
}

// readExifOrientation returns the EXIF orientation tag, or 1 (normal) when
// it cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
