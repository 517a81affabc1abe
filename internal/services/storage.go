package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadBytes caps multipart image uploads.
const MaxUploadBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

func IsAllowedImageName(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// SaveUpload streams an uploaded file into dir under a unique name built from
// prefix and the original extension. Returns the stored filename and path.
func SaveUpload(dir, prefix, originalName string, body io.Reader) (string, string, error) {
	if !IsAllowedImageName(originalName) {
		return "", "", ErrBadRequest("Only image files are allowed (jpeg, jpg, png, webp, gif)")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	filename := prefix + "-" + uuid.NewString() + ext
	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	size, err := io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", "", err
	}
	if size == 0 {
		_ = os.Remove(path)
		return "", "", ErrBadRequest("Uploaded file is empty")
	}
	return filename, path, nil
}

// RemoveUploadByURL deletes the file a /uploads/ URL points at, ignoring
// missing files. Paths escaping the upload directory are refused.
func RemoveUploadByURL(uploadDir, url string) {
	rel := strings.TrimPrefix(url, "/uploads/")
	if rel == "" || rel == url {
		return
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return
	}
	_ = os.Remove(filepath.Join(uploadDir, clean))
}
