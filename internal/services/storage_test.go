package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedImageName(t *testing.T) {
	allowed := []string{"photo.jpg", "photo.JPG", "photo.jpeg", "photo.png", "photo.webp", "photo.gif"}
	for _, name := range allowed {
		assert.True(t, IsAllowedImageName(name), name)
	}
	rejected := []string{"notes.txt", "script.js", "archive.zip", "photo", "photo.svg", ""}
	for _, name := range rejected {
		assert.False(t, IsAllowedImageName(name), name)
	}
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()
	filename, path, err := SaveUpload(dir, "gallery", "chapel.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "gallery-"))
	assert.True(t, strings.HasSuffix(filename, ".jpg"))
	assert.Equal(t, filepath.Join(dir, filename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveUploadRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	_, _, err := SaveUpload(dir, "gallery", "malware.exe", strings.NewReader("payload"))
	require.Error(t, err)
	serviceErr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, serviceErr.Status)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveUploadRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := SaveUpload(dir, "staff", "portrait.png", strings.NewReader(""))
	require.Error(t, err)
	serviceErr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, serviceErr.Status)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "empty upload must not leave a file behind")
}

func TestRemoveUploadByURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery-abc.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	RemoveUploadByURL(dir, "/uploads/gallery-abc.jpg")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Missing files and foreign URLs are ignored.
	RemoveUploadByURL(dir, "/uploads/gallery-abc.jpg")
	RemoveUploadByURL(dir, "https://example.com/image.jpg")
}

func TestRemoveUploadByURLRefusesTraversal(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "uploads")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	outside := filepath.Join(parent, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	RemoveUploadByURL(dir, "/uploads/../secret.txt")
	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the upload dir must survive")
}
