package services

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"skyzone-backend/config"

	"github.com/google/uuid"
)

var (
	ErrPathOutsideRoot = errors.New("path resolves outside the upload root")
	ErrFileNotFound    = errors.New("file not found")
)

// stagingDir holds customer uploads made before payment verification.
const stagingDir = "staging"

// ResolveUploadPath resolves a client-supplied relative path strictly under
// the configured upload root. Any path that escapes the root after cleaning
// (e.g. "../../etc/passwd") is rejected.
func ResolveUploadPath(relPath string) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	root, err := filepath.Abs(cfg.UploadDir)
	if err != nil {
		return "", err
	}

	full := filepath.Clean(filepath.Join(root, filepath.FromSlash(relPath)))

	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathOutsideRoot
	}

	return full, nil
}

// OpenUpload opens a stored file for reading by its relative path.
func OpenUpload(relPath string) (*os.File, os.FileInfo, error) {
	full, err := ResolveUploadPath(relPath)
	if err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, nil, ErrFileNotFound
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, nil, ErrFileNotFound
	}
	return f, info, nil
}

// EnsureOrderDir creates the per-order directory uploaded artwork is
// collected under.
func EnsureOrderDir(orderNumber string) error {
	full, err := ResolveUploadPath(orderNumber)
	if err != nil {
		return err
	}
	return os.MkdirAll(full, 0o755)
}

// NewStagingID returns a fresh directory key for one upload session.
func NewStagingID() string {
	return uuid.New().String()
}

// SaveStagedFile writes one uploaded file under staging/{stagingID}/ and
// returns its relative path (slash-separated, as stored on orders).
func SaveStagedFile(stagingID, filename string, src io.Reader) (string, error) {
	relPath := path.Join(stagingDir, stagingID, path.Base(filename))

	full, err := ResolveUploadPath(relPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return relPath, nil
}

// AllowedUploadExt reports whether the filename has an accepted artwork
// extension.
func AllowedUploadExt(filename string) bool {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".pdf":
		return true
	}
	return false
}

// ContentTypeFor maps a stored file's extension to its download content type.
func ContentTypeFor(relPath string) string {
	switch strings.ToLower(path.Ext(relPath)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
