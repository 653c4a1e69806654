package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveUploadPathTraversal(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "Plain Relative Path", path: "SKYZ-123456/front.jpg", wantErr: false},
		{name: "Dot Segment Inside Root", path: "SKYZ-123456/./front.jpg", wantErr: false},
		{name: "Classic Traversal", path: "../../etc/passwd", wantErr: true},
		{name: "Traversal After Valid Prefix", path: "SKYZ-123456/../../secret.txt", wantErr: true},
		{name: "Bare Parent", path: "..", wantErr: true},
		{name: "Deep Traversal", path: "a/b/../../../../etc/shadow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveUploadPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathOutsideRoot)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndOpenStagedFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	stagingID := NewStagingID()
	relPath, err := SaveStagedFile(stagingID, "front.jpg", strings.NewReader("jpeg bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "staging/"+stagingID+"/front.jpg", relPath)

	f, info, err := OpenUpload(relPath)
	assert.NoError(t, err)
	defer f.Close()
	assert.Equal(t, int64(len("jpeg bytes")), info.Size())
}

func TestSaveStagedFileStripsDirectories(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	// A filename carrying path segments must not escape the staging dir
	relPath, err := SaveStagedFile(NewStagingID(), "../../evil.jpg", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "staging/"))
	assert.True(t, strings.HasSuffix(relPath, "/evil.jpg"))
}

func TestOpenUploadMissingFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	_, _, err := OpenUpload("SKYZ-000000/front.jpg")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestEnsureOrderDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("UPLOAD_DIR", root)

	assert.NoError(t, EnsureOrderDir("SKYZ-123456"))

	info, err := os.Stat(filepath.Join(root, "SKYZ-123456"))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "SKYZ-123456/front.jpg", expected: "image/jpeg"},
		{path: "SKYZ-123456/front.JPEG", expected: "image/jpeg"},
		{path: "SKYZ-123456/back.png", expected: "image/png"},
		{path: "SKYZ-123456/document.pdf", expected: "application/pdf"},
		{path: "SKYZ-123456/archive.zip", expected: "application/octet-stream"},
		{path: "noextension", expected: "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ContentTypeFor(tt.path), tt.path)
	}
}

func TestAllowedUploadExt(t *testing.T) {
	assert.True(t, AllowedUploadExt("front.jpg"))
	assert.True(t, AllowedUploadExt("front.JPEG"))
	assert.True(t, AllowedUploadExt("back.png"))
	assert.True(t, AllowedUploadExt("doc.pdf"))
	assert.False(t, AllowedUploadExt("script.sh"))
	assert.False(t, AllowedUploadExt("noextension"))
}
