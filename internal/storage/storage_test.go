package storage

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		ext      string
		ok       bool
	}{
		{"scan.png", "png", true},
		{"scan.JPG", "jpg", true},
		{"scan.final.Jpeg", "jpeg", true},
		{"anim.gif", "gif", true},
		{"notes.txt", "txt", false},
		{"archive.png.exe", "exe", false},
		{"noextension", "", false},
		{"trailingdot.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			ext, ok := AllowedExtension(tt.filename)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestUploadStore_SaveOpenRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewUploadStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	name, err := store.Save("png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^temp[0-9a-f]{32}\.png$`), name)

	f, err := store.Open(name)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(name), "removing twice is fine")
}

func TestUploadStore_UniqueNames(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("jpg", strings.NewReader("a"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUploadStore_Open_Rejected(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir(), "sub"), 0o755))

	for _, name := range []string{"", ".", "..", "../secret.txt", `..\secret.txt`, "missing.png", "sub"} {
		t.Run(name, func(t *testing.T) {
			f, err := store.Open(name)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, f)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestUploadStore_Save_CleansUpOnError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	require.NoError(t, err)

	_, err = store.Save("png", failingReader{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
