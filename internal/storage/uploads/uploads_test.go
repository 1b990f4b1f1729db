package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a *multipart.FileHeader the way Fiber hands it to us.
func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("imagen", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["imagen"][0]
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, store.Dir())
}

func TestSave(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	fh := multipartFile(t, "foto.JPG", []byte("fake-jpeg-bytes"))

	publicPath, err := store.Save(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(publicPath, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(publicPath, ".jpg"), "extension should be kept, lowercased")

	onDisk := filepath.Join(store.Dir(), filepath.Base(publicPath))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-jpeg-bytes"), data)
}

func TestSave_UniqueNames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	p1, err := store.Save(multipartFile(t, "same.png", []byte("a")))
	require.NoError(t, err)
	p2, err := store.Save(multipartFile(t, "same.png", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2, "two uploads of the same filename must not collide")
}

func TestSafeExt(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"foto.jpg", ".jpg"},
		{"FOTO.PNG", ".png"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"trailingdot.", ""},
		{"weird.j%g", ""},
		{"absurdly.loooooooongext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, safeExt(tt.filename))
		})
	}
}
