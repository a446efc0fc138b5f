package image

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateName(t *testing.T) {
	name := GenerateName("images", "My Car.JPEG", "image/jpeg")
	assert.True(t, strings.HasPrefix(name, "images-"), name)
	assert.True(t, strings.HasSuffix(name, ".jpeg"), name)
	assert.NotEqual(t, name, GenerateName("images", "My Car.JPEG", "image/jpeg"))
	assert.True(t, ValidName(name))
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		original    string
		want        string
	}{
		{"matching extension kept", "image/jpeg", "car.JPEG", ".jpeg"},
		{"canonical when missing", "image/png", "car", ".png"},
		{"html name declared png", "image/png", "x.html", ".png"},
		{"svg name declared jpeg", "image/jpeg", "x.svg", ".jpg"},
		{"parameters ignored", "image/webp; q=1", "x.webp", ".webp"},
		{"svg type gets no extension", "image/svg+xml", "x.svg", ""},
		{"unknown image type", "image/x-foo", "x.foo", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionFor(tt.contentType, tt.original))
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := map[string]string{
		"images-1.jpg":  "image/jpeg",
		"images-1.JPEG": "image/jpeg",
		"images-1.png":  "image/png",
		"images-1.html": "application/octet-stream",
		"images-1.svg":  "application/octet-stream",
		"images-1":      "application/octet-stream",
	}
	for name, want := range tests {
		assert.Equal(t, want, ContentTypeFor(name), name)
	}
}

func TestNameFromURL(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"/uploads/images-1.jpg", "images-1.jpg", true},
		{"/uploads/../secret", "", false},
		{"/uploads/a/b.jpg", "", false},
		{"/uploads/.env", "", false},
		{"https://cdn.example.com/x.jpg", "", false},
		{"/uploads/", "", false},
	}
	for _, tt := range tests {
		got, ok := NameFromURL(tt.url)
		assert.Equal(t, tt.wantOK, ok, tt.url)
		if tt.wantOK {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestLocal(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "uploads")
	repo, err := NewLocalRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, "images-1.png", []byte("png-bytes"), "image/png"))

	obj, err := repo.Open(ctx, "images-1.png")
	require.NoError(t, err)
	data, err := io.ReadAll(obj.Content)
	require.NoError(t, err)
	require.NoError(t, obj.Content.Close())
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len("png-bytes")), obj.Size)

	// legacy names with an active-content extension are never typed as such
	require.NoError(t, repo.Save(ctx, "images-2.html", []byte("<script>"), "image/png"))
	legacy, err := repo.Open(ctx, "images-2.html")
	require.NoError(t, err)
	require.NoError(t, legacy.Content.Close())
	assert.Equal(t, "application/octet-stream", legacy.ContentType)
	require.NoError(t, repo.Delete(ctx, "images-2.html"))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = repo.Open(ctx, "missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Open(ctx, "../uploads/images-1.png")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "images-1.png"))
	require.NoError(t, repo.Delete(ctx, "images-1.png"))
	_, err = repo.Open(ctx, "images-1.png")
	assert.ErrorIs(t, err, ErrNotFound)
}
