package image

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/gg-motors/constant"
)

var ErrNotFound = errors.New("image not found")

// Object is an opened stored image.
type Object struct {
	Content     io.ReadSeekCloser
	Name        string
	Size        int64
	ContentType string
	ModTime     time.Time
}

// ImageRepository persists uploaded images under flat, generated names.
type ImageRepository interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	Open(ctx context.Context, name string) (*Object, error)
	Delete(ctx context.Context, name string) error
}

// imageTypes maps the raster types we serve back to their accepted
// extensions, canonical extension first. Anything else is stored without an
// extension and served as application/octet-stream.
var imageTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg", ".jpe"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
	"image/bmp":  {".bmp"},
	"image/avif": {".avif"},
	"image/tiff": {".tif", ".tiff"},
	"image/heic": {".heic"},
}

const fallbackContentType = "application/octet-stream"

// GenerateName builds "<field>-<uuid><ext>". The extension is derived from
// the validated content type; the client's lower-cased extension is kept
// only when it is one of that type's extensions.
func GenerateName(field, originalName, contentType string) string {
	return field + "-" + uuid.NewString() + ExtensionFor(contentType, originalName)
}

// ExtensionFor returns the stored extension for an image of contentType.
func ExtensionFor(contentType, originalName string) string {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	exts, ok := imageTypes[mediaType]
	if !ok {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	for _, e := range exts {
		if e == ext {
			return ext
		}
	}
	return exts[0]
}

// ContentTypeFor is the type an image is served with. Only the allow-listed
// raster extensions map to an image type.
func ContentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for mediaType, exts := range imageTypes {
		for _, e := range exts {
			if e == ext {
				return mediaType
			}
		}
	}
	return fallbackContentType
}

// URL is the server-relative address an image is served from.
func URL(name string) string {
	return constant.ImageURLPrefix + name
}

// NameFromURL reverses URL; ok is false for anything not served by us.
func NameFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, constant.ImageURLPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(url, constant.ImageURLPrefix)
	return name, ValidName(name)
}

// ValidName rejects anything that could escape the flat upload namespace.
func ValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return name == filepath.Base(name)
}
