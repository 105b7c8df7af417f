package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	// maxUploadSize is the maximum allowed image upload size (5 MiB).
	maxUploadSize = 5 << 20

	// imageField is the multipart form field carrying the product image.
	imageField = "imagen"
)

// allowedImageTypes defines MIME types accepted for product images.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore saves uploaded product images to a directory on local disk.
// Files get a generated uuid name and are served back statically.
type ImageStore struct {
	dir string
}

// NewImageStore creates the upload directory if needed and returns a store.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Dir returns the directory images are stored in.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save reads the image field from an already-parsed multipart request
// and writes it to disk. Returns the generated filename, or nil when
// the request carries no image. The content type is sniffed from the
// file bytes, not taken from the client headers.
func (s *ImageStore) Save(r *http.Request) (*string, error) {
	file, header, err := r.FormFile(imageField)
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return nil, errImageTooLarge
	}

	// Sniff the content type from the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniff image: %w", err)
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, errImageType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind image: %w", err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("write image file: %w", err)
	}

	return &name, nil
}

// Upload validation errors, mapped to 4xx responses by the handlers.
var (
	errImageTooLarge = fmt.Errorf("imagen demasiado grande (máximo 5 MiB)")
	errImageType     = fmt.Errorf("tipo de imagen no permitido")
)
