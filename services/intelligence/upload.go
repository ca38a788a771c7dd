// File: services/intelligence/upload.go
package ai

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// DefaultMaxImageBytes caps uploads at 5 MiB.
const DefaultMaxImageBytes int64 = 5 << 20

var (
	ErrNoImage       = errors.New("no image uploaded")
	ErrNotAnImage    = errors.New("please upload an image file")
	ErrImageTooLarge = errors.New("image is too large")
)

// LoadImage reads at most maxBytes from r and checks the content is an image.
// The declared type is only trusted when the bytes agree it is an image.
func LoadImage(r io.Reader, name, declaredType string, maxBytes int64) (Image, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return Image{}, ErrNoImage
	}
	if int64(len(data)) > maxBytes {
		return Image{}, fmt.Errorf("%w: limit is %d MB", ErrImageTooLarge, maxBytes>>20)
	}

	sniffed := http.DetectContentType(data)
	if !strings.HasPrefix(sniffed, "image/") {
		return Image{}, ErrNotAnImage
	}

	mimeType := sniffed
	if strings.HasPrefix(declaredType, "image/") {
		mimeType = declaredType
	}
	return Image{Name: name, MIMEType: mimeType, Data: data}, nil
}

// ReadUpload opens a multipart file and validates it with LoadImage.
func ReadUpload(fh *multipart.FileHeader, maxBytes int64) (Image, error) {
	if fh == nil {
		return Image{}, ErrNoImage
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return Image{}, fmt.Errorf("%w: limit is %d MB", ErrImageTooLarge, maxBytes>>20)
	}

	f, err := fh.Open()
	if err != nil {
		return Image{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	return LoadImage(f, fh.Filename, fh.Header.Get("Content-Type"), maxBytes)
}
