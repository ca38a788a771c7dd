package ai

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestLoadImage(t *testing.T) {
	img, err := LoadImage(bytes.NewReader(pngHeader), "week.png", "", 1024)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, "week.png", img.Name)

	img, err = LoadImage(bytes.NewReader(pngHeader), "week.png", "image/x-custom", 1024)
	require.NoError(t, err)
	assert.Equal(t, "image/x-custom", img.MIMEType)
}

func TestLoadImage_Rejects(t *testing.T) {
	_, err := LoadImage(bytes.NewReader(nil), "empty.png", "image/png", 1024)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = LoadImage(bytes.NewReader([]byte("hello, plain text")), "notes.png", "image/png", 1024)
	assert.ErrorIs(t, err, ErrNotAnImage)

	big := append(append([]byte{}, pngHeader...), make([]byte, 2048)...)
	_, err = LoadImage(bytes.NewReader(big), "big.png", "image/png", 1024)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestGeminiExtractor_NoKey(t *testing.T) {
	g, err := NewGeminiExtractor(context.Background(), "", "gemini-1.5-flash", zap.NewNop())
	require.NoError(t, err)

	_, err = g.Extract(context.Background(), Image{MIMEType: "image/png", Data: pngHeader})
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.NoError(t, g.Close())
}
