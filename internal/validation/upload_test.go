package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(filename, contentType string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     4,
	}
}

func TestDetectMimeType(t *testing.T) {
	t.Run("declared type wins", func(t *testing.T) {
		mimeType, err := DetectMimeType(fileHeader("cat.png", "image/png"))
		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("falls back to extension", func(t *testing.T) {
		mimeType, err := DetectMimeType(fileHeader("cat.png", ""))
		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("generic declaration falls back to extension", func(t *testing.T) {
		mimeType, err := DetectMimeType(fileHeader("cat.gif", "application/octet-stream"))
		require.NoError(t, err)
		assert.Equal(t, "image/gif", mimeType)
	})

	t.Run("undetectable", func(t *testing.T) {
		_, err := DetectMimeType(fileHeader("mystery", ""))
		assert.Error(t, err)
	})
}

func TestValidateUploadRejectsDisallowedMime(t *testing.T) {
	_, err := ValidateUpload(fileHeader("payload.html", "text/html"), []string{"image/png", "image/jpeg"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}
