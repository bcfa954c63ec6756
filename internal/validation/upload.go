// Package validation checks caller uploads before anything is sent upstream.
package validation

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/forumgate-dev/forumgate/internal/domain"
)

// ValidateAndParseMultipart enforces the request size limit and parses the
// multipart form. MaxBytesReader stops reading once the limit is exceeded, so
// an oversized upload never buffers fully.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form", ErrPayloadTooLarge)
	}

	return nil
}

// ValidateUpload checks the file's MIME type against the allow list and turns
// it into a pending upload. The caller owns closing the returned reader.
func ValidateUpload(fileHeader *multipart.FileHeader, allowedMimes []string) (*domain.PendingUpload, error) {
	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, m := range allowedMimes {
		if m == mimeType {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	return &domain.PendingUpload{
		Filename: fileHeader.Filename,
		MimeType: mimeType,
		Size:     fileHeader.Size,
		Data:     file,
	}, nil
}

// DetectMimeType takes the declared Content-Type, falling back to the file
// extension when the declaration is missing or generic.
func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detected := mime.TypeByExtension(ext); detected != "" {
			mimeType = detected
		}
	}

	if mimeType == "" || mimeType == "application/octet-stream" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}
