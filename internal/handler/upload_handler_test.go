package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumgate-dev/forumgate/internal/domain"
)

func multipartUpload(t *testing.T, username, filename, mimeType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("username", username))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadImageHandler(t *testing.T) {
	t.Run("streams the validated file upstream", func(t *testing.T) {
		mock := &MockForum{
			MockUploadImage: func(_ context.Context, username string, file *domain.PendingUpload) (json.RawMessage, error) {
				assert.Equal(t, "bob", username)
				assert.Equal(t, "cat.png", file.Filename)
				assert.Equal(t, "image/png", file.MimeType)
				data, err := io.ReadAll(file.Data)
				require.NoError(t, err)
				assert.Equal(t, []byte("fake png"), data)
				return json.RawMessage(`{"url": "/uploads/1.png"}`), nil
			},
		}
		router := setupTestRouter(t, mock)

		body, contentType := multipartUpload(t, "bob", "cat.png", "image/png", []byte("fake png"))
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"url": "/uploads/1.png"}`, rr.Body.String())
	})

	t.Run("disallowed mime type never reaches the forum", func(t *testing.T) {
		mock := &MockForum{
			MockUploadImage: func(_ context.Context, username string, file *domain.PendingUpload) (json.RawMessage, error) {
				t.Fatal("upstream call must not happen")
				return nil, nil
			},
		}
		router := setupTestRouter(t, mock)

		body, contentType := multipartUpload(t, "bob", "payload.html", "text/html", []byte("<html>"))
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing username", func(t *testing.T) {
		router := setupTestRouter(t, &MockForum{})

		body, contentType := multipartUpload(t, "", "cat.png", "image/png", []byte("fake png"))
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
