package forum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/forumgate-dev/forumgate/internal/domain"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadImage pushes a caller-supplied file to the forum uploads endpoint as
// a composer upload, processed synchronously. The part headers carry the
// file's original name and declared MIME type unchanged.
func (c *Client) UploadImage(ctx context.Context, username string, file *domain.PendingUpload) (json.RawMessage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("type", "composer"); err != nil {
		return nil, fmt.Errorf("failed to encode upload: %w", err)
	}
	if err := writer.WriteField("synchronous", "true"); err != nil {
		return nil, fmt.Errorf("failed to encode upload: %w", err)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="files[]"; filename="%s"`, quoteEscaper.Replace(file.Filename)))
	header.Set("Content-Type", file.MimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload: %w", err)
	}
	if _, err := io.Copy(part, file.Data); err != nil {
		return nil, fmt.Errorf("failed to read upload data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	return c.do(ctx, "uploadImage", http.MethodPost, "/uploads", c.actingAs(username), nil, writer.FormDataContentType(), &body)
}
