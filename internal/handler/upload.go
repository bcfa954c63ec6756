package handler

import (
	"io"
	"net/http"

	"github.com/forumgate-dev/forumgate/internal/utils"
	"github.com/forumgate-dev/forumgate/internal/validation"
)

// UploadImage accepts a multipart form with a "username" field and a single
// "file" part, validates size and MIME type, and streams it to the forum
// uploads endpoint.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxRequestSize := h.cfg.Public.MaxUploadSize + 1<<20 // form field overhead
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	username := r.FormValue("username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) != 1 {
		http.Error(w, "exactly one file is required", http.StatusBadRequest)
		return
	}

	pending, err := validation.ValidateUpload(files[0], h.cfg.Public.AllowedImageMimeTypes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer func() {
		if closer, ok := pending.Data.(io.Closer); ok {
			closer.Close()
		}
	}()

	payload, err := h.forum.UploadImage(r.Context(), username, pending)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusCreated, payload)
}
