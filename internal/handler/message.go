package handler

import (
	"net/http"

	"github.com/forumgate-dev/forumgate/internal/utils"
)

// CreateMessage opens a private message thread in the forum on behalf of the
// owner.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Title      string   `validate:"required" json:"title"`
		Body       string   `validate:"required" json:"body"`
		Recipients []string `validate:"required,min=1" json:"recipients"`
		Owner      string   `validate:"required" json:"owner"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	ref, err := h.forum.CreatePrivatePost(r.Context(), body.Title, body.Body, body.Recipients, body.Owner)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ref)
}
