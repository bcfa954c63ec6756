package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumgate-dev/forumgate/internal/utils"
)

func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	payload, err := h.forum.GetTopic(r.Context(), username, topicId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type bodyJson struct {
		Username string `validate:"required" json:"username"`
		Title    string `validate:"required" json:"title"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := h.forum.UpdateTopic(r.Context(), body.Username, topicId, body.Title)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	if err := h.forum.DeleteTopic(r.Context(), username, topicId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GrantAccess invites a user into a topic's private thread. The optional
// invitee names the account performing the invitation; it defaults to the
// system identity.
func (h *Handler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type bodyJson struct {
		Username string `validate:"required" json:"username"`
		Invitee  string `json:"invitee"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := h.forum.GrantAccess(r.Context(), body.Username, topicId, body.Invitee)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) RemoveAccess(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := chi.URLParam(r, "username")

	payload, err := h.forum.RemoveAccess(r.Context(), username, topicId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

// MarkTopicPostsRead records read receipts for the given posts as the given
// user.
func (h *Handler) MarkTopicPostsRead(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type bodyJson struct {
		Username string  `validate:"required" json:"username"`
		PostIds  []int64 `validate:"required,min=1" json:"post_ids"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.forum.MarkTopicPostsRead(r.Context(), body.Username, topicId, body.PostIds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
