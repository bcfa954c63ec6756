package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumgate-dev/forumgate/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Username   string `validate:"required" json:"username"`
		Body       string `validate:"required" json:"body"`
		TopicId    int64  `validate:"required" json:"topic_id"`
		ResponseTo *int64 `json:"response_to"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := h.forum.CreatePost(r.Context(), body.Username, body.Body, body.TopicId, body.ResponseTo)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusCreated, payload)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIntParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	payload, err := h.forum.GetPost(r.Context(), username, postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

// GetPosts fetches several posts of a topic; ids come comma-separated in the
// post_ids query parameter.
func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
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
	postIds, err := parsePostIds(r.URL.Query().Get("post_ids"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := h.forum.GetPosts(r.Context(), username, topicId, postIds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIntParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type bodyJson struct {
		Username string `validate:"required" json:"username"`
		Body     string `validate:"required" json:"body"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := h.forum.UpdatePost(r.Context(), body.Username, postId, body.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIntParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	if err := h.forum.DeletePost(r.Context(), username, postId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
