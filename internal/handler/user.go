package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumgate-dev/forumgate/internal/utils"
)

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	payload, err := h.forum.GetUser(r.Context(), username)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Name     string `validate:"required" json:"name"`
		UserId   int64  `validate:"required" json:"user_id"`
		Handle   string `validate:"required" json:"handle"`
		Email    string `validate:"required" json:"email"`
		Password string `json:"password"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := h.forum.CreateUser(r.Context(), body.Name, body.UserId, body.Handle, body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusCreated, payload)
}

func (h *Handler) ChangeTrustLevel(w http.ResponseWriter, r *http.Request) {
	userId, err := parseIntParam(chi.URLParam(r, "userId"), "user id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type bodyJson struct {
		Level *int `validate:"required" json:"level"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := h.forum.ChangeTrustLevel(r.Context(), userId, *body.Level)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}
