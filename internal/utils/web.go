package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/forumgate-dev/forumgate/internal/errors"
	"github.com/forumgate-dev/forumgate/internal/logger"
)

// WriteErrorAndStatusCode translates service errors into HTTP responses:
// NotFound maps to 404, Conflict to 409, an UpstreamError relays the upstream
// status, ErrorWithStatusCode carries its own code, everything else is 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if stderrors.Is(err, errors.NotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if stderrors.Is(err, errors.Conflict) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	var upstream *errors.UpstreamError
	if stderrors.As(err, &upstream) {
		http.Error(w, upstream.Body, upstream.StatusCode)
		return
	}
	var withStatus *errors.ErrorWithStatusCode
	if stderrors.As(err, &withStatus) {
		http.Error(w, withStatus.Message, withStatus.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}
