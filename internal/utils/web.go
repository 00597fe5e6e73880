package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/miniblog-dev/miniblog/internal/errors"
	"github.com/miniblog-dev/miniblog/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// WriteErrorAndStatusCode writes err as a JSON error body. Errors that carry
// a status code keep it; anything else is a 500 and the message is not leaked.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		writeError(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("unexpected error", "error", err)
	writeError(w, "Internal server error", http.StatusInternalServerError)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// DecodeValidate decodes a JSON body and checks validate tags on the target.
func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if err := validate.Struct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Required fields missing or malformed", StatusCode: http.StatusBadRequest}
	}
	return nil
}
