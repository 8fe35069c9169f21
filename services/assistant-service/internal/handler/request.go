package handler

import (
	"errors"
	"net/http"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/payload"
	"github.com/vasapolrittideah/academia-bot/shared/utilities"
	"github.com/vasapolrittideah/academia-bot/shared/validator"
)

// decodeAndValidate reads the JSON body into dst and validates it. On failure
// the 400 response has already been written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validator, dst any) bool {
	if err := utilities.DecodeJSON(w, r, dst); err != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, payload.ErrorResponse{Error: "Invalid request body"})
		return false
	}

	if err := v.Struct(dst); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			utilities.WriteJSON(w, http.StatusBadRequest, payload.ErrorResponse{
				Error:  "Validation failed",
				Fields: verr.Fields,
			})
			return false
		}
		utilities.WriteJSON(w, http.StatusBadRequest, payload.ErrorResponse{Error: "Invalid request body"})
		return false
	}

	return true
}

func internalError(w http.ResponseWriter) {
	utilities.WriteJSON(w, http.StatusInternalServerError, payload.ErrorResponse{Error: "Internal server error"})
}
