package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// FailResponse is the uniform shape of every user-visible failure.
type FailResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RespondWithJSON for successful cases.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondFail writes a fail envelope with an explicit status. Reserved for
// boundary cases that are not domain errors (the 404 catch-all route).
func RespondFail(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, FailResponse{Status: "fail", Message: message})
}

// RespondError is the single place response status codes are chosen for
// domain failures. Anything unclassified becomes a generic 500.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "An unexpected error has occurred"

	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Kind {
		case KindValidation:
			status = http.StatusBadRequest
		case KindAuth:
			status = http.StatusUnauthorized
		case KindNotFound:
			status = http.StatusNotFound
		case KindDuplicateKey:
			status = http.StatusConflict
		case KindRateLimit:
			status = http.StatusTooManyRequests
		case KindConfiguration:
			status = http.StatusInternalServerError
		}
	}

	Logger.WithFields(logrus.Fields{
		"status": status,
		"error":  err.Error(),
	}).Error(message)

	RespondFail(w, status, message)
}
