package ui

import (
	"encoding/json"
	"net/http"

	"triagelock/internal/errors"
)

type errorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the failure taxonomy onto HTTP status codes. Quota gets
// 402 so clients can distinguish it from plain bad requests; model-output
// failures get 422 because the request itself was fine.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeEmptyInput, errors.CodeUnknownDomain, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeQuotaExhausted:
		status = http.StatusPaymentRequired
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeJSONDecode, errors.CodeSchemaValidation:
		status = http.StatusUnprocessableEntity
	case errors.CodeTransportError:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{
		Error:  err.Error(),
		Code:   code,
		Detail: errors.GetDetail(err),
	})
}
