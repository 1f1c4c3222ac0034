package api

import (
	"encoding/json"
	"net/http"
)

// Envelope wraps every JSON body. Exactly one of Data and Error is set.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: err.Error()}})
}
