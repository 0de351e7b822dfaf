package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// ResponseResource is the object returned in an error case
type ResponseResource struct {
	Message string `json:"message"`
}

// NewMessageResponse - convenience function for creating a response resource
func NewMessageResponse(message string) *ResponseResource {
	return &ResponseResource{Message: message}
}

// AjaxResponse mirrors the browser-facing response contract: every AJAX-style
// endpoint answers HTTP 200 with a success flag so the caller always gets a
// parseable body regardless of outcome.
type AjaxResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

// WriteAjaxSuccess writes a success envelope with the supplied data
func WriteAjaxSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	WriteJSONWithStatus(w, r, AjaxResponse{Success: true, Data: data}, http.StatusOK)
}

// WriteAjaxError writes a failure envelope with the supplied message. Code
// carries a machine-readable condition (e.g. no_shipping_options) where the
// caller must react differently to distinct failures.
func WriteAjaxError(w http.ResponseWriter, r *http.Request, message string, code string) {
	WriteJSONWithStatus(w, r, AjaxResponse{Success: false, Message: message, Code: code}, http.StatusOK)
}
