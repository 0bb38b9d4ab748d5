// Package response
package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Meta    any               `json:"meta,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type ResponseWriter interface {
	Write(w http.ResponseWriter, status int, res *Response)
	WriteValidationError(w http.ResponseWriter, errs map[string]string)
}

type jsonWriter struct{}

func NewJSONWriter() ResponseWriter {
	return jsonWriter{}
}

func (jsonWriter) Write(w http.ResponseWriter, status int, res *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if res == nil {
		res = &Response{}
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (j jsonWriter) WriteValidationError(w http.ResponseWriter, errs map[string]string) {
	j.Write(w, http.StatusUnprocessableEntity, &Response{
		Message: "the given data was invalid",
		Errors:  errs,
	})
}
