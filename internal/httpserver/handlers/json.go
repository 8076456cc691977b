package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, log logger.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug("failed to write response", logger.Error(err))
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, status int, msg string, fields map[string]string) {
	writeJSON(w, log, status, errorResponse{Error: msg, Fields: fields})
}

// badRequest is returned by decodeJSON. Field is set when the problem can be
// pinned to one JSON field.
type badRequest struct {
	Field string
	Msg   string
}

func (e *badRequest) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func (e *badRequest) fields() map[string]string {
	if e.Field == "" {
		return nil
	}
	return map[string]string{e.Field: e.Msg}
}

// decodeJSON reads a single JSON object into dst. Type mismatches are
// reported per field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr):
			return &badRequest{Field: typeErr.Field, Msg: fmt.Sprintf("must be of type %s", typeErr.Type)}
		case errors.As(err, &syntaxErr):
			return &badRequest{Msg: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)}
		case errors.As(err, &maxErr):
			return &badRequest{Msg: "request body too large"}
		case errors.Is(err, io.EOF):
			return &badRequest{Msg: "request body is empty"}
		default:
			return &badRequest{Msg: "malformed JSON"}
		}
	}
	if dec.More() {
		return &badRequest{Msg: "request body must contain a single JSON object"}
	}
	return nil
}

func writeBadRequest(w http.ResponseWriter, log logger.Logger, err error) {
	var br *badRequest
	if errors.As(err, &br) {
		writeError(w, log, http.StatusBadRequest, "Invalid input", br.fields())
		return
	}
	writeError(w, log, http.StatusBadRequest, "Invalid input", nil)
}
