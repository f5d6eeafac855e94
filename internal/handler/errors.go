package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler knows what was being
// looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err, domain.ErrValidation))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. malformed JSON or a bad path parameter).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

// errorKind groups service errors by the response they map to.
type errorKind int

const (
	kindInternal errorKind = iota
	kindNotFound
	kindConflict
	kindUnprocessable
	kindBadGateway
)

// classifyError maps a service error onto its response kind and body.
// kindInternal means the error is returned to the strict handler unchanged.
func classifyError(err error) (errorKind, gen.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSessionClosed):
		return kindNotFound, notFoundBody("registration not found")
	case errors.Is(err, domain.ErrValidation):
		return kindUnprocessable, validationBody(err)
	case errors.Is(err, domain.ErrIncompleteData):
		return kindUnprocessable, errorBody("incomplete_data", unwrapMessage(err, domain.ErrIncompleteData))
	case errors.Is(err, domain.ErrInvalidTransition):
		return kindConflict, errorBody("invalid_transition", unwrapMessage(err, domain.ErrInvalidTransition))
	case errors.Is(err, domain.ErrRevisionConflict):
		return kindConflict, errorBody("revision_conflict", unwrapMessage(err, domain.ErrRevisionConflict))
	case errors.Is(err, domain.ErrSubmissionFailed):
		return kindBadGateway, errorBody("submission_failed", unwrapMessage(err, domain.ErrSubmissionFailed))
	}
	return kindInternal, gen.ErrorResponse{}
}

// unwrapMessage extracts the human-readable part that follows sentinel in a
// wrapped error.
// e.g. "service.RegistrationService.apply: validation error: barcode is required" → "barcode is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && len(msg) > i+len(marker) {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

// StrictOptions returns the error handlers the strict server uses for
// request bodies it cannot decode and for errors returned by handlers.
func StrictOptions() gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  RequestError,
		ResponseErrorHandlerFunc: ResponseError,
	}
}

// RequestError writes the response for a body the strict server could not
// decode.
func RequestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("request_too_large",
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
	case errors.Is(err, io.EOF):
		writeJSON(w, http.StatusBadRequest, requestBody("request body is required"))
	default:
		writeJSON(w, http.StatusBadRequest, requestBody("invalid JSON body"))
	}
}

// ParamError writes the response for a path or query parameter the
// generated router could not bind.
func ParamError(w http.ResponseWriter, _ *http.Request, err error) {
	var invalid *gen.InvalidParamFormatError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, requestBody(invalid.ParamName+" has an invalid format"))
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody("invalid request parameters"))
}

// ResponseError logs an unmapped handler error and writes a generic 500.
func ResponseError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}
