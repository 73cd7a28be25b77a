// Package rpc implements the line-framed JSON protocol the bridge speaks on
// stdio: one request object per line in, one correlated response object per
// line out.
package rpc

import (
	"encoding/json"
	"errors"

	"github.com/rios0rios0/bitbridge/application"
	"github.com/rios0rios0/bitbridge/domain"
)

// Request is one inbound frame. ID is echoed back verbatim so the caller
// can correlate responses; completions carry no ordering guarantee.
type Request struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
	Params map[string]any  `json:"params,omitempty"`
}

// Response is one outbound frame: either Data or Error is set, never both.
type Response struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Success bool            `json:"success"`
	Data    any             `json:"data,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is the failure half of a response envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error codes carried in failure envelopes.
const (
	CodeBadRequest     = "bad_request"
	CodeUnknownMethod  = "unknown_method"
	CodeInvalidParams  = "invalid_params"
	CodeRemoteAPIError = "remote_api_error"
	CodeTransportError = "transport_error"
	CodeInternalError  = "internal_error"
)

// NewResponse wraps a dispatch outcome into the protocol envelope,
// translating the error taxonomy into stable error codes.
func NewResponse(id json.RawMessage, data any, err error) Response {
	if err == nil {
		return Response{ID: id, Success: true, Data: data}
	}
	return Response{ID: id, Success: false, Error: translateError(err)}
}

func translateError(err error) *Error {
	var unknownMethod *application.UnknownMethodError
	if errors.As(err, &unknownMethod) {
		return &Error{Code: CodeUnknownMethod, Message: unknownMethod.Error()}
	}

	var invalidParams *application.InvalidParamsError
	if errors.As(err, &invalidParams) {
		return &Error{
			Code:    CodeInvalidParams,
			Message: invalidParams.Error(),
			Details: invalidParams.Violations,
		}
	}

	var remoteErr *domain.RemoteAPIError
	if errors.As(err, &remoteErr) {
		return &Error{
			Code:    CodeRemoteAPIError,
			Message: remoteErr.Error(),
			Details: map[string]any{
				"status":  remoteErr.StatusCode,
				"message": remoteErr.Message,
			},
		}
	}

	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		return &Error{Code: CodeTransportError, Message: transportErr.Error()}
	}

	return &Error{Code: CodeInternalError, Message: err.Error()}
}
