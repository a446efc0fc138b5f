package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/gg-motors/constant"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Errors  []cerr.FieldError `json:"errors,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes before writing the status so a value that cannot be
// encoded turns into a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, value any) {
	body, err := json.Marshal(value)
	if err != nil {
		logger.Error("[writeJSON] err json.Marshal", zap.String("error", err.Error()))
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{
			Message: constant.ErrorTypeMessage[constant.ErrInternal],
			Code:    constant.ErrorTypeCode[constant.ErrInternal],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeSuccess(w http.ResponseWriter, value any) {
	writeJSON(w, http.StatusOK, value)
}

func writeCreated(w http.ResponseWriter, value any) {
	writeJSON(w, http.StatusCreated, value)
}

// writeError answers with the CustomError carried by err; anything else is
// reported as an internal error without detail.
func writeError(w http.ResponseWriter, err error) {
	writeErrorResponse(w, err, false)
}

// writeErrorResponse adds the underlying cause to the body when debug is set.
func writeErrorResponse(w http.ResponseWriter, err error, debug bool) {
	ce, ok := cerr.As(err)
	if !ok {
		ce = cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}

	resp := ErrorResponse{
		Message: ce.Error(),
		Code:    ce.ErrorCode(),
		Errors:  ce.Details(),
	}
	if debug && ce.Cause() != nil {
		resp.Detail = ce.Cause().Error()
	}
	writeJSON(w, ce.ErrorHTTPCode(), resp)
}
