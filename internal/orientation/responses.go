package orientation

// responses.go maps workflow errors to HTTP responses.
//
// The original intake forms return short fixed Japanese messages as
// plain text, so that is what the client sees; the full error chain is
// logged server-side with the request id.

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/asia-jinzai-support/orientation-consent/internal/logger"
)

// statusForCode maps a workflow error code to an HTTP status.
func statusForCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized:
		return http.StatusForbidden
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeAssetNotFound:
		return http.StatusNotFound
	case ErrCodeUpstream:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithError writes the fixed user-facing message for a workflow
// error and logs the full error server-side.
//
// Errors that are not *WorkflowError are unexpected; they are logged
// and returned as a generic 500.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetReqID(r.Context())
	reqLogger := logger.ContextRequestLogger(r.Context())

	var wfErr *WorkflowError
	if !errors.As(err, &wfErr) {
		reqLogger.Error("BUG: unmapped error type in RespondWithError",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		http.Error(w, "内部エラーが発生しました。", http.StatusInternalServerError)
		return
	}

	statusCode := statusForCode(wfErr.Code())

	reqLogger.Warn("request failed",
		slog.String("error", wfErr.Error()),
		slog.Int("status_code", statusCode),
		slog.String("request_id", requestID),
	)

	http.Error(w, wfErr.UserMessage(), statusCode)
}
