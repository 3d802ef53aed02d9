package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyTask          = errors.New("task is required")
	ErrEmptySchema        = errors.New("output_schema is required")
	ErrEmptyContent       = errors.New("content is required")
	ErrEmptyInput         = errors.New("input is required")
	ErrEmptyFunnelID      = errors.New("funnel_id is required")
	ErrInvalidPersonality = errors.New("unknown personality")
	ErrInvalidCategory    = errors.New("unknown state category")
	ErrNoSections         = errors.New("at least one section is required")
	ErrTooManySections    = errors.New("too many sections")
	ErrModeStoreDisabled  = errors.New("brand mode store is not configured")
	ErrStreamingDisabled  = errors.New("streaming is not supported by the configured llm provider")
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details" description:"Additional error details"`
}

func HandleError(resp *restful.Response, err error, status int) {
	if writeErr := resp.WriteHeaderAndEntity(status, newErrorResponse(err, status)); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// HandleJSONError writes the error as JSON whatever the client accepts. Routes
// that produce a non-entity type such as text/event-stream use it before the
// body starts.
func HandleJSONError(resp *restful.Response, err error, status int) {
	if writeErr := resp.WriteHeaderAndJson(status, newErrorResponse(err, status), restful.MIME_JSON); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

func newErrorResponse(err error, status int) ErrorResponse {
	return ErrorResponse{
		Error:   http.StatusText(status),
		Code:    status,
		Details: err.Error(),
	}
}
