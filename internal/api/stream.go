package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

const (
	eventStart     = "start"
	eventChunk     = "chunk"
	eventValidated = "validated"
	eventError     = "error"
)

// GenerateStream handles POST /api/v1/generate/stream
func (h *Handler) GenerateStream(req *restful.Request, resp *restful.Response) {
	var generateRequest models.GenerateRequest
	if err := req.ReadEntity(&generateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Unable to parse generate request")
		middleware.HandleJSONError(resp, err, http.StatusBadRequest)
		return
	}

	if err := validateGenerateRequest(generateRequest); err != nil {
		middleware.HandleJSONError(resp, err, http.StatusBadRequest)
		return
	}

	if !h.service.SupportsStreaming() {
		middleware.HandleJSONError(resp, middleware.ErrStreamingDisabled, http.StatusNotImplemented)
		return
	}

	writer := resp.ResponseWriter
	flusher, ok := writer.(http.Flusher)
	if !ok {
		middleware.HandleJSONError(resp, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	resp.AddHeader("Content-Type", "text/event-stream")
	resp.AddHeader("Cache-Control", "no-cache")
	resp.AddHeader("Connection", "keep-alive")
	resp.AddHeader("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)

	send := func(event SSEEvent) error {
		formatted, err := event.Format()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(writer, formatted); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	if err := send(SSEEvent{Event: eventStart, Data: StreamStartEvent{Task: generateRequest.Task}}); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write start event")
		return
	}

	result, err := h.service.GenerateStream(req.Request.Context(), generateRequest, func(chunk string) error {
		return send(SSEEvent{Event: eventChunk, Data: StreamChunkEvent{Text: chunk}})
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to stream generation")
		if sendErr := send(SSEEvent{Event: eventError, Data: StreamErrorEvent{Error: err.Error()}}); sendErr != nil {
			h.logger.Error().Err(sendErr).Msg("Failed to write error event")
		}
		return
	}

	if err := send(SSEEvent{Event: eventValidated, Data: result}); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write validated event")
	}
}
