// README: Session inspection handler (state snapshot plus archived transcript).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderai/internal/modules/chat"
	"wanderai/internal/modules/transcript"
	"wanderai/internal/types"
)

type SessionHandler struct {
	registry   *chat.Registry
	transcript *transcript.Service
}

func NewSessionHandler(registry *chat.Registry, transcriptSvc *transcript.Service) *SessionHandler {
	return &SessionHandler{registry: registry, transcript: transcriptSvc}
}

type sessionResp struct {
	State   chat.StateSnapshot `json:"state"`
	History []transcript.Entry `json:"history,omitempty"`
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid session id")
		return
	}

	snap, err := h.registry.Peek(c.Request.Context(), types.ID(id))
	if err != nil {
		writeChatError(c, err)
		return
	}

	history, err := h.transcript.History(c.Request.Context(), id)
	if err != nil {
		writeChatError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, sessionResp{State: snap, History: history})
}
