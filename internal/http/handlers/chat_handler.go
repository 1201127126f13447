// README: Chat handler (quota-guarded trip-planning turns).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wanderai/internal/modules/chat"
	"wanderai/internal/modules/quota"
	"wanderai/internal/modules/transcript"
	"wanderai/internal/types"
)

type ChatHandler struct {
	chat       *chat.Service
	registry   *chat.Registry
	quota      *quota.Service
	transcript *transcript.Service
}

func NewChatHandler(chatSvc *chat.Service, registry *chat.Registry, quotaSvc *quota.Service, transcriptSvc *transcript.Service) *ChatHandler {
	return &ChatHandler{chat: chatSvc, registry: registry, quota: quotaSvc, transcript: transcriptSvc}
}

type chatTurnReq struct {
	UID       string `json:"uid"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatTurnResp struct {
	SessionID string             `json:"session_id"`
	Reply     string             `json:"reply"`
	State     chat.StateSnapshot `json:"state"`
	Reset     bool               `json:"reset,omitempty"`
	Finalized bool               `json:"finalized,omitempty"`
}

// Turn handles POST /api/chat.
func (h *ChatHandler) Turn(c *gin.Context) {
	var req chatTurnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	req.Message = strings.TrimSpace(req.Message)
	if req.UID == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing uid or message")
		return
	}
	if req.SessionID != "" && !isValidID(req.SessionID) {
		writeError(c, http.StatusBadRequest, "invalid session_id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if h.quota != nil {
		if err := h.quota.UseCredit(ctx, req.UID); err != nil {
			writeChatError(c, err)
			return
		}
	}

	id := types.ID(req.SessionID)
	if req.SessionID == "" {
		id = h.registry.Create(ctx).ID
	}

	res, err := h.registry.With(ctx, id, func(sess *chat.Session) (chat.TurnResult, error) {
		return h.chat.ProcessTurn(ctx, sess, req.Message)
	})
	if err != nil {
		writeChatError(c, err)
		return
	}

	h.transcript.Record(ctx, id.String(), "user", req.Message)
	h.transcript.Record(ctx, id.String(), "assistant", res.Response)

	writeJSON(c, http.StatusOK, chatTurnResp{
		SessionID: id.String(),
		Reply:     res.Response,
		State:     res.State,
		Reset:     res.Reset,
		Finalized: res.Finalized,
	})
}
