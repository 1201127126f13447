// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderai/internal/modules/chat"
	"wanderai/internal/modules/quota"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID accepts UUID-shaped identifiers (hex plus dashes, max 36 chars).
func isValidID(v string) bool {
	if len(v) == 0 || len(v) > 36 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == '-' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeChatError(c *gin.Context, err error) {
	var ierr *chat.InvariantError
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, quota.ErrQuotaExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &ierr):
		// Corrupted session state is a defect, never papered over.
		writeError(c, http.StatusInternalServerError, "session state corrupted")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
