// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderai/internal/http/handlers"
	"wanderai/internal/http/middleware"
	"wanderai/internal/modules/chat"
	"wanderai/internal/modules/quota"
	"wanderai/internal/modules/transcript"
)

type ServerDeps struct {
	Chat       *chat.Service
	Registry   *chat.Registry
	Quota      *quota.Service
	Transcript *transcript.Service
}

type Server struct {
	chatHandler    *handlers.ChatHandler
	sessionHandler *handlers.SessionHandler
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		chatHandler:    handlers.NewChatHandler(deps.Chat, deps.Registry, deps.Quota, deps.Transcript),
		sessionHandler: handlers.NewSessionHandler(deps.Registry, deps.Transcript),
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), middleware.Auth())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/chat", s.chatHandler.Turn)
	api.GET("/sessions/:id", s.sessionHandler.Get)

	return r
}
