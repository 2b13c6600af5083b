package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The game served and the page serving it share an origin; a
	// reverse proxy fronts anything else.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades the request and hands the socket to the session.
func WSHandler(log *zap.Logger, s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("ws upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()
		s.HandleConnection(conn)
	}
}
