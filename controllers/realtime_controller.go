package controllers

import (
	"log"
	"net/http"

	"github.com/TheSubMish/nutrify-v2-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var hub *services.RealtimeHub

// InitRealtime wires the shared hub; called once from main.
func InitRealtime(h *services.RealtimeHub) {
	hub = h
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// same-origin policy is enforced by the reverse proxy in front
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ScheduleSocket keeps a calendar view subscribed to its user's
// schedule-change events.
func ScheduleSocket(c *gin.Context) {
	if hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "realtime not configured"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &services.WSClient{UserID: currentUserID(c), Conn: conn}
	hub.Register(client)

	// reader loop only detects close; clients never send application data
	go func() {
		defer hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
