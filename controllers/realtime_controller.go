package controllers

import (
	"net/http"
	"time"

	"github.com/NutritionScanner/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub *services.DetectionHub
}

func NewRealtimeController(hub *services.DetectionHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// GET /ws/detections — streams detection events to the client.
func (rc *RealtimeController) DetectionsWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{Conn: conn}
	rc.Hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(cl)
			return
		}
	}
}
