package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/john-san/rest-api/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the catalog feed is public, same as course reads
	},
}

// WSHandler upgrades subscribers onto the catalog event feed.
type WSHandler struct {
	manager *ws.Manager
}

func NewWSHandler(manager *ws.Manager) *WSHandler {
	return &WSHandler{manager: manager}
}

// HandleCatalogWS handles GET /ws
func (h *WSHandler) HandleCatalogWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("catalog feed: upgrade failed: %v", err)
		return
	}

	h.manager.Add(conn)
	go h.readLoop(conn)
}

// readLoop discards inbound frames; its job is detecting disconnects so the
// manager can drop the subscriber.
func (h *WSHandler) readLoop(conn *websocket.Conn) {
	defer func() {
		h.manager.Remove(conn)
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
