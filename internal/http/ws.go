package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/socket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// serveWS upgrades the connection and registers it in the hub under the
// principal's notification identity. The read loop exists only to detect
// the close; the server never expects client messages.
func (h *Handler) serveWS(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	key, ok := notificationKey(principal)
	if !ok {
		c.JSON(http.StatusForbidden, errorResponse("permission denied"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.Register(key, conn)

	go func() {
		defer func() {
			h.hub.Unregister(key, conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func notificationKey(principal model.Principal) (string, bool) {
	switch {
	case principal.IsDriver():
		if principal.DriverID == nil {
			return "", false
		}
		return socket.ClientKey(string(model.UserRoleDriver), principal.DriverID.String()), true
	case principal.IsFleetCompany():
		if principal.FleetCompanyID == nil {
			return "", false
		}
		return socket.ClientKey(string(model.UserRoleFleetCompany), principal.FleetCompanyID.String()), true
	case principal.IsAdmin():
		return socket.ClientKey(string(model.UserRoleAdmin), principal.UserID.String()), true
	default:
		return "", false
	}
}
