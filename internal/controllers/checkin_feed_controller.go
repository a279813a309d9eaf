package controllers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	logrus "github.com/sirupsen/logrus"

	"delivery_admin/internal/ability"
	"delivery_admin/internal/middleware"
	"delivery_admin/internal/models"
	"delivery_admin/internal/services"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all for development (restrict in production!)
	},
}

// CheckinHub fans newly recorded check-ins out to back-office monitors.
type CheckinHub struct {
	clients   map[*websocket.Conn]bool
	broadcast chan models.CheckinRecord
	mu        sync.Mutex
}

// NewCheckinHub creates a hub and starts its broadcast goroutine.
func NewCheckinHub() *CheckinHub {
	hub := &CheckinHub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan models.CheckinRecord, 100),
	}
	go hub.run()
	return hub
}

func (h *CheckinHub) run() {
	for record := range h.broadcast {
		h.mu.Lock()
		for conn := range h.clients {
			if err := conn.WriteJSON(record); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("monitor connection closed during broadcast, unregistering")
					delete(h.clients, conn)
				} else {
					logrus.WithError(err).WithField("conn_ptr", fmt.Sprintf("%p", conn)).Warn("failed to send check-in to monitor")
				}
			}
		}
		h.mu.Unlock()
	}
}

func (h *CheckinHub) RegisterClient(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("monitor registered with CheckinHub")
}

func (h *CheckinHub) UnregisterClient(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("monitor unregistered from CheckinHub")
}

// Publish queues a check-in for broadcast; a full channel drops the
// message rather than blocking the request.
func (h *CheckinHub) Publish(record models.CheckinRecord) {
	select {
	case h.broadcast <- record:
	default:
		logrus.Warn("check-in broadcast channel full, dropping message")
	}
}

// CheckinFeedController serves the live check-in websocket: monitors
// with read ability receive new check-ins, driver connections may push
// them.
type CheckinFeedController struct {
	hub      *CheckinHub
	checkins *services.CheckinService
	drivers  *services.DriverService
}

func NewCheckinFeedController(hub *CheckinHub, checkins *services.CheckinService, drivers *services.DriverService) *CheckinFeedController {
	return &CheckinFeedController{hub: hub, checkins: checkins, drivers: drivers}
}

// HandleFeed authenticates via a token query parameter (browsers cannot
// set headers on websocket dials) and dispatches by role.
func (fc *CheckinFeedController) HandleFeed(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		respond(c, http.StatusUnauthorized, "missing authentication token", nil)
		return
	}

	claims, err := middleware.ValidateToken(tokenString)
	if err != nil {
		respond(c, http.StatusUnauthorized, "invalid token", nil)
		return
	}
	if !ability.Can(claims.Role, ability.ActionRead, ability.SubjectCheckin) {
		respond(c, http.StatusForbidden, "insufficient permissions", nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("failed to upgrade websocket connection")
		return
	}
	defer conn.Close()

	if claims.Role == models.UserTypeDriver {
		fc.handleDriverFeed(conn, claims.UserID)
		return
	}
	fc.handleMonitorFeed(conn)
}

// handleMonitorFeed keeps a back-office client registered until it
// disconnects. Inbound messages from monitors are ignored.
func (fc *CheckinFeedController) handleMonitorFeed(conn *websocket.Conn) {
	fc.hub.RegisterClient(conn)
	defer fc.hub.UnregisterClient(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.Info("monitor websocket closed")
			} else {
				logrus.WithError(err).Error("error reading from monitor websocket")
			}
			return
		}
	}
}

// handleDriverFeed accepts pushed check-ins from the driver app,
// persists them through the service, and rebroadcasts.
func (fc *CheckinFeedController) handleDriverFeed(conn *websocket.Conn, userID uint) {
	driver, err := fc.drivers.FindByUserID(userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("driver websocket without driver profile")
		conn.WriteJSON(gin.H{"error": "no driver profile for this account"})
		return
	}

	logrus.WithField("driver_id", driver.ID).Info("driver check-in websocket established")

	for {
		var input services.CreateCheckinInput
		if err := conn.ReadJSON(&input); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("driver_id", driver.ID).Info("driver websocket closed")
			} else {
				logrus.WithError(err).WithField("driver_id", driver.ID).Error("error reading driver check-in")
			}
			return
		}

		// The connection owns the identity; a payload cannot check in
		// for another driver.
		input.DriverID = driver.ID

		record, err := fc.checkins.Create(input)
		if err != nil {
			logrus.WithError(err).WithField("driver_id", driver.ID).Error("failed to save pushed check-in")
			conn.WriteJSON(gin.H{"error": "failed to save check-in"})
			continue
		}

		fc.hub.Publish(*record)
		conn.WriteJSON(gin.H{"status": "saved", "id": record.ID})
	}
}
