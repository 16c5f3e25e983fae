package handler

import (
	"context"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/memory"
	"legalbridge-be/internal/service"
	internalWS "legalbridge-be/internal/websocket"
	"legalbridge-be/pkg/events"
	pktNats "legalbridge-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// EventHandler owns the session websocket and the NATS-to-hub bridge.
type EventHandler struct {
	notifications service.INotificationService
	subscriber    *pktNats.Subscriber
	hub           *internalWS.Hub
	sessions      *memory.SessionCache
	jwtSecret     string
	logger        logger.ILogger
}

func NewEventHandler(
	notifications service.INotificationService,
	subscriber *pktNats.Subscriber,
	hub *internalWS.Hub,
	sessions *memory.SessionCache,
	jwtSecret string,
	log logger.ILogger,
) *EventHandler {
	return &EventHandler{
		notifications: notifications,
		subscriber:    subscriber,
		hub:           hub,
		sessions:      sessions,
		jwtSecret:     jwtSecret,
		logger:        log,
	}
}

// ServeWs upgrades an authenticated request to the session event socket.
func (h *EventHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the token may
	// arrive as a query param instead.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return serverutils.NewSessionAbsentError()
	}

	claims, err := serverutils.ParseAccessToken(h.jwtSecret, tokenStr)
	if err != nil {
		return err
	}

	// Same gate as HTTP: the token must resolve to a live cached session.
	session, found := h.sessions.Get(claims.TokenID)
	if !found {
		return serverutils.NewSessionAbsentError()
	}
	userID := session.UserID

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("EventHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("EventHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// StartEventFanout bridges durable NATS events into the hub and the
// notification store. Must be called once at startup.
func (h *EventHandler) StartEventFanout() error {
	if h.subscriber == nil {
		h.logger.Warn("EventHandler", "NATS subscriber not configured, event fan-out disabled", nil)
		return nil
	}

	return h.subscriber.Subscribe("events.>", "legalbridge-fanout", func(ctx context.Context, event events.Event) error {
		notification, err := h.notifications.HandleEvent(ctx, event)
		if err != nil {
			return err
		}

		payload := event.Payload()
		userIDStr, _ := payload["user_id"].(string)
		userID, parseErr := uuid.Parse(userIDStr)
		if parseErr != nil {
			// No addressable target; nothing to fan out.
			return nil
		}

		if notification != nil {
			h.hub.Send(userID, "notification", dto.NotificationResponse{
				Id:        notification.Id,
				Type:      notification.Type,
				Title:     notification.Title,
				Body:      notification.Body,
				Read:      notification.Read,
				CreatedAt: notification.CreatedAt,
			})
		} else {
			h.hub.Send(userID, event.EventType(), payload)
		}
		return nil
	})
}

func (h *EventHandler) GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	notifications, err := h.notifications.GetNotifications(c.UserContext(), userID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse("Notifications", notifications))
}

func (h *EventHandler) MarkAsRead(c *fiber.Ctx) error {
	userID, ok := c.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid notification id", err)
	}

	if err := h.notifications.MarkRead(c.UserContext(), userID, id); err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse[any]("Notification marked read", nil))
}

// RegisterRoutes mounts the socket and the notification endpoints.
func (h *EventHandler) RegisterRoutes(router fiber.Router, protected fiber.Handler) {
	notif := router.Group("/notifications")
	notif.Use(protected)
	notif.Get("/", h.GetNotifications)
	notif.Patch("/:id/read", h.MarkAsRead)

	// Token check happens inside ServeWs; the session socket cannot use the
	// header-based middleware.
	router.Get("/ws/session", h.ServeWs)
}
