package api

import (
	"bufio"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"entitled/models"
	"entitled/utils"
)

// NotificationHandler pushes workspace notifications to connected
// clients over SSE or WebSocket
type NotificationHandler struct {
	store       *session.Store
	subscribers map[string]chan models.Notification
	mu          sync.RWMutex
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(store *session.Store) *NotificationHandler {
	return &NotificationHandler{
		store:       store,
		subscribers: make(map[string]chan models.Notification),
	}
}

// HandleList returns the persisted workspace notifications
func (h *NotificationHandler) HandleList(client *Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notifications, err := client.GetNotifications(c.Context())
		if err != nil {
			return utils.InternalServerError("Failed to fetch notifications", err)
		}
		return c.JSON(fiber.Map{
			"notifications": notifications,
			"total":         len(notifications),
		})
	}
}

// HandleSSE streams notifications as Server-Sent Events
func (h *NotificationHandler) HandleSSE(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	if _, err := GetSessionToken(c, h.store); err != nil {
		return utils.UnauthorizedError("Invalid session", err)
	}

	subscriberID := uuid.New().String()
	messageChan := make(chan models.Notification, 10)

	h.mu.Lock()
	h.subscribers[subscriberID] = messageChan
	h.mu.Unlock()

	utils.Log.Info("SSE subscriber connected: %s", subscriberID)

	ctx := c.Context()
	ctx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() {
			h.mu.Lock()
			delete(h.subscribers, subscriberID)
			close(messageChan)
			h.mu.Unlock()

			utils.Log.Info("SSE subscriber disconnected: %s", subscriberID)
		}()

		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case notification := <-messageChan:
				data, _ := json.Marshal(notification)
				w.WriteString("data: " + string(data) + "\n\n")
				if err := w.Flush(); err != nil {
					return
				}

			case <-ticker.C:
				w.WriteString(": keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}))

	return nil
}

// HandleWebSocket pushes notifications over a WebSocket connection
func (h *NotificationHandler) HandleWebSocket(c *websocket.Conn) {
	subscriberID := uuid.New().String()
	messageChan := make(chan models.Notification, 10)

	h.mu.Lock()
	h.subscribers[subscriberID] = messageChan
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.subscribers, subscriberID)
		close(messageChan)
		h.mu.Unlock()

		c.Close()
		utils.Log.Info("WebSocket subscriber disconnected: %s", subscriberID)
	}()

	utils.Log.Info("WebSocket subscriber connected: %s", subscriberID)

	for notification := range messageChan {
		if err := c.WriteJSON(notification); err != nil {
			utils.Log.Error("Failed to send WebSocket notification: %v", err)
			break
		}
	}
}

// Broadcast sends a notification to every subscriber. Slow subscribers
// with a full channel are skipped rather than blocked on.
func (h *NotificationHandler) Broadcast(notification models.Notification) {
	notification.ID = uuid.New().String()
	notification.CreatedAt = time.Now()

	h.mu.RLock()
	defer h.mu.RUnlock()

	utils.Log.Info("Broadcasting notification: type=%s to %d subscribers", notification.Type, len(h.subscribers))

	for subscriberID, ch := range h.subscribers {
		select {
		case ch <- notification:
		default:
			utils.Log.Warn("Notification channel full for subscriber %s", subscriberID)
		}
	}
}

// NotifyEmailAction announces a triage action applied to an email
func (h *NotificationHandler) NotifyEmailAction(emailID, action, subject string) {
	h.Broadcast(models.Notification{
		Type:    "info",
		Title:   "Email updated",
		Message: subject,
		Data: map[string]interface{}{
			"email_id": emailID,
			"action":   action,
		},
	})
}

// NotifyNewEmail announces a newly arrived email
func (h *NotificationHandler) NotifyNewEmail(from, subject string) {
	h.Broadcast(models.Notification{
		Type:    "info",
		Title:   "New email received",
		Message: subject,
		Data: map[string]interface{}{
			"from": from,
		},
	})
}

// NotifyRequirementChange announces a requirement status change
func (h *NotificationHandler) NotifyRequirementChange(requirementID string, status models.RequirementStatus) {
	h.Broadcast(models.Notification{
		Type:    "success",
		Title:   "Requirement updated",
		Message: "Requirement status changed",
		Data: map[string]interface{}{
			"requirement_id": requirementID,
			"status":         string(status),
		},
	})
}
