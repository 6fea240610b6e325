package handlers

import (
	"net/http"
	"strconv"

	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), middleware.GetActorID(c), unreadOnly)
	if err != nil {
		respondError(c, err, apierrors.MsgInternal)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), middleware.GetActorID(c), notificationID); err != nil {
		respondError(c, err, apierrors.MsgInternal)
		return
	}

	c.Status(http.StatusNoContent)
}
