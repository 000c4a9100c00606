package handler

import (
	"net/http"

	"github.com/wyllersu/lifecyle-asset-insight/internal/apierror"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"
	"github.com/wyllersu/lifecyle-asset-insight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationsHandler struct{ svc service.NotificationService }

func NewNotificationsHandler(svc service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

func (h *NotificationsHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	unreadOnly := c.Query("unread") == "true"
	resp, err := h.svc.List(c.Request.Context(), claims.UserUUID(), unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list notifications"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.MarkRead(c.Request.Context(), claims.UserUUID(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("notification not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
