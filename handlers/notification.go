package handlers

import (
	"net/http"

	"groomly/middleware"
	"groomly/services/notification"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler returns the calling stylist's notifications.
func ListNotificationsHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := svc.ListForStylist(middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// UnreadCountHandler returns the calling stylist's unread count.
func UnreadCountHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.UnreadCount(middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"unread": count})
	}
}

// MarkNotificationReadHandler flags one notification as read.
func MarkNotificationReadHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkRead(c.Param("id"), middleware.UserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
	}
}

// MarkAllNotificationsReadHandler flags all of the caller's notifications.
func MarkAllNotificationsReadHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkAllRead(middleware.UserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "all notifications marked read"})
	}
}
