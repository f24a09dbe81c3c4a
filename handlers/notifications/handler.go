package notifications

import (
	"net/http"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary List my notifications
// @Description Return the connected user's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Notification
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /notifications [get]
func GetMyNotifications(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching notifications in GetMyNotifications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// @Summary Mark a notification as read
// @Description Mark one of the connected user's notifications as read
// @Tags notifications
// @Produce json
// @Param notificationId path string true "Notification ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Notification marked as read"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Notification not found"
// @Router /notifications/{notificationId}/read [post]
func MarkNotificationRead(c *gin.Context) {
	notificationId := c.Param("notificationId")

	if _, err := uuid.Parse(notificationId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", notificationId, userID).First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if err := db.DB.Model(&notification).Update("read", true).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error marking the notification in MarkNotificationRead")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error marking the notification as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
