package liveclasses

import (
	"fmt"
	"net/http"
	"time"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Schedule a live class
// @Description Schedule a live class and allocate a video room with the provider
// @Tags live-classes
// @Accept json
// @Produce json
// @Param slug path string true "Community slug"
// @Param liveClass body models.LiveClassCreate true "Live class information"
// @Security BearerAuth
// @Success 201 {object} models.LiveClass
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Community not found"
// @Failure 500 {object} map[string]string "error: Error allocating the video room"
// @Router /communities/{slug}/live-classes [post]
func CreateLiveClass(c *gin.Context) {
	slug := c.Param("slug")

	var input models.LiveClassCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.StartsAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The class cannot start in the past"})
		return
	}

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	roomName := fmt.Sprintf("%s-%d", community.Slug, input.StartsAt.Unix())
	room, err := utils.CreateVideoRoom(roomName, input.StartsAt)
	if err != nil {
		utils.LogError(err, "Error allocating the video room in CreateLiveClass")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error allocating the video room"})
		return
	}

	liveClass := models.LiveClass{
		CommunityID: community.ID,
		Title:       input.Title,
		StartsAt:    input.StartsAt,
		DurationMin: input.DurationMin,
		RoomName:    room.Name,
		RoomURL:     room.URL,
	}

	if err := db.DB.Create(&liveClass).Error; err != nil {
		utils.LogError(err, "Error saving the live class in CreateLiveClass")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the live class"})
		return
	}

	c.JSON(http.StatusCreated, liveClass)
}

// @Summary List a community's live classes
// @Description Return the upcoming live classes of a community
// @Tags live-classes
// @Produce json
// @Param slug path string true "Community slug"
// @Success 200 {array} models.LiveClass
// @Failure 404 {object} map[string]string "error: Community not found"
// @Router /communities/{slug}/live-classes [get]
func GetCommunityLiveClasses(c *gin.Context) {
	slug := c.Param("slug")

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	var liveClasses []models.LiveClass
	if err := db.DB.Where("community_id = ? AND starts_at > ?", community.ID, time.Now()).
		Order("starts_at ASC").Find(&liveClasses).Error; err != nil {
		utils.LogError(err, "Error fetching live classes in GetCommunityLiveClasses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching live classes"})
		return
	}

	c.JSON(http.StatusOK, liveClasses)
}
