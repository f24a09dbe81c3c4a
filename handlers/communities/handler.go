package communities

import (
	"errors"
	"net/http"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Create a community
// @Description Create a community in INACTIVE status; opening is scheduled later
// @Tags communities
// @Accept json
// @Produce json
// @Param community body models.Community true "Community information"
// @Security BearerAuth
// @Success 201 {object} models.Community
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Slug already in use"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /communities [post]
func CreateCommunity(c *gin.Context) {
	var community models.Community

	if err := c.ShouldBindJSON(&community); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var existing models.Community
	if err := db.DB.Where("slug = ?", community.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking the slug"})
		return
	}

	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok {
			community.OwnerID = id
		}
	}
	if community.Status == "" {
		community.Status = models.CommunityInactive
	}

	if err := db.DB.Create(&community).Error; err != nil {
		utils.LogError(err, "Error creating the community in CreateCommunity")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the community"})
		return
	}

	utils.LogSuccess("Community created in CreateCommunity")
	c.JSON(http.StatusCreated, community)
}

// @Summary List communities
// @Description Return all communities, newest first
// @Tags communities
// @Produce json
// @Success 200 {array} models.Community
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /communities [get]
func GetAllCommunities(c *gin.Context) {
	var communities []models.Community
	if err := db.DB.Order("created_at DESC").Find(&communities).Error; err != nil {
		utils.LogError(err, "Error fetching communities in GetAllCommunities")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching communities"})
		return
	}

	c.JSON(http.StatusOK, communities)
}

// @Summary Get a community
// @Description Return a community by slug
// @Tags communities
// @Produce json
// @Param slug path string true "Community slug"
// @Success 200 {object} models.Community
// @Failure 404 {object} map[string]string "error: Community not found"
// @Router /communities/{slug} [get]
func GetCommunityBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	c.JSON(http.StatusOK, community)
}

// @Summary Update a community
// @Description Update name, description, status or opening date. An ACTIVE community can never go back to PRE_REGISTRATION.
// @Tags communities
// @Accept json
// @Produce json
// @Param slug path string true "Community slug"
// @Param community body models.CommunityUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Community
// @Failure 400 {object} map[string]string "error: Invalid lifecycle transition"
// @Failure 404 {object} map[string]string "error: Community not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /communities/{slug} [put]
func UpdateCommunity(c *gin.Context) {
	slug := c.Param("slug")

	var input models.CommunityUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.OpeningDate != nil {
		updates["opening_date"] = input.OpeningDate
	}
	if input.Status != nil {
		// Opening is one-way: once ACTIVE, a community never returns to
		// pre-registration.
		if community.Status == models.CommunityActive && *input.Status == models.CommunityPreRegistration {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An active community cannot go back to pre-registration"})
			return
		}
		updates["status"] = *input.Status
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&community).Updates(updates).Error; err != nil {
			utils.LogError(err, "Error updating the community in UpdateCommunity")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the community"})
			return
		}
	}

	c.JSON(http.StatusOK, community)
}
