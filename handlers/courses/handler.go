package courses

import (
	"errors"
	"net/http"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @Summary Create a course
// @Description Add a course to a community
// @Tags courses
// @Accept json
// @Produce json
// @Param slug path string true "Community slug"
// @Param course body models.CourseCreate true "Course information"
// @Security BearerAuth
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Community not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /communities/{slug}/courses [post]
func CreateCourse(c *gin.Context) {
	slug := c.Param("slug")

	var input models.CourseCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	course := models.Course{
		CommunityID: community.ID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	}

	if err := db.DB.Create(&course).Error; err != nil {
		utils.LogError(err, "Error creating the course in CreateCourse")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the course"})
		return
	}

	c.JSON(http.StatusCreated, course)
}

// @Summary List a community's courses
// @Description Return the published courses of a community, ordered by position
// @Tags courses
// @Produce json
// @Param slug path string true "Community slug"
// @Success 200 {array} models.Course
// @Failure 404 {object} map[string]string "error: Community not found"
// @Router /communities/{slug}/courses [get]
func GetCommunityCourses(c *gin.Context) {
	slug := c.Param("slug")

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	var courses []models.Course
	if err := db.DB.Where("community_id = ?", community.ID).Order("position ASC").Find(&courses).Error; err != nil {
		utils.LogError(err, "Error fetching courses in GetCommunityCourses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching courses"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// @Summary Get a course
// @Description Return one course by id. Freshly imported courses can lag a
// @Description moment behind the importer, so the lookup retries briefly
// @Description before answering 404.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} map[string]string "error: Invalid course ID"
// @Failure 404 {object} map[string]string "error: Course not found"
// @Router /courses/{courseId} [get]
func GetCourse(c *gin.Context) {
	courseId := c.Param("courseId")

	if _, err := uuid.Parse(courseId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var course models.Course
	err := utils.Retry(utils.DefaultRetry,
		func() error {
			return db.DB.First(&course, "id = ?", courseId).Error
		},
		func(err error) bool {
			return errors.Is(err, gorm.ErrRecordNotFound)
		})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// @Summary Update a course
// @Description Update a course's title, description, position or published flag
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body models.CourseCreate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string "error: Course not found"
// @Router /courses/{courseId} [put]
func UpdateCourse(c *gin.Context) {
	courseId := c.Param("courseId")

	if _, err := uuid.Parse(courseId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var course models.Course
	if err := db.DB.First(&course, "id = ?", courseId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var input models.CourseCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"position":    input.Position,
	}
	if err := db.DB.Model(&course).Updates(updates).Error; err != nil {
		utils.LogError(err, "Error updating the course in UpdateCourse")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the course"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// @Summary Delete a course
// @Description Remove a course from its community
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Course deleted"
// @Failure 404 {object} map[string]string "error: Course not found"
// @Router /courses/{courseId} [delete]
func DeleteCourse(c *gin.Context) {
	courseId := c.Param("courseId")

	if _, err := uuid.Parse(courseId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var course models.Course
	if err := db.DB.First(&course, "id = ?", courseId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	if err := db.DB.Delete(&course).Error; err != nil {
		utils.LogError(err, "Error deleting the course in DeleteCourse")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
