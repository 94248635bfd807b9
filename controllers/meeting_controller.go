package controllers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meetly/meeting_backend/database"
	"github.com/meetly/meeting_backend/models"
	"github.com/meetly/meeting_backend/utils"
)

type JoinMeetingInput struct {
	MeetingID string `json:"meeting_id" binding:"required" example:"1234567890"`
}

type ScheduleMeetingInput struct {
	Title         string `json:"title" binding:"required" example:"Weekly sync"`
	ScheduledTime string `json:"scheduled_time" example:"2026-09-08T10:00:00Z"`
}

var meetingIDPattern = regexp.MustCompile(`^\d{10}$`)

// StartMeeting godoc
// @Summary Start an instant meeting
// @Description Generates a meeting ID, creates an active meeting and records the host's history
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Meeting started"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/meetings [post]
func StartMeeting(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	meeting := models.Meeting{
		ID:       utils.GenerateMeetingID(),
		HostID:   user.ID,
		HostName: user.Name,
		Status:   models.MeetingStatusActive,
	}
	meeting.Title = "Meeting " + meeting.ID

	if err := database.DB.Create(&meeting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting"})
		return
	}

	history := models.MeetingHistory{
		UserID:       user.ID,
		MeetingID:    meeting.ID,
		Role:         models.RoleHost,
		MeetingTitle: meeting.Title,
		HostName:     user.Name,
	}
	if err := database.DB.Create(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record meeting history"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meeting started",
		"meeting": meeting,
	})
}

// JoinMeeting godoc
// @Summary Join a meeting by ID
// @Description Validates the meeting ID, looks the meeting up and records the participant's history
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meeting body JoinMeetingInput true "Meeting to join"
// @Success 200 {object} map[string]interface{} "Meeting details"
// @Failure 400 {object} map[string]string "Invalid meeting ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Meeting not found"
// @Router /api/meetings/join [post]
func JoinMeeting(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input JoinMeetingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// IDs are often typed with dashes (123-456-7890)
	meetingID := strings.ReplaceAll(strings.TrimSpace(input.MeetingID), "-", "")
	if !meetingIDPattern.MatchString(meetingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting ID must be 10 digits"})
		return
	}

	var meeting models.Meeting
	if err := database.DB.First(&meeting, "id = ?", meetingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found or has ended"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	history := models.MeetingHistory{
		UserID:       user.ID,
		MeetingID:    meeting.ID,
		Role:         models.RoleParticipant,
		MeetingTitle: meeting.Title,
		HostName:     meeting.HostName,
	}
	if err := database.DB.Create(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record meeting history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Joining meeting " + meeting.ID,
		"meeting": meeting,
	})
}

// ScheduleMeeting godoc
// @Summary Schedule a meeting
// @Description Creates a meeting with status scheduled for a future time
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meeting body ScheduleMeetingInput true "Meeting to schedule"
// @Success 201 {object} map[string]interface{} "Meeting scheduled"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/meetings/schedule [post]
func ScheduleMeeting(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ScheduleMeetingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	meeting := models.Meeting{
		ID:            utils.GenerateMeetingID(),
		Title:         input.Title,
		HostID:        user.ID,
		HostName:      user.Name,
		ScheduledTime: input.ScheduledTime,
		Status:        models.MeetingStatusScheduled,
	}

	if err := database.DB.Create(&meeting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule meeting"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meeting scheduled successfully",
		"meeting": meeting,
	})
}

// GetMeeting godoc
// @Summary Get meeting details
// @Description Returns a meeting by its 10-digit ID
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {object} map[string]interface{} "Meeting details"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Meeting not found"
// @Router /api/meetings/{id} [get]
func GetMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := database.DB.First(&meeting, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meeting": meeting})
}

// GetMeetingHistory godoc
// @Summary Get the user's meeting history
// @Description Returns the authenticated user's ten most recent meetings
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meeting history"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/meeting-history [get]
func GetMeetingHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var history []models.MeetingHistory
	if err := database.DB.Where("user_id = ?", userID).
		Order("joined_at DESC").
		Limit(10).
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meeting history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GetDashboard godoc
// @Summary Get dashboard data
// @Description Returns the authenticated user and their meeting statistics
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Dashboard data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/dashboard [get]
func GetDashboard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	var created, joined, scheduled int64
	database.DB.Model(&models.MeetingHistory{}).
		Where("user_id = ? AND role = ?", userID, models.RoleHost).
		Count(&created)
	database.DB.Model(&models.MeetingHistory{}).
		Where("user_id = ? AND role = ?", userID, models.RoleParticipant).
		Count(&joined)
	database.DB.Model(&models.Meeting{}).
		Where("host_id = ? AND status = ?", userID, models.MeetingStatusScheduled).
		Count(&scheduled)

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"stats": gin.H{
			"created":   created,
			"joined":    joined,
			"scheduled": scheduled,
		},
	})
}
