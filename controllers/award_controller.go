package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/middleware"
	"github.com/vnkhanh/yeahnah-server/models"
)

type createAwardReq struct {
	Title       string `json:"title" binding:"required,min=1"`
	Description string `json:"description"`
}

// POST /api/events/:eventId/awards
func CreateAward(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req createAwardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload không hợp lệ", "details": err.Error()})
		return
	}

	award := models.Award{
		ID:          uuid.New().String(),
		EventID:     ev.ID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := config.DB.Create(&award).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo award"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"awardId": award.ID,
		"message": "Award created successfully",
	})
}

// GET /api/events/:eventId/awards — public, trang voting cần danh sách hạng mục
func ListAwards(c *gin.Context) {
	eventID := c.Param("eventId")

	var count int64
	config.DB.Model(&models.Event{}).Where("id = ?", eventID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var awards []models.Award
	if err := config.DB.
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&awards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách award"})
		return
	}

	c.JSON(http.StatusOK, awards)
}
