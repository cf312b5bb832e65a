package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/middleware"
	"github.com/vnkhanh/yeahnah-server/models"
)

type createGroupReq struct {
	Name string `json:"name" binding:"required,min=1"`
}

// POST /api/events/:eventId/groups
func CreateGroup(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req createGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload không hợp lệ", "details": err.Error()})
		return
	}

	group := models.Group{
		ID:      uuid.New().String(),
		EventID: ev.ID,
		Name:    req.Name,
	}
	if err := config.DB.Create(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo group"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"groupId": group.ID,
		"message": "Group created successfully",
	})
}

// GET /api/events/:eventId/groups
func ListGroups(c *gin.Context) {
	eventID := c.Param("eventId")

	var count int64
	config.DB.Model(&models.Event{}).Where("id = ?", eventID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var groups []models.Group
	if err := config.DB.
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách group"})
		return
	}

	c.JSON(http.StatusOK, groups)
}

type deleteGroupReq struct {
	GroupID string `json:"groupId" binding:"required"`
}

// DELETE /api/events/:eventId/groups
func DeleteGroup(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req deleteGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
		return
	}

	res := config.DB.Delete(&models.Group{}, "id = ? AND event_id = ?", req.GroupID, ev.ID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xoá group thất bại"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}
