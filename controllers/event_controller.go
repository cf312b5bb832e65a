package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/middleware"
	"github.com/vnkhanh/yeahnah-server/models"
)

/* ========== Tạo event ========== */

type createEventReq struct {
	Title             string `json:"title" binding:"required,min=1"`
	Description       string `json:"description"`
	EventType         string `json:"eventType" binding:"required,oneof=business personal"`
	MultiStoreEnabled bool   `json:"multiStoreEnabled"`
	EventDate         string `json:"eventDate" binding:"required"` // YYYY-MM-DD
	TemplateTheme     string `json:"templateTheme" binding:"omitempty,oneof=light dark love"`
	LogoURL           string `json:"logoUrl"`
	AwardVotingScope  string `json:"awardVotingScope" binding:"omitempty,oneof=all department"`
	HostName          string `json:"hostName"`
	HostEmail         string `json:"hostEmail"`
}

// POST /api/events
func CreateEvent(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload không hợp lệ", "details": err.Error()})
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventDate phải theo định dạng YYYY-MM-DD"})
		return
	}

	if req.TemplateTheme == "" {
		req.TemplateTheme = "light"
	}
	if req.AwardVotingScope == "" {
		req.AwardVotingScope = "all"
	}
	// Host thông tin mặc định lấy từ tài khoản đang đăng nhập
	if req.HostName == "" {
		req.HostName = u.Name
	}
	if req.HostEmail == "" {
		req.HostEmail = u.Email
	}

	ev := models.Event{
		ID:                uuid.New().String(),
		Title:             req.Title,
		Description:       req.Description,
		EventType:         req.EventType,
		MultiStoreEnabled: req.MultiStoreEnabled,
		EventDate:         eventDate,
		TemplateTheme:     req.TemplateTheme,
		AwardVotingScope:  req.AwardVotingScope,
		HostID:            u.ID,
		HostName:          req.HostName,
		HostEmail:         req.HostEmail,
	}
	if req.LogoURL != "" {
		ev.LogoURL = &req.LogoURL
	}

	if err := config.DB.Create(&ev).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"eventId": ev.ID,
		"message": "Event created successfully",
	})
}

/* ========== Danh sách event của host ========== */

// GET /api/events?eventId=
func ListEvents(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	if eventID := c.Query("eventId"); eventID != "" {
		var ev models.Event
		if err := config.DB.Where("id = ? AND host_id = ?", eventID, u.ID).First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy event"})
			return
		}
		c.JSON(http.StatusOK, ev)
		return
	}

	var events []models.Event
	if err := config.DB.
		Where("host_id = ?", u.ID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách event"})
		return
	}

	c.JSON(http.StatusOK, events)
}

/* ========== Chi tiết event (public — trang RSVP/voting cần) ========== */

// GET /api/events/:eventId
func GetEvent(c *gin.Context) {
	eventID := c.Param("eventId")

	var ev models.Event
	if err := config.DB.First(&ev, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy event"})
		return
	}

	c.JSON(http.StatusOK, ev)
}

/* ========== Cập nhật event (host-only) ========== */

type updateEventReq struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	EventType         *string `json:"eventType" binding:"omitempty,oneof=business personal"`
	EventDate         *string `json:"eventDate"`
	MultiStoreEnabled *bool   `json:"multiStoreEnabled"`
	TemplateTheme     *string `json:"templateTheme" binding:"omitempty,oneof=light dark love"`
	LogoURL           *string `json:"logoUrl"`
	AwardVotingScope  *string `json:"awardVotingScope" binding:"omitempty,oneof=all department"`
}

// PUT /api/events/:eventId
func UpdateEvent(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload không hợp lệ", "details": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.EventDate != nil {
		d, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "eventDate phải theo định dạng YYYY-MM-DD"})
			return
		}
		updates["event_date"] = d
	}
	if req.MultiStoreEnabled != nil {
		updates["multi_store_enabled"] = *req.MultiStoreEnabled
	}
	if req.TemplateTheme != nil {
		updates["template_theme"] = *req.TemplateTheme
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.AwardVotingScope != nil {
		updates["award_voting_scope"] = *req.AwardVotingScope
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có gì để cập nhật"})
		return
	}

	if err := config.DB.Model(&models.Event{}).
		Where("id = ?", ev.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thất bại"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

/* ========== Xoá event (host-only) — xoá cứng, cascade ========== */

// DELETE /api/events/:eventId
func DeleteEvent(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	// FK cascade sẽ dọn guests/groups/awards/votes
	if err := config.DB.Delete(&models.Event{}, "id = ?", ev.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xoá event thất bại"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
