package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/models"
)

/* ========== Trang RSVP (public) ========== */

// GET /api/events/:eventId/rsvp
// Trả event + danh sách khách để FE render form RSVP
func GetRSVPPage(c *gin.Context) {
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

	var guests []guestRow
	err := config.DB.Table("guests g").
		Select("g.id, g.event_id, g.first_name, g.last_name, g.email, g.guest_id, g.group_id, gr.name AS group_name, g.rsvp_status, g.rsvp_date").
		Joins("LEFT JOIN groups gr ON g.group_id = gr.id").
		Where("g.event_id = ?", eventID).
		Order("gr.name, g.first_name").
		Scan(&guests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách khách"})
		return
	}
	if guests == nil {
		guests = []guestRow{}
	}

	c.JSON(http.StatusOK, gin.H{
		"event":  ev,
		"guests": guests,
	})
}

/* ========== Gửi RSVP ========== */

type submitRSVPReq struct {
	GuestID   string `json:"guestId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Response  string `json:"response" binding:"required"`
}

const guestNotFoundMsg = "Guest not found. Please check your name or guest ID and try again."

// resolveGuest tìm khách theo thứ tự ưu tiên:
//  1. guest_id khớp chính xác
//  2. so tên không phân biệt hoa thường, bỏ khoảng trắng thừa
//  3. nếu khách không có last name trong hệ thống thì chỉ cần khớp first name
func resolveGuest(eventID, guestID, firstName, lastName string) (*models.Guest, error) {
	if strings.TrimSpace(guestID) != "" {
		var g models.Guest
		err := config.DB.
			Where("event_id = ? AND guest_id = ?", eventID, strings.TrimSpace(guestID)).
			First(&g).Error
		if err == nil {
			return &g, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.TrimSpace(lastName))
	if first == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var g models.Guest
	err := config.DB.
		Where("event_id = ? AND LOWER(TRIM(first_name)) = ? AND LOWER(TRIM(last_name)) = ?", eventID, first, last).
		First(&g).Error
	if err == nil {
		return &g, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Fallback chỉ khi người gửi KHÔNG nhập last name:
	// khớp khách mà hệ thống cũng không lưu last name
	if last != "" {
		return nil, gorm.ErrRecordNotFound
	}
	err = config.DB.
		Where("event_id = ? AND LOWER(TRIM(first_name)) = ? AND TRIM(last_name) = ''", eventID, first).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// POST /api/events/:eventId/rsvp
func SubmitRSVP(c *gin.Context) {
	eventID := c.Param("eventId")

	var req submitRSVPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "response is required"})
		return
	}
	if req.Response != "yes" && req.Response != "no" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "response must be 'yes' or 'no'"})
		return
	}

	var count int64
	config.DB.Model(&models.Event{}).Where("id = ?", eventID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	guest, err := resolveGuest(eventID, req.GuestID, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": guestNotFoundMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tra cứu khách"})
		return
	}

	status := "confirmed"
	if req.Response == "no" {
		status = "declined"
	}

	res := config.DB.Model(&models.Guest{}).
		Where("id = ?", guest.ID).
		Updates(map[string]interface{}{
			"rsvp_status": status,
			"rsvp_date":   time.Now(),
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu RSVP"})
		return
	}
	if res.RowsAffected == 0 {
		// khách vừa bị xoá giữa chừng (vd sweep chạy đúng lúc)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record RSVP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "RSVP recorded successfully",
		"guestId":    guest.GuestID,
		"rsvpStatus": status,
	})
}

/* ========== Link RSVP cũ theo guest_id ========== */

// GET /api/rsvp/:guestId — link mời cá nhân từ phiên bản trước, vẫn phải hoạt động
func GetRSVPByGuestID(c *gin.Context) {
	externalID := c.Param("guestId")

	var g models.Guest
	if err := config.DB.First(&g, "guest_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": guestNotFoundMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tra cứu khách"})
		return
	}

	var ev models.Event
	if err := config.DB.First(&ev, "id = ?", g.EventID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event": ev,
		"guest": g,
	})
}

type legacyRSVPReq struct {
	Response string `json:"response" binding:"required"`
}

// POST /api/rsvp/:guestId
func SubmitRSVPByGuestID(c *gin.Context) {
	externalID := c.Param("guestId")

	var req legacyRSVPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "response is required"})
		return
	}
	if req.Response != "yes" && req.Response != "no" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "response must be 'yes' or 'no'"})
		return
	}

	status := "confirmed"
	if req.Response == "no" {
		status = "declined"
	}

	res := config.DB.Model(&models.Guest{}).
		Where("guest_id = ?", externalID).
		Updates(map[string]interface{}{
			"rsvp_status": status,
			"rsvp_date":   time.Now(),
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu RSVP"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": guestNotFoundMsg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "RSVP recorded successfully",
		"rsvpStatus": status,
	})
}
