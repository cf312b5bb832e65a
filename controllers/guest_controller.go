package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/middleware"
	"github.com/vnkhanh/yeahnah-server/models"
)

/* ========== Thêm khách (host-only) ========== */

type addGuestReq struct {
	FirstName string  `json:"firstName" binding:"required,min=1"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	GuestID   string  `json:"guestId"`
	GroupID   *string `json:"groupId"`
}

// makeGuestID sinh mã khách khi host không nhập:
// chữ cái đầu của first name + timestamp base36 (theo format cũ của hệ thống).
// Timestamp không đủ unique khi import nhiều dòng trong cùng 1ms,
// thêm đuôi ngẫu nhiên để không đụng unique (event_id, guest_id).
func makeGuestID(firstName string) string {
	initial := "G"
	if firstName != "" {
		initial = strings.ToUpper(firstName[:1])
	}
	suffix := uuid.New().String()[:4]
	return initial + strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}

// POST /api/events/:eventId/guests
func AddGuest(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req addGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload không hợp lệ", "details": err.Error()})
		return
	}

	guestID := strings.TrimSpace(req.GuestID)
	if guestID == "" {
		guestID = makeGuestID(req.FirstName)
	} else {
		// host tự nhập mã thì phải unique trong event
		var count int64
		config.DB.Model(&models.Guest{}).
			Where("event_id = ? AND guest_id = ?", ev.ID, guestID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Guest ID already in use for this event"})
			return
		}
	}

	// group (nếu có) phải thuộc event
	if req.GroupID != nil && *req.GroupID != "" {
		var count int64
		config.DB.Model(&models.Group{}).
			Where("id = ? AND event_id = ?", *req.GroupID, ev.ID).
			Count(&count)
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Group không thuộc event này"})
			return
		}
	}

	guest := models.Guest{
		ID:        uuid.New().String(),
		EventID:   ev.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		GuestID:   guestID,
		GroupID:   req.GroupID,
	}

	if err := config.DB.Create(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể thêm khách"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"guestId": guest.ID,
		"message": "Guest added successfully",
	})
}

/* ========== Danh sách khách (public — trang voting dùng) ========== */

type guestRow struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	GuestID    string     `json:"guest_id"`
	GroupID    *string    `json:"group_id"`
	GroupName  *string    `json:"group_name"`
	RSVPStatus string     `json:"rsvp_status"`
	RSVPDate   *time.Time `json:"rsvp_date"`
}

// GET /api/events/:eventId/guests?department=&excludeGuestId=
func ListGuests(c *gin.Context) {
	eventID := c.Param("eventId")

	var count int64
	config.DB.Model(&models.Event{}).Where("id = ?", eventID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	q := config.DB.Table("guests g").
		Select("g.id, g.event_id, g.first_name, g.last_name, g.email, g.guest_id, g.group_id, gr.name AS group_name, g.rsvp_status, g.rsvp_date").
		Joins("LEFT JOIN groups gr ON g.group_id = gr.id").
		Where("g.event_id = ?", eventID)

	// Lọc theo department (dùng cho voting scope = department)
	if dept := c.Query("department"); dept != "" {
		q = q.Where("gr.name = ?", dept)
	}

	// Loại chính voter ra khỏi danh sách nominee
	if exclude := c.Query("excludeGuestId"); exclude != "" {
		q = q.Where("g.id <> ?", exclude)
	}

	var guests []guestRow
	if err := q.Order("gr.name, g.first_name").Scan(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách khách"})
		return
	}
	if guests == nil {
		guests = []guestRow{}
	}

	c.JSON(http.StatusOK, guests)
}

/* ========== Bulk import khách từ file Excel (host-only) ========== */

// Cột kỳ vọng: FirstName | LastName | Email | GuestID | Group
// Dòng đầu là header. Dòng thiếu first name sẽ bị bỏ qua.
// POST /api/events/:eventId/guests/import
func ImportGuests(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không nhận được file"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc file"})
		return
	}
	defer f.Close()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File không phải Excel hợp lệ"})
		return
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	rows, err := wb.GetRows(sheet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không thể đọc sheet"})
		return
	}
	if len(rows) <= 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File không có dữ liệu"})
		return
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	imported, skipped := 0, 0
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		// cache group theo tên để khỏi query lặp
		groupIDs := map[string]string{}

		for _, row := range rows[1:] { // bỏ header
			firstName := cell(row, 0)
			if firstName == "" {
				skipped++
				continue
			}
			lastName := cell(row, 1)
			email := cell(row, 2)
			externalID := cell(row, 3)
			groupName := cell(row, 4)

			var groupID *string
			if groupName != "" {
				if id, ok := groupIDs[groupName]; ok {
					groupID = &id
				} else {
					var g models.Group
					e := tx.Where("event_id = ? AND name = ?", ev.ID, groupName).First(&g).Error
					if errors.Is(e, gorm.ErrRecordNotFound) {
						// tạo group mới theo tên trong file
						g = models.Group{
							ID:      uuid.New().String(),
							EventID: ev.ID,
							Name:    groupName,
						}
						if e := tx.Create(&g).Error; e != nil {
							return e
						}
					} else if e != nil {
						return e
					}
					groupIDs[groupName] = g.ID
					id := g.ID
					groupID = &id
				}
			}

			if externalID == "" {
				externalID = makeGuestID(firstName)
			}

			guest := models.Guest{
				ID:        uuid.New().String(),
				EventID:   ev.ID,
				FirstName: firstName,
				LastName:  lastName,
				Email:     email,
				GuestID:   externalID,
				GroupID:   groupID,
			}
			if e := tx.Create(&guest).Error; e != nil {
				return fmt.Errorf("không thể import khách %s: %w", firstName, e)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import thất bại", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": imported,
		"skipped":  skipped,
		"message":  "Guests imported successfully",
	})
}
