package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/models"
)

// CheckEventHost: nạp event vào context & xác thực host.
// Chỉ host mới được sửa/xoá event và quản lý guest/group/award của nó.
func CheckEventHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		// user hiện tại (đã được AuthJWT set vào context với key CtxUser = "user")
		u := c.MustGet(CtxUser).(models.User)

		eventID := c.Param("eventId")
		if eventID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Event ID không hợp lệ"})
			return
		}

		var ev models.Event
		if err := config.DB.First(&ev, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc event"})
			return
		}

		// Chỉ host được thao tác
		if ev.HostID != u.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền thao tác event này"})
			return
		}

		// Đưa event vào context để controller dùng tiếp
		c.Set(CtxEvent, ev)
		c.Next()
	}
}
