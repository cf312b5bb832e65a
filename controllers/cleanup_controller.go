package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/models"
	"github.com/vnkhanh/yeahnah-server/utils"
)

// seam để test stub được phần gửi mail
var sendEventSummaryEmail = utils.SendEventSummaryEmail

/* ========== Dọn event đã hết hạn ========== */

// buildEventSummary gom số liệu RSVP + giải thưởng trước khi xoá event
func buildEventSummary(ev models.Event) (utils.EventSummary, error) {
	summary := utils.EventSummary{
		EventID:   ev.ID,
		Title:     ev.Title,
		EventDate: ev.EventDate,
		HostName:  ev.HostName,
		HostEmail: ev.HostEmail,
	}

	type statusCount struct {
		RSVPStatus string
		Count      int
	}
	var counts []statusCount
	err := config.DB.Raw(`
		SELECT rsvp_status, COUNT(*) AS count
		FROM guests
		WHERE event_id = ?
		GROUP BY rsvp_status
	`, ev.ID).Scan(&counts).Error
	if err != nil {
		return summary, err
	}
	for _, sc := range counts {
		summary.TotalGuests += sc.Count
		switch sc.RSVPStatus {
		case "confirmed":
			summary.ConfirmedGuests = sc.Count
		case "declined":
			summary.DeclinedGuests = sc.Count
		default:
			summary.PendingGuests += sc.Count
		}
	}

	// breakdown theo group chỉ khi event bật multi store
	if ev.MultiStoreEnabled {
		var groups []utils.GroupSummary
		err = config.DB.Raw(`
			SELECT
				gr.name,
				COUNT(g.id) AS guests,
				COALESCE(SUM(CASE WHEN g.rsvp_status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed
			FROM groups gr
			LEFT JOIN guests g ON g.group_id = gr.id
			WHERE gr.event_id = ?
			GROUP BY gr.id, gr.name
			ORDER BY gr.name
		`, ev.ID).Scan(&groups).Error
		if err != nil {
			return summary, err
		}
		summary.Groups = groups
	}

	// chỉ lấy đúng một award: cặp (award, nominee) nhiều phiếu nhất toàn event
	type topAwardRow struct {
		Title     string
		FirstName string
		LastName  string
		Votes     int
	}
	var top topAwardRow
	res := config.DB.Raw(`
		SELECT a.title, g.first_name, g.last_name, COUNT(v.id) AS votes
		FROM votes v
		JOIN awards a ON a.id = v.award_id
		JOIN guests g ON g.id = v.nominee_id
		WHERE v.event_id = ?
		GROUP BY a.id, a.title, g.id, g.first_name, g.last_name
		HAVING COUNT(v.id) > 0
		ORDER BY votes DESC
		LIMIT 1
	`, ev.ID).Scan(&top)
	if res.Error != nil {
		return summary, res.Error
	}
	if res.RowsAffected > 0 {
		winner := top.FirstName
		if top.LastName != "" {
			winner += " " + top.LastName
		}
		summary.Awards = append(summary.Awards, utils.AwardSummary{
			Title:  top.Title,
			Winner: winner,
			Votes:  top.Votes,
		})
	}

	return summary, nil
}

// CleanupExpiredEvents quét các event có event_date trước hôm nay,
// gom summary, xoá (cascade sang guests/groups/awards/votes) rồi mới gửi mail.
// Xoá trước đóng vai trò "claim": hai lần quét chồng nhau không thể
// cùng gửi mail cho một event.
func CleanupExpiredEvents() (int, error) {
	today := time.Now().Format("2006-01-02")

	var expired []models.Event
	if err := config.DB.Where("event_date < ?", today).Find(&expired).Error; err != nil {
		return 0, err
	}

	processed := 0
	for _, ev := range expired {
		summary, err := buildEventSummary(ev)
		if err != nil {
			// lỗi 1 event không chặn các event còn lại
			log.Printf("cleanup: không gom được summary cho event %s: %v", ev.ID, err)
			continue
		}

		claimed := false
		err = config.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Delete(&models.Event{}, "id = ?", ev.ID)
			if res.Error != nil {
				return res.Error
			}
			claimed = res.RowsAffected > 0
			return nil
		})
		if err != nil {
			log.Printf("cleanup: xoá event %s thất bại: %v", ev.ID, err)
			continue
		}
		if !claimed {
			// event đã bị quét bởi lượt khác rồi
			continue
		}

		processed++
		if err := sendEventSummaryEmail(summary); err != nil {
			// event đã xoá xong, mail fail chỉ log thôi
			log.Printf("cleanup: gửi summary email cho %s thất bại: %v", ev.HostEmail, err)
		}
	}

	return processed, nil
}

// POST|GET /api/cleanup
func TriggerCleanup(c *gin.Context) {
	processed, err := CleanupExpiredEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cleanup thất bại"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"processed": processed,
		"message":   "Cleanup completed",
	})
}

/* ========== Scheduler chạy nền ========== */

// StartCleanupScheduler chạy sweep định kỳ. Gọi từ main bằng goroutine.
func StartCleanupScheduler() {
	interval := 24 * time.Hour
	if v := os.Getenv("CLEANUP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		} else {
			log.Printf("cleanup: CLEANUP_INTERVAL không hợp lệ (%q), dùng mặc định 24h", v)
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("cleanup scheduler chạy mỗi %s", interval)
	for range ticker.C {
		processed, err := CleanupExpiredEvents()
		if err != nil {
			log.Printf("cleanup: sweep lỗi: %v", err)
			continue
		}
		if processed > 0 {
			log.Printf("cleanup: đã xử lý %d event hết hạn", processed)
		}
	}
}
