package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/models"
)

/* ========== Gửi phiếu bầu ========== */

type submitVoteReq struct {
	AwardID   string `json:"awardId" binding:"required"`
	VoterID   string `json:"voterId" binding:"required"`
	NomineeID string `json:"nomineeId" binding:"required"`
}

// POST /api/events/:eventId/vote
// Upsert atomic theo (event_id, award_id, voter_id): bầu lại sẽ ghi đè nominee.
func SubmitVote(c *gin.Context) {
	eventID := c.Param("eventId")

	var req submitVoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "awardId, voterId and nomineeId are required"})
		return
	}

	// Không cho tự bầu cho mình
	if req.VoterID == req.NomineeID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot vote for yourself"})
		return
	}

	// award phải thuộc event
	var count int64
	config.DB.Model(&models.Award{}).
		Where("id = ? AND event_id = ?", req.AwardID, eventID).
		Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Award not found"})
		return
	}

	// voter và nominee phải là khách của event
	var guestCount int64
	config.DB.Model(&models.Guest{}).
		Where("event_id = ? AND id IN ?", eventID, []string{req.VoterID, req.NomineeID}).
		Count(&guestCount)
	if guestCount != 2 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Voter or nominee not found"})
		return
	}

	vote := models.Vote{
		ID:        uuid.New().String(),
		EventID:   eventID,
		AwardID:   req.AwardID,
		VoterID:   req.VoterID,
		NomineeID: req.NomineeID,
	}

	// INSERT ... ON CONFLICT (event_id, award_id, voter_id) DO UPDATE SET nominee_id
	// Một câu lệnh duy nhất nên không race như kiểu find-then-update
	err := config.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "event_id"}, {Name: "award_id"}, {Name: "voter_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"nominee_id": req.NomineeID,
		}),
	}).Create(&vote).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit vote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote submitted successfully"})
}

/* ========== Kết quả bầu chọn ========== */

type resultRow struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	GroupName  *string `json:"group_name"`
	AwardTitle string  `json:"award_title"`
	VoteCount  int     `json:"vote_count"`
}

// GET /api/events/:eventId/results?awardId=&storeDepartment=
// Đếm phiếu theo (nominee, award), chỉ trả khách có ít nhất 1 phiếu.
// Sắp xếp: vote_count giảm dần, rồi last_name, first_name tăng dần.
func GetResults(c *gin.Context) {
	eventID := c.Param("eventId")

	var count int64
	config.DB.Model(&models.Event{}).Where("id = ?", eventID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	query := `
		SELECT
			g.id,
			g.first_name,
			g.last_name,
			gr.name AS group_name,
			a.title AS award_title,
			COUNT(v.id) AS vote_count
		FROM guests g
		JOIN votes v ON g.id = v.nominee_id
		JOIN awards a ON v.award_id = a.id
		LEFT JOIN groups gr ON g.group_id = gr.id
		WHERE g.event_id = ?
	`
	args := []interface{}{eventID}

	// "all" là sentinel nghĩa là không lọc
	if awardID := c.Query("awardId"); awardID != "" && awardID != "all" {
		query += ` AND a.id = ?`
		args = append(args, awardID)
	}
	if dept := c.Query("storeDepartment"); dept != "" && dept != "all" {
		query += ` AND gr.name = ?`
		args = append(args, dept)
	}

	query += `
		GROUP BY g.id, g.first_name, g.last_name, gr.name, a.title
		ORDER BY vote_count DESC, g.last_name, g.first_name
	`

	var results []resultRow
	if err := config.DB.Raw(query, args...).Scan(&results).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
		return
	}
	if results == nil {
		// chưa có phiếu nào -> mảng rỗng để FE render "no votes yet"
		results = []resultRow{}
	}

	c.JSON(http.StatusOK, results)
}
