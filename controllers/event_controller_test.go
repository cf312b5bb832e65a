package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/vnkhanh/yeahnah-server/models"
)

func TestCreateEvent(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)
	_, token := seedUser(t, db)

	w := doRequest(t, r, "POST", "/api/events", map[string]interface{}{
		"title":     "Xmas Party",
		"eventType": "business",
		"eventDate": "2026-12-24",
	}, token)
	wantStatus(t, w, http.StatusCreated)

	var resp struct {
		EventID string `json:"eventId"`
	}
	decodeBody(t, w, &resp)
	if resp.EventID == "" {
		t.Fatal("phải trả eventId")
	}

	var ev models.Event
	db.First(&ev, "id = ?", resp.EventID)
	if ev.TemplateTheme != "light" || ev.AwardVotingScope != "all" {
		t.Errorf("default sai: theme=%s scope=%s", ev.TemplateTheme, ev.AwardVotingScope)
	}
	if ev.EventDate.Format("2006-01-02") != "2026-12-24" {
		t.Errorf("eventDate = %s", ev.EventDate.Format("2006-01-02"))
	}

	// host info mặc định lấy từ user đăng nhập
	if ev.HostEmail == "" || ev.HostName == "" {
		t.Error("hostName/hostEmail phải được điền từ tài khoản host")
	}
}

func TestCreateEventValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)
	_, token := seedUser(t, db)

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"thiếu title", map[string]interface{}{"eventType": "business", "eventDate": "2026-12-24"}, http.StatusBadRequest},
		{"eventType lạ", map[string]interface{}{"title": "X", "eventType": "wedding", "eventDate": "2026-12-24"}, http.StatusBadRequest},
		{"eventDate sai định dạng", map[string]interface{}{"title": "X", "eventType": "business", "eventDate": "24/12/2026"}, http.StatusBadRequest},
		{"theme lạ", map[string]interface{}{"title": "X", "eventType": "business", "eventDate": "2026-12-24", "templateTheme": "neon"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, "POST", "/api/events", tt.body, token)
			wantStatus(t, w, tt.want)
		})
	}

	// không có token -> 401
	w := doRequest(t, r, "POST", "/api/events", map[string]interface{}{
		"title": "X", "eventType": "business", "eventDate": "2026-12-24",
	}, "")
	wantStatus(t, w, http.StatusUnauthorized)
}

func TestListEventsScopedToHost(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)

	host1, token1 := seedUser(t, db)
	host2, token2 := seedUser(t, db)
	ev1 := seedEvent(t, db, host1, time.Now().AddDate(0, 0, 7))
	seedEvent(t, db, host2, time.Now().AddDate(0, 0, 7))

	var events []models.Event
	w := doRequest(t, r, "GET", "/api/events", nil, token1)
	wantStatus(t, w, http.StatusOK)
	decodeBody(t, w, &events)
	if len(events) != 1 || events[0].ID != ev1.ID {
		t.Errorf("host1 thấy %d event, muốn chỉ event của mình", len(events))
	}

	// lọc theo eventId của host khác -> 404
	w = doRequest(t, r, "GET", "/api/events?eventId="+ev1.ID, nil, token2)
	wantStatus(t, w, http.StatusNotFound)
}

func TestUpdateAndDeleteEventHostOnly(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)

	host, token := seedUser(t, db)
	_, otherToken := seedUser(t, db)
	ev := seedEvent(t, db, host, time.Now().AddDate(0, 0, 7))
	seedGuest(t, db, ev, "Alice", "Nguyen", nil)

	// người khác sửa -> 403
	w := doRequest(t, r, "PUT", "/api/events/"+ev.ID, map[string]interface{}{"title": "Hack"}, otherToken)
	wantStatus(t, w, http.StatusForbidden)

	// host sửa được
	w = doRequest(t, r, "PUT", "/api/events/"+ev.ID, map[string]interface{}{"title": "Đổi tên"}, token)
	wantStatus(t, w, http.StatusOK)

	var got models.Event
	db.First(&got, "id = ?", ev.ID)
	if got.Title != "Đổi tên" {
		t.Errorf("title = %s", got.Title)
	}

	// body rỗng -> 400
	w = doRequest(t, r, "PUT", "/api/events/"+ev.ID, map[string]interface{}{}, token)
	wantStatus(t, w, http.StatusBadRequest)

	// xoá: cascade sang guests
	w = doRequest(t, r, "DELETE", "/api/events/"+ev.ID, nil, token)
	wantStatus(t, w, http.StatusOK)

	var count int64
	db.Model(&models.Guest{}).Where("event_id = ?", ev.ID).Count(&count)
	if count != 0 {
		t.Error("guests không bị cascade xoá theo event")
	}

	// GET sau khi xoá -> 404
	w = doRequest(t, r, "GET", "/api/events/"+ev.ID, nil, "")
	wantStatus(t, w, http.StatusNotFound)
}
