package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/vnkhanh/yeahnah-server/models"
)

func TestSubmitRSVPByGuestIDMatch(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)

	host, _ := seedUser(t, db)
	ev := seedEvent(t, db, host, time.Now().AddDate(0, 0, 7))
	g := seedGuest(t, db, ev, "John", "Smith", nil)

	w := doRequest(t, r, "POST", "/api/events/"+ev.ID+"/rsvp", map[string]string{
		"guestId":  g.GuestID,
		"response": "yes",
	}, "")
	wantStatus(t, w, http.StatusOK)

	var got models.Guest
	db.First(&got, "id = ?", g.ID)
	if got.RSVPStatus != "confirmed" {
		t.Errorf("rsvp_status = %s, muốn confirmed", got.RSVPStatus)
	}
	if got.RSVPDate == nil {
		t.Error("rsvp_date phải được set")
	}
}

func TestSubmitRSVPNameResolution(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)

	host, _ := seedUser(t, db)
	ev := seedEvent(t, db, host, time.Now().AddDate(0, 0, 7))
	seedGuest(t, db, ev, "John", "Smith", nil)
	noLast := seedGuest(t, db, ev, "Madonna", "", nil)

	path := "/api/events/" + ev.ID + "/rsvp"

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"khớp tên chính xác", map[string]string{"firstName": "John", "lastName": "Smith", "response": "no"}, http.StatusOK},
		{"không phân biệt hoa thường + khoảng trắng", map[string]string{"firstName": "  jOhN ", "lastName": " SMITH ", "response": "yes"}, http.StatusOK},
		{"chỉ first name khi khách không có last name", map[string]string{"firstName": "madonna", "response": "yes"}, http.StatusOK},
		{"first name trùng nhưng khách có last name -> không khớp", map[string]string{"firstName": "john", "response": "yes"}, http.StatusNotFound},
		{"nhập last name nhưng khách không có -> không khớp", map[string]string{"firstName": "Madonna", "lastName": "Ciccone", "response": "yes"}, http.StatusNotFound},
		{"response không hợp lệ", map[string]string{"firstName": "John", "lastName": "Smith", "response": "maybe"}, http.StatusBadRequest},
		{"thiếu response", map[string]string{"firstName": "John", "lastName": "Smith"}, http.StatusBadRequest},
		{"không tìm thấy", map[string]string{"firstName": "Nobody", "lastName": "Here", "response": "yes"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, "POST", path, tt.body, "")
			wantStatus(t, w, tt.want)
		})
	}

	// khách không last name phải thành confirmed sau case ở trên
	var got models.Guest
	db.First(&got, "id = ?", noLast.ID)
	if got.RSVPStatus != "confirmed" {
		t.Errorf("khách không last name có rsvp_status = %s, muốn confirmed", got.RSVPStatus)
	}
}

func TestSubmitRSVPDecline(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)

	host, _ := seedUser(t, db)
	ev := seedEvent(t, db, host, time.Now().AddDate(0, 0, 7))
	g := seedGuest(t, db, ev, "John", "Smith", nil)

	w := doRequest(t, r, "POST", "/api/events/"+ev.ID+"/rsvp", map[string]string{
		"guestId": g.GuestID, "response": "no",
	}, "")
	wantStatus(t, w, http.StatusOK)

	var got models.Guest
	db.First(&got, "id = ?", g.ID)
	if got.RSVPStatus != "declined" {
		t.Errorf("rsvp_status = %s, muốn declined", got.RSVPStatus)
	}
}

func TestGetRSVPPage(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)

	host, _ := seedUser(t, db)
	ev := seedEvent(t, db, host, time.Now().AddDate(0, 0, 7))
	grp := seedGroup(t, db, ev, "Kitchen")
	seedGuest(t, db, ev, "Alice", "Nguyen", &grp.ID)

	w := doRequest(t, r, "GET", "/api/events/"+ev.ID+"/rsvp", nil, "")
	wantStatus(t, w, http.StatusOK)

	var resp struct {
		Event  models.Event `json:"event"`
		Guests []guestRow   `json:"guests"`
	}
	decodeBody(t, w, &resp)
	if resp.Event.ID != ev.ID {
		t.Errorf("event.id = %s, muốn %s", resp.Event.ID, ev.ID)
	}
	if len(resp.Guests) != 1 {
		t.Fatalf("có %d khách, muốn 1", len(resp.Guests))
	}
	if resp.Guests[0].GroupName == nil || *resp.Guests[0].GroupName != "Kitchen" {
		t.Error("group_name phải được join vào danh sách khách")
	}

	w = doRequest(t, r, "GET", "/api/events/khong-co/rsvp", nil, "")
	wantStatus(t, w, http.StatusNotFound)
}

func TestLegacyRSVPRoutes(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(t)

	host, _ := seedUser(t, db)
	ev := seedEvent(t, db, host, time.Now().AddDate(0, 0, 7))
	g := seedGuest(t, db, ev, "John", "Smith", nil)

	// GET trả event + guest theo guest_id ngoài
	w := doRequest(t, r, "GET", "/api/rsvp/"+g.GuestID, nil, "")
	wantStatus(t, w, http.StatusOK)

	var resp struct {
		Event models.Event `json:"event"`
		Guest models.Guest `json:"guest"`
	}
	decodeBody(t, w, &resp)
	if resp.Guest.ID != g.ID || resp.Event.ID != ev.ID {
		t.Error("legacy GET phải trả đúng guest và event")
	}

	// POST cập nhật trạng thái
	w = doRequest(t, r, "POST", "/api/rsvp/"+g.GuestID, map[string]string{"response": "yes"}, "")
	wantStatus(t, w, http.StatusOK)

	var got models.Guest
	db.First(&got, "id = ?", g.ID)
	if got.RSVPStatus != "confirmed" {
		t.Errorf("rsvp_status = %s, muốn confirmed", got.RSVPStatus)
	}

	// guest_id không tồn tại
	w = doRequest(t, r, "POST", "/api/rsvp/khong-co", map[string]string{"response": "yes"}, "")
	wantStatus(t, w, http.StatusNotFound)
}
