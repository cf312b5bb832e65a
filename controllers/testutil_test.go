package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/yeahnah-server/config"
	"github.com/vnkhanh/yeahnah-server/middleware"
	"github.com/vnkhanh/yeahnah-server/models"
	"github.com/vnkhanh/yeahnah-server/utils"
)

var testDBSeq int64

// setupTestDB mở một SQLite in-memory riêng cho mỗi test và gán vào config.DB.
// cache=shared để pool connection của GORM cùng nhìn một DB, _fk=1 để FK cascade chạy.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("testdb_%d", atomic.AddInt64(&testDBSeq, 1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("không mở được test DB: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test DB thất bại: %v", err)
	}

	config.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	registerTestRoutes(r)
	return r
}

// registerTestRoutes lặp lại cấu trúc route thật, bỏ rate limit để test khỏi flaky.
// Không import package routes được vì sẽ tạo vòng import.
func registerTestRoutes(r *gin.Engine) {
	r.GET("/health", HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", Signup)
	auth.POST("/login", Login)
	api.GET("/me", middleware.AuthJWT(), Me)

	events := api.Group("/events")
	events.POST("", middleware.AuthJWT(), CreateEvent)
	events.GET("", middleware.AuthJWT(), ListEvents)
	events.GET("/:eventId", GetEvent)
	events.GET("/:eventId/guests", ListGuests)
	events.GET("/:eventId/groups", ListGroups)
	events.GET("/:eventId/awards", ListAwards)
	events.GET("/:eventId/rsvp", GetRSVPPage)
	events.POST("/:eventId/rsvp", SubmitRSVP)
	events.POST("/:eventId/vote", SubmitVote)
	events.GET("/:eventId/results", GetResults)

	hostOnly := events.Group("/:eventId")
	hostOnly.Use(middleware.AuthJWT(), middleware.CheckEventHost())
	hostOnly.PUT("", UpdateEvent)
	hostOnly.DELETE("", DeleteEvent)
	hostOnly.POST("/guests", AddGuest)
	hostOnly.POST("/guests/import", ImportGuests)
	hostOnly.POST("/groups", CreateGroup)
	hostOnly.DELETE("/groups", DeleteGroup)
	hostOnly.POST("/awards", CreateAward)

	api.GET("/rsvp/:guestId", GetRSVPByGuestID)
	api.POST("/rsvp/:guestId", SubmitRSVPByGuestID)

	api.POST("/cleanup", TriggerCleanup)
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body thất bại: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response thất bại: %v (body: %s)", err, w.Body.String())
	}
}

/* ========== Seed helpers ========== */

func seedUser(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password thất bại: %v", err)
	}
	u := models.User{
		ID:       uuid.New().String(),
		Name:     "Test Host",
		Email:    fmt.Sprintf("host-%s@example.com", uuid.New().String()[:8]),
		Password: hash,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user thất bại: %v", err)
	}

	token, err := utils.GenerateToken(u.ID)
	if err != nil {
		t.Fatalf("generate token thất bại: %v", err)
	}
	return u, token
}

func seedEvent(t *testing.T, db *gorm.DB, host models.User, eventDate time.Time) models.Event {
	t.Helper()

	ev := models.Event{
		ID:               uuid.New().String(),
		Title:            "Test Event",
		EventType:        "business",
		EventDate:        eventDate,
		TemplateTheme:    "light",
		AwardVotingScope: "all",
		HostID:           host.ID,
		HostName:         host.Name,
		HostEmail:        host.Email,
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("seed event thất bại: %v", err)
	}
	return ev
}

func seedGroup(t *testing.T, db *gorm.DB, ev models.Event, name string) models.Group {
	t.Helper()

	g := models.Group{ID: uuid.New().String(), EventID: ev.ID, Name: name}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed group thất bại: %v", err)
	}
	return g
}

func seedGuest(t *testing.T, db *gorm.DB, ev models.Event, first, last string, groupID *string) models.Guest {
	t.Helper()

	g := models.Guest{
		ID:         uuid.New().String(),
		EventID:    ev.ID,
		FirstName:  first,
		LastName:   last,
		GuestID:    makeGuestID(first),
		GroupID:    groupID,
		RSVPStatus: "pending",
	}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed guest thất bại: %v", err)
	}
	return g
}

func seedAward(t *testing.T, db *gorm.DB, ev models.Event, title string) models.Award {
	t.Helper()

	a := models.Award{ID: uuid.New().String(), EventID: ev.ID, Title: title}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed award thất bại: %v", err)
	}
	return a
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, muốn %d (body: %s)", w.Code, want, w.Body.String())
	}
}
