package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/yeahnah-server/controllers"
	"github.com/vnkhanh/yeahnah-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", controllers.Ping)
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", middleware.RateLimitSignup(), controllers.Signup)
			auth.POST("/login", controllers.Login)
			auth.POST("/google/login", controllers.GoogleLoginHandler)
		}
		api.GET("/me", middleware.AuthJWT(), controllers.Me)

		events := api.Group("/events")
		{
			events.POST("", middleware.AuthJWT(), controllers.CreateEvent)
			events.GET("", middleware.AuthJWT(), controllers.ListEvents)

			// Public — trang RSVP / voting của khách không cần đăng nhập
			events.GET("/:eventId", controllers.GetEvent)
			events.GET("/:eventId/guests", controllers.ListGuests)
			events.GET("/:eventId/groups", controllers.ListGroups)
			events.GET("/:eventId/awards", controllers.ListAwards)
			events.GET("/:eventId/rsvp", controllers.GetRSVPPage)
			events.POST("/:eventId/rsvp", controllers.SubmitRSVP)
			events.POST("/:eventId/vote", controllers.SubmitVote)
			events.GET("/:eventId/results", controllers.GetResults)

			// Ghi: chỉ host của event
			hostOnly := events.Group("/:eventId")
			hostOnly.Use(middleware.AuthJWT(), middleware.CheckEventHost())
			{
				hostOnly.PUT("", controllers.UpdateEvent)
				hostOnly.DELETE("", controllers.DeleteEvent)
				hostOnly.POST("/guests", controllers.AddGuest)
				hostOnly.POST("/guests/import", controllers.ImportGuests)
				hostOnly.POST("/groups", controllers.CreateGroup)
				hostOnly.DELETE("/groups", controllers.DeleteGroup)
				hostOnly.POST("/awards", controllers.CreateAward)
			}
		}

		// Link mời cá nhân từ phiên bản trước, key theo guest_id
		api.GET("/rsvp/:guestId", controllers.GetRSVPByGuestID)
		api.POST("/rsvp/:guestId", controllers.SubmitRSVPByGuestID)

		api.POST("/upload/logo", middleware.AuthJWT(), controllers.UploadLogo)

		// Cron bên ngoài gọi endpoint này, có rate limit riêng
		api.POST("/cleanup", middleware.RateLimitCleanup(), controllers.TriggerCleanup)
		api.GET("/cleanup", middleware.RateLimitCleanup(), controllers.TriggerCleanup)
	}
}
