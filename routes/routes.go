package routes

import (
	"net/http"
	"time"

	"pickbook/handlers"
	"pickbook/middleware"
	"pickbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes.
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetProfileHandler)
		api.PUT("/me", hb.User.UpdateProfileHandler)
		api.PUT("/me/password", hb.User.UpdatePasswordHandler)
		api.DELETE("/me/token", hb.User.RevokeUserAuthTokenHandler)
		api.DELETE("/me", hb.User.DeleteUserHandler)
	}
}

// RegisterAreaRoutes registers the area catalogue endpoints.
func RegisterAreaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/areas")
	{
		api.GET("/fetch", hb.Area.GetAreasHandler)
		api.GET("/search", hb.Area.SearchAreasHandler)

		// Manager-only catalogue management.
		managed := api.Group("")
		managed.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireRole(hb.UserRepo, "manager"))
		managed.POST("", hb.Area.CreateAreaHandler)
		managed.PUT("/:areaId", hb.Area.UpdateAreaHandler)
		managed.DELETE("/:areaId", hb.Area.DeleteAreaHandler)
		managed.POST("/:areaId/image", hb.Storage.UploadAreaImageHandler)
		managed.POST("/:areaId/courts/:courtId/image", hb.Storage.UploadCourtImageHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the reservation flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		// The booking-page area detail carries the reserved-slot list.
		api.GET("/areas/:areaId", hb.Area.GetAreaHandler)
		api.POST("/directions", hb.Directions.GetDirectionsHandler)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/session", hb.Booking.StartSessionHandler)
		api.GET("/session/:sessionID", hb.Booking.GetSessionHandler)
		api.PUT("/session/:sessionID", hb.Booking.ApplyActionHandler)
		api.POST("/session/:sessionID/confirm", hb.Booking.ConfirmSessionHandler)
		api.POST("/session/:sessionID/reopen", hb.Booking.ReopenSessionHandler)
		api.POST("/session/:sessionID/submit", hb.Booking.SubmitBookingHandler)
		api.DELETE("/session/:sessionID", hb.Booking.CloseSessionHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("/send-details-to-email", hb.Booking.SendDetailsEmailHandler)

		managed := api.Group("")
		managed.Use(middleware.RequireRole(hb.UserRepo, "manager"))
		managed.PUT("/:id/decision", hb.Booking.DecideBookingHandler)
	}
}

// RegisterDashboardRoutes sets up the per-user dashboard reads.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/summary", hb.Dashboard.GetSummaryHandler)
		api.GET("/my-bookings", hb.Dashboard.GetMyBookingsHandler)
		api.GET("/notifications", hb.Dashboard.GetNotificationsHandler)
		api.PUT("/notifications/:id/read", hb.Dashboard.MarkNotificationReadHandler)
		api.GET("/membership-areas", hb.Dashboard.GetMembershipAreasHandler)
		api.GET("/membership-plans/:areaId", hb.Dashboard.GetMembershipPlansHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAreaRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
