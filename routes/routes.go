package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userRepo "urbanpilgrim/database/repository/user"
	"urbanpilgrim/handlers"
	"urbanpilgrim/middleware"
	"urbanpilgrim/models"
	"urbanpilgrim/utils"
)

// HandlerBundle groups everything route registration needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Experience *handlers.ExperienceHandler
	Booking    *handlers.BookingHandler
	Wizard     *handlers.WizardHandler
	Class      *handlers.ClassHandler
}

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterExperienceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterClassRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", handlers.RegisterUserHandler)
		api.POST("/login", handlers.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		api.GET("/me", handlers.GetCurrentUserHandler)
		api.DELETE("/revoke", handlers.RevokeUserAuthTokenHandler)
	}
}

// RegisterExperienceRoutes registers the pilgrim-experience catalog. Reads are
// public; writes are admin only.
func RegisterExperienceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/pilgrim-experiences")
	{
		api.GET("", hb.Experience.ListExperiences)
		api.GET("/:id", hb.Experience.GetExperienceByID)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		admin.Use(middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
		admin.POST("", hb.Experience.CreateExperience)
		admin.PUT("/:id", hb.Experience.UpdateExperience)
		admin.DELETE("/:id", hb.Experience.DeleteExperience)
	}
}

// RegisterBookingRoutes registers the booking configurator. Sessions are
// anonymous; book-now carries optional auth so it can decide between the
// review URL and the login-wrapped one.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", hb.Booking.StartSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.PUT("/session/:sessionID/date-range", hb.Booking.SelectDateRange)
		api.PUT("/session/:sessionID/occupancy", hb.Booking.SelectOccupancy)
		api.PUT("/session/:sessionID/quantity", hb.Booking.ChangeQuantity)
		api.GET("/session/:sessionID/quote", hb.Booking.GetQuote)
		api.POST("/session/:sessionID/book-now", middleware.JWTAuthMiddleware(hb.UserRepo, true), hb.Booking.BookNow)
	}
}

// RegisterWizardRoutes registers the class-creation wizard; guides only.
func RegisterWizardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		api.POST("/session", hb.Wizard.StartWizard)
		api.GET("/session/:sessionID", hb.Wizard.GetWizard)
		api.PUT("/session/:sessionID/draft", hb.Wizard.UpdateDraft)
		api.POST("/session/:sessionID/next", hb.Wizard.NextStep)
		api.POST("/session/:sessionID/prev", hb.Wizard.PrevStep)
		api.POST("/session/:sessionID/photos", hb.Wizard.UploadPhotos)
		api.POST("/session/:sessionID/submit", hb.Wizard.SubmitWizard)
		api.POST("/session/:sessionID/reset", hb.Wizard.ResetWizard)
	}
}

// RegisterClassRoutes registers the wellness-guide-class endpoints: the
// one-shot multipart create, the guide's listing, and admin review.
func RegisterClassRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wellness-guide-classes")
	{
		api.GET("/id/:id", hb.Class.GetClassByID)

		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		authed.POST("", hb.Class.CreateClass)
		authed.GET("/mine", hb.Class.ListMyClasses)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		admin.Use(middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
		admin.GET("/pending", hb.Class.ListPendingClasses)
		admin.PUT("/review/:id", hb.Class.ReviewClass)
	}
}
