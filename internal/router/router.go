package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alictclasses/alict-backend/internal/config"
	"github.com/alictclasses/alict-backend/internal/handler"
	"github.com/alictclasses/alict-backend/internal/middleware"
	"github.com/alictclasses/alict-backend/internal/response"
	"github.com/alictclasses/alict-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Catalog      *handler.CatalogHandler
	Class        *handler.ClassHandler
	Month        *handler.MonthHandler
	Video        *handler.VideoHandler
	Note         *handler.NoteHandler
	Result       *handler.ResultHandler
	Gallery      *handler.GalleryHandler
	Contact      *handler.ContactHandler
	Registration *handler.RegistrationHandler
	Setting      *handler.SettingHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for public form submissions (10 requests per minute per IP).
	submitLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 1. Public Group (No Auth) ─────────────────────────────────────
	publicAPI := router.Group("/api/v1/public")
	{
		// Read-only catalog pages, cacheable for five minutes.
		content := publicAPI.Group("")
		content.Use(middleware.CacheControl(300))
		{
			content.GET("/classes", handlers.Catalog.ListPublicClasses)
			content.GET("/catalog/:slug", handlers.Catalog.GetCatalog)
			content.GET("/classes/:slug/purchase-link", handlers.Catalog.GetPurchaseLink)
			content.GET("/inquiry-link", handlers.Catalog.GetInquiryLink)
			content.GET("/results", handlers.Result.ListResults)
			content.GET("/gallery", handlers.Gallery.ListGallery)
			content.GET("/settings", handlers.Setting.GetPublicSettings)
		}

		// Lead forms, rate limited per IP.
		publicAPI.POST("/contact", submitLimiter.Middleware(), handlers.Contact.SubmitContact)
		publicAPI.POST("/register", submitLimiter.Middleware(), handlers.Registration.SubmitRegistration)
	}

	// ─── 2. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/admin/login", handlers.Auth.AdminLogin)

		// Authenticated profile routes
		auth.POST("/admin/logout", middleware.RequireAdminJWT(authService), handlers.Auth.AdminLogout)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.GetAdminProfile)
	}

	// ─── 3. Admin Group (JWT + Session) ────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// Class management
		adminAPI.GET("/classes", handlers.Class.ListClasses)
		adminAPI.POST("/classes", handlers.Class.CreateClass)
		adminAPI.PUT("/classes/:id", handlers.Class.UpdateClass)
		adminAPI.DELETE("/classes/:id", handlers.Class.DeleteClass)

		// Month management
		adminAPI.GET("/months", handlers.Month.ListMonths)
		adminAPI.POST("/months", handlers.Month.CreateMonth)
		adminAPI.PUT("/months/:id", handlers.Month.UpdateMonth)
		adminAPI.DELETE("/months/:id", handlers.Month.DeleteMonth)

		// Video management
		adminAPI.GET("/videos", handlers.Video.ListVideos)
		adminAPI.POST("/videos", handlers.Video.CreateVideo)
		adminAPI.PUT("/videos/:id", handlers.Video.UpdateVideo)
		adminAPI.DELETE("/videos/:id", handlers.Video.DeleteVideo)

		// Note management
		adminAPI.GET("/notes", handlers.Note.ListNotes)
		adminAPI.POST("/notes", handlers.Note.CreateNote)
		adminAPI.PUT("/notes/:id", handlers.Note.UpdateNote)
		adminAPI.DELETE("/notes/:id", handlers.Note.DeleteNote)

		// Results management
		adminAPI.GET("/results", handlers.Result.ListResults)
		adminAPI.POST("/results", handlers.Result.CreateResult)
		adminAPI.PUT("/results/:id", handlers.Result.UpdateResult)
		adminAPI.DELETE("/results/:id", handlers.Result.DeleteResult)

		// Gallery management
		adminAPI.GET("/gallery", handlers.Gallery.ListGallery)
		adminAPI.POST("/gallery", handlers.Gallery.CreateGalleryItem)
		adminAPI.PUT("/gallery/:id", handlers.Gallery.UpdateGalleryItem)
		adminAPI.DELETE("/gallery/:id", handlers.Gallery.DeleteGalleryItem)

		// Contact message inbox
		adminAPI.GET("/messages", handlers.Contact.ListMessages)
		adminAPI.PATCH("/messages/:id/read", handlers.Contact.MarkMessageRead)
		adminAPI.DELETE("/messages/:id", handlers.Contact.DeleteMessage)

		// Student registrations
		adminAPI.GET("/registrations", handlers.Registration.ListRegistrations)
		adminAPI.GET("/registrations/export", handlers.Registration.ExportRegistrations)
		adminAPI.DELETE("/registrations/:id", handlers.Registration.DeleteRegistration)

		// Site Settings Routes
		settingsGroup := adminAPI.Group("/settings")
		{
			settingsGroup.GET("", handlers.Setting.GetAllSettings)
			settingsGroup.PUT("", handlers.Setting.UpdateSettings)
		}
	}

	return router
}
