package routes

import (
	"context"
	"time"

	"portfolio-app/config"
	adminapi "portfolio-app/internal/api/admin"
	"portfolio-app/internal/api/analytics"
	authapi "portfolio-app/internal/api/auth"
	blogapi "portfolio-app/internal/api/blog"
	galleryapi "portfolio-app/internal/api/gallery"
	messagesapi "portfolio-app/internal/api/messages"
	profilesapi "portfolio-app/internal/api/profiles"
	projectsapi "portfolio-app/internal/api/projects"
	siteapi "portfolio-app/internal/api/site"
	uploadsapi "portfolio-app/internal/api/uploads"
	"portfolio-app/internal/app/http/middleware"
	"portfolio-app/internal/infra/objectstore"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r *gin.Engine) {
	// Identity and area rules apply to every request; the gate decides
	// who may enter /dashboard and who must leave /auth.
	r.Use(middleware.Principal(), middleware.AccessGate())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public site surface. Everything here is readable anonymously;
	// the contact form is the only public write and gets sanitized.
	public := r.Group("/")
	public.Use(middleware.SanitizeInput())

	public.GET("/profile", profilesapi.GetOwner)
	public.GET("/settings", siteapi.GetSettings)
	public.GET("/social-links", siteapi.ListSocialLinks)

	public.GET("/projects", projectsapi.ListPublished)
	public.GET("/projects/:id", projectsapi.GetPublished)
	public.POST("/projects/:id/view", analytics.BumpProjectView)

	public.GET("/blog", blogapi.ListPublished)
	public.GET("/blog/:slug", blogapi.GetPublished)
	public.POST("/blog/:slug/view", analytics.BumpBlogView)

	public.GET("/gallery", galleryapi.ListPublished)

	public.POST("/contact", messagesapi.Create)

	// Auth area. Signed-in users are bounced away by the gate.
	auth := r.Group("/auth")
	auth.Use(middleware.SanitizeInput())

	auth.POST("/register", authapi.Register)
	auth.POST("/login", authapi.Login)
	auth.GET("/verify", authapi.VerifyEmail)
	auth.POST("/request-password-reset", authapi.RequestPasswordReset)
	auth.POST("/reset-password", authapi.ResetPassword)

	if config.GOOGLE_CLIENT_ID != "" {
		auth.GET("/google", authapi.GoogleStart)
		auth.GET("/google/callback", authapi.GoogleCallback)
	}

	// Dashboard area, admin-only behind the gate.
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.SanitizeInput())

	dashboard.GET("/projects", projectsapi.ListOwn)
	dashboard.POST("/projects", projectsapi.Create)
	dashboard.PUT("/projects/:id", projectsapi.Update)
	dashboard.DELETE("/projects/:id", projectsapi.Delete)
	dashboard.GET("/projects/:id/media", projectsapi.GetMedia)
	dashboard.PUT("/projects/:id/media", projectsapi.ReconcileMedia)

	dashboard.GET("/blog", blogapi.ListOwn)
	dashboard.POST("/blog", blogapi.Create)
	dashboard.PUT("/blog/:id", blogapi.Update)
	dashboard.DELETE("/blog/:id", blogapi.Delete)

	dashboard.GET("/gallery", galleryapi.ListOwn)
	dashboard.POST("/gallery", galleryapi.Create)
	dashboard.PUT("/gallery/:id", galleryapi.Update)
	dashboard.DELETE("/gallery/:id", galleryapi.Delete)

	dashboard.GET("/messages", messagesapi.ListOwn)
	dashboard.PUT("/messages/:id/status", messagesapi.UpdateStatus)
	dashboard.DELETE("/messages/:id", messagesapi.Delete)

	dashboard.GET("/profile", profilesapi.GetOwn)
	dashboard.PUT("/profile", profilesapi.UpdateOwn)

	dashboard.PUT("/settings", siteapi.UpdateSettings)
	dashboard.PUT("/social-links", siteapi.ReplaceSocialLinks)

	dashboard.POST("/change-password", authapi.ChangePassword)

	dashboard.GET("/admin/stats", adminapi.Stats)
	dashboard.POST("/admin/make-admin", adminapi.MakeAdmin)

	registerUploads(dashboard)
}

func registerUploads(dashboard *gin.RouterGroup) {
	store, err := objectstore.New()
	if err != nil {
		log.Error().Err(err).Msg("object store unavailable, uploads disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Msg("could not verify media bucket")
	}

	handler := uploadsapi.NewHandler(store)
	dashboard.POST("/uploads", handler.Upload)
}
