package routes

import (
	authapi "tamilsangam-app/internal/api/auth"
	"tamilsangam-app/internal/api/posters"
	"tamilsangam-app/internal/api/preferences"
	"tamilsangam-app/internal/api/websitecontent"
	"tamilsangam-app/internal/app/http/middleware"
	"tamilsangam-app/internal/catalog"
	"tamilsangam-app/internal/content"
	"tamilsangam-app/internal/prefs"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, posterSvc *catalog.Service, prefsStore *prefs.Store, resolver *content.Resolver) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Posters: one route, method dispatch inside the handler. Reads are
	// public, mutations gate on the role claim, so auth is optional here.
	postersHandler := posters.NewHandler(posterSvc)
	postersGroup := api.Group("/")
	postersGroup.Use(middleware.OptionalAuthMiddleware())
	postersGroup.Any("/posters", postersHandler.Handle)

	// Website content, consumed by the resolver and the page layer.
	api.GET("/website-content/sections/:page", websitecontent.GetSectionRecords)
	api.GET("/website-content/global", websitecontent.GetGlobalRecords)

	prefsHandler := &preferences.Handler{Prefs: prefsStore, Resolver: resolver}
	api.GET("/preferences", prefsHandler.Get)
	api.PUT("/preferences", prefsHandler.Update)

	public := api.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/auth/login", authapi.Login)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"), middleware.SanitizeInputMiddleware())
	admin.POST("/website-content", websitecontent.UpsertRecord)
}
