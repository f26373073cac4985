package main

import (
	"log"
	"path/filepath"
	"time"

	"tamilsangam-app/config"
	"tamilsangam-app/database"
	routes "tamilsangam-app/internal/app/http"
	"tamilsangam-app/internal/catalog"
	"tamilsangam-app/internal/content"
	"tamilsangam-app/internal/prefs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	var repo catalog.Repository
	if config.USE_MOCK_DATA {
		log.Println("⚠️ USE_MOCK_DATA is on, serving the fixture poster set")
		repo = catalog.NewFixtureRepository()
	} else {
		database.InitDB()
		database.SeedAdmin(config.ADMIN_EMAIL, config.ADMIN_PASSWORD_HASH)
		repo = catalog.NewGormRepository(database.DB)
	}
	posterSvc := catalog.NewService(repo, config.UPLOAD_DIR)

	prefsStore, err := prefs.Open(filepath.Join(config.DATA_DIR, "preferences.json"))
	if err != nil {
		log.Fatal("❌ Failed to open preferences store:", err)
	}

	resolver := content.NewResolver(
		content.NewHTTPStore(config.CONTENT_API_BASE),
		content.WithPrefs(prefsStore),
	)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, posterSvc, prefsStore, resolver)

	r.Run(":" + config.PORT)
}
