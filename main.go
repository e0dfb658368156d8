package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/jobs"
	"salt-n-sugar-backend/middleware"
	"salt-n-sugar-backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	config.InitDB()
	config.EnsureAdmin()

	r := gin.Default()

	allowedOrigins := strings.Split(config.GetEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.NewRateLimiter(100, time.Minute).Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Salt N Sugar Bakery API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r)

	c := cron.New()
	c.AddFunc("@midnight", jobs.PendingOrderReminder)
	c.Start()

	port := config.GetEnv("PORT", "8080")
	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
