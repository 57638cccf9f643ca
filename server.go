package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/volttrack/mis_backend/config"
	"github.com/volttrack/mis_backend/insights"
	"github.com/volttrack/mis_backend/models"
	"github.com/volttrack/mis_backend/utils"
)

const defaultPort = "8080"

// Published after the server is already listening, so handler goroutines
// read them concurrently with the startup writes; atomic pointers make the
// handoff safe. The readiness gate keeps app routes closed until the record
// store is in place.
var (
	recordStore atomic.Pointer[models.RecordStore]
	aiService   atomic.Pointer[insights.Service]
)

func readinessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Always allow the startup probe.
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		// Gate app endpoints on store readiness (snapshot loaded).
		if recordStore.Load() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	}
}

func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		for _, ginErr := range c.Errors {
			logger.WithFields(logrus.Fields{
				"module": "server.go",
				"path":   c.Request.URL.Path,
				"status": c.Writer.Status(),
			}).Error(ginErr.Error())
		}
	}
}

func customNotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}

func main() {
	logger := config.GetLogger()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	r := gin.New()
	// Correlation IDs: generate once per request and attach to the response
	// so UI reports can reference a specific call.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Writer.Header().Set("x-correlation-id", cid)
		c.Next()
	})
	r.Use(readinessGate())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	// In production, require an explicit allowlist via CORS_ALLOWED_ORIGINS
	// (comma-separated); otherwise allow all for developer convenience.
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = utils.SplitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	r.Use(cors.New(corsConfig))

	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	r.GET("/api/records", listRecordsHandler())
	r.POST("/api/records", createRecordHandler())
	r.PUT("/api/records/:id", updateRecordHandler())
	r.DELETE("/api/records/:id", deleteRecordHandler())
	r.GET("/api/records/export", exportRecordsHandler())
	r.GET("/api/dashboard", dashboardHandler())
	r.POST("/api/insights", misInsightsHandler())
	r.POST("/api/assistant", assistantHandler())
	r.NoRoute(customNotFoundHandler)

	// Start listening immediately; the readiness gate returns 503 until the
	// snapshot is loaded.
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	config.ConnectDatabase()
	models.MigrateTable()

	ctx := context.Background()
	raw, err := models.LoadSnapshot(ctx)
	if err != nil {
		logger.WithFields(logrus.Fields{"module": "server.go", "funcName": "main"}).
			Fatalf("failed to load snapshot: %v", err)
	}

	store := models.NewRecordStore(models.SaveSnapshot)
	store.Load(raw)
	recordStore.Store(store)
	logger.WithFields(logrus.Fields{"records": store.Count()}).Info("snapshot loaded")

	// The AI features are optional: without an API key the two endpoints
	// return 503 and everything else keeps working.
	if svc, err := insights.NewService(ctx); err != nil {
		logger.WithFields(logrus.Fields{"module": "server.go"}).
			Warnf("insights disabled: %v", err)
	} else {
		aiService.Store(svc)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	case sig := <-quit:
		logger.WithFields(logrus.Fields{"signal": sig.String()}).Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("graceful shutdown failed: %v", err)
		}
	}
}
