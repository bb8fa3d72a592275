package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/multidisease/internal/predict"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the router serves. DB may be nil.
type Deps struct {
	Predictor  *predict.Service
	DB         HealthChecker
	Logger     *logrus.Logger
	StaticRoot string
}

func NewRouter(deps Deps) *gin.Engine {
	h := &handlers{
		predictor: deps.Predictor,
		logger:    deps.Logger,
	}

	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}),
		requestID(),
	)

	// Serve the prediction form from the web directory.
	router.Static("/static", deps.StaticRoot)
	router.StaticFile("/", filepath.Join(deps.StaticRoot, "index.html"))
	router.StaticFile("/styles.css", filepath.Join(deps.StaticRoot, "styles.css"))
	router.StaticFile("/app.js", filepath.Join(deps.StaticRoot, "app.js"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		models := len(deps.Predictor.Registry().Infos())
		if deps.DB == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled", "models": models})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := deps.DB.Ping(ctx); err != nil {
			dbStatus = fmt.Sprintf("unhealthy: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     dbStatus,
				"models": models,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"db":     dbStatus,
			"models": models,
		})
	})

	api := router.Group("/api")
	{
		api.GET("/diseases", h.listDiseases)
		api.POST("/predict/:disease", h.predict)
		api.GET("/predictions", h.history)
	}

	return router
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// requestID propagates X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}
