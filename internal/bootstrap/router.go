package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	httpapi "github.com/devfolio-io/portfolio-backend/internal/api/http"
	"github.com/devfolio-io/portfolio-backend/internal/api/http/middleware"
	"github.com/devfolio-io/portfolio-backend/internal/projects"
	"github.com/devfolio-io/portfolio-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DB             *mongo.Client
	DBName         string
	Blobs          uploads.BlobStore
	Cache          *projects.ListCache
	PublicBaseURL  string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware(dep.CORSOrigins))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	filesHandler := httpapi.NewFilesHandler(dep.Blobs)
	filesHandler.RegisterRoutes(r)

	var db *mongo.Database
	if dep.DB != nil {
		db = dep.DB.Database(dep.DBName)
	}

	projectHandler := projects.NewHandler(projects.HandlerDeps{
		Store:   projects.NewMongoStore(db),
		Blobs:   dep.Blobs,
		Cache:   dep.Cache,
		BaseURL: dep.PublicBaseURL,
	})

	limiter := middleware.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst)
	projectsGroup := r.Group("/api/projects")
	projectsGroup.Use(rateLimitCreates(limiter))
	projectHandler.Register(projectsGroup)

	return r
}

// Only writes are throttled; the list route stays open for dashboards.
func rateLimitCreates(rl *middleware.RateLimiter) gin.HandlerFunc {
	limit := rl.Middleware()
	return func(c *gin.Context) {
		if c.Request.Method == "POST" {
			limit(c)
			return
		}
		c.Next()
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-Id")

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
