package router

import (
	"time"

	"supplementdb/internal/config"
	"supplementdb/internal/handler"
	"supplementdb/internal/middleware"
	"supplementdb/internal/repository"
	"supplementdb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	supplementRepo := repository.NewSupplementRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	supplementSvc := service.NewSupplementService(supplementRepo)
	exportSvc := service.NewExportService(supplementRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	supplementsH := handler.NewSupplementsHandler(supplementSvc, exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/supplements", supplementsH.Search)
		v1.GET("/supplements/:barcode", supplementsH.GetByBarcode)
		v1.GET("/export", supplementsH.Export)
	}

	return r
}
