package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hatchery_backend/middlewares"
	"github.com/mmdatafocus/hatchery_backend/models"
	"github.com/sirupsen/logrus"
)

// RouterConfig is the process-wide routing configuration, built once at
// startup and handed to NewRouter.
type RouterConfig struct {
	Logger *logrus.Logger

	// AllowedOrigins is the CORS allowlist; empty means allow-all outside
	// production.
	AllowedOrigins []string
	Production     bool
}

// NewRouter builds the full HTTP surface: auth token endpoints, one CRUD
// endpoint set per entity, and the report endpoints. Everything except
// /healthz and the token endpoints sits behind the auth middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIdMiddleware())
	r.Use(errorLogger(cfg.Logger))

	corsConfig := cors.DefaultConfig()
	if cfg.Production {
		// Safer default: deny all if not configured in production.
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization", "X-Request-ID")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	api := r.Group("/api")
	api.POST("/auth/token/", ObtainToken())
	api.POST("/auth/token/refresh/", RefreshToken())

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())

	RegisterCRUD[models.EggCollection](protected, "egg-collections", CrudConfig{
		FilterFields: []string{"date", "animal_type"},
		SearchFields: []string{"farmer_name", "label"},
	})
	RegisterCRUD[models.EggSetting](protected, "egg-settings", CrudConfig{
		Preloads:     []string{"Collections"},
		FilterFields: []string{"setting_date", "type_of_eggs"},
		SearchFields: []string{"batch_id"},
	})
	RegisterCRUD[models.Incubator](protected, "incubators", CrudConfig{
		SearchFields: []string{"name"},
	})
	RegisterCRUD[models.IncubationBatch](protected, "incubations", CrudConfig{
		FilterFields: []string{"incubator_id", "status"},
		SearchFields: []string{"batch_id", "breed"},
	})
	RegisterCRUD[models.FertileEggCandling](protected, "egg-candling/fertile", CrudConfig{
		FilterFields: []string{"candling_date"},
		SearchFields: []string{"batch_id"},
	})
	RegisterCRUD[models.ClearEggCandling](protected, "egg-candling/clear", CrudConfig{
		FilterFields: []string{"candling_date"},
		SearchFields: []string{"batch_id"},
	})
	RegisterCRUD[models.LockdownBatch](protected, "lockdown-batches", CrudConfig{
		FilterFields:     []string{"lockdown_date"},
		BoolFilterFields: []string{"notification_sent"},
		SearchFields:     []string{"batch_id", "label"},
	})
	RegisterCRUD[models.HatchingRecord](protected, "hatchings", CrudConfig{
		FilterFields: []string{"status", "hatch_date"},
		SearchFields: []string{"batch_id", "label"},
	})
	RegisterCRUD[models.PackagingBatch](protected, "packaging-batches", CrudConfig{
		FilterFields: []string{"status", "packaging_date"},
		SearchFields: []string{"batch_id", "label"},
	})
	RegisterCRUD[models.SaleRecord](protected, "sales", CrudConfig{
		FilterFields: []string{"date", "status", "payment_method"},
		SearchFields: []string{"batch_id", "customer", "product_type"},
	})
	RegisterCRUD[models.Alert](protected, "alerts", CrudConfig{
		FilterFields: []string{"severity", "status"},
		SearchFields: []string{"type", "source", "message"},
	})
	RegisterCRUD[models.Notification](protected, "notifications", CrudConfig{
		FilterFields:     []string{"user_id"},
		BoolFilterFields: []string{"is_read"},
		SearchFields:     []string{"title", "message"},
	})

	protected.GET("/reports/hatch-rate/", HatchRateReport())
	protected.GET("/reports/sales/", SalesSummaryReport())
	protected.GET("/reports/sales/export/", SalesSummaryExport())
	protected.GET("/reports/production/", ProductionSummaryReport())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	})

	return r
}

// RouterConfigFromEnv assembles the routing configuration from the process
// environment.
func RouterConfigFromEnv(logger *logrus.Logger) RouterConfig {
	return RouterConfig{
		Logger:         logger,
		AllowedOrigins: splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Production:     strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production"),
	}
}

// errorLogger logs only failed requests.
func errorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if logger == nil {
			return
		}
		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
