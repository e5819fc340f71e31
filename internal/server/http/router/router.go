package router

import (
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/polkiloo/pawshope/internal/config"
	"github.com/polkiloo/pawshope/internal/domain/repository"
	"github.com/polkiloo/pawshope/internal/server/http/dto"
	"github.com/polkiloo/pawshope/internal/server/http/handlers"
	"github.com/polkiloo/pawshope/internal/server/http/middleware"
)

// Params collects router dependencies.
type Params struct {
	fx.In

	Facade   handlers.PaymentsFacade
	Config   *config.Config
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Admin    middleware.CredentialVerifier `optional:"true"`
	Health   repository.HealthChecker      `optional:"true"`
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.Recovery(p.Logger, p.Config.Development()))
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.SecurityHeaders())
	if c, ok := corsConfig(p.Config.AllowedOrigins); ok {
		engine.Use(cors.New(c))
	}
	engine.Use(middleware.DecompressRequest(middleware.DefaultMaxBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	donationHandler := handlers.NewDonationHandler(p.Facade, p.Config.PublicBaseURL, p.Config.Development(), p.Logger)
	webhookHandler := handlers.NewWebhookHandler(p.Facade)
	metaHandler := handlers.NewMetaHandler(p.Config.PayPalClientID, p.Config.PayPalMode, p.Health, p.Logger)

	api := engine.Group("/api")
	api.GET("/health", metaHandler.Health)

	paypal := api.Group("/paypal")
	paypal.POST("/create-order", donationHandler.CreateOrder)
	paypal.POST("/create-card-order", donationHandler.CreateCardOrder)
	paypal.POST("/capture-order", donationHandler.CaptureOrder)
	paypal.GET("/donation/:id", donationHandler.Donation)
	paypal.GET("/donations", middleware.AdminRequired(p.Admin), donationHandler.Donations)
	paypal.GET("/success", handlers.PaymentSuccess)
	paypal.GET("/cancel", handlers.PaymentCancel)
	paypal.POST("/webhook", webhookHandler.Receive)
	paypal.GET("/config", metaHandler.Config)

	if p.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))
	}

	if p.Config.StaticDir != "" {
		engine.StaticFile("/", filepath.Join(p.Config.StaticDir, "index.html"))
	}
	engine.NoRoute(notFound(p.Config.StaticDir))

	return engine
}

func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		AllowWildcard:    true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = origins
	}
	return c, true
}

// notFound serves files from dir when present, otherwise a JSON 404.
func notFound(dir string) gin.HandlerFunc {
	var files http.FileSystem
	if dir != "" {
		files = gin.Dir(dir, false)
	}
	return func(c *gin.Context) {
		if files != nil && isStaticCandidate(c.Request) {
			name := path.Clean(c.Request.URL.Path)
			if f, err := files.Open(name); err == nil {
				info, statErr := f.Stat()
				_ = f.Close()
				if statErr == nil && !info.IsDir() {
					c.FileFromFS(name, files)
					return
				}
			}
		}
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Endpoint not found"})
	}
}

func isStaticCandidate(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	return !strings.HasPrefix(r.URL.Path, "/api/")
}
