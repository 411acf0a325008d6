package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/sirupsen/logrus"

	"github.com/nekogravitycat/bulletin-board-backend/internal/accesslevel"
	alHttp "github.com/nekogravitycat/bulletin-board-backend/internal/accesslevel/http"
	"github.com/nekogravitycat/bulletin-board-backend/internal/auth"
	"github.com/nekogravitycat/bulletin-board-backend/internal/bulletin"
	bulletinHttp "github.com/nekogravitycat/bulletin-board-backend/internal/bulletin/http"
	"github.com/nekogravitycat/bulletin-board-backend/internal/logger"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/response"
)

// Config holds everything the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	Logger             *logrus.Logger
	BulletinService    bulletin.Service
	AccessLevelService accesslevel.Service
	XSRFManager        *auth.XSRFManager
	RateLimitRPS       float64
	RateLimitBurst     int
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (request id, logging, recovery,
// CORS, rate limiting) and registering routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middleware:
	// - RequestID: tags the request for log correlation.
	// - RequestLogger: one structured log entry per request.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 envelope.
	r.Use(
		RequestID(),
		logger.RequestLogger(cfg.Logger),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			cfg.Logger.WithField("panic", recovered).Error("handler panicked")
			response.Abort(c, http.StatusInternalServerError, "internal server error")
		}),
	)

	r.Use(cors.New(corsConfig(cfg)))
	r.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.New(http.StatusNotFound, "the requested resource could not be found"))
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, apperror.New(http.StatusMethodNotAllowed, "the "+c.Request.Method+" method is not supported for this resource"))
	})

	issueXSRF := auth.IssueXSRF(cfg.XSRFManager)
	verifyXSRF := auth.VerifyXSRF(cfg.XSRFManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	bulletinHandler := bulletinHttp.NewHandler(cfg.BulletinService)
	alHandler := alHttp.NewHandler(cfg.AccessLevelService)

	root := r.Group("")
	{
		bulletinHttp.RegisterRoutes(root, bulletinHandler, issueXSRF, verifyXSRF)
		alHttp.RegisterRoutes(root, alHandler, issueXSRF, verifyXSRF)
	}

	return r
}

// NewHandler wraps the router with method override and response compression.
func NewHandler(router *gin.Engine) http.Handler {
	return gzhttp.GzipHandler(MethodOverride(router))
}

func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		var origins []string
		for _, o := range strings.Split(cfg.ProdOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		config.AllowOrigins = origins
	} else {
		config.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081",
		}
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{
		"Origin", "Content-Type", auth.XSRFHeaderName, MethodOverrideHeader, RequestIDHeader,
	}
	config.ExposeHeaders = []string{RequestIDHeader}
	config.AllowCredentials = true
	return config
}
