package app

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/nekogravitycat/bulletin-board-backend/internal/accesslevel"
	"github.com/nekogravitycat/bulletin-board-backend/internal/api"
	"github.com/nekogravitycat/bulletin-board-backend/internal/auth"
	"github.com/nekogravitycat/bulletin-board-backend/internal/bulletin"
)

// Config holds the dependencies and settings required to start the application.
// Exactly one of DBPool and SQLDB is expected to be set; DBPool wins if both are.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	DBPool         *pgxpool.Pool
	SQLDB          *sql.DB
	XSRFSecret     string
	XSRFTTL        time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         *logrus.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	Handler     http.Handler
	XSRFManager *auth.XSRFManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	// Init Components
	xsrfManager := auth.NewXSRFManager(cfg.XSRFSecret, cfg.XSRFTTL)

	var (
		bulletinRepo bulletin.Repository
		alRepo       accesslevel.Repository
	)
	if cfg.DBPool != nil {
		bulletinRepo = bulletin.NewPgxRepository(cfg.DBPool)
		alRepo = accesslevel.NewPgxRepository(cfg.DBPool)
	} else {
		bulletinRepo = bulletin.NewSQLRepository(cfg.SQLDB)
		alRepo = accesslevel.NewSQLRepository(cfg.SQLDB)
	}

	// Bulletin Module
	bulletinService := bulletin.NewService(bulletinRepo)

	// AccessLevel Module
	alService := accesslevel.NewService(alRepo)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		Logger:             log,
		BulletinService:    bulletinService,
		AccessLevelService: alService,
		XSRFManager:        xsrfManager,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	return &Container{
		Router:      router,
		Handler:     api.NewHandler(router),
		XSRFManager: xsrfManager,
	}
}
