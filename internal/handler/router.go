package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reserva-api/internal/handler/api"
	"reserva-api/internal/handler/middleware"
	"reserva-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	rdb *redis.Client,
	customerHandler *api.CustomerHandler,
	reservationHandler *api.ReservationHandler,
	tableHandler *api.TableHandler,
) {
	setupMiddleware(engine, cfg, logger, rdb)
	setupRoutes(engine, customerHandler, reservationHandler, tableHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rdb *redis.Client) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.NewTokenBucket(cfg.RateLimit, rdb))
}

func setupRoutes(
	engine *gin.Engine,
	customerHandler *api.CustomerHandler,
	reservationHandler *api.ReservationHandler,
	tableHandler *api.TableHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine, []route{
		{Method: http.MethodPost, Path: "/register", Handler: customerHandler.Register},
		{Method: http.MethodGet, Path: "/disponibilidad/:date/:time", Handler: reservationHandler.Availability},
		{Method: http.MethodPost, Path: "/reserva", Handler: reservationHandler.Create},
		{Method: http.MethodGet, Path: "/reservas", Handler: reservationHandler.List},
		{Method: http.MethodPost, Path: "/reservas/:id/cancel", Handler: reservationHandler.Cancel},
		{Method: http.MethodPost, Path: "/configurar-mesa", Handler: tableHandler.Reconfigure},
		{Method: http.MethodGet, Path: "/mesas", Handler: tableHandler.List},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		case http.MethodPut:
			engine.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			engine.DELETE(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
