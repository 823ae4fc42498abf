package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ovenbook/internal/handler/api"
	"ovenbook/internal/handler/middleware"
	"ovenbook/internal/pkg/config"
	"ovenbook/internal/usecase"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	ovenHandler *api.OvenHandler,
	bookingHandler *api.BookingHandler,
	tokenValidator usecase.TokenValidator,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, ovenHandler, bookingHandler, tokenValidator)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	ovenHandler *api.OvenHandler,
	bookingHandler *api.BookingHandler,
	tokenValidator usecase.TokenValidator,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := middleware.RequireAuth(tokenValidator)
	requireAdmin := middleware.RequireAdmin()

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
		})

		authRequired := auth.Group("")
		authRequired.Use(requireAuth)
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
		})
	}

	ovens := engine.Group("/ovens")
	{
		// Listing is public: oven availability is not sensitive
		addRoutes(ovens, []route{
			{Method: http.MethodGet, Path: "", Handler: ovenHandler.List},
			{Method: http.MethodPost, Path: "", Handler: ovenHandler.Create, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			{Method: http.MethodPut, Path: "", Handler: ovenHandler.SetStatus, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(requireAuth)
	{
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.Update},
			{Method: http.MethodPost, Path: "/cancel", Handler: bookingHandler.Cancel},
			{Method: http.MethodGet, Path: "/watch", Handler: bookingHandler.Watch},
		})
	}
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

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
