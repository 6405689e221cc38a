package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catchpac/internal/domain/user"
	"catchpac/internal/handler/api"
	"catchpac/internal/handler/middleware"
	"catchpac/internal/pkg/config"
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
	requestHandler *api.RequestHandler,
	quoteHandler *api.QuoteHandler,
	pricingHandler *api.PricingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, requestHandler, quoteHandler, pricingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	requestHandler *api.RequestHandler,
	quoteHandler *api.QuoteHandler,
	pricingHandler *api.PricingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest},
				{Method: http.MethodGet, Path: "", Handler: requestHandler.ListRequests},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.GetRequest},
				{Method: http.MethodPost, Path: "/:id/quotes", Handler: quoteHandler.SubmitQuote},
				{Method: http.MethodPost, Path: "/:id/quotes/:quoteID/select", Handler: quoteHandler.SelectQuote},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.ListMyQuotes,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
			})
		}

		// Market pricing is a public read
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/pricing", Handler: pricingHandler.MarketPricing},
		})
	}
}

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
