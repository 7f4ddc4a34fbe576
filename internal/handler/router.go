package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"closet-by-era/internal/domain/user"
	"closet-by-era/internal/handler/api"
	"closet-by-era/internal/handler/middleware"
	"closet-by-era/internal/pkg/config"
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
	cartHandler *api.CartHandler,
	couponHandler *api.CouponHandler,
	customerHandler *api.CustomerHandler,
	segmentHandler *api.SegmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, cartHandler, couponHandler, customerHandler, segmentHandler, authMiddleware)
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
	cartHandler *api.CartHandler,
	couponHandler *api.CouponHandler,
	customerHandler *api.CustomerHandler,
	segmentHandler *api.SegmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodPost, Path: "/coupon/apply", Handler: cartHandler.ApplyCoupon},
			})

			checkout := cart.Group("")
			checkout.Use(authMiddleware.RequireAuth())
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/coupon/redeem", Handler: cartHandler.RedeemCoupon},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			superAdminOnly := authMiddleware.RequireRoleAtLeast(user.RoleSuperAdmin)

			addRoutes(admin.Group("/coupons"), []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: couponHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete, Mw: []gin.HandlerFunc{superAdminOnly}},
				{Method: http.MethodPost, Path: "/:id/reset-usage", Handler: couponHandler.ResetUsage, Mw: []gin.HandlerFunc{superAdminOnly}},
			})

			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/customers", Handler: customerHandler.List},
				{Method: http.MethodGet, Path: "/analytics/segments", Handler: segmentHandler.Segments},
			})
		}
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
