package app

import (
	"net/http"

	"go-hris-console/internal/config"
	"go-hris-console/internal/dashboard"
	"go-hris-console/internal/middleware"
	"go-hris-console/internal/navigation"
	"go-hris-console/internal/rbac"
	"go-hris-console/internal/rbac/infra"
	"go-hris-console/internal/request"
	"go-hris-console/internal/session"
	"go-hris-console/internal/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(router *gin.Engine, cfg config.Config, deps *Infra) error {
	// --- Stores ---
	var (
		revocationStore session.RevocationStore
		stateStore      request.StateStore
		menuStore       navigation.MenuStore
	)
	if deps.Redis != nil {
		revocationStore = session.NewRedisRevocationStore(deps.Redis)
		stateStore = request.NewRedisStateStore(deps.Redis)
		menuStore = navigation.NewRedisMenuStore(deps.Redis)
	} else {
		revocationStore = session.NewMemoryRevocationStore()
		stateStore = request.NewMemoryStateStore()
		menuStore = navigation.NewMemoryMenuStore()
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicies)
	if err != nil {
		return err
	}

	// --- Services ---
	upstreamClient := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	parser := session.NewParser(cfg.JWTSecret)
	terminator := session.NewTerminator(revocationStore, deps.Audit)
	dashboardService := dashboard.NewService(upstreamClient)
	requestService := request.NewService(upstreamClient, stateStore, deps.Publisher, deps.Audit, cfg.FlashTTL)
	menus := navigation.NewMenus(navigation.NewClickBus(), menuStore, terminator)

	// --- Handlers ---
	sessionHandler := session.NewHandler(terminator)
	navigationHandler := navigation.NewHandler(menus)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	requestHandler := request.NewHandler(requestService)

	// --- Middleware ---
	router.Use(
		middleware.ContextLogger(zap.L()),
		middleware.AccessLog(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(parser, revocationStore),
		middleware.RateLimitByUser(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)
	{
		session.RegisterRoutes(api, sessionHandler)
		navigation.RegisterRoutes(api, navigationHandler, rbacService)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
		request.RegisterRoutes(api, requestHandler, rbacService, deps.Redis)
	}

	return nil
}
