package httptransport

import (
	"net/http"
	"time"

	gincors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"halforms/backend/internal/config"
	"halforms/backend/internal/health"
	"halforms/backend/internal/middleware"
	"halforms/backend/internal/monitoring"
	"halforms/backend/internal/service"
)

// Handler 聚合所有 HTTP 处理逻辑。
type Handler struct {
	inboxes    *service.InboxService
	messages   *service.MessageService
	pagination config.PaginationConfig
	baseURL    string
}

// RouterDependencies 路由器依赖项
type RouterDependencies struct {
	Config         *config.Config
	InboxService   *service.InboxService
	MessageService *service.MessageService
	Metrics        *monitoring.Metrics   // 可选，为空时不暴露 /metrics
	Health         *health.HealthChecker // 可选
	Logger         *zap.Logger
}

// NewRouter 创建并返回 Gin 路由实例。
func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(middleware.RecoveryHandler(logger, deps.Metrics))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders())
	if deps.Metrics != nil {
		router.Use(middleware.HTTPMetrics(deps.Metrics))
	}
	router.Use(middleware.BodySizeLimit(deps.Config.Server.MaxBodyBytes))

	// CORS 配置
	corsConfig := gincors.Config{
		AllowOrigins: deps.Config.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{
			"Content-Length",
			"Location",
			middleware.RequestIDHeader,
			"X-RateLimit-Limit",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// 如果允许所有来源，则需清空凭证支持。
	for _, origin := range corsConfig.AllowOrigins {
		if origin == "*" {
			corsConfig.AllowCredentials = false
			break
		}
	}
	router.Use(gincors.New(corsConfig))

	router.NoRoute(func(c *gin.Context) {
		NotFound(c, MsgRouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		Error(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})

	// 健康检查与指标不参与限流
	router.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		c.JSON(http.StatusOK, deps.Health.CheckHealth())
	})
	if deps.Health != nil {
		router.GET("/health/live", gin.WrapF(deps.Health.LiveEndpoint))
		router.GET("/health/ready", gin.WrapF(deps.Health.ReadyEndpoint))
	}
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.HTTPHandler()))
	}

	handler := &Handler{
		inboxes:    deps.InboxService,
		messages:   deps.MessageService,
		pagination: deps.Config.Pagination,
		baseURL:    deps.Config.Server.BaseURL,
	}

	apiRoutes := router.Group(apiPath)
	apiRoutes.Use(middleware.RateLimit(deps.Config.Server.RateLimit, deps.Config.Server.RateBurst, deps.Metrics))
	{
		apiRoutes.GET("", handler.root)

		inboxRoutes := apiRoutes.Group("/inboxes")
		{
			inboxRoutes.GET("", handler.listInboxes)
			inboxRoutes.POST("", handler.createInbox)
			inboxRoutes.GET("/:id", handler.getInbox)
			inboxRoutes.PUT("/:id", handler.updateInbox)
			inboxRoutes.DELETE("/:id", handler.deleteInbox)

			inboxRoutes.GET("/:id/messages", handler.listMessages)
			inboxRoutes.POST("/:id/messages", handler.createMessage)
			inboxRoutes.GET("/:id/messages/:messageId", handler.getMessage)
			inboxRoutes.PUT("/:id/messages/:messageId", handler.updateMessage)
			inboxRoutes.DELETE("/:id/messages/:messageId", handler.deleteMessage)
		}
	}

	return router
}

// links 返回当前请求使用的链接生成器
func (h *Handler) links(c *gin.Context) linkBuilder {
	return newLinkBuilder(c, h.baseURL)
}
