package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"halforms/backend/internal/config"
	"halforms/backend/internal/health"
	"halforms/backend/internal/logger"
	"halforms/backend/internal/monitoring"
	"halforms/backend/internal/service"
	"halforms/backend/internal/storage/memory"
	httptransport "halforms/backend/internal/transport/http"
)

const statsInterval = time.Minute

// serverOptions 命令行参数
type serverOptions struct {
	configFile string
	noSeed     bool
}

// runServer 启动 HAL-FORMS 收件箱服务，收到退出信号后优雅关闭。
func runServer(opts serverOptions) error {
	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.noSeed {
		cfg.Seed.Enabled = false
	}

	// 设置 Gin 模式（基于开发环境标志）
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// 初始化日志系统
	log, err := logger.NewLogger(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		LogFile:     cfg.Log.File,
		MaxSize:     100,
		MaxBackups:  3,
		MaxAge:      28,
		Compress:    true,
		Service:     "halforms",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting halforms server",
		zap.String("log_level", cfg.Log.Level),
		zap.Bool("development", cfg.Log.Development),
		zap.Int("default_page_size", cfg.Pagination.DefaultSize),
		zap.Int("max_page_size", cfg.Pagination.MaxSize),
	)

	// 初始化监控系统
	metrics := monitoring.NewMetrics()

	// 初始化存储层与服务层
	inboxService := service.NewInboxService(memory.NewInboxStore())
	inboxService.SetMetrics(metrics)
	messageService := service.NewMessageService(memory.NewMessageStore())
	messageService.SetMetrics(metrics)

	// 初始化健康检查
	healthChecker := health.NewHealthChecker(map[string]health.Counter{
		"inbox_store":   inboxService,
		"message_store": messageService,
	}, log)

	// 写入演示数据
	if cfg.Seed.Enabled {
		if _, _, err := service.NewSeeder(inboxService, messageService, log).Run(); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	router := httptransport.NewRouter(httptransport.RouterDependencies{
		Config:         cfg,
		InboxService:   inboxService,
		MessageService: messageService,
		Metrics:        metrics,
		Health:         healthChecker,
		Logger:         log,
	})

	httpAddr := cfg.Server.Addr()
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 信号处理
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	// HTTP 服务器 goroutine
	group.Go(func() error {
		log.Info("starting HTTP server", zap.String("address", httpAddr))
		if err := listenAndServe(httpServer, healthChecker.MarkReady); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", zap.Error(err))
			return err
		}
		return nil
	})

	// 定时输出存储统计 goroutine
	group.Go(func() error {
		ticker := time.NewTicker(statsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-groupCtx.Done():
				return nil
			case <-ticker.C:
				log.Debug("store stats",
					zap.Int("inboxes", inboxService.Count()),
					zap.Int("messages", messageService.Count()),
				)
			}
		}
	})

	// 优雅关闭 goroutine
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutdown signal received, gracefully shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", zap.Error(err))
		}

		log.Info("server stopped")
		return nil
	})

	// 等待所有 goroutine 完成
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server error", zap.Error(err))
		return err
	}

	log.Info("server exited cleanly")
	return nil
}

// listenAndServe 绑定端口成功后才调用 onListening，再开始处理请求
func listenAndServe(srv *http.Server, onListening func()) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	onListening()
	return srv.Serve(ln)
}
