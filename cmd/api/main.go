package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tubekeep/internal/api/handler"
	"tubekeep/internal/api/middleware"
	"tubekeep/internal/api/router"
	"tubekeep/internal/config"
	"tubekeep/internal/downloader"
	"tubekeep/internal/infra/database"
	infraRedis "tubekeep/internal/infra/redis"
	"tubekeep/internal/repository"
	"tubekeep/internal/service"
	"tubekeep/internal/youtube"
	"tubekeep/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/lrstanley/go-ytdlp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 설정 로드
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 로그 시스템 초기화
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 데이터베이스 초기화 (스키마 생성 + 기본 폴더 시드)
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	// Redis 초기화 (선택, 실패하면 검색 캐시 없이 동작)
	var cache *goredis.Client
	if cfg.Redis.Enabled {
		cache, err = infraRedis.New(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis init failed, search cache disabled", zap.Error(err))
		} else {
			defer infraRedis.Close(cache)
		}
	}

	// yt-dlp 바이너리 확보 (실패해도 PATH의 바이너리로 동작 가능)
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		logger.Warn("yt-dlp install check failed", zap.Error(err))
	}

	// 다운로드 디스패처 초기화 + 디렉터리 생성
	dispatcher := downloader.NewYTDLP(&cfg.Download)
	if err := dispatcher.EnsureDirs(); err != nil {
		logger.Fatal("Failed to create download directories", zap.Error(err))
	}

	// Gin 모드 설정
	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 의존성 초기화 (Repository -> Service -> Handler)
	folderRepo := repository.NewFolderRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	ytClient := youtube.NewClient(&cfg.YouTube)

	folderService := service.NewFolderService(folderRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, folderRepo)
	searchService := service.NewSearchService(ytClient, cache, cfg.Redis.CacheTTLDuration(), cfg.YouTube.SearchLimit)
	downloadService := service.NewDownloadService(dispatcher)

	searchHandler := handler.NewSearchHandler(searchService)
	downloadHandler := handler.NewDownloadHandler(downloadService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	folderHandler := handler.NewFolderHandler(folderService)

	// 기본 라우트
	r.GET("/healthz", healthCheckHandler(cfg))
	r.GET("/", rootHandler(cfg))

	// 업무 라우트 등록
	router.Setup(r, searchHandler, downloadHandler, favoriteHandler, folderHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.String("database", cfg.Database.Path),
		zap.String("downloads", cfg.Download.RootDir),
	)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 종료 신호 대기 후 정상 종료
	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// healthCheckHandler 헬스 체크 핸들러
func healthCheckHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"mode":      cfg.App.Mode,
		})
	}
}

// rootHandler 루트 핸들러
func rootHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
			"project": cfg.App.Name,
			"version": cfg.App.Version,
			"mode":    cfg.App.Mode,
		})
	}
}
