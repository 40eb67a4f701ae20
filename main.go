package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharmaradar/config"
	_ "pharmaradar/docs"
	"pharmaradar/internal/service"
	"pharmaradar/internal/tokenstore"
	"pharmaradar/internal/transport/rest"
	"pharmaradar/internal/upstream"
	"pharmaradar/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title PharmaRadar Portal API
// @version 1.0
// @description Bramka portalu aptecznego: sesje, leki, zdarzenia lekowe, newsy i przepisy prawne z backendu aptecznego

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name pharmaradar_session
func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("nie udało się wczytać konfiguracji", zap.Error(err))
	}

	var store tokenstore.TokenStore
	if cfg.Redis.Addr != "" || cfg.Redis.URL != "" {
		redisStore, err := tokenstore.NewRedisStore(cfg.Redis, cfg.Session.TTL)
		if err != nil {
			log.Fatal("nie udało się połączyć z Redis", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
		log.Info("magazyn sesji: Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		store = tokenstore.NewMemoryStore(cfg.Session.TTL)
		log.Warn("magazyn sesji: pamięć procesu, sesje znikną przy restarcie")
	}

	client := upstream.NewClient(cfg.Upstream, store, log)

	services := service.NewServices(service.Deps{
		Client: client,
		Store:  store,
		Logger: log,
		Config: cfg,
	})

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("błąd uruchomienia serwera", zap.Error(err))
		}
	}()

	log.Info("serwer uruchomiony",
		zap.String("addr", srv.Addr),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("wyłączanie serwera...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("błąd przy zatrzymaniu serwera", zap.Error(err))
	}

	log.Info("serwer zatrzymany")
}
