package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/infrastructure/communication"
	"divron.com/attendance/infrastructure/devops"
	"divron.com/attendance/logger"
	"divron.com/attendance/storage"
	"divron.com/attendance/web/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func openKV(ctx context.Context, cfg devops.StorageConfig) (storage.KV, error) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.Dir)
	case "redis":
		return storage.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "mysql":
		return storage.NewGormKV(cfg.MysqlDSN)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

func main() {
	_ = godotenv.Load()

	cfg, err := devops.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog := logger.New(cfg.LogFile)
	defer zlog.Sync()

	ctx := context.Background()
	kv, err := openKV(ctx, cfg.Storage)
	if err != nil {
		zlog.Fatal("open storage", zap.Error(err))
	}

	store := core.NewStore(kv)
	if err := store.Init(ctx); err != nil {
		zlog.Fatal("init store", zap.Error(err))
	}

	var notifier *communication.Slack
	if cfg.Slack != nil {
		notifier = communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
			InfoChannelID:  cfg.Slack.InfoChannel,
			ErrorChannelID: cfg.Slack.ErrorChannel,
		})
	}

	h := &handlers.Handler{
		Store:      store,
		Log:        zlog,
		Secret:     []byte(cfg.JWTSecret),
		SessionTTL: time.Duration(cfg.SessionTTLSeconds) * time.Second,
		Notifier:   notifier,
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	handlers.Register(r, h)

	zlog.Info("listening", zap.String("addr", cfg.Listen), zap.String("backend", cfg.Storage.Backend))
	if err := r.Run(cfg.Listen); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
