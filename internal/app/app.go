package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/twitchembed/server/internal/controller"
	playerRedis "github.com/twitchembed/server/internal/repository/player/redis"
	"github.com/twitchembed/server/internal/repository/surface/inmemory"
	"github.com/twitchembed/server/internal/service/player"
	"github.com/twitchembed/server/pkg/ctxlogger"
	"github.com/twitchembed/server/pkg/redisclient"
	"github.com/twitchembed/server/pkg/twitchdata"
)

type AppConfig struct {
	Host               string `json:"host"`
	Port               int    `json:"port"`
	LogLevel           string `json:"log_level"`
	PlayerTTLHours     int    `json:"player_ttl_hours"`
	RedisPort          int    `json:"redis_port"`
	RedisHost          string `json:"redis_host"`
	RedisPassword      string `json:"-"`
	TwitchClientID     string `json:"twitch_client_id"`
	TwitchClientSecret string `json:"-"`
}

func (cfg *AppConfig) Validate() error {
	if cfg.PlayerTTLHours < 1 {
		return fmt.Errorf("player ttl must be greater than 0")
	}
	return nil
}

func Run(ctx context.Context, cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		log.Fatal(err)
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}),
	}

	logger := slog.New(&h)

	rc, err := redisclient.NewRedisClient(&redisclient.Config{
		Port:     cfg.RedisPort,
		Host:     cfg.RedisHost,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer rc.Close()

	playerRepo := playerRedis.NewRepo(rc, time.Duration(cfg.PlayerTTLHours)*time.Hour)
	surfaceRepo := inmemory.NewRepo()

	playerService := player.NewService(playerRepo, surfaceRepo, nil, logger)
	if cfg.TwitchClientID != "" {
		resolver, err := twitchdata.New(cfg.TwitchClientID, cfg.TwitchClientSecret)
		if err != nil {
			return fmt.Errorf("failed to create twitch resolver: %w", err)
		}
		playerService = player.NewService(playerRepo, surfaceRepo, resolver, logger)
	} else {
		logger.Info("no twitch credentials configured, content references are not probed")
	}

	controller := controller.NewController(playerService, logger)
	server := &http.Server{Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), Handler: controller.GetMux()}

	// graceful shutdown
	serverCtx, serverStopCtx := context.WithCancel(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		shutdownCtx, c := context.WithTimeout(serverCtx, 30*time.Second)
		defer c()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	logger.InfoContext(serverCtx, "starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-serverCtx.Done()

	return nil
}
