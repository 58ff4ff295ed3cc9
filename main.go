package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/backfireIBGM/RocketInfo/config"
	"github.com/backfireIBGM/RocketInfo/controllers"
	"github.com/backfireIBGM/RocketInfo/routes"
	"github.com/backfireIBGM/RocketInfo/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Info(".env file not found, using system environment", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		log.Warn("chat requests will fail until the key is set", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)

	fetcher := service.NewLaunchFetcher(cfg.LaunchFeedURL, nil, log)
	chat := service.NewChatClientFactory(cfg.Chat(), log)
	svc := service.NewRocketInfoSvc(fetcher, chat, time.Now, log)
	ctrl := controllers.NewRocketInfoCtrl(svc, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Web(ctrl, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
}
