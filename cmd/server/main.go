package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GiacomoGaraccione/gp-belotta/internal/config"
	"github.com/GiacomoGaraccione/gp-belotta/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	var logger *zap.Logger
	if cfg.Server.Mode == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(ginMode(cfg.Server.Mode))
	r := gin.New()
	r.Use(gin.Recovery())

	session := server.NewSession(logger, cfg)
	r.GET("/ws", server.WSHandler(logger, session))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Serve the frontend build with an SPA fallback.
	dist := cfg.Web.Dist
	r.NoRoute(func(c *gin.Context) {
		path := filepath.Join(dist, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(dist, "index.html"))
	})

	logger.Info("listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("session", session.ID()))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
