package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"encircle/internal/api/ws"
	"encircle/internal/config"
	"encircle/internal/room"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(log.Named("http")), gin.Recovery())

	// WebSocket for live renderer updates
	r.GET("/ws", hub.HandleWS)

	r.GET("/config", NewConfigHandler(cfg).GetConfig)

	rooms := r.Group("/rooms")
	rooms.POST("", CreateRoomHandler(rm))
	rooms.GET("/:code", GetRoomHandler(rm))
	rooms.GET("/:code/borders", BordersHandler(rm))
	rooms.POST("/:code/points", PlaceHandler(rm))
	rooms.POST("/:code/reset", ResetHandler(rm))

	return r
}

// requestLogger logs one line per request through zap.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
