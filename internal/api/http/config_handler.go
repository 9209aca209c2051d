package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"encircle/internal/config"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetConfig returns the defaults a renderer needs before creating a room:
// board size, hit radius and player names.
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"board":   h.cfg.Board,
		"players": h.cfg.Players,
	})
}
