package handler

import (
	"net/http"

	"github.com/wyllersu/lifecyle-asset-insight/internal/config"

	"github.com/gin-gonic/gin"
)

// ClientConfigHandler exposes the settings the SPA needs at boot. The maps
// key is client-side only; the server never calls the maps provider.
type ClientConfigHandler struct{ cfg *config.Config }

func NewClientConfigHandler(cfg *config.Config) *ClientConfigHandler {
	return &ClientConfigHandler{cfg: cfg}
}

func (h *ClientConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"maps_api_key": h.cfg.MapsAPIKey,
	})
}
