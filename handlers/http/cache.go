package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/john-san/rest-api/cache"
)

type CacheHandler struct {
	catalog *cache.Catalog
}

func NewCacheHandler(catalog *cache.Catalog) *CacheHandler {
	return &CacheHandler{catalog: catalog}
}

// GetCacheStats handles GET /api/v1/cache/stats
func (h *CacheHandler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.catalog.Stats()})
}
