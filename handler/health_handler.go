package handler

import (
	"context"
	"net/http"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	cache       *services.ListCache
	startedAt   time.Time
}

func NewHealthHandler(mongoClient *mongo.Client, cache *services.ListCache) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		cache:       cache,
		startedAt:   time.Now(),
	}
}

// GetHealth reports liveness plus dependency status. MongoDB being down
// degrades the status to 503; the cache being disabled or down does not.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	httpStatus := http.StatusOK

	mongoStatus := "ok"
	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		mongoStatus = "unreachable"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	cacheStatus := "disabled"
	if h.cache.Enabled() {
		cacheStatus = "ok"
	}

	c.JSON(httpStatus, gin.H{
		"status":         status,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"mongo":          mongoStatus,
		"cache":          cacheStatus,
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}
