package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler reports liveness of the service and its backing stores.
type HealthHandler struct {
	Mongo *mongo.Client
	Redis *redis.Client
}

// NewHealthHandler wires a HealthHandler.
func NewHealthHandler(mongoClient *mongo.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{Mongo: mongoClient, Redis: redisClient}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	overall := "ok"
	mongoStatus := "up"
	redisStatus := "up"

	if err := h.Mongo.Ping(ctx, nil); err != nil {
		mongoStatus = "down"
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	if err := h.Redis.Ping(ctx).Err(); err != nil {
		redisStatus = "down"
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status": overall,
		"mongo":  mongoStatus,
		"redis":  redisStatus,
	})
}
