package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers the router mounts.
type HandlerBundle struct {
	BookTestimonial gin.HandlerFunc
	SyncStatus      gin.HandlerFunc
}
