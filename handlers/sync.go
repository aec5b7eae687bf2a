package handlers

import (
	"net/http"

	"cuidarte/models"
	syncsvc "cuidarte/services/sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SyncHandler exposes the status reconciliation endpoint.
type SyncHandler struct {
	Sync syncsvc.SyncService
}

func NewSyncHandler(sync syncsvc.SyncService) *SyncHandler {
	return &SyncHandler{Sync: sync}
}

// SyncStatusHandler checks known page IDs and searches for unlinked
// clients. Per-item failures never abort the call; only a malformed
// body does.
func (h *SyncHandler) SyncStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid sync request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	logger.Info("Processing sync request",
		zap.Int("pageIds", len(req.PageIDs)),
		zap.Int("searchCandidates", len(req.SearchCandidates)))

	resp := h.Sync.Sync(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
