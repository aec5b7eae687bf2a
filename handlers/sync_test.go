package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuidarte/models"
)

type stubSyncService struct {
	resp   models.SyncResponse
	gotReq models.SyncRequest
	calls  int
}

func (s *stubSyncService) Sync(_ context.Context, req models.SyncRequest) models.SyncResponse {
	s.calls++
	s.gotReq = req
	return s.resp
}

func newSyncRouter(svc *stubSyncService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/testimonials/sync", NewSyncHandler(svc).SyncStatusHandler)
	return r
}

func TestSyncStatusHandlerSuccess(t *testing.T) {
	svc := &stubSyncService{
		resp: models.SyncResponse{
			Statuses: map[string]string{"p1": "Publicado"},
			FoundLinks: map[string]models.LinkResult{
				"l1": {PageID: "page-9", Status: "Revision", NotionURL: "https://notion.so/page-9"},
			},
		},
	}
	r := newSyncRouter(svc)

	body := `{"pageIds":["p1"],"searchCandidates":[{"id":"l1","clientName":"Ana"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Publicado", resp.Statuses["p1"])
	assert.Equal(t, "page-9", resp.FoundLinks["l1"].PageID)

	assert.Equal(t, []string{"p1"}, svc.gotReq.PageIDs)
	require.Len(t, svc.gotReq.SearchCandidates, 1)
	assert.Equal(t, "Ana", svc.gotReq.SearchCandidates[0].ClientName)
}

func TestSyncStatusHandlerMalformedBody(t *testing.T) {
	svc := &stubSyncService{}
	r := newSyncRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials/sync", strings.NewReader(`{"pageIds": "nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestSyncStatusHandlerEmptyBatch(t *testing.T) {
	svc := &stubSyncService{
		resp: models.SyncResponse{
			Statuses:   map[string]string{},
			FoundLinks: map[string]models.LinkResult{},
		},
	}
	r := newSyncRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials/sync", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"statuses":{},"foundLinks":{}}`, w.Body.String())
}
