package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuidarte/notion"
)

const testDatabaseID = "db-testimonials"

// testPacing keeps chunk semantics while making tests fast.
func testPacing() Pacing {
	return Pacing{ChunkSize: 3, ChunkPause: 5 * time.Millisecond, SearchPause: time.Millisecond}
}

func newStatusServer(t *testing.T, failing map[string]bool, handlerDelay time.Duration) (*httptest.Server, *atomic.Int64, *atomic.Int64) {
	t.Helper()
	var total, inflight, maxInflight atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/pages/{id}", func(w http.ResponseWriter, r *http.Request) {
		total.Add(1)
		cur := inflight.Add(1)
		defer inflight.Add(-1)
		for {
			seen := maxInflight.Load()
			if cur <= seen || maxInflight.CompareAndSwap(seen, cur) {
				break
			}
		}
		time.Sleep(handlerDelay)

		id := r.PathValue("id")
		if failing[id] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(notion.Page{
			ID: id,
			Properties: map[string]notion.Property{
				notion.PropStatus: {Status: &notion.Status{Name: "Publicado"}},
			},
		})
	})
	return httptest.NewServer(mux), &total, &maxInflight
}

func TestCheckStatusesResolvesAllPages(t *testing.T) {
	srv, total, maxInflight := newStatusServer(t, nil, 20*time.Millisecond)
	defer srv.Close()
	svc := &DefaultSyncService{
		Notion:     notion.NewClient(srv.URL, "test-token"),
		DatabaseID: testDatabaseID,
		Pacing:     testPacing(),
	}

	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}
	got := svc.CheckStatuses(context.Background(), ids)

	require.Len(t, got, 7)
	for _, id := range ids {
		assert.Equal(t, "Publicado", got[id])
	}
	assert.EqualValues(t, 7, total.Load())
	// Chunks of three: never more than three lookups in flight.
	assert.LessOrEqual(t, maxInflight.Load(), int64(3))
}

func TestCheckStatusesOmitsFailedLookups(t *testing.T) {
	srv, total, _ := newStatusServer(t, map[string]bool{"p3": true, "p6": true}, 0)
	defer srv.Close()
	svc := &DefaultSyncService{
		Notion:     notion.NewClient(srv.URL, "test-token"),
		DatabaseID: testDatabaseID,
		Pacing:     testPacing(),
	}

	got := svc.CheckStatuses(context.Background(), []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"})

	// Two of seven lookups fail: exactly five entries, no retry.
	require.Len(t, got, 5)
	assert.NotContains(t, got, "p3")
	assert.NotContains(t, got, "p6")
	assert.EqualValues(t, 7, total.Load())
}

func TestCheckStatusesDefaultsMissingStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/pages/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(notion.Page{ID: r.PathValue("id")})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	svc := &DefaultSyncService{
		Notion:     notion.NewClient(srv.URL, "test-token"),
		DatabaseID: testDatabaseID,
		Pacing:     testPacing(),
	}

	got := svc.CheckStatuses(context.Background(), []string{"p1"})
	assert.Equal(t, map[string]string{"p1": notion.StatusUnknown}, got)
}

func TestCheckStatusesEmptyInput(t *testing.T) {
	svc := &DefaultSyncService{
		Notion: notion.NewClient("http://127.0.0.1:0", "test-token"),
		Pacing: testPacing(),
	}
	got := svc.CheckStatuses(context.Background(), nil)
	assert.Empty(t, got)
}

func TestChunkedRunnerPausesBetweenChunks(t *testing.T) {
	runner := chunkedRunner{size: 3, pause: 30 * time.Millisecond}
	var calls atomic.Int64

	start := time.Now()
	runner.run(context.Background(), 7, func(_ context.Context, _ int) { calls.Add(1) })
	elapsed := time.Since(start)

	assert.EqualValues(t, 7, calls.Load())
	// Seven items in chunks of three mean exactly two inter-chunk pauses.
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestChunkedRunnerStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int64

	runner := chunkedRunner{size: 2, pause: 50 * time.Millisecond}
	runner.run(ctx, 6, func(_ context.Context, i int) {
		calls.Add(1)
		if i == 1 {
			cancel()
		}
	})

	// The first chunk ran, the cancellation fired during the pause.
	assert.EqualValues(t, 2, calls.Load())
}
