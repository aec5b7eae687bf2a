package sync

import (
	"context"
	"time"

	"cuidarte/config"
	"cuidarte/models"
	"cuidarte/notion"
)

// SyncService reconciles local client records against the content
// calendar: bulk status checks for known page IDs and best-effort name
// search for records lacking a link.
type SyncService interface {
	Sync(ctx context.Context, req models.SyncRequest) models.SyncResponse
}

// DefaultSyncService implements SyncService with chunked, paced
// lookups against the Notion API.
type DefaultSyncService struct {
	Notion     *notion.Client
	DatabaseID string
	Pacing     Pacing
}

// Pacing captures the request-rate contract against the Notion API.
type Pacing struct {
	ChunkSize   int           // concurrent point lookups per chunk
	ChunkPause  time.Duration // pause between chunks
	SearchPause time.Duration // gap between sequential title searches
}

// DefaultPacing stays under the public Notion limit of three requests
// per second.
func DefaultPacing() Pacing {
	return Pacing{
		ChunkSize:   3,
		ChunkPause:  300 * time.Millisecond,
		SearchPause: 400 * time.Millisecond,
	}
}

// PacingFromConfig builds the pacing contract from the loaded config,
// falling back to the defaults for unset values.
func PacingFromConfig() Pacing {
	p := DefaultPacing()
	if config.AppConfig.SyncChunkSize > 0 {
		p.ChunkSize = config.AppConfig.SyncChunkSize
	}
	if config.AppConfig.SyncChunkPauseMs > 0 {
		p.ChunkPause = time.Duration(config.AppConfig.SyncChunkPauseMs) * time.Millisecond
	}
	if config.AppConfig.SearchPauseMs > 0 {
		p.SearchPause = time.Duration(config.AppConfig.SearchPauseMs) * time.Millisecond
	}
	return p
}

// Sync runs the status engine over known page IDs and the link
// reconciler over search candidates. Per-item failures are logged and
// omitted; the call itself always succeeds.
func (s *DefaultSyncService) Sync(ctx context.Context, req models.SyncRequest) models.SyncResponse {
	return models.SyncResponse{
		Statuses:   s.CheckStatuses(ctx, req.PageIDs),
		FoundLinks: s.FindLinks(ctx, req.SearchCandidates),
	}
}
