package sync

import (
	"context"

	"cuidarte/notion"
	"cuidarte/utils"

	"go.uber.org/zap"
)

// CheckStatuses fetches the current status of each known page ID in
// chunks of Pacing.ChunkSize, pausing between chunks to stay under the
// upstream rate ceiling. Failed lookups are logged and left out of the
// result; there are no retries and no partial status guesses.
func (s *DefaultSyncService) CheckStatuses(ctx context.Context, pageIDs []string) map[string]string {
	logger := utils.GetLogger()

	statuses := make(map[string]string, len(pageIDs))
	if len(pageIDs) == 0 {
		return statuses
	}
	logger.Info("Checking page statuses", zap.Int("count", len(pageIDs)))

	// Each lookup writes its own slot, so no lock is needed.
	results := make([]string, len(pageIDs))

	runner := chunkedRunner{size: s.Pacing.ChunkSize, pause: s.Pacing.ChunkPause}
	runner.run(ctx, len(pageIDs), func(ctx context.Context, i int) {
		id := pageIDs[i]
		page, err := s.Notion.GetPage(ctx, id)
		if err != nil {
			logger.Warn("Failed to fetch page status",
				zap.String("pageID", id), zap.Error(err))
			return
		}
		results[i] = page.StatusName(notion.PropStatus, notion.StatusUnknown)
	})

	for i, id := range pageIDs {
		if results[i] != "" {
			statuses[id] = results[i]
		}
	}
	return statuses
}
