package sync

import (
	"context"

	"cuidarte/models"
	"cuidarte/notion"
	"cuidarte/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FindLinks searches the calendar by client name for records with no
// known page ID. Searches run strictly sequentially behind a timed
// gate; the pacing is stricter than the point lookups because each
// step is a full-text query. The first match wins unconditionally and
// candidates with zero matches are left out of the result.
func (s *DefaultSyncService) FindLinks(ctx context.Context, candidates []models.SearchCandidate) map[string]models.LinkResult {
	logger := utils.GetLogger()

	found := make(map[string]models.LinkResult, len(candidates))
	if len(candidates) == 0 {
		return found
	}
	logger.Info("Searching calendar for unlinked clients", zap.Int("count", len(candidates)))

	gate := rate.NewLimiter(rate.Every(s.Pacing.SearchPause), 1)
	for _, candidate := range candidates {
		if err := gate.Wait(ctx); err != nil {
			return found
		}

		filter := notion.TitleFilter{
			Property: notion.PropName,
			Title:    notion.TitleCondition{Contains: candidate.ClientName},
		}
		resp, err := s.Notion.QueryDatabase(ctx, s.DatabaseID, filter)
		if err != nil {
			logger.Warn("Name search failed",
				zap.String("client", candidate.ClientName), zap.Error(err))
			continue
		}
		if len(resp.Results) == 0 {
			logger.Info("No calendar match for client",
				zap.String("client", candidate.ClientName))
			continue
		}

		// First match wins; names are usually unique enough.
		match := resp.Results[0]
		found[candidate.ID] = models.LinkResult{
			PageID:    match.ID,
			Status:    match.StatusName(notion.PropStatus, notion.StatusUnknown),
			NotionURL: match.URL,
		}
	}
	return found
}
