package models

// SearchCandidate identifies a local client record lacking a Notion link.
type SearchCandidate struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
}

// SyncRequest is the reconciliation payload: known page IDs to check
// plus unlinked records to search for by name.
type SyncRequest struct {
	PageIDs          []string          `json:"pageIds"`
	SearchCandidates []SearchCandidate `json:"searchCandidates"`
}

// LinkResult is a discovered Notion link for a previously unlinked record.
type LinkResult struct {
	PageID    string `json:"pageId"`
	Status    string `json:"status"`
	NotionURL string `json:"notionUrl"`
}

// SyncResponse maps page IDs to their current status and local record
// IDs to discovered links. Entries that failed to resolve are absent.
type SyncResponse struct {
	Statuses   map[string]string     `json:"statuses"`
	FoundLinks map[string]LinkResult `json:"foundLinks"`
}
