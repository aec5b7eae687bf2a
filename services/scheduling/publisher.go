package scheduling

import (
	"context"
	"fmt"

	"cuidarte/models"
	"cuidarte/notion"
)

const titlePrefix = "TESTIMONIO - "

// typeLabels maps a testimonial media type to its calendar tag label.
var typeLabels = map[string]string{
	models.ContentTypeVideo: "🎥 VÍDEO",
	models.ContentTypeImage: "📸 FOTO",
	models.ContentTypeText:  "✍️ TEXTO",
	models.ContentTypeAudio: "🎙️ AUDIO",
}

// TypeLabel returns the human label for a media type, defaulting for
// unknown types.
func TypeLabel(contentType string) string {
	if label, ok := typeLabels[contentType]; ok {
		return label
	}
	return "📝 OTRO"
}

func validateRequest(req models.TestimonialRequest) error {
	if req.ClientName == "" {
		return NewValidationError("clientName is required")
	}
	if req.MediaURL == "" {
		return NewValidationError("mediaUrl is required")
	}
	return nil
}

// publishEntry creates a fresh calendar page for the allocated date.
// Every booking appends a new page; existing pages for the same client
// are never searched for or updated. A creation failure after slot
// allocation loses the slot, there is no compensating release.
func (s *DefaultSchedulingService) publishEntry(ctx context.Context, req models.TestimonialRequest, date string) (*notion.Page, error) {
	notes := req.Notes
	if notes == "" {
		notes = "-"
	}

	properties := map[string]notion.Property{
		notion.PropName: {
			Title: []notion.RichText{{Text: &notion.Text{Content: titlePrefix + req.ClientName}}},
		},
		notion.PropDate: {
			Date: &notion.Date{Start: date},
		},
		notion.PropURL: {
			URL: req.MediaURL,
		},
		notion.PropTag: {
			RichText: []notion.RichText{{Text: &notion.Text{Content: fmt.Sprintf("%s (%s)", req.ClientName, TypeLabel(req.Type))}}},
		},
		notion.PropNotes: {
			RichText: []notion.RichText{{Text: &notion.Text{Content: notes}}},
		},
		notion.PropStatus: {
			Status: &notion.Status{Name: notion.StatusRevision},
		},
		notion.PropAssignee: {
			People: []notion.Person{{ID: s.AssigneeID}},
		},
	}

	page, err := s.Notion.CreatePage(ctx, notion.CreatePageRequest{
		Parent:     notion.Parent{DatabaseID: s.DatabaseID},
		Properties: properties,
	})
	if err != nil {
		return nil, fmt.Errorf("calendar page creation failed: %w", err)
	}
	return page, nil
}
