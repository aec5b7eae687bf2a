package notion

// Text is the content fragment of a rich text or title element.
type Text struct {
	Content string `json:"content"`
}

type RichText struct {
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

type Date struct {
	Start string `json:"start"`
}

type Status struct {
	Name string `json:"name"`
}

type Person struct {
	ID string `json:"id"`
}

// Property is the union of the property shapes the testimonials
// database reads and writes.
type Property struct {
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Date     *Date      `json:"date,omitempty"`
	URL      string     `json:"url,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	People   []Person   `json:"people,omitempty"`
}

// Page is an externally persisted calendar entry.
type Page struct {
	ID         string              `json:"id"`
	URL        string              `json:"url"`
	Properties map[string]Property `json:"properties"`
}

// StatusName reads a status property's name, falling back when the
// property or its value is absent.
func (p Page) StatusName(property, fallback string) string {
	if prop, ok := p.Properties[property]; ok && prop.Status != nil && prop.Status.Name != "" {
		return prop.Status.Name
	}
	return fallback
}

// DateStart returns the start date of a date property, or "" when unset.
func (p Page) DateStart(property string) string {
	if prop, ok := p.Properties[property]; ok && prop.Date != nil {
		return prop.Date.Start
	}
	return ""
}

// DateFilter matches pages whose date property falls within a range.
type DateFilter struct {
	Property string        `json:"property"`
	Date     DateCondition `json:"date"`
}

type DateCondition struct {
	OnOrAfter  string `json:"on_or_after,omitempty"`
	OnOrBefore string `json:"on_or_before,omitempty"`
}

// TitleFilter matches pages whose title contains a substring.
type TitleFilter struct {
	Property string         `json:"property"`
	Title    TitleCondition `json:"title"`
}

type TitleCondition struct {
	Contains string `json:"contains"`
}

type queryRequest struct {
	Filter any `json:"filter,omitempty"`
}

type QueryResponse struct {
	Results []Page `json:"results"`
}

type Parent struct {
	DatabaseID string `json:"database_id"`
}

type CreatePageRequest struct {
	Parent     Parent              `json:"parent"`
	Properties map[string]Property `json:"properties"`
}
