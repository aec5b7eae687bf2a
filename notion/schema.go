package notion

// Property names and fixed status values of the testimonials calendar
// database. The schema is owned by the Notion workspace; these names
// must match it exactly.
const (
	PropName     = "Name"
	PropDate     = "Fecha"
	PropURL      = "URL"
	PropTag      = "Etiqueta"
	PropNotes    = "Texto"
	PropStatus   = "Estado 1"
	PropAssignee = "Responsable"

	StatusRevision = "Revision"
	StatusUnknown  = "Unknown"
)
