package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createEventRequest carries the admin event-creation payload. All fields but
// image_url are required; the category must belong to the closed enumeration.
type createEventRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	EventDate   string `json:"event_date"  validate:"required,datetime=2006-01-02"`
	Location    string `json:"location"    validate:"required"`
	Category    string `json:"category"    validate:"required,oneof=music sport culture food education other"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}

// deleteResponse acknowledges a successful delete.
type deleteResponse struct {
	OK bool `json:"ok"`
}
