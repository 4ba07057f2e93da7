package request_models

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// UpdateEventRequest carries a partial update. Nil fields were absent from
// the request body and must leave the stored value untouched.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
}
