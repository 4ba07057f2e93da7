package response_models

type TripTypeResponse struct {
	ID    string                `json:"id"`
	Name  string                `json:"name"`
	Icon  string                `json:"icon"`
	Color string                `json:"color"`
	Items []PackingItemResponse `json:"items"`
}

type PackingItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Packed   bool   `json:"packed"`
}
