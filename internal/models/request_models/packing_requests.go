package request_models

type AddPackingItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type UpdatePackingItemRequest struct {
	Packed *bool `json:"packed" binding:"required"`
}
