package api

// swagger:model api.AddProductResponse
type AddProductResponse struct {
	Message   string `json:"message" example:"Product added successfully"`
	ProductID string `json:"productId"`
}
