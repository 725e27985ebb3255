package api

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	ProductName string   `json:"productName" validate:"required" example:"Mug"`
	Price       Decimal  `json:"price" validate:"required,gt=0" example:"9.99"`
	Category    string   `json:"category" validate:"required" example:"Home & Kitchen"`
	Stock       *Integer `json:"stock" validate:"required,gte=0" example:"10"`
	Description string   `json:"description" validate:"omitempty"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
}
