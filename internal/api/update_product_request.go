package api

// UpdateProductRequest is a partial update; nil fields keep their
// stored values.
// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	ProductName *string  `json:"productName" validate:"omitempty,min=1"`
	Price       *Decimal `json:"price" validate:"omitempty,gt=0"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Stock       *Integer `json:"stock" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
}
