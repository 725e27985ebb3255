package api

import (
	"time"

	"github.com/askarthikey/sellerPro/internal/model"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName" example:"Mug"`
	Price       float64   `json:"price" example:"9.99"`
	Category    string    `json:"category" example:"Home & Kitchen"`
	Stock       int       `json:"stock" example:"10"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Seller      string    `json:"seller" example:"alice"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		ProductName: p.ProductName,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Seller:      p.Seller,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
