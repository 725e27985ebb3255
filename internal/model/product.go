package model

import (
	"time"

	"github.com/google/uuid"
)

// Product belongs to exactly one seller; every read/update/delete must
// check the caller against Seller first.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ProductName string    `db:"product_name" json:"productName"`
	Price       float64   `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	Stock       int       `db:"stock" json:"stock"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	Seller      string    `db:"seller" json:"seller"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
