package store

import (
	"context"
	"fmt"

	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/model"

	"github.com/google/uuid"
)

var newProductID = uuid.New

// CreateProduct assigns the id and persists the record; created_at and
// updated_at come back from the database.
func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	p.ID = newProductID()
	row := db.QueryRow(ctx,
		`INSERT INTO products (id, product_name, price, category, stock, description, image_url, seller)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		p.ID,
		p.ProductName,
		p.Price,
		p.Category,
		p.Stock,
		p.Description,
		p.ImageURL,
		p.Seller,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

// ListProductsBySeller returns the seller's products, newest first.
func ListProductsBySeller(ctx context.Context, db database.DB, seller string) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, product_name, price, category, stock, description, image_url, seller, created_at, updated_at
		 FROM products WHERE seller = $1
		 ORDER BY created_at DESC`,
		seller,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProductsBySeller: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.ProductName,
			&p.Price,
			&p.Category,
			&p.Stock,
			&p.Description,
			&p.ImageURL,
			&p.Seller,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListProductsBySeller: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProductsBySeller: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT id, product_name, price, category, stock, description, image_url, seller, created_at, updated_at
		 FROM products WHERE id = $1`,
		id,
	)
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.ProductName,
		&p.Price,
		&p.Category,
		&p.Stock,
		&p.Description,
		&p.ImageURL,
		&p.Seller,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

// UpdateProduct writes the full merged record and refreshes updated_at.
func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) error {
	row := db.QueryRow(
		ctx,
		`UPDATE products
		 SET product_name = $1, price = $2, category = $3, stock = $4, description = $5, image_url = $6, updated_at = now()
		 WHERE id = $7
		 RETURNING updated_at`,
		p.ProductName,
		p.Price,
		p.Category,
		p.Stock,
		p.Description,
		p.ImageURL,
		p.ID,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateProduct: %w", err)
	}
	return nil
}

func DeleteProduct(ctx context.Context, db database.DB, id uuid.UUID) error {
	_, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	return nil
}
