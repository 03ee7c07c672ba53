package entity

import "time"

type Product struct {
	ID              int64     `json:"id"`
	ProductName     string    `json:"product_name"`
	ProductImageURL *string   `json:"product_image_url"`
	Description     *string   `json:"description"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
