package entity

import "time"

// Favorite links a username to a saved article and/or product.
type Favorite struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	ArticleID       *int64    `json:"article_id"`
	ProductName     string    `json:"product_name"`
	ProductImageURL *string   `json:"product_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}
