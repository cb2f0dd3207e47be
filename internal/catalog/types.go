package catalog

import "time"

// Category is a top-level grouping for products.
type Category struct {
	ID    string `json:"id" dynamodbav:"category_id"` // PK
	Name  string `json:"name" dynamodbav:"name"`
	Icon  string `json:"icon,omitempty" dynamodbav:"icon,omitempty"`
	Color string `json:"color,omitempty" dynamodbav:"color,omitempty"`
}

// Product is the item stored in the products table. Category holds the
// expanded record on reads and is never persisted alongside the product.
type Product struct {
	ID              string    `json:"id" dynamodbav:"product_id"` // PK
	Name            string    `json:"name" dynamodbav:"name"`
	Description     string    `json:"description" dynamodbav:"description"`
	RichDescription string    `json:"richDescription,omitempty" dynamodbav:"rich_description,omitempty"`
	Image           string    `json:"image,omitempty" dynamodbav:"image,omitempty"`
	Images          []string  `json:"images,omitempty" dynamodbav:"images,omitempty"`
	Brand           string    `json:"brand,omitempty" dynamodbav:"brand,omitempty"`
	Price           float64   `json:"price" dynamodbav:"price"`
	CategoryID      string    `json:"category" dynamodbav:"category_id"`
	CountInStock    int       `json:"countInStock" dynamodbav:"count_in_stock"`
	Rating          float64   `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	NumReviews      int       `json:"numReviews,omitempty" dynamodbav:"num_reviews,omitempty"`
	IsFeatured      bool      `json:"isFeatured" dynamodbav:"is_featured"`
	DateCreated     time.Time `json:"dateCreated" dynamodbav:"date_created"`

	Category *Category `json:"categoryDetail,omitempty" dynamodbav:"-"`
}
