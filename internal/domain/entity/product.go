package entity

import "time"

// Product is a sellable catalog item.
type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Discount    float64   `bson:"discount" json:"discount"`
	Stock       int       `bson:"stock" json:"stock"`
	Sold        int       `bson:"sold" json:"sold"`
	Category    string    `bson:"category" json:"category"`
	Brand       string    `bson:"brand" json:"brand"`
	Shipping    bool      `bson:"shipping" json:"shipping"`
	Image       Image     `bson:"image" json:"image"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProductListFilter drives paged product listing.
type ProductListFilter struct {
	Search string
	Page   int
	Limit  int
	SortBy string
	Order  string
}
