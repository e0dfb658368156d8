package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductSize is one purchasable variant of a product.
type ProductSize struct {
	Size  string  `bson:"size" json:"size"`
	Price float64 `bson:"price" json:"price"`
}

// Product is a catalog entry. SKU is the human-meaningful business key and
// is distinct from the Mongo-assigned _id; creates pre-check it for
// uniqueness.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SKU           string             `bson:"id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Category      string             `bson:"category" json:"category"`
	Image         string             `bson:"image" json:"image"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	Ingredients   []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Sizes         []ProductSize      `bson:"sizes" json:"sizes"`
	Active        bool               `bson:"active" json:"active"`
	InStock       bool               `bson:"inStock" json:"inStock"`
	StockQuantity int                `bson:"stockQuantity" json:"stockQuantity"`
	DisplayOrder  int                `bson:"displayOrder" json:"displayOrder"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
