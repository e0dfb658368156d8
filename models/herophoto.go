package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeroPhoto is a slide in the homepage carousel, ranked by Order ascending.
type HeroPhoto struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	Title     string             `bson:"title" json:"title"`
	Order     int                `bson:"order" json:"order"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
