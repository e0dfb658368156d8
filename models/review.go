package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer testimonial. New submissions start unapproved and
// only show up publicly once an admin flips Approved.
type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email,omitempty"`
	Rating       int                `bson:"rating" json:"rating"`
	Review       string             `bson:"review" json:"review"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Approved     bool               `bson:"approved" json:"approved"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
