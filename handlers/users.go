package handlers

import (
	"context"
	"net/http"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminListUsers returns all customer accounts newest first, with the
// password hash excluded from the projection.
func AdminListUsers(c *gin.Context) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetProjection(bson.M{"password": 0})

	cur, err := config.DB.Collection("users").Find(context.Background(), bson.M{}, opts)
	if err != nil {
		serverError(c, "failed to fetch users", err)
		return
	}

	users := []models.User{}
	if err := cur.All(context.Background(), &users); err != nil {
		serverError(c, "failed to decode users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
