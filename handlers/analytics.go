package handlers

import (
	"context"
	"net/http"
	"time"

	"salt-n-sugar-backend/analytics"
	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAnalytics fetches the orders for the requested range and folds them
// into the dashboard summary. ?range=all|today|week|month, default all.
func GetAnalytics(c *gin.Context) {
	rng := c.DefaultQuery("range", "all")
	now := time.Now()

	query := bson.M{}
	switch rng {
	case "today":
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		query["createdAt"] = bson.M{"$gte": startOfDay}
	case "week":
		query["createdAt"] = bson.M{"$gte": now.AddDate(0, 0, -7)}
	case "month":
		query["createdAt"] = bson.M{"$gte": now.AddDate(0, 0, -30)}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := config.DB.Collection("orders").Find(context.Background(), query, opts)
	if err != nil {
		serverError(c, "failed to fetch orders for analytics", err)
		return
	}

	orders := []models.Order{}
	if err := cur.All(context.Background(), &orders); err != nil {
		serverError(c, "failed to decode orders for analytics", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analytics": analytics.Compute(orders, now, rng),
	})
}
