// Package jobs holds the scheduled background tasks run by the server
// process.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PendingOrderReminder logs the orders still waiting on the kitchen so the
// morning shift has a follow-up list. Runs from the midnight cron entry.
func PendingOrderReminder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cur, err := config.DB.Collection("orders").Find(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		slog.Error("pending order reminder query failed", "error", err)
		return
	}

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		slog.Error("pending order reminder decode failed", "error", err)
		return
	}

	if len(orders) == 0 {
		slog.Info("pending order reminder: nothing outstanding")
		return
	}

	for _, order := range orders {
		slog.Info("pending order needs follow-up",
			"orderNumber", order.OrderNumber,
			"customer", order.CustomerName,
			"phone", order.CustomerPhone,
			"total", order.TotalAmount,
			"orderDate", order.OrderDate,
		)
	}
	slog.Info("pending order reminder complete", "count", len(orders))
}
