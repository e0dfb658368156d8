package handlers

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/models"
	"salt-n-sugar-backend/whatsapp"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type createOrderRequest struct {
	CustomerName    string               `json:"customerName" binding:"required"`
	CustomerPhone   string               `json:"customerPhone" binding:"required"`
	CustomerEmail   string               `json:"customerEmail"`
	DeliveryAddress string               `json:"deliveryAddress" binding:"required"`
	Items           []models.OrderItem   `json:"items" binding:"required,min=1"`
	TotalAmount     float64              `json:"totalAmount" binding:"required"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod"`
	DeliveryDate    *time.Time           `json:"deliveryDate"`
	Notes           string               `json:"notes"`
}

// FormatOrderNumber renders the SNS-YYYYMMDD-NNN order number for the
// seq-th order of day. Assigned once at creation, never recomputed.
func FormatOrderNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("SNS-%s-%03d", day.Format("20060102"), seq)
}

// dayBounds returns local midnight of t's day and the following midnight.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// nextOrderNumber counts today's orders and assigns the next slot. Two
// concurrent creates can race here; tolerable at this shop's volume.
func nextOrderNumber(ctx context.Context, now time.Time) (string, error) {
	start, end := dayBounds(now)
	count, err := config.DB.Collection("orders").CountDocuments(ctx, bson.M{
		"orderDate": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return "", err
	}
	return FormatOrderNumber(now, count+1), nil
}

// ListOrders returns orders newest first, optionally narrowed by
// ?filter=today|pending|preparing|delivery|completed.
func ListOrders(c *gin.Context) {
	query := bson.M{}
	switch c.Query("filter") {
	case "today":
		start, end := dayBounds(time.Now())
		query["orderDate"] = bson.M{"$gte": start, "$lt": end}
	case "pending":
		query["status"] = models.StatusPending
	case "preparing":
		query["status"] = models.StatusPreparing
	case "delivery":
		query["status"] = models.StatusOutForDelivery
	case "completed":
		query["status"] = models.StatusCompleted
	}

	opts := options.Find().SetSort(bson.M{"orderDate": -1})
	cur, err := config.DB.Collection("orders").Find(context.Background(), query, opts)
	if err != nil {
		serverError(c, "failed to fetch orders", err)
		return
	}

	orders := []models.Order{}
	if err := cur.All(context.Background(), &orders); err != nil {
		serverError(c, "failed to decode orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// CreateOrder validates the payload, assigns the day-scoped order number
// and responds with the stored order plus the WhatsApp handoff link.
func CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	for _, item := range req.Items {
		if item.ProductName == "" || item.Size == "" || item.Quantity < 1 || item.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order item"})
			return
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCashOnDelivery
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	now := time.Now()
	orderNumber, err := nextOrderNumber(context.Background(), now)
	if err != nil {
		serverError(c, "failed to generate order number", err)
		return
	}

	order := models.Order{
		OrderNumber:     orderNumber,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Status:          models.StatusPending,
		PaymentMethod:   paymentMethod,
		OrderDate:       now,
		DeliveryDate:    req.DeliveryDate,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := config.DB.Collection("orders").InsertOne(context.Background(), order)
	if err != nil {
		serverError(c, "failed to insert order", err)
		return
	}
	order.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Order created successfully",
		"order":       order,
		"whatsappUrl": whatsapp.OrderURL(config.WhatsAppNumber, &order),
	})
}

// UpdateOrder merges a partial field set keyed by orderId. Status and
// payment method are checked against their enums but any valid value is
// accepted, including backward status moves.
func UpdateOrder(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rawID, ok := body["orderId"].(string)
	if !ok || rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	delete(body, "orderId")

	if raw, present := body["status"]; present {
		status, ok := raw.(string)
		if !ok || !models.ValidStatus(models.OrderStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}
	}
	if raw, present := body["paymentMethod"]; present {
		method, ok := raw.(string)
		if !ok || !models.ValidPaymentMethod(models.PaymentMethod(method)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
			return
		}
	}
	// The order number is assigned once at creation.
	delete(body, "orderNumber")
	body["updatedAt"] = time.Now()

	var order models.Order
	err = config.DB.Collection("orders").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": body},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to update order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order updated successfully",
		"order":   order,
	})
}

// DeleteOrder removes an order by storage id.
func DeleteOrder(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	res, err := config.DB.Collection("orders").DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		serverError(c, "failed to delete order", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}

// ExportOrders streams every order as a CSV attachment for offline
// bookkeeping.
func ExportOrders(c *gin.Context) {
	opts := options.Find().SetSort(bson.M{"orderDate": -1})
	cur, err := config.DB.Collection("orders").Find(context.Background(), bson.M{}, opts)
	if err != nil {
		serverError(c, "failed to fetch orders for export", err)
		return
	}
	defer cur.Close(context.Background())

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=orders.csv")

	writer := csv.NewWriter(c.Writer)
	writer.Write([]string{"Order Number", "Customer", "Phone", "Order Date", "Status", "Payment Method", "Total Amount"})

	for cur.Next(context.Background()) {
		var order models.Order
		if err := cur.Decode(&order); err != nil {
			serverError(c, "failed to decode order for export", err)
			return
		}
		writer.Write([]string{
			order.OrderNumber,
			order.CustomerName,
			order.CustomerPhone,
			order.OrderDate.Format(time.RFC3339),
			string(order.Status),
			string(order.PaymentMethod),
			strconv.FormatFloat(order.TotalAmount, 'f', 2, 64),
		})
	}
	writer.Flush()
}
