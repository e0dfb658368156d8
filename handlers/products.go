package handlers

import (
	"context"
	"net/http"
	"time"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/middleware"
	"salt-n-sugar-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type createProductRequest struct {
	ID            string               `json:"id" binding:"required"`
	Name          string               `json:"name" binding:"required"`
	Description   string               `json:"description" binding:"required"`
	Category      string               `json:"category" binding:"required"`
	Image         string               `json:"image" binding:"required"`
	Images        []string             `json:"images"`
	Rating        float64              `json:"rating"`
	Reviews       int                  `json:"reviews"`
	Ingredients   []string             `json:"ingredients"`
	Sizes         []models.ProductSize `json:"sizes" binding:"required,min=1"`
	InStock       *bool                `json:"inStock"`
	StockQuantity int                  `json:"stockQuantity"`
	DisplayOrder  int                  `json:"displayOrder"`
}

// ListProducts returns the catalog. Public callers see active products
// only; ?admin=true with a valid token includes inactive ones.
func ListProducts(c *gin.Context) {
	query := bson.M{"active": true}
	if c.Query("admin") == "true" && middleware.BearerClaims(c) != nil {
		query = bson.M{}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := config.DB.Collection("products").Find(context.Background(), query, opts)
	if err != nil {
		serverError(c, "failed to fetch products", err)
		return
	}

	products := []models.Product{}
	if err := cur.All(context.Background(), &products); err != nil {
		serverError(c, "failed to decode products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// CreateProduct adds a catalog entry. The business-key id must not already
// exist; the check is a read before the insert, not a unique constraint.
func CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All required fields must be provided"})
		return
	}

	products := config.DB.Collection("products")

	count, err := products.CountDocuments(context.Background(), bson.M{"id": req.ID})
	if err != nil {
		serverError(c, "failed to check product id", err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product with this ID already exists"})
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5.0
	}
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	now := time.Now()
	product := models.Product{
		SKU:           req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Image:         req.Image,
		Images:        req.Images,
		Rating:        rating,
		Reviews:       req.Reviews,
		Ingredients:   ingredients,
		Sizes:         req.Sizes,
		Active:        true,
		InStock:       inStock,
		StockQuantity: req.StockQuantity,
		DisplayOrder:  req.DisplayOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := products.InsertOne(context.Background(), product)
	if err != nil {
		serverError(c, "failed to insert product", err)
		return
	}
	product.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product added successfully",
		"product": product,
	})
}

// UpdateProduct merges a partial field set keyed by the storage id.
func UpdateProduct(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	rawID, ok := body["_id"].(string)
	if !ok || rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}
	delete(body, "_id")
	body["updatedAt"] = time.Now()

	var product models.Product
	err = config.DB.Collection("products").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": body},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to update product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product by storage id. Reports success whether or
// not a document was actually removed, matching the storefront's
// fire-and-forget delete.
func DeleteProduct(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if _, err := config.DB.Collection("products").DeleteOne(context.Background(), bson.M{"_id": objID}); err != nil {
		serverError(c, "failed to delete product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
