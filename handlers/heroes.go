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

type createHeroPhotoRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Order    int    `json:"order"`
}

// ListHeroPhotos returns carousel slides by display rank. Callers holding
// a valid admin token also see inactive slides.
func ListHeroPhotos(c *gin.Context) {
	query := bson.M{"active": true}
	if middleware.BearerClaims(c) != nil {
		query = bson.M{}
	}

	opts := options.Find().SetSort(bson.M{"order": 1})
	cur, err := config.DB.Collection("heroPhotos").Find(context.Background(), query, opts)
	if err != nil {
		serverError(c, "failed to fetch hero photos", err)
		return
	}

	photos := []models.HeroPhoto{}
	if err := cur.All(context.Background(), &photos); err != nil {
		serverError(c, "failed to decode hero photos", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "photos": photos})
}

// CreateHeroPhoto adds a carousel slide.
func CreateHeroPhoto(c *gin.Context) {
	var req createHeroPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image URL and title are required"})
		return
	}

	photo := models.HeroPhoto{
		ImageURL:  req.ImageURL,
		Title:     req.Title,
		Order:     req.Order,
		Active:    true,
		CreatedAt: time.Now(),
	}

	res, err := config.DB.Collection("heroPhotos").InsertOne(context.Background(), photo)
	if err != nil {
		serverError(c, "failed to insert hero photo", err)
		return
	}
	photo.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Hero photo added successfully",
		"photo":   photo,
	})
}

// ToggleHeroPhoto flips a slide's active flag.
func ToggleHeroPhoto(c *gin.Context) {
	var req struct {
		ID     string `json:"id" binding:"required"`
		Active *bool  `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Photo ID and active status are required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid photo ID"})
		return
	}

	var photo models.HeroPhoto
	err = config.DB.Collection("heroPhotos").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"active": *req.Active}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&photo)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Hero photo not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to update hero photo", err)
		return
	}

	action := "deactivated"
	if *req.Active {
		action = "activated"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hero photo " + action + " successfully",
		"photo":   photo,
	})
}

// DeleteHeroPhoto removes a slide by storage id. Success is reported
// whether or not a document was removed.
func DeleteHeroPhoto(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Photo ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid photo ID"})
		return
	}

	if _, err := config.DB.Collection("heroPhotos").DeleteOne(context.Background(), bson.M{"_id": objID}); err != nil {
		serverError(c, "failed to delete hero photo", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Hero photo deleted successfully"})
}
