package handlers

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResubmitWindow is how long an email is blocked from submitting a second
// review.
const ResubmitWindow = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// withinResubmitWindow reports whether a review created at createdAt still
// blocks the same email from submitting another one at now.
func withinResubmitWindow(createdAt, now time.Time) bool {
	return now.Sub(createdAt) < ResubmitWindow
}

// ownsReview matches the supplied email against the stored one, ignoring
// case and surrounding whitespace.
func ownsReview(stored, supplied string) bool {
	return strings.EqualFold(stored, strings.TrimSpace(supplied))
}

type createReviewRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=50"`
	Email        string `json:"email" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Review       string `json:"review" binding:"required"`
	ProfileImage string `json:"profileImage"`
	Gender       string `json:"gender"`
}

// ListApprovedReviews returns the newest 20 approved reviews with the
// submitter email stripped.
func ListApprovedReviews(c *gin.Context) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(20).
		SetProjection(bson.M{"email": 0})

	cur, err := config.DB.Collection("reviews").Find(context.Background(), bson.M{"approved": true}, opts)
	if err != nil {
		serverError(c, "failed to fetch reviews", err)
		return
	}

	reviews := []models.Review{}
	if err := cur.All(context.Background(), &reviews); err != nil {
		serverError(c, "failed to decode reviews", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(reviews), "reviews": reviews})
}

// CreateReview accepts a public submission. New reviews start unapproved
// and wait for moderation; the same email cannot submit twice within 24h.
func CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all required fields"})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}
	text := strings.TrimSpace(req.Review)
	if utf8.RuneCountInString(text) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review must be at least 10 characters long"})
		return
	}
	if utf8.RuneCountInString(text) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review cannot exceed 500 characters"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email"})
		return
	}
	gender := req.Gender
	if gender == "" {
		gender = "male"
	}
	if gender != "male" && gender != "female" && gender != "other" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gender value"})
		return
	}

	reviews := config.DB.Collection("reviews")

	var latest models.Review
	err := reviews.FindOne(
		context.Background(),
		bson.M{"email": email},
		options.FindOne().SetSort(bson.M{"createdAt": -1}),
	).Decode(&latest)
	if err != nil && err != mongo.ErrNoDocuments {
		serverError(c, "failed to check recent reviews", err)
		return
	}
	if err == nil && withinResubmitWindow(latest.CreatedAt, time.Now()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "You have already submitted a review in the last 24 hours"})
		return
	}

	now := time.Now()
	review := models.Review{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Rating:       req.Rating,
		Review:       text,
		ProfileImage: req.ProfileImage,
		Gender:       gender,
		Approved:     false, // requires admin approval
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := reviews.InsertOne(context.Background(), review)
	if err != nil {
		serverError(c, "failed to insert review", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your review!",
		"review": gin.H{
			"id":           res.InsertedID.(primitive.ObjectID).Hex(),
			"name":         review.Name,
			"rating":       review.Rating,
			"review":       review.Review,
			"profileImage": review.ProfileImage,
			"createdAt":    review.CreatedAt,
		},
	})
}

// DeleteOwnReview lets a submitter remove their review by proving they
// know the email it was posted under. Case-insensitive match; a weak
// authorization check by design of the storefront.
func DeleteOwnReview(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var body struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	reviews := config.DB.Collection("reviews")

	var review models.Review
	err = reviews.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to look up review", err)
		return
	}

	if !ownsReview(review.Email, body.Email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own reviews"})
		return
	}

	if _, err := reviews.DeleteOne(context.Background(), bson.M{"_id": objID}); err != nil {
		serverError(c, "failed to delete review", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted successfully"})
}

// AdminListReviews returns every review, newest first, for moderation.
func AdminListReviews(c *gin.Context) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := config.DB.Collection("reviews").Find(context.Background(), bson.M{}, opts)
	if err != nil {
		serverError(c, "failed to fetch reviews", err)
		return
	}

	reviews := []models.Review{}
	if err := cur.All(context.Background(), &reviews); err != nil {
		serverError(c, "failed to decode reviews", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// AdminUpdateReview approves or rejects a review by the id in the body.
func AdminUpdateReview(c *gin.Context) {
	var req struct {
		ID       string `json:"id" binding:"required"`
		Approved *bool  `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review ID and approved status are required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.Review
	err = config.DB.Collection("reviews").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"approved": *req.Approved, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&review)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to update review", err)
		return
	}

	action := "rejected"
	if *req.Approved {
		action = "approved"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Review " + action + " successfully",
		"review":  review,
	})
}

// AdminDeleteReview removes any review by storage id.
func AdminDeleteReview(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	res, err := config.DB.Collection("reviews").DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		serverError(c, "failed to delete review", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
