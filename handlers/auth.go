package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/middleware"
	"salt-n-sugar-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// SignUp creates a customer account and returns a fresh token.
func SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all required fields (password must be at least 6 characters)"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	users := config.DB.Collection("users")

	count, err := users.CountDocuments(context.Background(), bson.M{"email": email})
	if err != nil {
		serverError(c, "failed to check existing user", err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		serverError(c, "failed to hash password", err)
		return
	}

	user := models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	res, err := users.InsertOne(context.Background(), user)
	if err != nil {
		serverError(c, "failed to create user", err)
		return
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	token, err := middleware.GenerateUserToken(&user)
	if err != nil {
		serverError(c, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    gin.H{"id": user.ID.Hex(), "name": user.Name, "email": user.Email},
		"token":   token,
	})
}

// Login authenticates a customer by email and password. Unknown user and
// wrong password are indistinguishable to the caller.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide email and password"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := config.DB.Collection("users").FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		serverError(c, "failed to look up user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateUserToken(&user)
	if err != nil {
		serverError(c, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    gin.H{"id": user.ID.Hex(), "name": user.Name, "email": user.Email},
		"token":   token,
	})
}

// AdminLogin authenticates a back-office admin by username and password.
func AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var admin models.Admin
	err := config.DB.Collection("admins").FindOne(context.Background(), bson.M{"username": username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	if err != nil {
		serverError(c, "failed to look up admin", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateAdminToken(&admin)
	if err != nil {
		serverError(c, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"admin":   gin.H{"id": admin.ID.Hex(), "username": admin.Username, "email": admin.Email},
	})
}

// ChangePassword re-verifies the current password before setting a new one.
// Outstanding tokens stay valid until they expire; there is no revocation
// list.
func ChangePassword(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.Username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Current password and new password (min 6 characters) are required"})
		return
	}

	admins := config.DB.Collection("admins")

	var admin models.Admin
	err := admins.FindOne(context.Background(), bson.M{"username": claims.Username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to look up admin", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.CurrentPassword)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		serverError(c, "failed to hash password", err)
		return
	}

	_, err = admins.UpdateOne(context.Background(),
		bson.M{"_id": admin.ID},
		bson.M{"$set": bson.M{"password": string(hash)}})
	if err != nil {
		serverError(c, "failed to update password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}
