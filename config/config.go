package config

import (
	"context"
	"log/slog"
	"os"
	"time"

	"salt-n-sugar-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// JWTSecret signs admin and customer tokens — read from env or fallback.
var JWTSecret = []byte(GetEnv("JWT_SECRET", "salt-n-sugar-dev-secret"))

// WhatsAppNumber is the bakery's WhatsApp Business number used for the
// checkout handoff link. Country code plus number, no "+" or spaces.
var WhatsAppNumber = GetEnv("WHATSAPP_NUMBER", "923335981875")

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB connects to MongoDB and pings it. Fatal on failure; there is
// nothing useful the server can do without its database.
func InitDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	if err := client.Ping(ctx, nil); err != nil {
		slog.Error("failed to ping MongoDB", "error", err)
		os.Exit(1)
	}

	Client = client
	DB = client.Database(GetEnv("MONGODB_DATABASE", "salt-n-sugar"))
	slog.Info("connected to MongoDB", "database", DB.Name())
}

// EnsureAdmin creates the initial back-office account when the admins
// collection is empty, so a fresh deployment is immediately usable.
// Change the default password after first login.
func EnsureAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	username := GetEnv("ADMIN_USERNAME", "admin")

	count, err := DB.Collection("admins").CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		slog.Error("failed to check for existing admin", "error", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(GetEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash admin password", "error", err)
		return
	}

	admin := models.Admin{
		Username:  username,
		Password:  string(hash),
		Email:     GetEnv("ADMIN_EMAIL", "admin@saltnsugar.com"),
		CreatedAt: time.Now(),
	}
	if _, err := DB.Collection("admins").InsertOne(ctx, admin); err != nil {
		slog.Error("failed to create admin user", "error", err)
		return
	}
	slog.Info("created initial admin user", "username", username)
}
