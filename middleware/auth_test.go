package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/guarded", AuthRequired(), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func TestAdminTokenRoundTrip(t *testing.T) {
	admin := &models.Admin{ID: primitive.NewObjectID(), Username: "admin"}
	token, err := GenerateAdminToken(admin)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
	if claims.ID != admin.ID.Hex() {
		t.Errorf("ID = %q, want %q", claims.ID, admin.ID.Hex())
	}

	validFor := time.Until(time.Unix(claims.ExpiresAt, 0))
	if validFor < 6*24*time.Hour || validFor > 8*24*time.Hour {
		t.Errorf("token validity = %v, want about 7 days", validFor)
	}
}

func TestUserTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "ayesha@example.com"}
	token, err := GenerateUserToken(user)
	if err != nil {
		t.Fatalf("GenerateUserToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "ayesha@example.com" {
		t.Errorf("Email = %q, want ayesha@example.com", claims.Email)
	}
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	token, _ := GenerateAdminToken(&models.Admin{ID: primitive.NewObjectID(), Username: "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	guardedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	guardedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredRejectsBadSignature(t *testing.T) {
	claims := Claims{
		Username: "admin",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	guardedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		Username: "admin",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	guardedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredRejectsNonBearerScheme(t *testing.T) {
	token, _ := GenerateAdminToken(&models.Admin{ID: primitive.NewObjectID(), Username: "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Basic "+token)
	guardedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
